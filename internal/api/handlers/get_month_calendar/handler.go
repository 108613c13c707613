package get_month_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
	calendarService "github.com/m04kA/SMC-TourService/internal/service/calendar"
)

const (
	msgInvalidYear   = "некорректный год"
	msgInvalidMonth  = "некорректный месяц, ожидается значение от 1 до 12"
	msgInvalidPeriod = "запрошенный период вне поддерживаемого диапазона"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/{year}/{month}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid year: %s", vars["year"])
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	monthNum, err := strconv.Atoi(vars["month"])
	if err != nil || monthNum < 1 || monthNum > 12 {
		h.logger.Warn("GET /calendar - Invalid month: %s", vars["month"])
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	days, err := h.service.ResolveMonth(r.Context(), year, time.Month(monthNum))
	if err != nil {
		switch {
		case errors.Is(err, calendarService.ErrInvalidPeriod):
			h.logger.Warn("GET /calendar - Invalid period: year=%d, month=%d", year, monthNum)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /calendar - Failed to resolve month: year=%d, month=%d, error=%v",
				year, monthNum, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar - Month resolved: year=%d, month=%d, days=%d", year, monthNum, len(days))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(year, monthNum, days))
}
