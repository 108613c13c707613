package list_closures

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
	closuresService "github.com/m04kA/SMC-TourService/internal/service/closures"
)

const (
	msgInvalidYear  = "некорректный параметр year"
	msgInvalidMonth = "некорректный параметр month, ожидается значение от 1 до 12"
)

type Handler struct {
	service ClosuresService
	logger  Logger
}

func NewHandler(service ClosuresService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/closures?year=&month=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		h.logger.Warn("GET /admin/closures - Invalid year: %s", query.Get("year"))
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	monthNum, err := strconv.Atoi(query.Get("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		h.logger.Warn("GET /admin/closures - Invalid month: %s", query.Get("month"))
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	closures, err := h.service.ListMonth(r.Context(), year, time.Month(monthNum))
	if err != nil {
		switch {
		case errors.Is(err, closuresService.ErrInvalidInput):
			h.logger.Warn("GET /admin/closures - Invalid input: year=%d, month=%d", year, monthNum)
			handlers.RespondBadRequest(w, msgInvalidYear)

		default:
			h.logger.Error("GET /admin/closures - Failed to list closures: year=%d, month=%d, error=%v",
				year, monthNum, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/closures - Listed %d closure(s) for %d-%02d", len(closures), year, monthNum)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(year, monthNum, closures))
}
