package get_report

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
	"github.com/m04kA/SMC-TourService/internal/domain"
	reportsService "github.com/m04kA/SMC-TourService/internal/service/reports"
)

const (
	msgInvalidFrom   = "некорректный параметр from, ожидается YYYY-MM-DD"
	msgInvalidTo     = "некорректный параметр to, ожидается YYYY-MM-DD"
	msgInvalidPeriod = "параметр to раньше параметра from"
)

type Handler struct {
	service ReportsService
	logger  Logger
}

func NewHandler(service ReportsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/reports?from=&to=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	period := reportsService.Period{}

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /admin/reports - Invalid from: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
		period.From = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /admin/reports - Invalid to: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidTo)
			return
		}
		period.To = &to
	}

	overview, err := h.service.BuildOverview(r.Context(), period)
	if err != nil {
		switch {
		case errors.Is(err, reportsService.ErrInvalidPeriod):
			h.logger.Warn("GET /admin/reports - Invalid period: from=%s, to=%s",
				query.Get("from"), query.Get("to"))
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /admin/reports - Failed to build overview: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/reports - Overview built")
	handlers.RespondJSON(w, http.StatusOK, FromOverview(overview))
}
