package list_reservations

import (
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
	"github.com/m04kA/SMC-TourService/internal/domain"
)

const (
	msgInvalidFrom   = "некорректный параметр from, ожидается YYYY-MM-DD"
	msgInvalidTo     = "некорректный параметр to, ожидается YYYY-MM-DD"
	msgInvalidStatus = "неизвестный статус"
	msgInvalidPeriod = "параметр to раньше параметра from"
)

// Статусы, по которым доступна фильтрация
var knownStatuses = map[domain.ReservationStatus]bool{
	domain.StatusPending:       true,
	domain.StatusConfirmed:     true,
	domain.StatusCompleted:     true,
	domain.StatusCancelled:     true,
	domain.StatusPendingReview: true,
	domain.StatusRejected:      true,
}

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/reservations?from=&to=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.ReservationsFilter{}

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /admin/reservations - Invalid from: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
		filter.StartDate = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /admin/reservations - Invalid to: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidTo)
			return
		}
		filter.EndDate = &to
	}

	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		h.logger.Warn("GET /admin/reservations - Invalid period: from=%s, to=%s",
			query.Get("from"), query.Get("to"))
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	if raw := query.Get("status"); raw != "" {
		status := domain.ReservationStatus(raw)
		if !knownStatuses[status] {
			h.logger.Warn("GET /admin/reservations - Unknown status: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		filter.Status = &status
	}

	if raw := query.Get("includeInactive"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err == nil {
			filter.IncludeInactive = includeInactive
		}
	}

	reservations, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /admin/reservations - Failed to list reservations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/reservations - Listed %d reservation(s)", len(reservations))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(reservations))
}
