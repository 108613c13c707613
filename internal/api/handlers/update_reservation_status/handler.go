package update_reservation_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
	"github.com/m04kA/SMC-TourService/internal/domain"
	reservationsService "github.com/m04kA/SMC-TourService/internal/service/reservations"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgUnknownStatus       = "неизвестный целевой статус"
	msgReservationNotFound = "бронирование не найдено"
	msgAlreadyFinal        = "бронирование уже в финальном статусе"
	msgInvalidTransition   = "недопустимый переход статуса"
)

// Целевые статусы, доступные администратору напрямую
var allowedTargets = map[domain.ReservationStatus]bool{
	domain.StatusConfirmed: true,
	domain.StatusCancelled: true,
	domain.StatusCompleted: true,
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

// Handle PATCH /api/v1/admin/reservations/{reference}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/reservations/{reference}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	target := domain.ReservationStatus(req.Status)
	if !allowedTargets[target] {
		h.logger.Warn("PATCH /admin/reservations/{reference}/status - Unknown status: %s", req.Status)
		handlers.RespondBadRequest(w, msgUnknownStatus)
		return
	}

	res, err := h.service.UpdateStatus(r.Context(), reference, target)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrReservationNotFound):
			h.logger.Warn("PATCH /admin/reservations/{reference}/status - Not found: reference=%s", reference)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservationsService.ErrAlreadyFinal):
			h.logger.Warn("PATCH /admin/reservations/{reference}/status - Already final: reference=%s", reference)
			handlers.RespondConflict(w, msgAlreadyFinal)

		case errors.Is(err, reservationsService.ErrInvalidTransition):
			h.logger.Warn("PATCH /admin/reservations/{reference}/status - Invalid transition: reference=%s, target=%s",
				reference, req.Status)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, reservationsService.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/reservations/{reference}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /admin/reservations/{reference}/status - Failed to update: reference=%s, error=%v",
				reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/reservations/{reference}/status - Status updated: reference=%s, status=%s",
		reference, res.Status)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(res))
}
