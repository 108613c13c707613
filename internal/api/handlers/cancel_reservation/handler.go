package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
	reservationsService "github.com/m04kA/SMC-TourService/internal/service/reservations"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgReservationNotFound = "бронирование не найдено"
	msgNotCancellable      = "бронирование уже завершено или отменено"
)

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

// Handle POST /api/v1/reservations/{reference}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	// Причина опциональна, пустое тело допустимо
	var req CancelReservationRequest
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /reservations/{reference}/cancel - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	res, err := h.service.Cancel(r.Context(), reference, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{reference}/cancel - Not found: reference=%s", reference)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservationsService.ErrNotCancellable):
			h.logger.Warn("POST /reservations/{reference}/cancel - Not cancellable: reference=%s", reference)
			handlers.RespondConflict(w, msgNotCancellable)

		case errors.Is(err, reservationsService.ErrInvalidInput):
			h.logger.Warn("POST /reservations/{reference}/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /reservations/{reference}/cancel - Failed to cancel: reference=%s, error=%v",
				reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{reference}/cancel - Reservation cancelled: reference=%s", reference)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(res))
}
