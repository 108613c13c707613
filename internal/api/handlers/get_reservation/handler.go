package get_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
	reservationsService "github.com/m04kA/SMC-TourService/internal/service/reservations"
)

const (
	msgReservationNotFound = "бронирование не найдено"
	msgInvalidReference    = "некорректный код бронирования"
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

// Handle GET /api/v1/reservations/{reference}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	res, documents, err := h.service.GetByReference(r.Context(), reference)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{reference} - Not found: reference=%s", reference)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservationsService.ErrInvalidInput):
			h.logger.Warn("GET /reservations/{reference} - Invalid reference: %s", reference)
			handlers.RespondBadRequest(w, msgInvalidReference)

		default:
			h.logger.Error("GET /reservations/{reference} - Failed to get reservation: reference=%s, error=%v",
				reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations/{reference} - Reservation found: reference=%s", reference)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(res, documents))
}
