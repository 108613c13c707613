package review_special_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
	"github.com/m04kA/SMC-TourService/internal/api/middleware"
	reservationsService "github.com/m04kA/SMC-TourService/internal/service/reservations"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgUnknownDecision     = "неизвестное решение, ожидается approve или reject"
	msgReservationNotFound = "бронирование не найдено"
	msgNotUnderReview      = "заявка не находится на рассмотрении"
	msgMissingAdmin        = "не удалось определить администратора"
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

// Handle POST /api/v1/admin/reservations/{reference}/review
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	admin, ok := middleware.AdminFrom(r.Context())
	if !ok {
		h.logger.Warn("POST /admin/reservations/{reference}/review - Missing admin claims")
		handlers.RespondUnauthorized(w, msgMissingAdmin)
		return
	}

	var req ReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/reservations/{reference}/review - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Decision != decisionApprove && req.Decision != decisionReject {
		h.logger.Warn("POST /admin/reservations/{reference}/review - Unknown decision: %s", req.Decision)
		handlers.RespondBadRequest(w, msgUnknownDecision)
		return
	}

	res, err := h.service.Review(r.Context(), reference, req.Decision == decisionApprove, admin.Subject, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrReservationNotFound):
			h.logger.Warn("POST /admin/reservations/{reference}/review - Not found: reference=%s", reference)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservationsService.ErrNotUnderReview):
			h.logger.Warn("POST /admin/reservations/{reference}/review - Not under review: reference=%s", reference)
			handlers.RespondConflict(w, msgNotUnderReview)

		case errors.Is(err, reservationsService.ErrInvalidInput):
			h.logger.Warn("POST /admin/reservations/{reference}/review - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /admin/reservations/{reference}/review - Failed to review: reference=%s, error=%v",
				reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/reservations/{reference}/review - Reviewed: reference=%s, decision=%s, by=%s",
		reference, req.Decision, admin.Subject)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(res))
}
