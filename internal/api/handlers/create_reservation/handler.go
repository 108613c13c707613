package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-TourService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDateOrTime     = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput          = "некорректные данные бронирования"
	msgInvalidDate           = "дата экскурсии некорректна или уже прошла"
	msgDayNotAvailable       = "выбранный день недоступен для экскурсий"
	msgInvalidWindow         = "выбранное время не входит в расписание экскурсий"
	msgCapacityExceeded      = "в выбранном окне недостаточно свободных мест"
	msgJustificationRequired = "для группы сверх лимита требуется обоснование заявки"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrCapacityExceeded):
			h.logger.Warn("POST /reservations - Capacity exceeded: date=%s, window=%s, visitors=%d",
				req.Date, req.WindowStart, req.Visitors)
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, createReservation.ErrDayNotAvailable):
			h.logger.Warn("POST /reservations - Day not available: date=%s", req.Date)
			handlers.RespondConflict(w, msgDayNotAvailable)

		case errors.Is(err, createReservation.ErrJustificationRequired):
			h.logger.Warn("POST /reservations - Justification required: visitors=%d", req.Visitors)
			handlers.RespondBadRequest(w, msgJustificationRequired)

		case errors.Is(err, createReservation.ErrInvalidWindow):
			h.logger.Warn("POST /reservations - Invalid window: %s", req.WindowStart)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Invalid date: %s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: date=%s, error=%v",
				req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reference=%s, special=%v",
		result.Reference, result.IsSpecial)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
