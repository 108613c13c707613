package create_closure

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
	"github.com/m04kA/SMC-TourService/internal/api/middleware"
	"github.com/m04kA/SMC-TourService/internal/domain"
	closuresService "github.com/m04kA/SMC-TourService/internal/service/closures"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные закрытия"
	msgClosureExists      = "на одну из дат уже объявлено закрытие"
	msgRangeTooLong       = "диапазон закрытия слишком длинный"
	msgMissingAdmin       = "не удалось определить администратора"
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

// Handle POST /api/v1/admin/closures
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	admin, ok := middleware.AdminFrom(r.Context())
	if !ok {
		h.logger.Warn("POST /admin/closures - Missing admin claims")
		handlers.RespondUnauthorized(w, msgMissingAdmin)
		return
	}

	var req CreateClosureRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/closures - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	from, err := time.Parse(domain.DateFormat, req.From)
	if err != nil {
		h.logger.Warn("POST /admin/closures - Invalid from date: %s", req.From)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	to := from
	if req.To != "" {
		to, err = time.Parse(domain.DateFormat, req.To)
		if err != nil {
			h.logger.Warn("POST /admin/closures - Invalid to date: %s", req.To)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
	}

	closures, err := h.service.Create(r.Context(), from, to, req.Reason,
		domain.ClosureCategory(req.Category), admin.Subject)
	if err != nil {
		switch {
		case errors.Is(err, closuresService.ErrClosureExists):
			h.logger.Warn("POST /admin/closures - Closure exists: from=%s, to=%s", req.From, req.To)
			handlers.RespondConflict(w, msgClosureExists)

		case errors.Is(err, closuresService.ErrRangeTooLong):
			h.logger.Warn("POST /admin/closures - Range too long: from=%s, to=%s", req.From, req.To)
			handlers.RespondBadRequest(w, msgRangeTooLong)

		case errors.Is(err, closuresService.ErrInvalidInput):
			h.logger.Warn("POST /admin/closures - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/closures - Failed to create closure: from=%s, error=%v", req.From, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/closures - %d closure(s) created by %s", len(closures), admin.Subject)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(closures))
}
