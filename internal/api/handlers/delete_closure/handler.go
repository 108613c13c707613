package delete_closure

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
	"github.com/m04kA/SMC-TourService/internal/domain"
	closuresService "github.com/m04kA/SMC-TourService/internal/service/closures"
)

const (
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgClosureNotFound = "закрытие на указанную дату не найдено"
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

// Handle DELETE /api/v1/admin/closures/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := mux.Vars(r)["date"]

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("DELETE /admin/closures/{date} - Invalid date: %s", rawDate)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.Delete(r.Context(), date); err != nil {
		switch {
		case errors.Is(err, closuresService.ErrClosureNotFound):
			h.logger.Warn("DELETE /admin/closures/{date} - Not found: date=%s", rawDate)
			handlers.RespondNotFound(w, msgClosureNotFound)

		case errors.Is(err, closuresService.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/closures/{date} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("DELETE /admin/closures/{date} - Failed to delete closure: date=%s, error=%v",
				rawDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/closures/{date} - Closure removed: date=%s", rawDate)
	w.WriteHeader(http.StatusNoContent)
}
