package upload_document

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
	reservationsService "github.com/m04kA/SMC-TourService/internal/service/reservations"
)

// Лимит размера загружаемого документа
const maxDocumentBytes = 10 << 20 // 10 MiB

const (
	msgInvalidMultipart    = "ожидается multipart/form-data с полем file"
	msgFileTooLarge        = "файл слишком большой, максимум 10 МБ"
	msgReservationNotFound = "бронирование не найдено"
	msgNotUnderReview      = "документы принимаются только для заявок на рассмотрении"
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

// Handle POST /api/v1/reservations/{reference}/documents
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	r.Body = http.MaxBytesReader(w, r.Body, maxDocumentBytes)

	if err := r.ParseMultipartForm(maxDocumentBytes); err != nil {
		h.logger.Warn("POST /reservations/{reference}/documents - Invalid multipart form: %v", err)
		if errors.As(err, new(*http.MaxBytesError)) {
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgFileTooLarge)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidMultipart)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.logger.Warn("POST /reservations/{reference}/documents - Missing file field: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMultipart)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	doc, err := h.service.AttachDocument(r.Context(), reference, header.Filename, contentType, header.Size, file)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{reference}/documents - Not found: reference=%s", reference)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservationsService.ErrNotUnderReview):
			h.logger.Warn("POST /reservations/{reference}/documents - Not under review: reference=%s", reference)
			handlers.RespondConflict(w, msgNotUnderReview)

		case errors.Is(err, reservationsService.ErrInvalidInput):
			h.logger.Warn("POST /reservations/{reference}/documents - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMultipart)

		default:
			h.logger.Error("POST /reservations/{reference}/documents - Failed to attach document: reference=%s, error=%v",
				reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{reference}/documents - Document attached: reference=%s, file=%s",
		reference, header.Filename)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(doc))
}
