package upload_document

import (
	"context"
	"io"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

type ReservationsService interface {
	AttachDocument(ctx context.Context, reference, fileName, contentType string, sizeBytes int64, body io.Reader) (*domain.Document, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
