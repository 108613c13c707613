package reservations

import (
	"context"
	"io"

	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/internal/integrations/objectstore"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByReference(ctx context.Context, reference string) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	UpdateStatusIf(ctx context.Context, id int64, allowedFrom []domain.ReservationStatus, to domain.ReservationStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
	Review(ctx context.Context, id int64, reviewStatus domain.ReviewStatus, newStatus domain.ReservationStatus, reviewedBy string, notes *string) error
}

// DocumentRepository интерфейс репозитория метаданных документов
type DocumentRepository interface {
	Create(ctx context.Context, d *domain.Document) (*domain.Document, error)
	ListByReservation(ctx context.Context, reservationID int64) ([]*domain.Document, error)
	DeleteByReservation(ctx context.Context, reservationID int64) error
}

// ObjectStore интерфейс внешнего файлового хранилища
type ObjectStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (*objectstore.StoredObject, error)
	Delete(ctx context.Context, key string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
