package get_reservation

import (
	"context"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

type ReservationsService interface {
	GetByReference(ctx context.Context, reference string) (*domain.Reservation, []*domain.Document, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
