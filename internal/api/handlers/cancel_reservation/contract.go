package cancel_reservation

import (
	"context"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

type ReservationsService interface {
	Cancel(ctx context.Context, reference, reason string) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
