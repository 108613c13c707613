package update_reservation_status

import (
	"context"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

type ReservationsService interface {
	UpdateStatus(ctx context.Context, reference string, to domain.ReservationStatus) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
