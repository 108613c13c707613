package list_reservations

import (
	"context"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

type ReservationsService interface {
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
