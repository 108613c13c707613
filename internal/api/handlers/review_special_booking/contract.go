package review_special_booking

import (
	"context"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

type ReservationsService interface {
	Review(ctx context.Context, reference string, approve bool, reviewedBy string, notes *string) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
