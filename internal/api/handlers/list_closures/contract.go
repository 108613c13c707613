package list_closures

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

type ClosuresService interface {
	ListMonth(ctx context.Context, year int, month time.Month) ([]*domain.Closure, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
