package create_closure

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

type ClosuresService interface {
	Create(ctx context.Context, from, to time.Time, reason string, category domain.ClosureCategory, createdBy string) ([]*domain.Closure, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
