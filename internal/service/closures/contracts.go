package closures

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// ClosureRepository интерфейс репозитория закрытий
type ClosureRepository interface {
	Create(ctx context.Context, c *domain.Closure) (*domain.Closure, error)
	GetByDate(ctx context.Context, date time.Time) (*domain.Closure, error)
	ListByRange(ctx context.Context, from, to time.Time) ([]*domain.Closure, error)
	Delete(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
