package calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// ClosureRepository интерфейс репозитория административных закрытий
// Закрытия - обязательный источник: его ошибка роняет весь запрос
type ClosureRepository interface {
	ListByRange(ctx context.Context, from, to time.Time) ([]*domain.Closure, error)
}

// HolidayClient интерфейс клиента календаря праздников
// Best-effort источник: недоступность деградирует до "праздники неизвестны"
type HolidayClient interface {
	GetHolidaysWithGracefulDegradation(ctx context.Context, year int) ([]domain.Holiday, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
