package reports

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// ReportsRepository интерфейс агрегирующих запросов по бронированиям
type ReportsRepository interface {
	CountByStatus(ctx context.Context, from, to *time.Time) ([]domain.StatusCount, error)
	SumVisitorsByStatus(ctx context.Context, from, to *time.Time, status domain.ReservationStatus) (int64, error)
	CountUpcoming(ctx context.Context, fromDate time.Time) (int64, error)
	CountByMonth(ctx context.Context, from, to *time.Time) ([]domain.MonthCount, error)
	CountByWeekday(ctx context.Context, from, to *time.Time) ([]domain.WeekdayCount, error)
	TopDates(ctx context.Context, from, to *time.Time, limit uint64) ([]domain.DateCount, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
