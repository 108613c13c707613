package get_month_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

type CalendarService interface {
	ResolveMonth(ctx context.Context, year int, month time.Month) ([]domain.DayAvailability, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
