package reports

import (
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// Period период отчёта; обе границы опциональны
type Period struct {
	From *time.Time
	To   *time.Time
}

// Overview сводный отчёт по бронированиям
type Overview struct {
	ByStatus          []domain.StatusCount
	Upcoming          int64 // Активные брони с сегодняшнего дня и позже
	ConfirmedVisitors int64 // Суммарное число посетителей подтверждённых броней
	EstimatedRevenue  float64
	ByMonth           []domain.MonthCount
	ByWeekday         []domain.WeekdayCount
	TopDates          []domain.DateCount
}
