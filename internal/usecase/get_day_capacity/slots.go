package get_day_capacity

import (
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// calculateWindowCapacities считает занятость каждого окна фиксированного расписания
// booked - сумма числа посетителей всех занимающих места бронирований окна
// remaining = max(0, ceiling - booked); при booked <= ceiling выполняется
// booked + remaining == ceiling
func calculateWindowCapacities(reservations []*domain.Reservation) []domain.WindowCapacity {
	bookedByWindow := make(map[string]int, len(domain.TourSchedule))

	for _, res := range reservations {
		// Статусы уже отфильтрованы запросом, но считаем только занимающие места
		if !res.CountsTowardCapacity() {
			continue
		}
		bookedByWindow[res.WindowStart.String()] += res.Visitors
	}

	windows := make([]domain.WindowCapacity, len(domain.TourSchedule))
	for i, w := range domain.TourSchedule {
		booked := bookedByWindow[w.Start.String()]

		remaining := domain.WindowCeiling - booked
		if remaining < 0 {
			remaining = 0
		}

		windows[i] = domain.WindowCapacity{
			Start:     w.Start,
			End:       w.End,
			Ceiling:   domain.WindowCeiling,
			Booked:    booked,
			Remaining: remaining,
			Status:    domain.CapacityStatusFor(remaining),
		}
	}

	return windows
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
