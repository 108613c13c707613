package get_day_capacity

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// UseCase use case расчёта остатка мест по окнам на день
type UseCase struct {
	reservationRepo ReservationRepository
	dayResolver     DayResolver
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	dayResolver DayResolver,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		dayResolver:     dayResolver,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case расчёта вместимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDayCapacity: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetDayCapacity: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	// 2. Прошедшие даты не бронируются - окон нет
	if isDateInPast(req.Date, now) {
		return &Response{Date: req.Date, Windows: []domain.WindowCapacity{}}, nil
	}

	// 3. Проверяем доступность дня (выходной/закрытие/праздник)
	availability, err := uc.dayResolver.ResolveDay(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetDayCapacity: failed to resolve day %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to resolve day: %v", ErrInternal, err)
	}

	if !availability.Available {
		uc.logger.Info("GetDayCapacity: day %s is not bookable (weekend=%v, closed=%v, holiday=%v)",
			req.Date.Format(domain.DateFormat),
			availability.IsWeekend, availability.IsClosed, availability.IsHoliday)
		return &Response{Date: req.Date, Windows: []domain.WindowCapacity{}}, nil
	}

	// 4. Получаем все занимающие места бронирования на дату одним запросом
	reservations, err := uc.reservationRepo.ListByDate(ctx, req.Date, domain.CapacityStatuses)
	if err != nil {
		uc.logger.Error("GetDayCapacity: failed to list reservations for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	// 5. Считаем занятость по каждому окну расписания
	windows := calculateWindowCapacities(reservations)

	uc.logger.Info("GetDayCapacity: %d windows for %s", len(windows), req.Date.Format(domain.DateFormat))

	return &Response{Date: req.Date, Windows: windows}, nil
}
