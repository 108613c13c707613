package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// Границы допустимого периода запроса календаря
const (
	minYear = 2000
	maxYear = 2100
)

// Service резолвер доступности дней календаря
// Объединяет три независимых источника "день недоступен":
// выходные, административные закрытия и государственные праздники
type Service struct {
	closureRepo   ClosureRepository
	holidayClient HolidayClient
	logger        Logger
}

// NewService создает новый экземпляр календарного сервиса
func NewService(closureRepo ClosureRepository, holidayClient HolidayClient, logger Logger) *Service {
	return &Service{
		closureRepo:   closureRepo,
		holidayClient: holidayClient,
		logger:        logger,
	}
}

// ResolveMonth возвращает доступность каждого дня указанного месяца
// Чистое чтение без побочных эффектов
func (s *Service) ResolveMonth(ctx context.Context, year int, month time.Month) ([]domain.DayAvailability, error) {
	if err := validatePeriod(year, month); err != nil {
		s.logger.Warn("ResolveMonth: validation failed: %v", err)
		return nil, err
	}

	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	// Закрытия - обязательный источник
	closures, err := s.closureRepo.ListByRange(ctx, firstDay, lastDay)
	if err != nil {
		s.logger.Error("ResolveMonth: failed to list closures for %d-%02d: %v", year, month, err)
		return nil, fmt.Errorf("%w: failed to list closures: %v", ErrInternal, err)
	}

	// Праздники - best-effort источник
	holidays := s.holidaysForYear(ctx, year)

	closureByDate := make(map[string]*domain.Closure, len(closures))
	for _, c := range closures {
		closureByDate[c.Date.Format(domain.DateFormat)] = c
	}

	days := make([]domain.DayAvailability, 0, lastDay.Day())
	for d := firstDay; !d.After(lastDay); d = d.AddDate(0, 0, 1) {
		days = append(days, resolveDay(d, closureByDate, holidays))
	}

	s.logger.Info("ResolveMonth: resolved %d days for %d-%02d (%d closures)",
		len(days), year, month, len(closures))

	return days, nil
}

// ResolveDay возвращает доступность одного дня
// Используется калькулятором вместимости и созданием бронирования
func (s *Service) ResolveDay(ctx context.Context, date time.Time) (*domain.DayAvailability, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	closures, err := s.closureRepo.ListByRange(ctx, day, day)
	if err != nil {
		s.logger.Error("ResolveDay: failed to list closures for %s: %v", day.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to list closures: %v", ErrInternal, err)
	}

	closureByDate := make(map[string]*domain.Closure, len(closures))
	for _, c := range closures {
		closureByDate[c.Date.Format(domain.DateFormat)] = c
	}

	holidays := s.holidaysForYear(ctx, day.Year())

	availability := resolveDay(day, closureByDate, holidays)
	return &availability, nil
}

// holidaysForYear получает праздники года, деградируя до пустого списка
func (s *Service) holidaysForYear(ctx context.Context, year int) map[string]domain.Holiday {
	byDate := make(map[string]domain.Holiday)

	holidays, err := s.holidayClient.GetHolidaysWithGracefulDegradation(ctx, year)
	if err != nil {
		// Деградация уже залогирована клиентом; дни показываем без праздников
		return byDate
	}

	for _, h := range holidays {
		byDate[h.Date.Format(domain.DateFormat)] = h
	}

	return byDate
}

// resolveDay классифицирует один день по трём источникам недоступности
// При совпадении закрытия и праздника в causeReason побеждает название праздника
func resolveDay(
	date time.Time,
	closureByDate map[string]*domain.Closure,
	holidayByDate map[string]domain.Holiday,
) domain.DayAvailability {
	key := date.Format(domain.DateFormat)

	day := domain.DayAvailability{
		Date:      date,
		IsWeekend: domain.IsWeekendDay(date),
	}

	closure, hasClosure := closureByDate[key]
	holiday, hasHoliday := holidayByDate[key]

	day.IsClosed = hasClosure
	day.IsHoliday = hasHoliday

	switch {
	case hasHoliday:
		name := holiday.Name
		day.ClosureReason = &name
	case hasClosure:
		reason := closure.Reason
		day.ClosureReason = &reason
	}

	day.Available = !day.IsWeekend && !day.IsClosed && !day.IsHoliday

	return day
}

// validatePeriod проверяет границы года и месяца
func validatePeriod(year int, month time.Month) error {
	if year < minYear || year > maxYear {
		return fmt.Errorf("%w: year %d out of range", ErrInvalidPeriod, year)
	}
	if month < time.January || month > time.December {
		return fmt.Errorf("%w: month %d out of range", ErrInvalidPeriod, month)
	}
	return nil
}
