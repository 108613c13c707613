package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// Service сервис агрегированной отчётности по бронированиям
// Все агрегации выполняются на стороне базы, сервис только собирает сводку
type Service struct {
	reportsRepo  ReportsRepository
	ticketPrice  float64
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый сервис отчётов
// ticketPrice цена одного билета, используется для оценки выручки
func NewService(reportsRepo ReportsRepository, ticketPrice float64, logger Logger) *Service {
	return &Service{
		reportsRepo:  reportsRepo,
		ticketPrice:  ticketPrice,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// BuildOverview собирает сводный отчёт за период
// Выручка оценивается только по подтверждённым броням: pending может отмениться,
// а completed уже учтён в момент подтверждения
func (s *Service) BuildOverview(ctx context.Context, period Period) (*Overview, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	byStatus, err := s.reportsRepo.CountByStatus(ctx, period.From, period.To)
	if err != nil {
		s.logger.Error("Reports.BuildOverview: failed to count by status: %v", err)
		return nil, fmt.Errorf("%w: count by status: %v", ErrInternal, err)
	}

	today := normalizeDate(s.timeProvider.Now())
	upcoming, err := s.reportsRepo.CountUpcoming(ctx, today)
	if err != nil {
		s.logger.Error("Reports.BuildOverview: failed to count upcoming: %v", err)
		return nil, fmt.Errorf("%w: count upcoming: %v", ErrInternal, err)
	}

	confirmedVisitors, err := s.reportsRepo.SumVisitorsByStatus(ctx, period.From, period.To, domain.StatusConfirmed)
	if err != nil {
		s.logger.Error("Reports.BuildOverview: failed to sum confirmed visitors: %v", err)
		return nil, fmt.Errorf("%w: sum confirmed visitors: %v", ErrInternal, err)
	}

	byMonth, err := s.reportsRepo.CountByMonth(ctx, period.From, period.To)
	if err != nil {
		s.logger.Error("Reports.BuildOverview: failed to count by month: %v", err)
		return nil, fmt.Errorf("%w: count by month: %v", ErrInternal, err)
	}

	byWeekday, err := s.reportsRepo.CountByWeekday(ctx, period.From, period.To)
	if err != nil {
		s.logger.Error("Reports.BuildOverview: failed to count by weekday: %v", err)
		return nil, fmt.Errorf("%w: count by weekday: %v", ErrInternal, err)
	}

	topDates, err := s.reportsRepo.TopDates(ctx, period.From, period.To, domain.TopDatesLimit)
	if err != nil {
		s.logger.Error("Reports.BuildOverview: failed to build top dates: %v", err)
		return nil, fmt.Errorf("%w: top dates: %v", ErrInternal, err)
	}

	overview := &Overview{
		ByStatus:          byStatus,
		Upcoming:          upcoming,
		ConfirmedVisitors: confirmedVisitors,
		EstimatedRevenue:  float64(confirmedVisitors) * s.ticketPrice,
		ByMonth:           byMonth,
		ByWeekday:         byWeekday,
		TopDates:          topDates,
	}

	s.logger.Info("Reports.BuildOverview: overview built (upcoming=%d, confirmed_visitors=%d)",
		upcoming, confirmedVisitors)

	return overview, nil
}

func validatePeriod(period Period) error {
	if period.From != nil && period.To != nil && period.To.Before(*period.From) {
		return fmt.Errorf("%w: end date is before start date", ErrInvalidPeriod)
	}
	return nil
}

func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
