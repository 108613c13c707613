package closures

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
	storage "github.com/m04kA/SMC-TourService/internal/infra/storage/closure"
)

// Service сервис административных закрытий календаря
type Service struct {
	closureRepo ClosureRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый сервис закрытий
func NewService(closureRepo ClosureRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		closureRepo: closureRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Create объявляет закрытие на одну дату или диапазон дат
// Диапазон разворачивается в закрытие на каждый день и вставляется атомарно:
// дубликат любой из дат откатывает всю операцию
func (s *Service) Create(ctx context.Context, from, to time.Time, reason string, category domain.ClosureCategory, createdBy string) ([]*domain.Closure, error) {
	if err := validateCreate(from, to, reason, category, createdBy); err != nil {
		s.logger.Warn("Closures.Create: validation failed: %v", err)
		return nil, err
	}

	from = normalizeDate(from)
	to = normalizeDate(to)

	days := int(to.Sub(from).Hours()/24) + 1
	if days > domain.MaxClosureRangeDays {
		return nil, fmt.Errorf("%w: %d days exceeds maximum of %d", ErrRangeTooLong, days, domain.MaxClosureRangeDays)
	}

	created := make([]*domain.Closure, 0, days)
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
			closure, err := s.closureRepo.Create(txCtx, &domain.Closure{
				Date:      date,
				Reason:    strings.TrimSpace(reason),
				Category:  category,
				CreatedBy: createdBy,
			})
			if err != nil {
				if errors.Is(err, storage.ErrClosureExists) {
					return fmt.Errorf("%w: %s", ErrClosureExists, date.Format(domain.DateFormat))
				}
				return fmt.Errorf("create closure for %s: %w", date.Format(domain.DateFormat), err)
			}
			created = append(created, closure)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrClosureExists) {
			s.logger.Warn("Closures.Create: %v", err)
			return nil, err
		}
		s.logger.Error("Closures.Create: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Closures.Create: %d closure(s) created from %s to %s by %s",
		len(created), from.Format(domain.DateFormat), to.Format(domain.DateFormat), createdBy)

	return created, nil
}

// Delete снимает закрытие с даты, день снова становится доступным
func (s *Service) Delete(ctx context.Context, date time.Time) error {
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date = normalizeDate(date)

	closure, err := s.closureRepo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, storage.ErrClosureNotFound) {
			return fmt.Errorf("%w: %s", ErrClosureNotFound, date.Format(domain.DateFormat))
		}
		s.logger.Error("Closures.Delete: failed to get closure for %s: %v", date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: failed to get closure: %v", ErrInternal, err)
	}

	if err := s.closureRepo.Delete(ctx, closure.ID); err != nil {
		s.logger.Error("Closures.Delete: failed to delete closure %d: %v", closure.ID, err)
		return fmt.Errorf("%w: failed to delete closure: %v", ErrInternal, err)
	}

	s.logger.Info("Closures.Delete: closure for %s removed", date.Format(domain.DateFormat))
	return nil
}

// ListMonth возвращает закрытия календарного месяца
func (s *Service) ListMonth(ctx context.Context, year int, month time.Month) ([]*domain.Closure, error) {
	if year < 2000 || year > 2100 || month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: invalid year or month", ErrInvalidInput)
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	closures, err := s.closureRepo.ListByRange(ctx, from, to)
	if err != nil {
		s.logger.Error("Closures.ListMonth: failed to list closures for %d-%02d: %v", year, month, err)
		return nil, fmt.Errorf("%w: failed to list closures: %v", ErrInternal, err)
	}

	return closures, nil
}

func validateCreate(from, to time.Time, reason string, category domain.ClosureCategory, createdBy string) error {
	if from.IsZero() {
		return fmt.Errorf("%w: start date is required", ErrInvalidInput)
	}
	if to.IsZero() {
		return fmt.Errorf("%w: end date is required", ErrInvalidInput)
	}
	if normalizeDate(to).Before(normalizeDate(from)) {
		return fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
	}
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("%w: reason is required", ErrInvalidInput)
	}
	if len(reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}
	if !domain.IsValidClosureCategory(category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, category)
	}
	if strings.TrimSpace(createdBy) == "" {
		return fmt.Errorf("%w: creator is required", ErrInvalidInput)
	}
	return nil
}

func normalizeDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}
