package get_day_capacity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// MockReservationRepo mocks the reservation repository
type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) ListByDate(ctx context.Context, date time.Time, statuses []domain.ReservationStatus) ([]*domain.Reservation, error) {
	args := m.Called(ctx, date, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

// MockDayResolver mocks the calendar resolver
type MockDayResolver struct {
	mock.Mock
}

func (m *MockDayResolver) ResolveDay(ctx context.Context, date time.Time) (*domain.DayAvailability, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DayAvailability), args.Error(1)
}

// fixedTime детерминированное "сейчас" для тестов
type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(repo *MockReservationRepo, resolver *MockDayResolver, now time.Time) *UseCase {
	uc := NewUseCase(repo, resolver, nopLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func TestExecute_CalculatesWindowCapacities(t *testing.T) {
	repo := new(MockReservationRepo)
	resolver := new(MockDayResolver)
	tourDate := date(2026, time.March, 3)
	uc := newTestUseCase(repo, resolver, date(2026, time.March, 1))

	resolver.On("ResolveDay", mock.Anything, tourDate).
		Return(&domain.DayAvailability{Date: tourDate, Available: true}, nil)

	// Окно 09:00 занято двумя группами: 12 + 15 = 27 из 30
	repo.On("ListByDate", mock.Anything, tourDate, domain.CapacityStatuses).
		Return([]*domain.Reservation{
			{WindowStart: "09:00", Visitors: 12, Status: domain.StatusConfirmed},
			{WindowStart: "09:00", Visitors: 15, Status: domain.StatusPending},
			{WindowStart: "13:30", Visitors: 30, Status: domain.StatusConfirmed},
		}, nil)

	resp, err := uc.Execute(context.Background(), &Request{Date: tourDate})
	require.NoError(t, err)
	require.Len(t, resp.Windows, len(domain.TourSchedule))

	first := resp.Windows[0]
	assert.Equal(t, 27, first.Booked)
	assert.Equal(t, 3, first.Remaining)
	assert.Equal(t, domain.CapacityLimited, first.Status)

	// Инвариант booked + remaining == ceiling для незаполненных окон
	for _, w := range resp.Windows {
		if w.Booked <= w.Ceiling {
			assert.Equal(t, w.Ceiling, w.Booked+w.Remaining)
		}
	}

	// Полностью занятое окно
	third := resp.Windows[2]
	assert.Equal(t, 30, third.Booked)
	assert.Equal(t, 0, third.Remaining)
	assert.Equal(t, domain.CapacityFull, third.Status)

	// Пустые окна полностью свободны
	second := resp.Windows[1]
	assert.Equal(t, 0, second.Booked)
	assert.Equal(t, domain.WindowCeiling, second.Remaining)
	assert.Equal(t, domain.CapacityAvailable, second.Status)
}

func TestExecute_UnavailableDayHasNoWindows(t *testing.T) {
	repo := new(MockReservationRepo)
	resolver := new(MockDayResolver)
	tourDate := date(2026, time.March, 7) // суббота
	uc := newTestUseCase(repo, resolver, date(2026, time.March, 1))

	resolver.On("ResolveDay", mock.Anything, tourDate).
		Return(&domain.DayAvailability{Date: tourDate, IsWeekend: true, Available: false}, nil)

	resp, err := uc.Execute(context.Background(), &Request{Date: tourDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Windows)
	repo.AssertNotCalled(t, "ListByDate")
}

func TestExecute_PastDateHasNoWindows(t *testing.T) {
	repo := new(MockReservationRepo)
	resolver := new(MockDayResolver)
	uc := newTestUseCase(repo, resolver, date(2026, time.March, 10))

	resp, err := uc.Execute(context.Background(), &Request{Date: date(2026, time.March, 3)})
	require.NoError(t, err)
	assert.Empty(t, resp.Windows)
	resolver.AssertNotCalled(t, "ResolveDay")
}

func TestExecute_MissingDate(t *testing.T) {
	uc := newTestUseCase(new(MockReservationRepo), new(MockDayResolver), date(2026, time.March, 1))

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_OverbookedWindowClampsToZero(t *testing.T) {
	repo := new(MockReservationRepo)
	resolver := new(MockDayResolver)
	tourDate := date(2026, time.March, 4)
	uc := newTestUseCase(repo, resolver, date(2026, time.March, 1))

	resolver.On("ResolveDay", mock.Anything, tourDate).
		Return(&domain.DayAvailability{Date: tourDate, Available: true}, nil)

	// Одобренная special-заявка могла увести окно за лимит
	repo.On("ListByDate", mock.Anything, tourDate, domain.CapacityStatuses).
		Return([]*domain.Reservation{
			{WindowStart: "11:00", Visitors: 45, Status: domain.StatusConfirmed},
		}, nil)

	resp, err := uc.Execute(context.Background(), &Request{Date: tourDate})
	require.NoError(t, err)

	second := resp.Windows[1]
	assert.Equal(t, 45, second.Booked)
	assert.Equal(t, 0, second.Remaining)
	assert.Equal(t, domain.CapacityFull, second.Status)
}
