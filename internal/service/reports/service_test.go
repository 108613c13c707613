package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// MockReportsRepo mocks the aggregating reservation queries
type MockReportsRepo struct {
	mock.Mock
}

func (m *MockReportsRepo) CountByStatus(ctx context.Context, from, to *time.Time) ([]domain.StatusCount, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusCount), args.Error(1)
}

func (m *MockReportsRepo) SumVisitorsByStatus(ctx context.Context, from, to *time.Time, status domain.ReservationStatus) (int64, error) {
	args := m.Called(ctx, from, to, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportsRepo) CountUpcoming(ctx context.Context, fromDate time.Time) (int64, error) {
	args := m.Called(ctx, fromDate)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportsRepo) CountByMonth(ctx context.Context, from, to *time.Time) ([]domain.MonthCount, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthCount), args.Error(1)
}

func (m *MockReportsRepo) CountByWeekday(ctx context.Context, from, to *time.Time) ([]domain.WeekdayCount, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WeekdayCount), args.Error(1)
}

func (m *MockReportsRepo) TopDates(ctx context.Context, from, to *time.Time, limit uint64) ([]domain.DateCount, error) {
	args := m.Called(ctx, from, to, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DateCount), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestBuildOverview_RevenueCountsConfirmedOnly(t *testing.T) {
	repo := new(MockReportsRepo)
	svc := NewService(repo, 450.0, nopLogger{})
	svc.timeProvider = &fixedTime{now: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)}

	repo.On("CountByStatus", mock.Anything, (*time.Time)(nil), (*time.Time)(nil)).
		Return([]domain.StatusCount{
			{Status: domain.StatusPending, Count: 4},
			{Status: domain.StatusConfirmed, Count: 10},
			{Status: domain.StatusCancelled, Count: 2},
		}, nil)
	repo.On("CountUpcoming", mock.Anything, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)).
		Return(int64(14), nil)
	repo.On("SumVisitorsByStatus", mock.Anything, (*time.Time)(nil), (*time.Time)(nil), domain.StatusConfirmed).
		Return(int64(120), nil)
	repo.On("CountByMonth", mock.Anything, (*time.Time)(nil), (*time.Time)(nil)).
		Return([]domain.MonthCount{{Year: 2026, Month: time.March, Count: 16}}, nil)
	repo.On("CountByWeekday", mock.Anything, (*time.Time)(nil), (*time.Time)(nil)).
		Return([]domain.WeekdayCount{{Weekday: time.Tuesday, Count: 9}}, nil)
	repo.On("TopDates", mock.Anything, (*time.Time)(nil), (*time.Time)(nil), uint64(domain.TopDatesLimit)).
		Return([]domain.DateCount{
			{Date: time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC), Bookings: 4, Visitors: 80},
		}, nil)

	overview, err := svc.BuildOverview(context.Background(), Period{})
	require.NoError(t, err)

	assert.Equal(t, int64(14), overview.Upcoming)
	assert.Equal(t, int64(120), overview.ConfirmedVisitors)
	assert.InDelta(t, 54000.0, overview.EstimatedRevenue, 0.001)
	assert.Len(t, overview.ByStatus, 3)
	assert.Len(t, overview.TopDates, 1)
}

func TestBuildOverview_EmptyDatabaseYieldsZeros(t *testing.T) {
	repo := new(MockReportsRepo)
	svc := NewService(repo, 450.0, nopLogger{})
	svc.timeProvider = &fixedTime{now: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)}

	repo.On("CountByStatus", mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StatusCount{}, nil)
	repo.On("CountUpcoming", mock.Anything, mock.Anything).Return(int64(0), nil)
	repo.On("SumVisitorsByStatus", mock.Anything, mock.Anything, mock.Anything, domain.StatusConfirmed).
		Return(int64(0), nil)
	repo.On("CountByMonth", mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.MonthCount{}, nil)
	repo.On("CountByWeekday", mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.WeekdayCount{}, nil)
	repo.On("TopDates", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.DateCount{}, nil)

	overview, err := svc.BuildOverview(context.Background(), Period{})
	require.NoError(t, err)

	assert.Zero(t, overview.Upcoming)
	assert.Zero(t, overview.ConfirmedVisitors)
	assert.Zero(t, overview.EstimatedRevenue)
	assert.Empty(t, overview.ByStatus)
	assert.Empty(t, overview.TopDates)
}

func TestBuildOverview_InvalidPeriod(t *testing.T) {
	svc := NewService(new(MockReportsRepo), 450.0, nopLogger{})

	from := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.BuildOverview(context.Background(), Period{From: &from, To: &to})
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

// fixedTime детерминированное "сейчас" для тестов
type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}
