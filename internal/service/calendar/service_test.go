package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// MockClosureRepo mocks the closure repository
type MockClosureRepo struct {
	mock.Mock
}

func (m *MockClosureRepo) ListByRange(ctx context.Context, from, to time.Time) ([]*domain.Closure, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Closure), args.Error(1)
}

// MockHolidayClient mocks the holiday feed client
type MockHolidayClient struct {
	mock.Mock
}

func (m *MockHolidayClient) GetHolidaysWithGracefulDegradation(ctx context.Context, year int) ([]domain.Holiday, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Holiday), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveMonth_MergesAllSources(t *testing.T) {
	closureRepo := new(MockClosureRepo)
	holidayClient := new(MockHolidayClient)
	svc := NewService(closureRepo, holidayClient, nopLogger{})

	// Март 2026: 2 марта понедельник, 9 марта понедельник
	closureRepo.On("ListByRange", mock.Anything, date(2026, time.March, 1), date(2026, time.March, 31)).
		Return([]*domain.Closure{
			{ID: 1, Date: date(2026, time.March, 2), Reason: "техническое обслуживание", Category: domain.ClosureMaintenance},
		}, nil)
	holidayClient.On("GetHolidaysWithGracefulDegradation", mock.Anything, 2026).
		Return([]domain.Holiday{
			{Date: date(2026, time.March, 9), Name: "Праздничный день"},
		}, nil)

	days, err := svc.ResolveMonth(context.Background(), 2026, time.March)
	require.NoError(t, err)
	require.Len(t, days, 31)

	byDate := make(map[string]domain.DayAvailability, len(days))
	for _, d := range days {
		byDate[d.Date.Format(domain.DateFormat)] = d
	}

	// Закрытая дата
	closed := byDate["2026-03-02"]
	assert.True(t, closed.IsClosed)
	assert.False(t, closed.Available)
	require.NotNil(t, closed.ClosureReason)
	assert.Equal(t, "техническое обслуживание", *closed.ClosureReason)

	// Праздник
	holiday := byDate["2026-03-09"]
	assert.True(t, holiday.IsHoliday)
	assert.False(t, holiday.Available)
	require.NotNil(t, holiday.ClosureReason)
	assert.Equal(t, "Праздничный день", *holiday.ClosureReason)

	// Выходной: 7 марта 2026 - суббота
	weekend := byDate["2026-03-07"]
	assert.True(t, weekend.IsWeekend)
	assert.False(t, weekend.Available)

	// Обычный рабочий день
	open := byDate["2026-03-03"]
	assert.False(t, open.IsWeekend)
	assert.False(t, open.IsClosed)
	assert.False(t, open.IsHoliday)
	assert.True(t, open.Available)
}

func TestResolveMonth_HolidayNameWinsOverClosureReason(t *testing.T) {
	closureRepo := new(MockClosureRepo)
	holidayClient := new(MockHolidayClient)
	svc := NewService(closureRepo, holidayClient, nopLogger{})

	// Одна и та же дата закрыта и является праздником
	closureRepo.On("ListByRange", mock.Anything, mock.Anything, mock.Anything).
		Return([]*domain.Closure{
			{ID: 1, Date: date(2026, time.June, 12), Reason: "корпоративное мероприятие", Category: domain.ClosurePrivateEvent},
		}, nil)
	holidayClient.On("GetHolidaysWithGracefulDegradation", mock.Anything, 2026).
		Return([]domain.Holiday{
			{Date: date(2026, time.June, 12), Name: "День России"},
		}, nil)

	days, err := svc.ResolveMonth(context.Background(), 2026, time.June)
	require.NoError(t, err)

	var day domain.DayAvailability
	for _, d := range days {
		if d.Date.Day() == 12 {
			day = d
		}
	}

	assert.True(t, day.IsClosed)
	assert.True(t, day.IsHoliday)
	require.NotNil(t, day.ClosureReason)
	assert.Equal(t, "День России", *day.ClosureReason)
}

func TestResolveMonth_HolidayFeedDegradesGracefully(t *testing.T) {
	closureRepo := new(MockClosureRepo)
	holidayClient := new(MockHolidayClient)
	svc := NewService(closureRepo, holidayClient, nopLogger{})

	closureRepo.On("ListByRange", mock.Anything, mock.Anything, mock.Anything).
		Return([]*domain.Closure{}, nil)
	holidayClient.On("GetHolidaysWithGracefulDegradation", mock.Anything, 2026).
		Return(nil, errors.New("feed unavailable"))

	days, err := svc.ResolveMonth(context.Background(), 2026, time.April)
	require.NoError(t, err)
	require.Len(t, days, 30)

	// Дни отдаются без праздничной разметки
	for _, d := range days {
		assert.False(t, d.IsHoliday)
	}
}

func TestResolveMonth_ClosureSourceFailureIsFatal(t *testing.T) {
	closureRepo := new(MockClosureRepo)
	holidayClient := new(MockHolidayClient)
	svc := NewService(closureRepo, holidayClient, nopLogger{})

	closureRepo.On("ListByRange", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("db down"))

	_, err := svc.ResolveMonth(context.Background(), 2026, time.April)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestResolveMonth_InvalidPeriod(t *testing.T) {
	svc := NewService(new(MockClosureRepo), new(MockHolidayClient), nopLogger{})

	_, err := svc.ResolveMonth(context.Background(), 1999, time.January)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = svc.ResolveMonth(context.Background(), 2101, time.January)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestResolveDay_WorkingDay(t *testing.T) {
	closureRepo := new(MockClosureRepo)
	holidayClient := new(MockHolidayClient)
	svc := NewService(closureRepo, holidayClient, nopLogger{})

	day := date(2026, time.March, 3) // вторник
	closureRepo.On("ListByRange", mock.Anything, day, day).Return([]*domain.Closure{}, nil)
	holidayClient.On("GetHolidaysWithGracefulDegradation", mock.Anything, 2026).
		Return([]domain.Holiday{}, nil)

	availability, err := svc.ResolveDay(context.Background(), day)
	require.NoError(t, err)
	assert.True(t, availability.Available)
	assert.Nil(t, availability.ClosureReason)
}
