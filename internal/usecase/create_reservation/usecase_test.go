package create_reservation

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/pkg/ptr"
)

// MockReservationRepo mocks the reservation repository
type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	args := m.Called(ctx, res)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepo) ListByDateWindow(ctx context.Context, date time.Time, windowStart string, statuses []domain.ReservationStatus) ([]*domain.Reservation, error) {
	args := m.Called(ctx, date, windowStart, statuses)
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

// passthroughTxManager выполняет функцию без настоящей транзакции
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

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

func newTestUseCase(repo *MockReservationRepo, resolver *MockDayResolver) *UseCase {
	uc := NewUseCase(repo, resolver, passthroughTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTime{now: date(2026, time.March, 1)}
	return uc
}

func validRequest() *Request {
	return &Request{
		Name:        "Анна Смирнова",
		Email:       "anna@example.com",
		Phone:       "+7 900 000-00-00",
		Date:        date(2026, time.March, 3),
		WindowStart: "09:00",
		Visitors:    10,
	}
}

func TestExecute_CreatesPendingReservation(t *testing.T) {
	repo := new(MockReservationRepo)
	resolver := new(MockDayResolver)
	uc := newTestUseCase(repo, resolver)

	tourDate := date(2026, time.March, 3)
	resolver.On("ResolveDay", mock.Anything, tourDate).
		Return(&domain.DayAvailability{Date: tourDate, Available: true}, nil)

	repo.On("ListByDateWindow", mock.Anything, tourDate, "09:00", domain.CapacityStatuses).
		Return([]*domain.Reservation{
			{WindowStart: "09:00", Visitors: 15, Status: domain.StatusConfirmed},
		}, nil)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(res *domain.Reservation) bool {
		return res.Status == domain.StatusPending && !res.IsSpecial && res.Visitors == 10
	})).Return(&domain.Reservation{
		ID:          42,
		Reference:   "TR-9F3A21BC",
		Name:        "Анна Смирнова",
		TourDate:    tourDate,
		WindowStart: "09:00",
		Visitors:    10,
		Status:      domain.StatusPending,
	}, nil)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "TR-9F3A21BC", resp.Reference)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.False(t, resp.IsSpecial)
	assert.Equal(t, "11:00", resp.WindowEnd.String())
}

func TestExecute_CapacityExceeded(t *testing.T) {
	repo := new(MockReservationRepo)
	resolver := new(MockDayResolver)
	uc := newTestUseCase(repo, resolver)

	tourDate := date(2026, time.March, 3)
	resolver.On("ResolveDay", mock.Anything, tourDate).
		Return(&domain.DayAvailability{Date: tourDate, Available: true}, nil)

	// 25 мест занято, запрос на 10 не помещается
	repo.On("ListByDateWindow", mock.Anything, tourDate, "09:00", domain.CapacityStatuses).
		Return([]*domain.Reservation{
			{WindowStart: "09:00", Visitors: 25, Status: domain.StatusConfirmed},
		}, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	repo.AssertNotCalled(t, "Create")
}

func TestExecute_ConcurrentCreatesOnlyOneSucceeds(t *testing.T) {
	repo := new(MockReservationRepo)
	resolver := new(MockDayResolver)
	uc := newTestUseCase(repo, resolver)

	tourDate := date(2026, time.March, 3)
	resolver.On("ResolveDay", mock.Anything, tourDate).
		Return(&domain.DayAvailability{Date: tourDate, Available: true}, nil)

	winner := &domain.Reservation{
		ID:          1,
		Reference:   "TR-11111111",
		TourDate:    tourDate,
		WindowStart: "09:00",
		Visitors:    20,
		Status:      domain.StatusPending,
	}

	// Первая заявка читает пустое окно и фиксируется; вторая после снятия
	// блокировки перечитывает окно, видит 20 занятых мест и не помещается
	repo.On("ListByDateWindow", mock.Anything, tourDate, "09:00", domain.CapacityStatuses).
		Return([]*domain.Reservation{}, nil).Once()
	repo.On("ListByDateWindow", mock.Anything, tourDate, "09:00", domain.CapacityStatuses).
		Return([]*domain.Reservation{winner}, nil).Once()

	repo.On("Create", mock.Anything, mock.Anything).Return(winner, nil).Once()

	first := validRequest()
	first.Visitors = 20
	_, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)

	second := validRequest()
	second.Visitors = 20
	_, err = uc.Execute(context.Background(), second)
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	repo.AssertNumberOfCalls(t, "Create", 1)
}

// serializationFailTxManager имитирует сбои сериализации перед успешной попыткой
type serializationFailTxManager struct {
	failures int
	calls    int
}

func (m *serializationFailTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	if m.calls <= m.failures {
		return &pq.Error{Code: "40001"}
	}
	return fn(ctx)
}

func TestExecute_RetriesOnceOnSerializationConflict(t *testing.T) {
	repo := new(MockReservationRepo)
	resolver := new(MockDayResolver)
	txMgr := &serializationFailTxManager{failures: 1}

	uc := NewUseCase(repo, resolver, txMgr, nopLogger{})
	uc.timeProvider = &fixedTime{now: date(2026, time.March, 1)}

	tourDate := date(2026, time.March, 3)
	resolver.On("ResolveDay", mock.Anything, tourDate).
		Return(&domain.DayAvailability{Date: tourDate, Available: true}, nil)

	repo.On("ListByDateWindow", mock.Anything, tourDate, "09:00", domain.CapacityStatuses).
		Return([]*domain.Reservation{}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(&domain.Reservation{
		ID:          3,
		Reference:   "TR-33333333",
		TourDate:    tourDate,
		WindowStart: "09:00",
		Visitors:    10,
		Status:      domain.StatusPending,
	}, nil)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "TR-33333333", resp.Reference)
	assert.Equal(t, 2, txMgr.calls)
}

func TestExecute_PersistentSerializationConflict(t *testing.T) {
	repo := new(MockReservationRepo)
	resolver := new(MockDayResolver)
	txMgr := &serializationFailTxManager{failures: 2}

	uc := NewUseCase(repo, resolver, txMgr, nopLogger{})
	uc.timeProvider = &fixedTime{now: date(2026, time.March, 1)}

	tourDate := date(2026, time.March, 3)
	resolver.On("ResolveDay", mock.Anything, tourDate).
		Return(&domain.DayAvailability{Date: tourDate, Available: true}, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	// Повторяем ровно один раз, дальше не зацикливаемся
	assert.Equal(t, 2, txMgr.calls)
	repo.AssertNotCalled(t, "Create")
}

func TestExecute_OversizedGroupRoutedToReview(t *testing.T) {
	repo := new(MockReservationRepo)
	resolver := new(MockDayResolver)
	uc := newTestUseCase(repo, resolver)

	tourDate := date(2026, time.March, 3)
	resolver.On("ResolveDay", mock.Anything, tourDate).
		Return(&domain.DayAvailability{Date: tourDate, Available: true}, nil)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(res *domain.Reservation) bool {
		return res.Status == domain.StatusPendingReview &&
			res.IsSpecial &&
			res.RequestedCapacity != nil && *res.RequestedCapacity == 45 &&
			res.ReviewStatus != nil && *res.ReviewStatus == domain.ReviewPending
	})).Return(&domain.Reservation{
		ID:          7,
		Reference:   "TR-AB12CD34",
		TourDate:    tourDate,
		WindowStart: "09:00",
		Visitors:    45,
		Status:      domain.StatusPendingReview,
		IsSpecial:   true,
	}, nil)

	req := validRequest()
	req.Visitors = 45
	req.Justification = ptr.Ptr("корпоративная экскурсия для партнёров")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.IsSpecial)
	assert.Equal(t, string(domain.StatusPendingReview), resp.Status)

	// Вместимость окна для special-заявки не проверяется
	repo.AssertNotCalled(t, "ListByDateWindow")
}

func TestExecute_OversizedGroupRequiresJustification(t *testing.T) {
	uc := newTestUseCase(new(MockReservationRepo), new(MockDayResolver))

	req := validRequest()
	req.Visitors = 45

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrJustificationRequired)
}

func TestExecute_DayNotAvailable(t *testing.T) {
	repo := new(MockReservationRepo)
	resolver := new(MockDayResolver)
	uc := newTestUseCase(repo, resolver)

	tourDate := date(2026, time.March, 3)
	resolver.On("ResolveDay", mock.Anything, tourDate).
		Return(&domain.DayAvailability{Date: tourDate, IsClosed: true, Available: false}, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDayNotAvailable)
	repo.AssertNotCalled(t, "Create")
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc := newTestUseCase(new(MockReservationRepo), new(MockDayResolver))

	req := validRequest()
	req.Date = date(2026, time.February, 20)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(new(MockReservationRepo), new(MockDayResolver))

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{"missing name", func(r *Request) { r.Name = "  " }, ErrInvalidInput},
		{"missing email", func(r *Request) { r.Email = "" }, ErrInvalidInput},
		{"bad email", func(r *Request) { r.Email = "anna.example.com" }, ErrInvalidInput},
		{"missing phone", func(r *Request) { r.Phone = "" }, ErrInvalidInput},
		{"zero visitors", func(r *Request) { r.Visitors = 0 }, ErrInvalidInput},
		{"negative visitors", func(r *Request) { r.Visitors = -3 }, ErrInvalidInput},
		{"too many visitors", func(r *Request) { r.Visitors = domain.MaxVisitorsPerParty + 1 }, ErrInvalidInput},
		{"unknown window", func(r *Request) { r.WindowStart = "10:00" }, ErrInvalidWindow},
		{"notes too long", func(r *Request) { r.Notes = ptr.Ptr(strings.Repeat("a", domain.MaxNotesLength+1)) }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGenerateReference_Format(t *testing.T) {
	ref := generateReference()

	assert.True(t, strings.HasPrefix(ref, domain.ReferencePrefix))
	assert.Len(t, ref, len(domain.ReferencePrefix)+8)
	assert.Equal(t, strings.ToUpper(ref), ref)

	// Коды не повторяются
	assert.NotEqual(t, ref, generateReference())
}
