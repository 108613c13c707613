package create_reservation

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	createReservation "github.com/m04kA/SMC-TourService/internal/usecase/create_reservation"
)

// MockUseCase mocks the create reservation use case
type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createReservation.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func postReservation(t *testing.T, h *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	useCase := new(MockUseCase)
	h := NewHandler(useCase, nopLogger{})

	useCase.On("Execute", mock.Anything, mock.MatchedBy(func(req *createReservation.Request) bool {
		return req.Visitors == 10 && req.WindowStart.String() == "09:00"
	})).Return(&createReservation.Response{
		ID:          1,
		Reference:   "TR-9F3A21BC",
		Name:        "Анна Смирнова",
		TourDate:    time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC),
		WindowStart: "09:00",
		WindowEnd:   "11:00",
		Visitors:    10,
		Status:      "pending",
	}, nil)

	rec := postReservation(t, h, CreateReservationRequest{
		Name:        "Анна Смирнова",
		Email:       "anna@example.com",
		Phone:       "+7 900 000-00-00",
		Date:        "2026-03-03",
		WindowStart: "09:00",
		Visitors:    10,
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "TR-9F3A21BC", resp.Reference)
	assert.Equal(t, "2026-03-03", resp.Date)
	assert.Equal(t, "11:00", resp.WindowEnd)
}

func TestHandle_CapacityExceededIsConflict(t *testing.T) {
	useCase := new(MockUseCase)
	h := NewHandler(useCase, nopLogger{})

	useCase.On("Execute", mock.Anything, mock.Anything).
		Return(nil, createReservation.ErrCapacityExceeded)

	rec := postReservation(t, h, CreateReservationRequest{
		Name:        "Анна Смирнова",
		Email:       "anna@example.com",
		Phone:       "+7 900 000-00-00",
		Date:        "2026-03-03",
		WindowStart: "09:00",
		Visitors:    10,
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_InvalidDateFormat(t *testing.T) {
	useCase := new(MockUseCase)
	h := NewHandler(useCase, nopLogger{})

	rec := postReservation(t, h, CreateReservationRequest{
		Name:        "Анна Смирнова",
		Email:       "anna@example.com",
		Phone:       "+7 900 000-00-00",
		Date:        "03.03.2026",
		WindowStart: "09:00",
		Visitors:    10,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	useCase.AssertNotCalled(t, "Execute")
}

func TestHandle_MalformedBody(t *testing.T) {
	useCase := new(MockUseCase)
	h := NewHandler(useCase, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	useCase.AssertNotCalled(t, "Execute")
}
