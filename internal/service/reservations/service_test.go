package reservations

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourService/internal/domain"
	storage "github.com/m04kA/SMC-TourService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-TourService/internal/integrations/objectstore"
	"github.com/m04kA/SMC-TourService/pkg/ptr"
)

// MockReservationRepo mocks the reservation repository
type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) GetByReference(ctx context.Context, reference string) (*domain.Reservation, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepo) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepo) UpdateStatusIf(ctx context.Context, id int64, allowedFrom []domain.ReservationStatus, to domain.ReservationStatus) error {
	args := m.Called(ctx, id, allowedFrom, to)
	return args.Error(0)
}

func (m *MockReservationRepo) Cancel(ctx context.Context, id int64, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}

func (m *MockReservationRepo) Review(ctx context.Context, id int64, reviewStatus domain.ReviewStatus, newStatus domain.ReservationStatus, reviewedBy string, notes *string) error {
	args := m.Called(ctx, id, reviewStatus, newStatus, reviewedBy, notes)
	return args.Error(0)
}

// MockDocumentRepo mocks the document metadata repository
type MockDocumentRepo struct {
	mock.Mock
}

func (m *MockDocumentRepo) Create(ctx context.Context, d *domain.Document) (*domain.Document, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentRepo) ListByReservation(ctx context.Context, reservationID int64) ([]*domain.Document, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Document), args.Error(1)
}

func (m *MockDocumentRepo) DeleteByReservation(ctx context.Context, reservationID int64) error {
	args := m.Called(ctx, reservationID)
	return args.Error(0)
}

// MockObjectStore mocks the external file storage
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (*objectstore.StoredObject, error) {
	args := m.Called(ctx, key, contentType, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*objectstore.StoredObject), args.Error(1)
}

func (m *MockObjectStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService(repo *MockReservationRepo, docs *MockDocumentRepo, store *MockObjectStore) *Service {
	return NewService(repo, docs, store, nopLogger{})
}

func TestCancel_PendingReservation(t *testing.T) {
	repo := new(MockReservationRepo)
	svc := newTestService(repo, new(MockDocumentRepo), new(MockObjectStore))

	pending := &domain.Reservation{ID: 1, Reference: "TR-AAAA1111", Status: domain.StatusPending}
	cancelled := &domain.Reservation{ID: 1, Reference: "TR-AAAA1111", Status: domain.StatusCancelled}

	repo.On("GetByReference", mock.Anything, "TR-AAAA1111").Return(pending, nil).Once()
	repo.On("Cancel", mock.Anything, int64(1), "планы изменились").Return(nil)
	repo.On("GetByReference", mock.Anything, "TR-AAAA1111").Return(cancelled, nil).Once()

	res, err := svc.Cancel(context.Background(), "TR-AAAA1111", "планы изменились")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, res.Status)
}

func TestCancel_AlreadyCancelledIsConflict(t *testing.T) {
	repo := new(MockReservationRepo)
	svc := newTestService(repo, new(MockDocumentRepo), new(MockObjectStore))

	repo.On("GetByReference", mock.Anything, "TR-AAAA1111").
		Return(&domain.Reservation{ID: 1, Reference: "TR-AAAA1111", Status: domain.StatusCancelled}, nil)

	_, err := svc.Cancel(context.Background(), "TR-AAAA1111", "")
	assert.ErrorIs(t, err, ErrNotCancellable)
	repo.AssertNotCalled(t, "Cancel")
}

func TestCancel_CompletedIsConflict(t *testing.T) {
	repo := new(MockReservationRepo)
	svc := newTestService(repo, new(MockDocumentRepo), new(MockObjectStore))

	repo.On("GetByReference", mock.Anything, "TR-AAAA1111").
		Return(&domain.Reservation{ID: 1, Status: domain.StatusCompleted}, nil)

	_, err := svc.Cancel(context.Background(), "TR-AAAA1111", "")
	assert.ErrorIs(t, err, ErrNotCancellable)
}

func TestCancel_UnknownReference(t *testing.T) {
	repo := new(MockReservationRepo)
	svc := newTestService(repo, new(MockDocumentRepo), new(MockObjectStore))

	repo.On("GetByReference", mock.Anything, "TR-MISSING1").
		Return(nil, storage.ErrReservationNotFound)

	_, err := svc.Cancel(context.Background(), "TR-MISSING1", "")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestUpdateStatus_AllowedTransition(t *testing.T) {
	repo := new(MockReservationRepo)
	svc := newTestService(repo, new(MockDocumentRepo), new(MockObjectStore))

	pending := &domain.Reservation{ID: 5, Reference: "TR-BBBB2222", Status: domain.StatusPending}
	confirmed := &domain.Reservation{ID: 5, Reference: "TR-BBBB2222", Status: domain.StatusConfirmed}

	repo.On("GetByReference", mock.Anything, "TR-BBBB2222").Return(pending, nil).Once()
	repo.On("UpdateStatusIf", mock.Anything, int64(5),
		[]domain.ReservationStatus{domain.StatusPending}, domain.StatusConfirmed).Return(nil)
	repo.On("GetByReference", mock.Anything, "TR-BBBB2222").Return(confirmed, nil).Once()

	res, err := svc.UpdateStatus(context.Background(), "TR-BBBB2222", domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, res.Status)
}

func TestUpdateStatus_SkippingConfirmationIsRejected(t *testing.T) {
	repo := new(MockReservationRepo)
	svc := newTestService(repo, new(MockDocumentRepo), new(MockObjectStore))

	repo.On("GetByReference", mock.Anything, "TR-BBBB2222").
		Return(&domain.Reservation{ID: 5, Status: domain.StatusPending}, nil)

	// pending -> completed минует подтверждение
	_, err := svc.UpdateStatus(context.Background(), "TR-BBBB2222", domain.StatusCompleted)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	repo.AssertNotCalled(t, "UpdateStatusIf")
}

func TestUpdateStatus_FinalStatusIsConflict(t *testing.T) {
	repo := new(MockReservationRepo)
	svc := newTestService(repo, new(MockDocumentRepo), new(MockObjectStore))

	repo.On("GetByReference", mock.Anything, "TR-BBBB2222").
		Return(&domain.Reservation{ID: 5, Status: domain.StatusCancelled}, nil)

	_, err := svc.UpdateStatus(context.Background(), "TR-BBBB2222", domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrAlreadyFinal)
}

func TestReview_ApproveMovesToPending(t *testing.T) {
	repo := new(MockReservationRepo)
	docs := new(MockDocumentRepo)
	store := new(MockObjectStore)
	svc := newTestService(repo, docs, store)

	underReview := &domain.Reservation{
		ID: 9, Reference: "TR-CCCC3333",
		Status: domain.StatusPendingReview, IsSpecial: true,
	}
	approved := &domain.Reservation{
		ID: 9, Reference: "TR-CCCC3333",
		Status: domain.StatusPending, IsSpecial: true,
		ReviewStatus: ptr.Ptr(domain.ReviewApproved),
	}

	repo.On("GetByReference", mock.Anything, "TR-CCCC3333").Return(underReview, nil).Once()
	repo.On("Review", mock.Anything, int64(9), domain.ReviewApproved, domain.StatusPending,
		"admin-1", (*string)(nil)).Return(nil)
	repo.On("GetByReference", mock.Anything, "TR-CCCC3333").Return(approved, nil).Once()

	res, err := svc.Review(context.Background(), "TR-CCCC3333", true, "admin-1", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, res.Status)

	// Одобрение документы не трогает
	docs.AssertNotCalled(t, "DeleteByReservation")
}

func TestReview_RejectCascadesDocumentCleanup(t *testing.T) {
	repo := new(MockReservationRepo)
	docs := new(MockDocumentRepo)
	store := new(MockObjectStore)
	svc := newTestService(repo, docs, store)

	underReview := &domain.Reservation{ID: 9, Reference: "TR-CCCC3333", Status: domain.StatusPendingReview}
	rejected := &domain.Reservation{
		ID: 9, Reference: "TR-CCCC3333",
		Status: domain.StatusRejected, ReviewStatus: ptr.Ptr(domain.ReviewRejected),
	}
	notes := ptr.Ptr("нет свободных экскурсоводов")

	repo.On("GetByReference", mock.Anything, "TR-CCCC3333").Return(underReview, nil).Once()
	repo.On("Review", mock.Anything, int64(9), domain.ReviewRejected, domain.StatusRejected,
		"admin-1", notes).Return(nil)
	docs.On("ListByReservation", mock.Anything, int64(9)).Return([]*domain.Document{
		{ID: 1, ReservationID: 9, StorageKey: "reservations/TR-CCCC3333/a-letter.pdf"},
	}, nil)
	store.On("Delete", mock.Anything, "reservations/TR-CCCC3333/a-letter.pdf").Return(nil)
	docs.On("DeleteByReservation", mock.Anything, int64(9)).Return(nil)
	repo.On("GetByReference", mock.Anything, "TR-CCCC3333").Return(rejected, nil).Once()

	res, err := svc.Review(context.Background(), "TR-CCCC3333", false, "admin-1", notes)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, res.Status)

	store.AssertExpectations(t)
	docs.AssertExpectations(t)
}

func TestReview_RegularReservationIsConflict(t *testing.T) {
	repo := new(MockReservationRepo)
	svc := newTestService(repo, new(MockDocumentRepo), new(MockObjectStore))

	repo.On("GetByReference", mock.Anything, "TR-DDDD4444").
		Return(&domain.Reservation{ID: 3, Status: domain.StatusPending}, nil)

	_, err := svc.Review(context.Background(), "TR-DDDD4444", true, "admin-1", nil)
	assert.ErrorIs(t, err, ErrNotUnderReview)
}

func TestAttachDocument_UnderReview(t *testing.T) {
	repo := new(MockReservationRepo)
	docs := new(MockDocumentRepo)
	store := new(MockObjectStore)
	svc := newTestService(repo, docs, store)

	repo.On("GetByReference", mock.Anything, "TR-EEEE5555").
		Return(&domain.Reservation{ID: 11, Reference: "TR-EEEE5555", Status: domain.StatusPendingReview}, nil)
	store.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "reservations/TR-EEEE5555/") && strings.HasSuffix(key, "-letter.pdf")
	}), "application/pdf", mock.Anything).
		Return(&objectstore.StoredObject{Key: "reservations/TR-EEEE5555/x-letter.pdf", URL: "http://store/x"}, nil)
	docs.On("Create", mock.Anything, mock.MatchedBy(func(d *domain.Document) bool {
		return d.ReservationID == 11 && d.FileName == "letter.pdf" && d.SizeBytes == 2048
	})).Return(&domain.Document{ID: 1, ReservationID: 11, FileName: "letter.pdf"}, nil)

	doc, err := svc.AttachDocument(context.Background(), "TR-EEEE5555", "letter.pdf",
		"application/pdf", 2048, strings.NewReader("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, "letter.pdf", doc.FileName)
}

func TestAttachDocument_NotUnderReviewIsConflict(t *testing.T) {
	repo := new(MockReservationRepo)
	store := new(MockObjectStore)
	svc := newTestService(repo, new(MockDocumentRepo), store)

	repo.On("GetByReference", mock.Anything, "TR-EEEE5555").
		Return(&domain.Reservation{ID: 11, Status: domain.StatusConfirmed}, nil)

	_, err := svc.AttachDocument(context.Background(), "TR-EEEE5555", "letter.pdf",
		"application/pdf", 2048, strings.NewReader("%PDF"))
	assert.ErrorIs(t, err, ErrNotUnderReview)
	store.AssertNotCalled(t, "Upload")
}
