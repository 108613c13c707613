package reservations

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TourService/internal/domain"
	storage "github.com/m04kA/SMC-TourService/internal/infra/storage/reservation"
)

// Service сервис жизненного цикла бронирований
// Владеет переходами статусов, review-флоу special-заявок и документами
type Service struct {
	reservationRepo ReservationRepository
	documentRepo    DocumentRepository
	objectStore     ObjectStore
	logger          Logger
}

// NewService создает новый сервис бронирований
func NewService(
	reservationRepo ReservationRepository,
	documentRepo DocumentRepository,
	objectStore ObjectStore,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		documentRepo:    documentRepo,
		objectStore:     objectStore,
		logger:          logger,
	}
}

// GetByReference возвращает бронь по коду вместе с приложенными документами
func (s *Service) GetByReference(ctx context.Context, reference string) (*domain.Reservation, []*domain.Document, error) {
	res, err := s.getByReference(ctx, reference)
	if err != nil {
		return nil, nil, err
	}

	documents, err := s.documentRepo.ListByReservation(ctx, res.ID)
	if err != nil {
		s.logger.Error("Reservations.GetByReference: failed to list documents for %s: %v", reference, err)
		return nil, nil, fmt.Errorf("%w: failed to list documents: %v", ErrInternal, err)
	}

	return res, documents, nil
}

// List возвращает бронирования по фильтру админского списка
func (s *Service) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	list, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("Reservations.List: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}
	return list, nil
}

// Cancel отменяет бронь по коду от имени посетителя
// Отмена допустима из pending, confirmed и pending_review; повторная отмена
// и отмена завершённой брони возвращают конфликт
func (s *Service) Cancel(ctx context.Context, reference, reason string) (*domain.Reservation, error) {
	res, err := s.getByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	if !res.CanBeCancelled() {
		s.logger.Warn("Reservations.Cancel: reservation %s is in status %s", reference, res.Status)
		return nil, fmt.Errorf("%w: status is %s", ErrNotCancellable, res.Status)
	}

	if err := s.reservationRepo.Cancel(ctx, res.ID, strings.TrimSpace(reason)); err != nil {
		// Конкурирующая отмена могла успеть раньше
		if errors.Is(err, storage.ErrStatusConflict) {
			return nil, fmt.Errorf("%w: status changed concurrently", ErrNotCancellable)
		}
		s.logger.Error("Reservations.Cancel: failed to cancel %s: %v", reference, err)
		return nil, fmt.Errorf("%w: failed to cancel reservation: %v", ErrInternal, err)
	}

	s.logger.Info("Reservations.Cancel: reservation %s cancelled", reference)

	return s.getByReference(ctx, reference)
}

// UpdateStatus выполняет административный переход статуса
// Финальные статусы и review-статусы через этот метод не меняются
func (s *Service) UpdateStatus(ctx context.Context, reference string, to domain.ReservationStatus) (*domain.Reservation, error) {
	res, err := s.getByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	if res.IsTerminal() {
		s.logger.Warn("Reservations.UpdateStatus: reservation %s is final (%s)", reference, res.Status)
		return nil, fmt.Errorf("%w: status is %s", ErrAlreadyFinal, res.Status)
	}

	if !domain.CanTransition(res.Status, to) {
		s.logger.Warn("Reservations.UpdateStatus: transition %s -> %s is not allowed for %s",
			res.Status, to, reference)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, res.Status, to)
	}

	err = s.reservationRepo.UpdateStatusIf(ctx, res.ID, []domain.ReservationStatus{res.Status}, to)
	if err != nil {
		if errors.Is(err, storage.ErrStatusConflict) {
			return nil, fmt.Errorf("%w: status changed concurrently", ErrInvalidTransition)
		}
		s.logger.Error("Reservations.UpdateStatus: failed to update %s: %v", reference, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	s.logger.Info("Reservations.UpdateStatus: reservation %s moved %s -> %s", reference, res.Status, to)

	return s.getByReference(ctx, reference)
}

// Review записывает решение администратора по special-заявке
// approve переводит заявку в обычный pending-флоу, её места начинают
// учитываться в окне (остаток может уйти в ноль). reject закрывает заявку
// и каскадно удаляет приложенные документы
func (s *Service) Review(ctx context.Context, reference string, approve bool, reviewedBy string, notes *string) (*domain.Reservation, error) {
	if strings.TrimSpace(reviewedBy) == "" {
		return nil, fmt.Errorf("%w: reviewer is required", ErrInvalidInput)
	}

	res, err := s.getByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	if !res.IsUnderReview() {
		s.logger.Warn("Reservations.Review: reservation %s is not under review (status=%s)",
			reference, res.Status)
		return nil, fmt.Errorf("%w: status is %s", ErrNotUnderReview, res.Status)
	}

	reviewStatus := domain.ReviewApproved
	newStatus := domain.StatusPending
	if !approve {
		reviewStatus = domain.ReviewRejected
		newStatus = domain.StatusRejected
	}

	err = s.reservationRepo.Review(ctx, res.ID, reviewStatus, newStatus, reviewedBy, notes)
	if err != nil {
		if errors.Is(err, storage.ErrStatusConflict) {
			return nil, fmt.Errorf("%w: status changed concurrently", ErrNotUnderReview)
		}
		s.logger.Error("Reservations.Review: failed to review %s: %v", reference, err)
		return nil, fmt.Errorf("%w: failed to review reservation: %v", ErrInternal, err)
	}

	if !approve {
		s.deleteDocuments(ctx, res)
	}

	s.logger.Info("Reservations.Review: reservation %s reviewed by %s (approve=%v)",
		reference, reviewedBy, approve)

	return s.getByReference(ctx, reference)
}

// AttachDocument загружает документ во внешнее хранилище и сохраняет метаданные
// Документы принимаются только пока заявка на рассмотрении
func (s *Service) AttachDocument(
	ctx context.Context,
	reference, fileName, contentType string,
	sizeBytes int64,
	body io.Reader,
) (*domain.Document, error) {
	if strings.TrimSpace(fileName) == "" {
		return nil, fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}

	res, err := s.getByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	if !res.IsUnderReview() {
		s.logger.Warn("Reservations.AttachDocument: reservation %s is not under review (status=%s)",
			reference, res.Status)
		return nil, fmt.Errorf("%w: status is %s", ErrNotUnderReview, res.Status)
	}

	key := fmt.Sprintf("reservations/%s/%s-%s", res.Reference, uuid.New().String(), fileName)

	stored, err := s.objectStore.Upload(ctx, key, contentType, body)
	if err != nil {
		s.logger.Error("Reservations.AttachDocument: failed to upload %s for %s: %v",
			fileName, reference, err)
		return nil, fmt.Errorf("%w: failed to upload document: %v", ErrInternal, err)
	}

	doc, err := s.documentRepo.Create(ctx, &domain.Document{
		ReservationID: res.ID,
		FileName:      fileName,
		ContentType:   contentType,
		SizeBytes:     sizeBytes,
		StorageKey:    stored.Key,
		URL:           stored.URL,
	})
	if err != nil {
		// Метаданные не сохранились, подчищаем уже загруженный файл
		if delErr := s.objectStore.Delete(ctx, stored.Key); delErr != nil {
			s.logger.Warn("Reservations.AttachDocument: failed to clean up object %s: %v", stored.Key, delErr)
		}
		s.logger.Error("Reservations.AttachDocument: failed to save metadata for %s: %v", reference, err)
		return nil, fmt.Errorf("%w: failed to save document metadata: %v", ErrInternal, err)
	}

	s.logger.Info("Reservations.AttachDocument: document %s attached to %s", fileName, reference)

	return doc, nil
}

func (s *Service) getByReference(ctx context.Context, reference string) (*domain.Reservation, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, fmt.Errorf("%w: reference is required", ErrInvalidInput)
	}

	res, err := s.reservationRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, storage.ErrReservationNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrReservationNotFound, reference)
		}
		s.logger.Error("Reservations: failed to get reservation %s: %v", reference, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	return res, nil
}

// deleteDocuments каскадно удаляет документы отклонённой заявки
// Удаление файлов из хранилища best-effort: метаданные удаляются в любом случае
func (s *Service) deleteDocuments(ctx context.Context, res *domain.Reservation) {
	documents, err := s.documentRepo.ListByReservation(ctx, res.ID)
	if err != nil {
		s.logger.Warn("Reservations: failed to list documents of %s for cleanup: %v", res.Reference, err)
		return
	}

	for _, doc := range documents {
		if err := s.objectStore.Delete(ctx, doc.StorageKey); err != nil {
			s.logger.Warn("Reservations: failed to delete object %s: %v", doc.StorageKey, err)
		}
	}

	if err := s.documentRepo.DeleteByReservation(ctx, res.ID); err != nil {
		s.logger.Warn("Reservations: failed to delete document metadata of %s: %v", res.Reference, err)
	}
}
