package create_reservation

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/pkg/ptr"
)

// UseCase use case создания бронирования экскурсии
type UseCase struct {
	reservationRepo ReservationRepository
	dayResolver     DayResolver
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	dayResolver DayResolver,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		dayResolver:     dayResolver,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Обычная заявка проходит атомарную проверку вместимости окна в
// SERIALIZABLE-транзакции: сумма посетителей активных броней плюс новая
// группа не может превысить лимит окна даже при конкурирующих запросах.
// Заявка сверх лимита окна вместимость не проверяет и не занимает места,
// а уходит на ручное рассмотрение со статусом pending_review.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: date=%s, window=%s, visitors=%d",
		req.Date.Format(domain.DateFormat), req.WindowStart, req.Visitors)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Дата экскурсии не может быть в прошлом
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateReservation: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}

	tourDate := normalizeDate(req.Date)

	// 3. День должен принимать экскурсии (не выходной, не закрыт, не праздник)
	availability, err := uc.dayResolver.ResolveDay(ctx, tourDate)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to resolve day %s: %v",
			tourDate.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to resolve day: %v", ErrInternal, err)
	}

	if !availability.Available {
		uc.logger.Warn("CreateReservation: day %s is not bookable (weekend=%v, closed=%v, holiday=%v)",
			tourDate.Format(domain.DateFormat),
			availability.IsWeekend, availability.IsClosed, availability.IsHoliday)
		return nil, fmt.Errorf("%w: %s", ErrDayNotAvailable, tourDate.Format(domain.DateFormat))
	}

	reservation := &domain.Reservation{
		Reference:   generateReference(),
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		TourDate:    tourDate,
		WindowStart: req.WindowStart,
		Visitors:    req.Visitors,
		Notes:       req.Notes,
	}

	// 4a. Special-заявка: мест не занимает, идет на ручное рассмотрение
	if req.Visitors > domain.WindowCeiling {
		reservation.Status = domain.StatusPendingReview
		reservation.IsSpecial = true
		reservation.RequestedCapacity = ptr.Ptr(req.Visitors)
		reservation.Justification = req.Justification
		reservation.ReviewStatus = ptr.Ptr(domain.ReviewPending)

		created, err := uc.reservationRepo.Create(ctx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create special reservation: %v", err)
			return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		uc.logger.Info("CreateReservation: special reservation %s routed to review (visitors=%d)",
			created.Reference, created.Visitors)
		return uc.buildResponse(created), nil
	}

	// 4b. Обычная заявка: атомарная проверка вместимости и вставка
	reservation.Status = domain.StatusPending

	var created *domain.Reservation
	runTx := func() error {
		return uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			// Запрос внутри транзакции блокирует строки окна (FOR UPDATE),
			// конкурирующая заявка дождется фиксации и увидит новую сумму
			active, err := uc.reservationRepo.ListByDateWindow(
				txCtx, tourDate, req.WindowStart.String(), domain.CapacityStatuses)
			if err != nil {
				return fmt.Errorf("list active reservations: %w", err)
			}

			booked := 0
			for _, r := range active {
				booked += r.Visitors
			}

			if booked+req.Visitors > domain.WindowCeiling {
				return fmt.Errorf("%w: window %s on %s has %d of %d seats taken",
					ErrCapacityExceeded, req.WindowStart,
					tourDate.Format(domain.DateFormat), booked, domain.WindowCeiling)
			}

			created, err = uc.reservationRepo.Create(txCtx, reservation)
			if err != nil {
				return fmt.Errorf("create reservation: %w", err)
			}
			return nil
		})
	}

	err = runTx()
	if isSerializationErr(err) {
		// Конкурирующая транзакция зафиксировалась первой, повторное чтение
		// увидит ее сумму и честно ответит про вместимость
		uc.logger.Warn("CreateReservation: serialization conflict on window %s %s, retrying once",
			tourDate.Format(domain.DateFormat), req.WindowStart)
		err = runTx()
	}
	if err != nil {
		if isCapacityErr(err) {
			uc.logger.Warn("CreateReservation: %v", err)
			return nil, err
		}
		uc.logger.Error("CreateReservation: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservation: reservation %s created (date=%s, window=%s, visitors=%d)",
		created.Reference, tourDate.Format(domain.DateFormat), req.WindowStart, req.Visitors)

	return uc.buildResponse(created), nil
}

func (uc *UseCase) buildResponse(res *domain.Reservation) *Response {
	window, _ := domain.WindowByStart(res.WindowStart.String())

	return &Response{
		ID:          res.ID,
		Reference:   res.Reference,
		Name:        res.Name,
		Email:       res.Email,
		Phone:       res.Phone,
		TourDate:    res.TourDate,
		WindowStart: res.WindowStart,
		WindowEnd:   window.End,
		Visitors:    res.Visitors,
		Status:      string(res.Status),
		Notes:       res.Notes,
		IsSpecial:   res.IsSpecial,
		CreatedAt:   res.CreatedAt,
		UpdatedAt:   res.UpdatedAt,
	}
}
