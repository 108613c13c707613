package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TourService/pkg/psqlbuilder"
)

// reservationColumns колонки таблицы reservations в порядке сканирования
var reservationColumns = []string{
	"id",
	"reference",
	"name",
	"email",
	"phone",
	"tour_date",
	"window_start",
	"visitors",
	"status",
	"notes",
	"is_special",
	"requested_capacity",
	"justification",
	"review_status",
	"review_notes",
	"reviewed_by",
	"reviewed_at",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями экскурсий
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Создание с проверкой вместимости окна обязано выполняться внутри транзакции
// вместе с ListByDateWindow (FOR UPDATE), иначе возможен овербукинг
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"reference",
			"name",
			"email",
			"phone",
			"tour_date",
			"window_start",
			"visitors",
			"status",
			"notes",
			"is_special",
			"requested_capacity",
			"justification",
			"review_status",
		).
		Values(
			res.Reference,
			res.Name,
			res.Email,
			res.Phone,
			res.TourDate,
			res.WindowStart,
			res.Visitors,
			res.Status,
			res.Notes,
			res.IsSpecial,
			res.RequestedCapacity,
			res.Justification,
			res.ReviewStatus,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByReference получает бронирование по коду брони
func (r *Repository) GetByReference(ctx context.Context, reference string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"reference": reference}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByReference - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	res, err := scanReservation(row)
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReference - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// ListByDateWindow получает бронирования на конкретную дату и окно в указанных статусах
// Если вызов идёт внутри транзакции, строки блокируются через FOR UPDATE -
// это сериализует конкурентные попытки занять одно и то же окно
func (r *Repository) ListByDateWindow(
	ctx context.Context,
	date time.Time,
	windowStart string,
	statuses []domain.ReservationStatus,
) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	statusStrings := make([]string, len(statuses))
	for i, s := range statuses {
		statusStrings[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"tour_date": date}).
		Where(squirrel.Eq{"window_start": windowStart}).
		Where(squirrel.Eq{"status": statusStrings}).
		OrderBy("id ASC")

	// Блокировка строк окна внутри транзакции создания бронирования
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateWindow - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateWindow - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// ListByDate получает бронирования на конкретную дату в указанных статусах
// Используется калькулятором вместимости: группировка по окнам делается в Go
func (r *Repository) ListByDate(
	ctx context.Context,
	date time.Time,
	statuses []domain.ReservationStatus,
) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	statusStrings := make([]string, len(statuses))
	for i, s := range statuses {
		statusStrings[i] = string(s)
	}

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"tour_date": date}).
		Where(squirrel.Eq{"status": statusStrings}).
		OrderBy("window_start ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// List получает бронирования с фильтрацией по периоду и статусу
// Для админского списка; по умолчанию отменённые и отклонённые скрыты
func (r *Repository) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations")

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"tour_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"tour_date": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactiveStatusStrings := make([]string, 0, len(domain.InactiveStatuses))
		for _, s := range domain.InactiveStatuses {
			// pending_review показываем всегда: это входящие заявки, а не архив
			if s == domain.StatusPendingReview {
				continue
			}
			inactiveStatusStrings = append(inactiveStatusStrings, string(s))
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	selectBuilder = selectBuilder.OrderBy("tour_date DESC, window_start DESC, id DESC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// UpdateStatusIf обновляет статус бронирования при условии, что текущий статус
// входит в allowedFrom. Атомарный compare-and-set на одной строке
func (r *Repository) UpdateStatusIf(
	ctx context.Context,
	id int64,
	allowedFrom []domain.ReservationStatus,
	to domain.ReservationStatus,
) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	fromStrings := make([]string, len(allowedFrom))
	for i, s := range allowedFrom {
		fromStrings[i] = string(s)
	}

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": fromStrings}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatusIf - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatusIf - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatusIf - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatusConflict
	}

	return nil
}

// Cancel отменяет бронирование с указанием причины
// Условное обновление: проходит только из отменяемых статусов
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	cancellable := []string{
		string(domain.StatusPending),
		string(domain.StatusConfirmed),
		string(domain.StatusPendingReview),
	}

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": cancellable}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatusConflict
	}

	return nil
}

// Review записывает решение по special-заявке
// Проходит только из статуса pending_review
func (r *Repository) Review(
	ctx context.Context,
	id int64,
	reviewStatus domain.ReviewStatus,
	newStatus domain.ReservationStatus,
	reviewedBy string,
	notes *string,
) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", newStatus).
		Set("review_status", reviewStatus).
		Set("review_notes", notes).
		Set("reviewed_by", reviewedBy).
		Set("reviewed_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.StatusPendingReview}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Review - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Review - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Review - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatusConflict
	}

	return nil
}

// scanReservation сканирует одну строку (row или rows через интерфейс Scan)
func scanReservation(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime
	var reviewStatus sql.NullString

	err := row.Scan(
		&res.ID,
		&res.Reference,
		&res.Name,
		&res.Email,
		&res.Phone,
		&res.TourDate,
		&res.WindowStart,
		&res.Visitors,
		&res.Status,
		&res.Notes,
		&res.IsSpecial,
		&res.RequestedCapacity,
		&res.Justification,
		&reviewStatus,
		&res.ReviewNotes,
		&res.ReviewedBy,
		&res.ReviewedAt,
		&res.CancellationReason,
		&res.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if reviewStatus.Valid {
		rs := domain.ReviewStatus(reviewStatus.String)
		res.ReviewStatus = &rs
	}
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
