package reservation

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TourService/pkg/psqlbuilder"
)

// Агрегационные запросы для отчётов
// Только чтение; отсутствие строк - это нули, а не ошибка

// capacityStatusStrings статусы, входящие в активные подсчёты
func capacityStatusStrings() []string {
	out := make([]string, len(domain.CapacityStatuses))
	for i, s := range domain.CapacityStatuses {
		out[i] = string(s)
	}
	return out
}

// periodFilter добавляет ограничение периода по tour_date
func periodFilter(b squirrel.SelectBuilder, from, to *time.Time) squirrel.SelectBuilder {
	if from != nil {
		b = b.Where(squirrel.GtOrEq{"tour_date": *from})
	}
	if to != nil {
		b = b.Where(squirrel.LtOrEq{"tour_date": *to})
	}
	return b
}

// CountByStatus возвращает количество бронирований в каждом статусе за период
func (r *Repository) CountByStatus(ctx context.Context, from, to *time.Time) ([]domain.StatusCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := periodFilter(
		psqlbuilder.Select("status", "COUNT(*)").From("reservations"),
		from, to,
	).GroupBy("status")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make([]domain.StatusCount, 0)
	for rows.Next() {
		var sc domain.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, fmt.Errorf("%w: CountByStatus - scan row: %v", ErrScanRow, err)
		}
		counts = append(counts, sc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// SumVisitorsByStatus возвращает суммарное число посетителей в бронированиях
// указанного статуса за период
func (r *Repository) SumVisitorsByStatus(ctx context.Context, from, to *time.Time, status domain.ReservationStatus) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := periodFilter(
		psqlbuilder.Select("COALESCE(SUM(visitors), 0)").
			From("reservations").
			Where(squirrel.Eq{"status": status}),
		from, to,
	)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: SumVisitorsByStatus - build select query: %v", ErrBuildQuery, err)
	}

	var sum int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&sum); err != nil {
		return 0, fmt.Errorf("%w: SumVisitorsByStatus - scan sum: %v", ErrScanRow, err)
	}

	return sum, nil
}

// CountUpcoming возвращает количество активных бронирований начиная с указанной даты
func (r *Repository) CountUpcoming(ctx context.Context, fromDate time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("reservations").
		Where(squirrel.GtOrEq{"tour_date": fromDate}).
		Where(squirrel.Eq{"status": []string{
			string(domain.StatusPending),
			string(domain.StatusConfirmed),
		}}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountUpcoming - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountUpcoming - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// CountByMonth возвращает количество активных бронирований, сгруппированное по месяцам
func (r *Repository) CountByMonth(ctx context.Context, from, to *time.Time) ([]domain.MonthCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := periodFilter(
		psqlbuilder.Select(
			"EXTRACT(YEAR FROM tour_date)::int AS year",
			"EXTRACT(MONTH FROM tour_date)::int AS month",
			"COUNT(*)",
		).
			From("reservations").
			Where(squirrel.Eq{"status": capacityStatusStrings()}),
		from, to,
	).GroupBy("year", "month").OrderBy("year ASC, month ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountByMonth - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByMonth - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make([]domain.MonthCount, 0)
	for rows.Next() {
		var year, month int
		var count int64
		if err := rows.Scan(&year, &month, &count); err != nil {
			return nil, fmt.Errorf("%w: CountByMonth - scan row: %v", ErrScanRow, err)
		}
		counts = append(counts, domain.MonthCount{
			Year:  year,
			Month: time.Month(month),
			Count: count,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByMonth - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// CountByWeekday возвращает количество активных бронирований по дням недели
// EXTRACT(DOW) в PostgreSQL: 0 = воскресенье, совпадает с time.Weekday
func (r *Repository) CountByWeekday(ctx context.Context, from, to *time.Time) ([]domain.WeekdayCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := periodFilter(
		psqlbuilder.Select(
			"EXTRACT(DOW FROM tour_date)::int AS weekday",
			"COUNT(*)",
		).
			From("reservations").
			Where(squirrel.Eq{"status": capacityStatusStrings()}),
		from, to,
	).GroupBy("weekday").OrderBy("weekday ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountByWeekday - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByWeekday - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make([]domain.WeekdayCount, 0)
	for rows.Next() {
		var weekday int
		var count int64
		if err := rows.Scan(&weekday, &count); err != nil {
			return nil, fmt.Errorf("%w: CountByWeekday - scan row: %v", ErrScanRow, err)
		}
		counts = append(counts, domain.WeekdayCount{
			Weekday: time.Weekday(weekday),
			Count:   count,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByWeekday - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// TopDates возвращает самые загруженные даты за период
// Сортировка: число броней, затем число посетителей, по убыванию
func (r *Repository) TopDates(ctx context.Context, from, to *time.Time, limit uint64) ([]domain.DateCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := periodFilter(
		psqlbuilder.Select(
			"tour_date",
			"COUNT(*) AS bookings",
			"COALESCE(SUM(visitors), 0) AS total_visitors",
		).
			From("reservations").
			Where(squirrel.Eq{"status": capacityStatusStrings()}),
		from, to,
	).
		GroupBy("tour_date").
		OrderBy("bookings DESC, total_visitors DESC, tour_date ASC").
		Limit(limit)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: TopDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: TopDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]domain.DateCount, 0)
	for rows.Next() {
		var dc domain.DateCount
		if err := rows.Scan(&dc.Date, &dc.Bookings, &dc.Visitors); err != nil {
			return nil, fmt.Errorf("%w: TopDates - scan row: %v", ErrScanRow, err)
		}
		dates = append(dates, dc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: TopDates - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}
