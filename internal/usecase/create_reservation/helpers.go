package create_reservation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// serializationFailure код ошибки PostgreSQL для сбоя SERIALIZABLE-транзакции
const serializationFailure = "40001"

// generateReference генерирует человекочитаемый код брони вида "TR-9F3A21BC"
func generateReference() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return domain.ReferencePrefix + strings.ToUpper(raw[:8])
}

// normalizeDate обнуляет компоненту времени, в хранилище уходит только дата
func normalizeDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}

func isCapacityErr(err error) bool {
	return errors.Is(err, ErrCapacityExceeded)
}

// isSerializationErr проверяет, что транзакция не прошла сериализацию (SQLSTATE 40001)
func isSerializationErr(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == serializationFailure
}
