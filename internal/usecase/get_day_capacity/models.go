package get_day_capacity

import (
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// Request модель запроса вместимости на день
type Request struct {
	Date time.Time // Дата без времени
}

// Response модель ответа с вместимостью по окнам
// Для недоступного дня Windows пустой - ноли по окнам вводили бы в заблуждение
type Response struct {
	Date    time.Time
	Windows []domain.WindowCapacity
}
