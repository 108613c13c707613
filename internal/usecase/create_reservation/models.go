package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-TourService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Name        string           // Имя контактного лица
	Email       string           // Email для подтверждения
	Phone       string           // Телефон
	Date        time.Time        // Дата экскурсии (без времени)
	WindowStart types.TimeString // Время начала окна (например, "09:00")
	Visitors    int              // Размер группы
	Notes       *string          // Дополнительные пожелания (опционально)

	// Обоснование для групп сверх лимита окна
	// Обязательно, когда Visitors > domain.WindowCeiling
	Justification *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	Reference   string // Код брони для самостоятельной отмены и просмотра
	Name        string
	Email       string
	Phone       string
	TourDate    time.Time
	WindowStart types.TimeString
	WindowEnd   types.TimeString
	Visitors    int
	Status      string
	Notes       *string

	// true, если заявка ушла на ручное рассмотрение
	IsSpecial bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
