package get_day_capacity

import (
	"github.com/m04kA/SMC-TourService/internal/domain"
	getDayCapacity "github.com/m04kA/SMC-TourService/internal/usecase/get_day_capacity"
)

// WindowResponse HTTP модель вместимости одного окна
type WindowResponse struct {
	Start     string `json:"start"` // "09:00"
	End       string `json:"end"`   // "11:00"
	Ceiling   int    `json:"ceiling"`
	Booked    int    `json:"booked"`
	Remaining int    `json:"remaining"`
	Status    string `json:"status"` // "available" | "limited" | "full"
}

// DayCapacityResponse HTTP модель вместимости дня
type DayCapacityResponse struct {
	Date    string           `json:"date"`
	Windows []WindowResponse `json:"windows"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDayCapacity.Response) *DayCapacityResponse {
	windows := make([]WindowResponse, len(resp.Windows))
	for i, w := range resp.Windows {
		windows[i] = WindowResponse{
			Start:     w.Start.String(),
			End:       w.End.String(),
			Ceiling:   w.Ceiling,
			Booked:    w.Booked,
			Remaining: w.Remaining,
			Status:    string(w.Status),
		}
	}

	return &DayCapacityResponse{
		Date:    resp.Date.Format(domain.DateFormat),
		Windows: windows,
	}
}
