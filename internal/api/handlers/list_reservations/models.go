package list_reservations

import (
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// ReservationItem HTTP модель одного бронирования в списке
type ReservationItem struct {
	ID           int64   `json:"id"`
	Reference    string  `json:"reference"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Date         string  `json:"date"`
	WindowStart  string  `json:"windowStart"`
	Visitors     int     `json:"visitors"`
	Status       string  `json:"status"`
	IsSpecial    bool    `json:"isSpecial"`
	ReviewStatus *string `json:"reviewStatus,omitempty"`
	CreatedAt    string  `json:"createdAt"`
}

// ListReservationsResponse HTTP модель списка бронирований
type ListReservationsResponse struct {
	Reservations []ReservationItem `json:"reservations"`
	Total        int               `json:"total"`
}

// FromDomain конвертирует список бронирований в HTTP response
func FromDomain(reservations []*domain.Reservation) *ListReservationsResponse {
	items := make([]ReservationItem, len(reservations))
	for i, res := range reservations {
		item := ReservationItem{
			ID:          res.ID,
			Reference:   res.Reference,
			Name:        res.Name,
			Email:       res.Email,
			Phone:       res.Phone,
			Date:        res.TourDate.Format(domain.DateFormat),
			WindowStart: res.WindowStart.String(),
			Visitors:    res.Visitors,
			Status:      string(res.Status),
			IsSpecial:   res.IsSpecial,
			CreatedAt:   res.CreatedAt.Format(time.RFC3339),
		}

		if res.ReviewStatus != nil {
			reviewStatus := string(*res.ReviewStatus)
			item.ReviewStatus = &reviewStatus
		}

		items[i] = item
	}

	return &ListReservationsResponse{
		Reservations: items,
		Total:        len(items),
	}
}
