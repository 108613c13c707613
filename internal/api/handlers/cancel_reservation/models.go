package cancel_reservation

import (
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// CancelReservationRequest HTTP request model
type CancelReservationRequest struct {
	Reason string `json:"reason"`
}

// CancelReservationResponse HTTP response model
type CancelReservationResponse struct {
	Reference          string  `json:"reference"`
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
}

// FromDomain конвертирует отменённое бронирование в HTTP response
func FromDomain(res *domain.Reservation) *CancelReservationResponse {
	resp := &CancelReservationResponse{
		Reference:          res.Reference,
		Status:             string(res.Status),
		CancellationReason: res.CancellationReason,
	}

	if res.CancelledAt != nil {
		cancelledAt := res.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}
