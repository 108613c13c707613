package update_reservation_status

import (
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"` // "confirmed" | "cancelled" | "completed"
}

// UpdateStatusResponse HTTP response model
type UpdateStatusResponse struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	UpdatedAt string `json:"updatedAt"`
}

// FromDomain конвертирует бронирование в HTTP response
func FromDomain(res *domain.Reservation) *UpdateStatusResponse {
	return &UpdateStatusResponse{
		Reference: res.Reference,
		Status:    string(res.Status),
		UpdatedAt: res.UpdatedAt.Format(time.RFC3339),
	}
}
