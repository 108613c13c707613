package review_special_booking

import (
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// Решения администратора по special-заявке
const (
	decisionApprove = "approve"
	decisionReject  = "reject"
)

// ReviewRequest HTTP request model
type ReviewRequest struct {
	Decision string  `json:"decision"` // "approve" | "reject"
	Notes    *string `json:"notes,omitempty"`
}

// ReviewResponse HTTP response model
type ReviewResponse struct {
	Reference    string  `json:"reference"`
	Status       string  `json:"status"`
	ReviewStatus *string `json:"reviewStatus,omitempty"`
	ReviewNotes  *string `json:"reviewNotes,omitempty"`
	ReviewedBy   *string `json:"reviewedBy,omitempty"`
	ReviewedAt   *string `json:"reviewedAt,omitempty"`
}

// FromDomain конвертирует рассмотренную заявку в HTTP response
func FromDomain(res *domain.Reservation) *ReviewResponse {
	resp := &ReviewResponse{
		Reference:   res.Reference,
		Status:      string(res.Status),
		ReviewNotes: res.ReviewNotes,
		ReviewedBy:  res.ReviewedBy,
	}

	if res.ReviewStatus != nil {
		reviewStatus := string(*res.ReviewStatus)
		resp.ReviewStatus = &reviewStatus
	}

	if res.ReviewedAt != nil {
		reviewedAt := res.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &reviewedAt
	}

	return resp
}
