package create_closure

import (
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// CreateClosureRequest HTTP request model
// Для закрытия одной даты поле to можно опустить
type CreateClosureRequest struct {
	From     string `json:"from"` // "2026-03-14"
	To       string `json:"to,omitempty"`
	Reason   string `json:"reason"`
	Category string `json:"category"` // "maintenance" | "private_event" | "staff" | "other"
}

// ClosureResponse HTTP модель одного закрытия
type ClosureResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	Reason    string `json:"reason"`
	Category  string `json:"category"`
	CreatedBy string `json:"createdBy"`
	CreatedAt string `json:"createdAt"`
}

// CreateClosureResponse HTTP модель результата создания
type CreateClosureResponse struct {
	Closures []ClosureResponse `json:"closures"`
}

// FromDomain конвертирует созданные закрытия в HTTP response
func FromDomain(closures []*domain.Closure) *CreateClosureResponse {
	items := make([]ClosureResponse, len(closures))
	for i, c := range closures {
		items[i] = ClosureResponse{
			ID:        c.ID,
			Date:      c.Date.Format(domain.DateFormat),
			Reason:    c.Reason,
			Category:  string(c.Category),
			CreatedBy: c.CreatedBy,
			CreatedAt: c.CreatedAt.Format(time.RFC3339),
		}
	}

	return &CreateClosureResponse{Closures: items}
}
