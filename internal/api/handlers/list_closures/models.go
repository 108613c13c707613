package list_closures

import (
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// ClosureResponse HTTP модель одного закрытия
type ClosureResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	Reason    string `json:"reason"`
	Category  string `json:"category"`
	CreatedBy string `json:"createdBy"`
	CreatedAt string `json:"createdAt"`
}

// ListClosuresResponse HTTP модель списка закрытий месяца
type ListClosuresResponse struct {
	Year     int               `json:"year"`
	Month    int               `json:"month"`
	Closures []ClosureResponse `json:"closures"`
}

// FromDomain конвертирует закрытия месяца в HTTP response
func FromDomain(year, month int, closures []*domain.Closure) *ListClosuresResponse {
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

	return &ListClosuresResponse{
		Year:     year,
		Month:    month,
		Closures: items,
	}
}
