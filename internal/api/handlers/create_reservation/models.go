package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
	createReservation "github.com/m04kA/SMC-TourService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-TourService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Date          string  `json:"date"`        // "2026-03-14"
	WindowStart   string  `json:"windowStart"` // "09:00"
	Visitors      int     `json:"visitors"`
	Notes         *string `json:"notes,omitempty"`
	Justification *string `json:"justification,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID          int64   `json:"id"`
	Reference   string  `json:"reference"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Date        string  `json:"date"`
	WindowStart string  `json:"windowStart"`
	WindowEnd   string  `json:"windowEnd"`
	Visitors    int     `json:"visitors"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
	IsSpecial   bool    `json:"isSpecial"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	windowStart, err := types.NewTimeStringFromString(r.WindowStart)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Date:          date,
		WindowStart:   windowStart,
		Visitors:      r.Visitors,
		Notes:         r.Notes,
		Justification: r.Justification,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:          resp.ID,
		Reference:   resp.Reference,
		Name:        resp.Name,
		Email:       resp.Email,
		Phone:       resp.Phone,
		Date:        resp.TourDate.Format(domain.DateFormat),
		WindowStart: resp.WindowStart.String(),
		WindowEnd:   resp.WindowEnd.String(),
		Visitors:    resp.Visitors,
		Status:      resp.Status,
		Notes:       resp.Notes,
		IsSpecial:   resp.IsSpecial,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
