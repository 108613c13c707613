package get_reservation

import (
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// DocumentResponse HTTP модель приложенного документа
type DocumentResponse struct {
	ID          int64  `json:"id"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	SizeBytes   int64  `json:"sizeBytes"`
	URL         string `json:"url"`
	CreatedAt   string `json:"createdAt"`
}

// ReservationResponse HTTP модель бронирования
type ReservationResponse struct {
	ID                 int64              `json:"id"`
	Reference          string             `json:"reference"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	Phone              string             `json:"phone"`
	Date               string             `json:"date"`
	WindowStart        string             `json:"windowStart"`
	Visitors           int                `json:"visitors"`
	Status             string             `json:"status"`
	Notes              *string            `json:"notes,omitempty"`
	IsSpecial          bool               `json:"isSpecial"`
	RequestedCapacity  *int               `json:"requestedCapacity,omitempty"`
	Justification      *string            `json:"justification,omitempty"`
	ReviewStatus       *string            `json:"reviewStatus,omitempty"`
	ReviewNotes        *string            `json:"reviewNotes,omitempty"`
	CancellationReason *string            `json:"cancellationReason,omitempty"`
	Documents          []DocumentResponse `json:"documents,omitempty"`
	CreatedAt          string             `json:"createdAt"`
	UpdatedAt          string             `json:"updatedAt"`
}

// FromDomain конвертирует бронирование с документами в HTTP response
func FromDomain(res *domain.Reservation, documents []*domain.Document) *ReservationResponse {
	resp := &ReservationResponse{
		ID:                 res.ID,
		Reference:          res.Reference,
		Name:               res.Name,
		Email:              res.Email,
		Phone:              res.Phone,
		Date:               res.TourDate.Format(domain.DateFormat),
		WindowStart:        res.WindowStart.String(),
		Visitors:           res.Visitors,
		Status:             string(res.Status),
		Notes:              res.Notes,
		IsSpecial:          res.IsSpecial,
		RequestedCapacity:  res.RequestedCapacity,
		Justification:      res.Justification,
		ReviewNotes:        res.ReviewNotes,
		CancellationReason: res.CancellationReason,
		CreatedAt:          res.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          res.UpdatedAt.Format(time.RFC3339),
	}

	if res.ReviewStatus != nil {
		reviewStatus := string(*res.ReviewStatus)
		resp.ReviewStatus = &reviewStatus
	}

	for _, doc := range documents {
		resp.Documents = append(resp.Documents, DocumentResponse{
			ID:          doc.ID,
			FileName:    doc.FileName,
			ContentType: doc.ContentType,
			SizeBytes:   doc.SizeBytes,
			URL:         doc.URL,
			CreatedAt:   doc.CreatedAt.Format(time.RFC3339),
		})
	}

	return resp
}
