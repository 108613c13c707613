package upload_document

import (
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// DocumentResponse HTTP модель сохранённого документа
type DocumentResponse struct {
	ID          int64  `json:"id"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	SizeBytes   int64  `json:"sizeBytes"`
	URL         string `json:"url"`
	CreatedAt   string `json:"createdAt"`
}

// FromDomain конвертирует метаданные документа в HTTP response
func FromDomain(doc *domain.Document) *DocumentResponse {
	return &DocumentResponse{
		ID:          doc.ID,
		FileName:    doc.FileName,
		ContentType: doc.ContentType,
		SizeBytes:   doc.SizeBytes,
		URL:         doc.URL,
		CreatedAt:   doc.CreatedAt.Format(time.RFC3339),
	}
}
