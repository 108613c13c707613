package create_reservation

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// validateRequest проверяет входные данные запроса на создание бронирования
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	// Минимальная проверка формата, полноценную валидацию делает почтовый сервис
	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: email format is invalid", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	if req.WindowStart.IsZero() {
		return fmt.Errorf("%w: window start is required", ErrInvalidWindow)
	}

	if err := req.WindowStart.Validate(); err != nil {
		return fmt.Errorf("%w: window start format is invalid", ErrInvalidWindow)
	}

	// Окно должно совпадать с одним из окон фиксированного расписания
	if _, ok := domain.WindowByStart(req.WindowStart.String()); !ok {
		return fmt.Errorf("%w: window %s is not in the schedule", ErrInvalidWindow, req.WindowStart)
	}

	if req.Visitors <= 0 {
		return fmt.Errorf("%w: visitors must be positive", ErrInvalidInput)
	}

	if req.Visitors > domain.MaxVisitorsPerParty {
		return fmt.Errorf("%w: visitors exceeds maximum party size %d", ErrInvalidInput, domain.MaxVisitorsPerParty)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes is too long", ErrInvalidInput)
	}

	// Группы сверх лимита окна требуют обоснования для ручного рассмотрения
	if req.Visitors > domain.WindowCeiling {
		if req.Justification == nil || strings.TrimSpace(*req.Justification) == "" {
			return fmt.Errorf("%w: group of %d exceeds window ceiling %d",
				ErrJustificationRequired, req.Visitors, domain.WindowCeiling)
		}
		if len(*req.Justification) > domain.MaxJustificationLength {
			return fmt.Errorf("%w: justification is too long", ErrInvalidInput)
		}
	}

	return nil
}
