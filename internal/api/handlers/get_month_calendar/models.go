package get_month_calendar

import (
	"github.com/m04kA/SMC-TourService/internal/domain"
)

// DayResponse HTTP модель одного дня календаря
type DayResponse struct {
	Date          string  `json:"date"` // "2026-03-14"
	IsWeekend     bool    `json:"isWeekend"`
	IsClosed      bool    `json:"isClosed"`
	IsHoliday     bool    `json:"isHoliday"`
	ClosureReason *string `json:"closureReason,omitempty"`
	Available     bool    `json:"available"`
}

// MonthCalendarResponse HTTP модель календаря месяца
type MonthCalendarResponse struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []DayResponse `json:"days"`
}

// FromDomain конвертирует дни календаря в HTTP response
func FromDomain(year int, month int, days []domain.DayAvailability) *MonthCalendarResponse {
	respDays := make([]DayResponse, len(days))
	for i, d := range days {
		respDays[i] = DayResponse{
			Date:          d.Date.Format(domain.DateFormat),
			IsWeekend:     d.IsWeekend,
			IsClosed:      d.IsClosed,
			IsHoliday:     d.IsHoliday,
			ClosureReason: d.ClosureReason,
			Available:     d.Available,
		}
	}

	return &MonthCalendarResponse{
		Year:  year,
		Month: month,
		Days:  respDays,
	}
}
