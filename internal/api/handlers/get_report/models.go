package get_report

import (
	"strings"

	"github.com/m04kA/SMC-TourService/internal/domain"
	reportsService "github.com/m04kA/SMC-TourService/internal/service/reports"
)

// StatusCountItem количество бронирований в одном статусе
type StatusCountItem struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// MonthCountItem количество бронирований за месяц
type MonthCountItem struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Count int64 `json:"count"`
}

// WeekdayCountItem количество бронирований по дню недели
type WeekdayCountItem struct {
	Weekday string `json:"weekday"` // "monday" ... "sunday"
	Count   int64  `json:"count"`
}

// DateCountItem загрузка одной даты
type DateCountItem struct {
	Date     string `json:"date"`
	Bookings int64  `json:"bookings"`
	Visitors int64  `json:"visitors"`
}

// ReportResponse HTTP модель сводного отчёта
type ReportResponse struct {
	ByStatus          []StatusCountItem  `json:"byStatus"`
	Upcoming          int64              `json:"upcoming"`
	ConfirmedVisitors int64              `json:"confirmedVisitors"`
	EstimatedRevenue  float64            `json:"estimatedRevenue"`
	ByMonth           []MonthCountItem   `json:"byMonth"`
	ByWeekday         []WeekdayCountItem `json:"byWeekday"`
	TopDates          []DateCountItem    `json:"topDates"`
}

// FromOverview конвертирует сводку в HTTP response
func FromOverview(overview *reportsService.Overview) *ReportResponse {
	resp := &ReportResponse{
		ByStatus:          make([]StatusCountItem, len(overview.ByStatus)),
		Upcoming:          overview.Upcoming,
		ConfirmedVisitors: overview.ConfirmedVisitors,
		EstimatedRevenue:  overview.EstimatedRevenue,
		ByMonth:           make([]MonthCountItem, len(overview.ByMonth)),
		ByWeekday:         make([]WeekdayCountItem, len(overview.ByWeekday)),
		TopDates:          make([]DateCountItem, len(overview.TopDates)),
	}

	for i, s := range overview.ByStatus {
		resp.ByStatus[i] = StatusCountItem{
			Status: string(s.Status),
			Count:  s.Count,
		}
	}

	for i, m := range overview.ByMonth {
		resp.ByMonth[i] = MonthCountItem{
			Year:  m.Year,
			Month: int(m.Month),
			Count: m.Count,
		}
	}

	for i, wd := range overview.ByWeekday {
		resp.ByWeekday[i] = WeekdayCountItem{
			Weekday: strings.ToLower(wd.Weekday.String()),
			Count:   wd.Count,
		}
	}

	for i, d := range overview.TopDates {
		resp.TopDates[i] = DateCountItem{
			Date:     d.Date.Format(domain.DateFormat),
			Bookings: d.Bookings,
			Visitors: d.Visitors,
		}
	}

	return resp
}
