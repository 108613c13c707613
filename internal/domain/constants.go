package domain

// Fixed tour schedule: four two-hour windows per open day, same ceiling everywhere
var TourSchedule = []TourWindow{
	{Start: "09:00", End: "11:00"},
	{Start: "11:00", End: "13:00"},
	{Start: "13:30", End: "15:30"},
	{Start: "15:30", End: "17:30"},
}

// Capacity policy
const (
	WindowCeiling    = 30 // Максимум посетителей в одном окне
	LimitedThreshold = 10 // Меньше этого значения остаток помечается как "limited"
)

// Reporting policy
const (
	TopDatesLimit = 10 // Размер рейтинга самых загруженных дат
)

// Business validation constants
const (
	MaxVisitorsPerParty    = 200 // Верхняя граница даже для special-заявок
	MaxNotesLength         = 500
	MaxJustificationLength = 1000
	MaxReasonLength        = 500
	MaxClosureRangeDays    = 62 // Закрытие диапазоном не длиннее двух месяцев
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ReferencePrefix префикс человекочитаемого кода брони
const ReferencePrefix = "TR-"

// CapacityStatuses статусы, занимающие места в окне
// Используется при подсчёте занятости слотов
var CapacityStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}

// InactiveStatuses статусы, не занимающие места
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
	StatusRejected,
	StatusPendingReview,
}

// WindowByStart returns the schedule window with the given start time
func WindowByStart(start string) (TourWindow, bool) {
	for _, w := range TourSchedule {
		if string(w.Start) == start {
			return w, true
		}
	}
	return TourWindow{}, false
}
