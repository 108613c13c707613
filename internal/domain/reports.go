package domain

import "time"

// StatusCount количество бронирований в одном статусе
type StatusCount struct {
	Status ReservationStatus
	Count  int64
}

// MonthCount количество бронирований за календарный месяц
type MonthCount struct {
	Year  int
	Month time.Month
	Count int64
}

// WeekdayCount количество бронирований по дню недели
type WeekdayCount struct {
	Weekday time.Weekday
	Count   int64
}

// DateCount загрузка одной даты: число броней и суммарное число посетителей
type DateCount struct {
	Date     time.Time
	Bookings int64
	Visitors int64
}
