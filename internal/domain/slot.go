package domain

import (
	"time"

	"github.com/m04kA/SMC-TourService/pkg/types"
)

// TourWindow a fixed daily time window during which tours run
type TourWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// CapacityStatus tri-level availability label for a window
type CapacityStatus string

const (
	CapacityFull      CapacityStatus = "full"
	CapacityLimited   CapacityStatus = "limited"
	CapacityAvailable CapacityStatus = "available"
)

// WindowCapacity remaining capacity of one window on one date
type WindowCapacity struct {
	Start     types.TimeString
	End       types.TimeString
	Ceiling   int
	Booked    int
	Remaining int
	Status    CapacityStatus
}

// IsFull returns true if the window has no remaining seats
func (w *WindowCapacity) IsFull() bool {
	return w.Remaining <= 0
}

// CapacityStatusFor returns the status label for the given remaining seat count
func CapacityStatusFor(remaining int) CapacityStatus {
	switch {
	case remaining <= 0:
		return CapacityFull
	case remaining < LimitedThreshold:
		return CapacityLimited
	default:
		return CapacityAvailable
	}
}

// DayAvailability per-day availability flag produced by the calendar resolver
type DayAvailability struct {
	Date          time.Time
	IsWeekend     bool
	IsClosed      bool
	IsHoliday     bool
	ClosureReason *string // Название праздника имеет приоритет над причиной закрытия
	Available     bool
}

// IsWeekendDay returns true for Saturday and Sunday
func IsWeekendDay(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
