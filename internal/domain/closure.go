package domain

import "time"

// ClosureCategory категория административного закрытия
type ClosureCategory string

const (
	ClosureMaintenance  ClosureCategory = "maintenance"
	ClosurePrivateEvent ClosureCategory = "private_event"
	ClosureStaff        ClosureCategory = "staff"
	ClosureOther        ClosureCategory = "other"
)

// ValidClosureCategories допустимые категории закрытий
var ValidClosureCategories = []ClosureCategory{
	ClosureMaintenance,
	ClosurePrivateEvent,
	ClosureStaff,
	ClosureOther,
}

// IsValidClosureCategory returns true if the category is one of the known tags
func IsValidClosureCategory(c ClosureCategory) bool {
	for _, valid := range ValidClosureCategories {
		if c == valid {
			return true
		}
	}
	return false
}

// Closure an admin-declared day on which no tours run
// Dates are unique per day - duplicate insertion is rejected by the store
type Closure struct {
	ID        int64
	Date      time.Time // Только дата, время обнулено
	Reason    string
	Category  ClosureCategory
	CreatedBy string // Идентификатор администратора
	CreatedAt time.Time
}

// Holiday an externally sourced public-holiday marker
// Read-only from this system's perspective and never administratively deletable
type Holiday struct {
	Date time.Time
	Name string
}
