package domain

import (
	"time"

	"github.com/m04kA/SMC-TourService/pkg/types"
)

// ReservationStatus represents the status of a tour reservation
type ReservationStatus string

const (
	StatusPending       ReservationStatus = "pending"
	StatusConfirmed     ReservationStatus = "confirmed"
	StatusCompleted     ReservationStatus = "completed"
	StatusCancelled     ReservationStatus = "cancelled"
	StatusPendingReview ReservationStatus = "pending_review"
	StatusRejected      ReservationStatus = "rejected"
)

// ReviewStatus represents the outcome of a special-booking review
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending_review"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// Reservation represents one visitor party's request for a factory tour
type Reservation struct {
	ID          int64
	Reference   string // Человекочитаемый код брони, например "TR-9F3A21BC"
	Name        string
	Email       string
	Phone       string
	TourDate    time.Time // Только дата, время обнулено
	WindowStart types.TimeString
	Visitors    int
	Status      ReservationStatus
	Notes       *string

	// Special-booking metadata (заполняется только для заявок сверх лимита слота)
	IsSpecial         bool
	RequestedCapacity *int
	Justification     *string
	ReviewStatus      *ReviewStatus
	ReviewNotes       *string
	ReviewedBy        *string
	ReviewedAt        *time.Time

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CountsTowardCapacity returns true if the reservation consumes seats in its window
// Cancelled and rejected reservations release their seats; a pending-review
// request does not hold seats until it is approved
func (r *Reservation) CountsTowardCapacity() bool {
	return r.Status == StatusPending ||
		r.Status == StatusConfirmed ||
		r.Status == StatusCompleted
}

// CanBeCancelled returns true if the reservation can still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending ||
		r.Status == StatusConfirmed ||
		r.Status == StatusPendingReview
}

// IsTerminal returns true if no further transitions are allowed
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusCancelled ||
		r.Status == StatusCompleted ||
		r.Status == StatusRejected
}

// IsUnderReview returns true if the reservation awaits a special-booking decision
func (r *Reservation) IsUnderReview() bool {
	return r.Status == StatusPendingReview
}

// ReservationsFilter фильтр для админского списка бронирований
type ReservationsFilter struct {
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые и отклонённые
}

// AllowedTransitions допустимые административные переходы статусов
// Статусы pending_review и rejected управляются только через review-флоу
var AllowedTransitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
}

// CanTransition returns true if an administrative transition from -> to is allowed
func CanTransition(from, to ReservationStatus) bool {
	for _, allowed := range AllowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
