package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// BookingStatus represents the booking lifecycle status
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// Valid reports whether the status is one of the four defined statuses
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusInProgress, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the strict transition graph allows moving
// from s to next. The permissive mode skips this check entirely: the
// observed system accepted any of the four statuses in any order, and
// whether backward moves are intentional admin overrides is undecided.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return next == BookingStatusInProgress || next == BookingStatusCancelled
	case BookingStatusInProgress:
		return next == BookingStatusCompleted || next == BookingStatusCancelled
	}
	// completed and cancelled are terminal
	return false
}

// PaymentMethod represents how a booking is paid
type PaymentMethod string

const (
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodAdvanceUPI PaymentMethod = "advance_upi"
)

// Valid reports whether the payment method is supported
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodUPI, PaymentMethodCash, PaymentMethodAdvanceUPI:
		return true
	}
	return false
}

// Booking represents a service booking. TotalAmount is a historical
// snapshot computed once at creation time and never recomputed, even if
// the underlying service price changes later.
type Booking struct {
	ID            uuid.UUID     `json:"bookingId"`
	UserID        uuid.UUID     `json:"userId"`
	ServiceID     uuid.UUID     `json:"serviceId"`
	ProviderID    uuid.UUID     `json:"providerId"`
	AddressID     uuid.UUID     `json:"addressId"`
	HoursDays     float64       `json:"hoursDays"`
	TotalAmount   float64       `json:"totalAmount"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Status        BookingStatus `json:"status"`
	PaymentStatus null.String   `json:"paymentStatus,omitempty"`
	Notes         null.String   `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`

	// Enrichment, resolved at read time
	Service  *Service     `json:"service,omitempty"`
	User     *UserSummary `json:"user,omitempty"`
	Provider *UserSummary `json:"provider,omitempty"`
}

// CreateBookingInput represents input for creating a booking
type CreateBookingInput struct {
	ServiceID     uuid.UUID `json:"serviceId" binding:"required"`
	ProviderID    uuid.UUID `json:"providerId" binding:"required"`
	AddressID     uuid.UUID `json:"addressId" binding:"required"`
	HoursDays     float64   `json:"hoursDays" binding:"required,gt=0"`
	PaymentMethod string    `json:"paymentMethod" binding:"required"`
	Notes         string    `json:"notes"`
}

// CreateBookingResponse returns the booking id and snapshotted total
type CreateBookingResponse struct {
	Message     string    `json:"message"`
	BookingID   uuid.UUID `json:"bookingId"`
	TotalAmount float64   `json:"totalAmount"`
}

// UpdateBookingStatusInput represents input for a status transition
type UpdateBookingStatusInput struct {
	Status string `json:"status" binding:"required"`
}
