package entities

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus represents payment status
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

// BookingPaymentStatusPaid is stamped on a booking once its payment settles
const BookingPaymentStatusPaid = "paid"

// Payment represents a mock payment order linked to a booking
type Payment struct {
	ID        uuid.UUID     `json:"paymentId"`
	BookingID uuid.UUID     `json:"bookingId"`
	UserID    uuid.UUID     `json:"userId"`
	Amount    float64       `json:"amount"`
	Method    PaymentMethod `json:"paymentMethod"`
	Status    PaymentStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// CreatePaymentOrderInput represents input for creating a payment order
type CreatePaymentOrderInput struct {
	BookingID     uuid.UUID `json:"bookingId" binding:"required"`
	Amount        float64   `json:"amount" binding:"required,gt=0"`
	PaymentMethod string    `json:"paymentMethod" binding:"required"`
}

// CreatePaymentOrderResponse mirrors the mock gateway order response
type CreatePaymentOrderResponse struct {
	OrderID  uuid.UUID `json:"orderId"`
	Amount   float64   `json:"amount"`
	Currency string    `json:"currency"`
	Mock     bool      `json:"mock"`
	Message  string    `json:"message"`
}

// VerifyPaymentInput represents input for the mock verification callback
type VerifyPaymentInput struct {
	PaymentID uuid.UUID `json:"paymentId" binding:"required"`
	BookingID uuid.UUID `json:"bookingId" binding:"required"`
}
