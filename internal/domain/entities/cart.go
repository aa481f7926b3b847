package entities

import (
	"time"

	"github.com/google/uuid"
)

// CartItem represents a service held in a user's cart. The cart is
// advisory: booking creation clears matching entries best-effort.
type CartItem struct {
	ID        uuid.UUID `json:"cartId"`
	UserID    uuid.UUID `json:"userId"`
	ServiceID uuid.UUID `json:"serviceId"`
	HoursDays float64   `json:"hoursDays"`
	AddedAt   time.Time `json:"addedAt"`

	// Enrichment, resolved at read time
	Service     *Service `json:"service,omitempty"`
	TotalAmount float64  `json:"totalAmount,omitempty"`
}

// AddCartItemInput represents input for adding a service to the cart
type AddCartItemInput struct {
	ServiceID uuid.UUID `json:"serviceId" binding:"required"`
	HoursDays float64   `json:"hoursDays" binding:"required,gt=0"`
}
