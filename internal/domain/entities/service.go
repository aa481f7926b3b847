package entities

import (
	"time"

	"github.com/google/uuid"
)

// Service represents a provider-owned service listing
type Service struct {
	ID          uuid.UUID `json:"serviceId"`
	ProviderID  uuid.UUID `json:"providerId"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	BasePrice   float64   `json:"basePrice"`
	Unit        string    `json:"unit"`
	Discount    float64   `json:"discount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Enrichment, resolved at read time
	Provider *UserSummary `json:"provider,omitempty"`
	Rating   float64      `json:"rating,omitempty"`
}

// FinalPrice applies the discount percentage to the base price
func (s *Service) FinalPrice() float64 {
	return s.BasePrice * (1 - s.Discount/100)
}

// CreateServiceInput represents input for creating a service
type CreateServiceInput struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description" binding:"required"`
	BasePrice   float64 `json:"basePrice" binding:"required,gt=0"`
	Unit        string  `json:"unit" binding:"required"`
	Discount    float64 `json:"discount" binding:"gte=0,lte=100"`
}

// UpdateServiceInput represents a partial service update
type UpdateServiceInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	BasePrice   *float64 `json:"basePrice"`
	Discount    *float64 `json:"discount"`
}

// ServiceFilter narrows service discovery queries
type ServiceFilter struct {
	Category string   `form:"category"`
	Keyword  string   `form:"keyword"`
	MinPrice *float64 `form:"minPrice"`
	MaxPrice *float64 `form:"maxPrice"`
	Page     int      `form:"page"`
	Limit    int      `form:"limit"`
}
