package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Address represents a saved service address owned by a user
type Address struct {
	ID         uuid.UUID    `json:"addressId"`
	UserID     uuid.UUID    `json:"userId"`
	UserName   string       `json:"userName"`
	StreetName string       `json:"streetName"`
	City       string       `json:"city"`
	District   string       `json:"district"`
	Pincode    string       `json:"pincode"`
	Landmark   null.String  `json:"landmark,omitempty"`
	Latitude   null.Float64 `json:"latitude,omitempty"`
	Longitude  null.Float64 `json:"longitude,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
}

// CreateAddressInput represents input for saving an address
type CreateAddressInput struct {
	UserName   string   `json:"userName" binding:"required"`
	StreetName string   `json:"streetName" binding:"required"`
	City       string   `json:"city" binding:"required"`
	District   string   `json:"district" binding:"required"`
	Pincode    string   `json:"pincode" binding:"required,len=6,numeric"`
	Landmark   string   `json:"landmark"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}
