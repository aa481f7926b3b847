package models

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;index;not null"`
	ServiceID     uuid.UUID `gorm:"type:uuid;index;not null"`
	ProviderID    uuid.UUID `gorm:"type:uuid;index;not null"`
	AddressID     uuid.UUID `gorm:"type:uuid;not null"`
	HoursDays     float64   `gorm:"not null"`
	TotalAmount   float64   `gorm:"not null"`
	PaymentMethod string    `gorm:"type:varchar(20);not null"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending'"`
	PaymentStatus *string   `gorm:"type:varchar(20)"`
	Notes         *string   `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
