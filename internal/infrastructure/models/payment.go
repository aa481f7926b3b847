package models

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingID uuid.UUID `gorm:"type:uuid;index;not null"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Amount    float64   `gorm:"not null"`
	Method    string    `gorm:"type:varchar(20);not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
