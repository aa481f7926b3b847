package models

import (
	"time"

	"github.com/google/uuid"
)

type CartItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null"`
	HoursDays float64   `gorm:"not null"`
	CreatedAt time.Time
}
