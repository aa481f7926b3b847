package models

import (
	"time"

	"github.com/google/uuid"
)

type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProviderID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Category    string    `gorm:"type:varchar(100);index;not null"`
	Description string    `gorm:"type:text;not null"`
	BasePrice   float64   `gorm:"not null"`
	Unit        string    `gorm:"type:varchar(50);not null"`
	Discount    float64   `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
