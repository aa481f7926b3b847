package models

import (
	"time"

	"github.com/google/uuid"
)

type Address struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;index;not null"`
	UserName   string    `gorm:"type:varchar(100);not null"`
	StreetName string    `gorm:"type:varchar(200);not null"`
	City       string    `gorm:"type:varchar(100);not null"`
	District   string    `gorm:"type:varchar(100);not null"`
	Pincode    string    `gorm:"type:varchar(6);not null"`
	Landmark   *string   `gorm:"type:varchar(200)"`
	Latitude   *float64
	Longitude  *float64
	CreatedAt  time.Time
}
