package models

import "time"

// Setting is a keyed site-wide settings record; Value holds JSON
type Setting struct {
	Key       string `gorm:"type:varchar(50);primaryKey"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}
