package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone        string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	PinHash      string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:'user'"`
	Verified     bool      `gorm:"not null;default:false"`

	// Provider payout details, optional
	UpiID       *string `gorm:"type:varchar(100)"`
	BankAccount *string `gorm:"type:varchar(50)"`
	IfscCode    *string `gorm:"type:varchar(20)"`
	BranchName  *string `gorm:"type:varchar(100)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
