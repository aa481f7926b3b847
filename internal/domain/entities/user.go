package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleUser     UserRole = "user"
	UserRoleProvider UserRole = "provider"
	UserRoleAdmin    UserRole = "admin"
)

// Valid reports whether the role is one of the closed set
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleUser, UserRoleProvider, UserRoleAdmin:
		return true
	}
	return false
}

// LoginMode selects which credential a login attempt presents
type LoginMode string

const (
	LoginModePassword LoginMode = "password"
	LoginModePin      LoginMode = "pin"
)

// User represents a user entity. Password and PIN are stored as one-way
// hashes and never serialized.
type User struct {
	ID              uuid.UUID        `json:"userId"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone"`
	PasswordHash    string           `json:"-"`
	PinHash         string           `json:"-"`
	Role            UserRole         `json:"role"`
	Verified        bool             `json:"verified"`
	ProviderDetails *ProviderDetails `json:"paymentDetails,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// Summary returns the redacted subset safe to embed in other responses
func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
}

// UserSummary is the redacted user view embedded in bookings and services
type UserSummary struct {
	ID    uuid.UUID `json:"userId"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
}

// ProviderDetails holds a provider's payout details
type ProviderDetails struct {
	UpiID       null.String `json:"upiId,omitempty"`
	BankAccount null.String `json:"bankAccount,omitempty"`
	IfscCode    null.String `json:"ifscCode,omitempty"`
	BranchName  null.String `json:"branchName,omitempty"`
}

// RegisterInput represents input for user registration
type RegisterInput struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	Password   string `json:"password" binding:"required,min=6"`
	Pin        string `json:"pin" binding:"required,len=4,numeric"`
	PinConfirm string `json:"pinConfirm" binding:"required,len=4,numeric"`
	Role       string `json:"role" binding:"required,oneof=user provider"`
}

// LoginInput represents input for dual-mode login
type LoginInput struct {
	EmailOrPhone string `json:"emailOrPhone" binding:"required"`
	Password     string `json:"password"`
	Pin          string `json:"pin"`
	LoginType    string `json:"loginType" binding:"required,oneof=password pin"`
}

// OTPRequestInput requests a one-time code for a contact identifier
type OTPRequestInput struct {
	Contact string `json:"contact" binding:"required"`
}

// OTPVerifyInput verifies a one-time code for a contact identifier
type OTPVerifyInput struct {
	Contact string `json:"contact" binding:"required"`
	OTP     string `json:"otp" binding:"required,len=6,numeric"`
}

// ChangePinInput represents input for the OTP-gated PIN change flow
type ChangePinInput struct {
	EmailOrPhone string `json:"emailOrPhone" binding:"required"`
	OTP          string `json:"otp" binding:"required,len=6,numeric"`
	NewPin       string `json:"newPin" binding:"required,len=4,numeric"`
	ConfirmPin   string `json:"confirmPin" binding:"required,len=4,numeric"`
}

// ProviderDetailsInput represents input for updating provider payout details
type ProviderDetailsInput struct {
	UpiID       string `json:"upiId"`
	BankAccount string `json:"bankAccount"`
	IfscCode    string `json:"ifscCode"`
	BranchName  string `json:"branchName"`
}

// AuthResponse represents a successful login
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
