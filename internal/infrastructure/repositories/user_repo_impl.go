package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"localserve.backend/internal/domain/entities"
	domainerrors "localserve.backend/internal/domain/errors"
	"localserve.backend/internal/infrastructure/models"
)

// UserRepository implements user credential-store operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := &models.User{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Phone:        user.Phone,
		PasswordHash: user.PasswordHash,
		PinHash:      user.PinHash,
		Role:         string(user.Role),
		Verified:     user.Verified,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// GetByEmailOrPhone gets a user matching the identifier by email or phone
func (r *UserRepository) GetByEmailOrPhone(ctx context.Context, identifier string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("email = ? OR phone = ?", identifier, identifier).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// MarkVerified flips the verified flag after a successful OTP check
func (r *UserRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"verified":   true,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdatePinHash replaces the stored PIN hash
func (r *UserRepository) UpdatePinHash(ctx context.Context, id uuid.UUID, pinHash string) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"pin_hash":   pinHash,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateProviderDetails replaces a provider's payout details
func (r *UserRepository) UpdateProviderDetails(ctx context.Context, id uuid.UUID, details *entities.ProviderDetails) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"upi_id":       details.UpiID.Ptr(),
		"bank_account": details.BankAccount.Ptr(),
		"ifsc_code":    details.IfscCode.Ptr(),
		"branch_name":  details.BranchName.Ptr(),
		"updated_at":   time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func userToEntity(m *models.User) *entities.User {
	user := &entities.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		Phone:        m.Phone,
		PasswordHash: m.PasswordHash,
		PinHash:      m.PinHash,
		Role:         entities.UserRole(m.Role),
		Verified:     m.Verified,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.UpiID != nil || m.BankAccount != nil || m.IfscCode != nil || m.BranchName != nil {
		user.ProviderDetails = &entities.ProviderDetails{
			UpiID:       null.StringFromPtr(m.UpiID),
			BankAccount: null.StringFromPtr(m.BankAccount),
			IfscCode:    null.StringFromPtr(m.IfscCode),
			BranchName:  null.StringFromPtr(m.BranchName),
		}
	}
	return user
}
