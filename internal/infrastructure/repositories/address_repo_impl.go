package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"localserve.backend/internal/domain/entities"
	domainerrors "localserve.backend/internal/domain/errors"
	"localserve.backend/internal/infrastructure/models"
)

// AddressRepository implements address book operations
type AddressRepository struct {
	db *gorm.DB
}

// NewAddressRepository creates a new address repository
func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

// Create saves a new address
func (r *AddressRepository) Create(ctx context.Context, address *entities.Address) error {
	m := &models.Address{
		ID:         address.ID,
		UserID:     address.UserID,
		UserName:   address.UserName,
		StreetName: address.StreetName,
		City:       address.City,
		District:   address.District,
		Pincode:    address.Pincode,
		Landmark:   address.Landmark.Ptr(),
		Latitude:   address.Latitude.Ptr(),
		Longitude:  address.Longitude.Ptr(),
		CreatedAt:  address.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// ListByUser lists a user's saved addresses, newest first
func (r *AddressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Address, error) {
	var addressModels []models.Address
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&addressModels).Error
	if err != nil {
		return nil, err
	}
	addresses := make([]*entities.Address, 0, len(addressModels))
	for i := range addressModels {
		addresses = append(addresses, addressToEntity(&addressModels[i]))
	}
	return addresses, nil
}

// Delete removes an address owned by the user
func (r *AddressRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Address{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func addressToEntity(m *models.Address) *entities.Address {
	return &entities.Address{
		ID:         m.ID,
		UserID:     m.UserID,
		UserName:   m.UserName,
		StreetName: m.StreetName,
		City:       m.City,
		District:   m.District,
		Pincode:    m.Pincode,
		Landmark:   null.StringFromPtr(m.Landmark),
		Latitude:   null.Float64FromPtr(m.Latitude),
		Longitude:  null.Float64FromPtr(m.Longitude),
		CreatedAt:  m.CreatedAt,
	}
}
