package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"localserve.backend/internal/domain/entities"
	domainerrors "localserve.backend/internal/domain/errors"
	"localserve.backend/internal/infrastructure/models"
)

// CartRepository implements cart operations
type CartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// Create adds a cart entry
func (r *CartRepository) Create(ctx context.Context, item *entities.CartItem) error {
	m := &models.CartItem{
		ID:        item.ID,
		UserID:    item.UserID,
		ServiceID: item.ServiceID,
		HoursDays: item.HoursDays,
		CreatedAt: item.AddedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// ListByUser lists a user's cart entries, newest first
func (r *CartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.CartItem, error) {
	var itemModels []models.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&itemModels).Error
	if err != nil {
		return nil, err
	}
	items := make([]*entities.CartItem, 0, len(itemModels))
	for i := range itemModels {
		items = append(items, cartItemToEntity(&itemModels[i]))
	}
	return items, nil
}

// Delete removes a cart entry owned by the user
func (r *CartRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DeleteByUserAndService removes every cart entry a user holds for a
// service. Deleting nothing is not an error; the booking flow calls this
// whether or not the service was ever in the cart.
func (r *CartRepository) DeleteByUserAndService(ctx context.Context, userID, serviceID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND service_id = ?", userID, serviceID).
		Delete(&models.CartItem{}).Error
}

func cartItemToEntity(m *models.CartItem) *entities.CartItem {
	return &entities.CartItem{
		ID:        m.ID,
		UserID:    m.UserID,
		ServiceID: m.ServiceID,
		HoursDays: m.HoursDays,
		AddedAt:   m.CreatedAt,
	}
}
