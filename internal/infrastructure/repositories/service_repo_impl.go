package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"localserve.backend/internal/domain/entities"
	domainerrors "localserve.backend/internal/domain/errors"
	"localserve.backend/internal/infrastructure/models"
)

// ServiceRepository implements service catalog operations
type ServiceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new service repository
func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// Create creates a new service listing
func (r *ServiceRepository) Create(ctx context.Context, service *entities.Service) error {
	m := &models.Service{
		ID:          service.ID,
		ProviderID:  service.ProviderID,
		Name:        service.Name,
		Category:    service.Category,
		Description: service.Description,
		BasePrice:   service.BasePrice,
		Unit:        service.Unit,
		Discount:    service.Discount,
		CreatedAt:   service.CreatedAt,
		UpdatedAt:   service.UpdatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets a service by ID
func (r *ServiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Service, error) {
	var m models.Service
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return serviceToEntity(&m), nil
}

// ListByProvider lists all services owned by a provider
func (r *ServiceRepository) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*entities.Service, error) {
	var serviceModels []models.Service
	err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&serviceModels).Error
	if err != nil {
		return nil, err
	}
	return serviceModelsToEntities(serviceModels), nil
}

// List lists services matching the discovery filter with pagination
func (r *ServiceRepository) List(ctx context.Context, filter entities.ServiceFilter) ([]*entities.Service, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Service{})

	if filter.Category != "" {
		query = query.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(filter.Category)+"%")
	}
	if filter.Keyword != "" {
		kw := "%" + strings.ToLower(filter.Keyword) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?", kw, kw, kw)
	}
	if filter.MinPrice != nil {
		query = query.Where("base_price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("base_price <= ?", *filter.MaxPrice)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if filter.Limit > 0 {
		offset := (filter.Page - 1) * filter.Limit
		if offset < 0 {
			offset = 0
		}
		query = query.Limit(filter.Limit).Offset(offset)
	}

	var serviceModels []models.Service
	if err := query.Find(&serviceModels).Error; err != nil {
		return nil, 0, err
	}
	return serviceModelsToEntities(serviceModels), total, nil
}

// Update applies a service update; ownership is checked by provider id
func (r *ServiceRepository) Update(ctx context.Context, service *entities.Service) error {
	updates := map[string]interface{}{
		"name":        service.Name,
		"category":    service.Category,
		"description": service.Description,
		"base_price":  service.BasePrice,
		"unit":        service.Unit,
		"discount":    service.Discount,
		"updated_at":  time.Now(),
	}
	result := r.db.WithContext(ctx).Model(&models.Service{}).
		Where("id = ? AND provider_id = ?", service.ID, service.ProviderID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a service owned by the provider
func (r *ServiceRepository) Delete(ctx context.Context, id, providerID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND provider_id = ?", id, providerID).
		Delete(&models.Service{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func serviceToEntity(m *models.Service) *entities.Service {
	return &entities.Service{
		ID:          m.ID,
		ProviderID:  m.ProviderID,
		Name:        m.Name,
		Category:    m.Category,
		Description: m.Description,
		BasePrice:   m.BasePrice,
		Unit:        m.Unit,
		Discount:    m.Discount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func serviceModelsToEntities(serviceModels []models.Service) []*entities.Service {
	services := make([]*entities.Service, 0, len(serviceModels))
	for i := range serviceModels {
		services = append(services, serviceToEntity(&serviceModels[i]))
	}
	return services
}
