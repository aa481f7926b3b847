package repositories

import (
	"context"

	"github.com/google/uuid"
	"localserve.backend/internal/domain/entities"
)

// ServiceRepository defines service catalog operations
type ServiceRepository interface {
	Create(ctx context.Context, service *entities.Service) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Service, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*entities.Service, error)
	List(ctx context.Context, filter entities.ServiceFilter) ([]*entities.Service, int64, error)
	Update(ctx context.Context, service *entities.Service) error
	Delete(ctx context.Context, id, providerID uuid.UUID) error
}
