package repositories

import (
	"context"

	"github.com/google/uuid"
	"localserve.backend/internal/domain/entities"
)

// AddressRepository defines address book operations
type AddressRepository interface {
	Create(ctx context.Context, address *entities.Address) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Address, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
