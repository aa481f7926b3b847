package repositories

import (
	"context"

	"github.com/google/uuid"
	"localserve.backend/internal/domain/entities"
)

// CartRepository defines cart operations. The booking flow relies only on
// DeleteByUserAndService to clear entries after a booking is created.
type CartRepository interface {
	Create(ctx context.Context, item *entities.CartItem) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.CartItem, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	DeleteByUserAndService(ctx context.Context, userID, serviceID uuid.UUID) error
}
