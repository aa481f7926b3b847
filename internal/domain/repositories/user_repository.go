package repositories

import (
	"context"

	"github.com/google/uuid"
	"localserve.backend/internal/domain/entities"
)

// UserRepository defines credential-store operations for users
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmailOrPhone(ctx context.Context, identifier string) (*entities.User, error)
	MarkVerified(ctx context.Context, id uuid.UUID) error
	UpdatePinHash(ctx context.Context, id uuid.UUID, pinHash string) error
	UpdateProviderDetails(ctx context.Context, id uuid.UUID, details *entities.ProviderDetails) error
}
