package repositories

import (
	"context"

	"github.com/google/uuid"
	"localserve.backend/internal/domain/entities"
)

// BookingRepository defines booking record operations
type BookingRepository interface {
	Create(ctx context.Context, booking *entities.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Booking, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*entities.Booking, error)
	ListAll(ctx context.Context) ([]*entities.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.BookingStatus) error
	MarkPaid(ctx context.Context, id uuid.UUID) error
}
