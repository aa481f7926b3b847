package repositories

import (
	"context"

	"github.com/google/uuid"
	"localserve.backend/internal/domain/entities"
)

// PaymentRepository defines payment record operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *entities.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Payment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.PaymentStatus) error
}
