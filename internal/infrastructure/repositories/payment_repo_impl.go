package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"localserve.backend/internal/domain/entities"
	domainerrors "localserve.backend/internal/domain/errors"
	"localserve.backend/internal/infrastructure/models"
)

// PaymentRepository implements payment record operations
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create creates a new payment order record
func (r *PaymentRepository) Create(ctx context.Context, payment *entities.Payment) error {
	m := &models.Payment{
		ID:        payment.ID,
		BookingID: payment.BookingID,
		UserID:    payment.UserID,
		Amount:    payment.Amount,
		Method:    string(payment.Method),
		Status:    string(payment.Status),
		CreatedAt: payment.CreatedAt,
		UpdatedAt: payment.UpdatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets a payment by ID
func (r *PaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Payment, error) {
	var m models.Payment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return paymentToEntity(&m), nil
}

// UpdateStatus sets the payment status
func (r *PaymentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.PaymentStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Payment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
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

func paymentToEntity(m *models.Payment) *entities.Payment {
	return &entities.Payment{
		ID:        m.ID,
		BookingID: m.BookingID,
		UserID:    m.UserID,
		Amount:    m.Amount,
		Method:    entities.PaymentMethod(m.Method),
		Status:    entities.PaymentStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
