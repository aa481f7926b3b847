package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"localserve.backend/internal/domain/entities"
	domainerrors "localserve.backend/internal/domain/errors"
	"localserve.backend/internal/infrastructure/models"
)

// BookingRepository implements booking record operations
type BookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create creates a new booking
func (r *BookingRepository) Create(ctx context.Context, booking *entities.Booking) error {
	m := &models.Booking{
		ID:            booking.ID,
		UserID:        booking.UserID,
		ServiceID:     booking.ServiceID,
		ProviderID:    booking.ProviderID,
		AddressID:     booking.AddressID,
		HoursDays:     booking.HoursDays,
		TotalAmount:   booking.TotalAmount,
		PaymentMethod: string(booking.PaymentMethod),
		Status:        string(booking.Status),
		PaymentStatus: booking.PaymentStatus.Ptr(),
		Notes:         booking.Notes.Ptr(),
		CreatedAt:     booking.CreatedAt,
		UpdatedAt:     booking.UpdatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets a booking by ID
func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Booking, error) {
	var m models.Booking
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return bookingToEntity(&m), nil
}

// ListByUser lists bookings placed by a user, newest first
func (r *BookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Booking, error) {
	var bookingModels []models.Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookingModels).Error
	if err != nil {
		return nil, err
	}
	return bookingModelsToEntities(bookingModels), nil
}

// ListByProvider lists bookings assigned to a provider, newest first
func (r *BookingRepository) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*entities.Booking, error) {
	var bookingModels []models.Booking
	err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&bookingModels).Error
	if err != nil {
		return nil, err
	}
	return bookingModelsToEntities(bookingModels), nil
}

// ListAll lists every booking, newest first
func (r *BookingRepository) ListAll(ctx context.Context) ([]*entities.Booking, error) {
	var bookingModels []models.Booking
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&bookingModels).Error
	if err != nil {
		return nil, err
	}
	return bookingModelsToEntities(bookingModels), nil
}

// UpdateStatus sets the booking lifecycle status
func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.BookingStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Booking{}).
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

// MarkPaid stamps the booking's payment status after settlement
func (r *BookingRepository) MarkPaid(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"payment_status": entities.BookingPaymentStatusPaid,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func bookingToEntity(m *models.Booking) *entities.Booking {
	return &entities.Booking{
		ID:            m.ID,
		UserID:        m.UserID,
		ServiceID:     m.ServiceID,
		ProviderID:    m.ProviderID,
		AddressID:     m.AddressID,
		HoursDays:     m.HoursDays,
		TotalAmount:   m.TotalAmount,
		PaymentMethod: entities.PaymentMethod(m.PaymentMethod),
		Status:        entities.BookingStatus(m.Status),
		PaymentStatus: null.StringFromPtr(m.PaymentStatus),
		Notes:         null.StringFromPtr(m.Notes),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func bookingModelsToEntities(bookingModels []models.Booking) []*entities.Booking {
	bookings := make([]*entities.Booking, 0, len(bookingModels))
	for i := range bookingModels {
		bookings = append(bookings, bookingToEntity(&bookingModels[i]))
	}
	return bookings
}
