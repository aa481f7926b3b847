package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"localserve.backend/internal/domain/entities"
	domainerrors "localserve.backend/internal/domain/errors"
	"localserve.backend/internal/domain/repositories"
	"localserve.backend/pkg/logger"
	"localserve.backend/pkg/utils"
)

// BookingUsecase handles the booking lifecycle
type BookingUsecase struct {
	bookingRepo repositories.BookingRepository
	serviceRepo repositories.ServiceRepository
	userRepo    repositories.UserRepository
	cartRepo    repositories.CartRepository

	// strictTransitions enables the lifecycle graph check on status
	// updates. Off by default: the deployed system accepted any of the
	// four statuses in any order.
	strictTransitions bool
}

// NewBookingUsecase creates a new booking usecase
func NewBookingUsecase(
	bookingRepo repositories.BookingRepository,
	serviceRepo repositories.ServiceRepository,
	userRepo repositories.UserRepository,
	cartRepo repositories.CartRepository,
	strictTransitions bool,
) *BookingUsecase {
	return &BookingUsecase{
		bookingRepo:       bookingRepo,
		serviceRepo:       serviceRepo,
		userRepo:          userRepo,
		cartRepo:          cartRepo,
		strictTransitions: strictTransitions,
	}
}

// Create books a service for the calling user. The total amount is
// computed from the service's discounted price once, at creation time,
// and stays fixed for the life of the booking.
func (u *BookingUsecase) Create(ctx context.Context, userID uuid.UUID, input *entities.CreateBookingInput) (*entities.CreateBookingResponse, error) {
	method := entities.PaymentMethod(input.PaymentMethod)
	if !method.Valid() {
		return nil, domainerrors.BadRequest("invalid payment method")
	}

	service, err := u.serviceRepo.GetByID(ctx, input.ServiceID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("service not found")
		}
		return nil, err
	}

	now := time.Now()
	booking := &entities.Booking{
		ID:            utils.GenerateUUIDv7(),
		UserID:        userID,
		ServiceID:     service.ID,
		ProviderID:    input.ProviderID,
		AddressID:     input.AddressID,
		HoursDays:     input.HoursDays,
		TotalAmount:   roundMoney(service.FinalPrice() * input.HoursDays),
		PaymentMethod: method,
		Status:        entities.BookingStatusPending,
		Notes:         nullFromString(input.Notes),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := u.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	// Advisory cleanup in a separate write: a stale cart entry is
	// harmless, a failed booking rollback would not be.
	if err := u.cartRepo.DeleteByUserAndService(ctx, userID, service.ID); err != nil {
		logger.WithContext(ctx).Warn("cart cleanup after booking failed",
			zap.String("booking_id", booking.ID.String()),
			zap.Error(err))
	}

	return &entities.CreateBookingResponse{
		Message:     "booking created",
		BookingID:   booking.ID,
		TotalAmount: booking.TotalAmount,
	}, nil
}

// UpdateStatus moves a booking to a new lifecycle status
func (u *BookingUsecase) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entities.BookingStatus) error {
	if !status.Valid() {
		return domainerrors.BadRequest("invalid status")
	}

	if u.strictTransitions {
		booking, err := u.bookingRepo.GetByID(ctx, bookingID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return domainerrors.NotFound("booking not found")
			}
			return err
		}
		if !booking.Status.CanTransitionTo(status) {
			return domainerrors.BadRequest("invalid status transition")
		}
	}

	err := u.bookingRepo.UpdateStatus(ctx, bookingID, status)
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.NotFound("booking not found")
	}
	return err
}

// List returns bookings scoped by the caller's role: users see their own,
// providers see bookings assigned to them, admins see everything
func (u *BookingUsecase) List(ctx context.Context, callerID uuid.UUID, role entities.UserRole) ([]*entities.Booking, error) {
	var (
		bookings []*entities.Booking
		err      error
	)
	switch role {
	case entities.UserRoleProvider:
		bookings, err = u.bookingRepo.ListByProvider(ctx, callerID)
	case entities.UserRoleAdmin:
		bookings, err = u.bookingRepo.ListAll(ctx)
	default:
		bookings, err = u.bookingRepo.ListByUser(ctx, callerID)
	}
	if err != nil {
		return nil, err
	}
	for _, booking := range bookings {
		u.enrich(ctx, booking)
	}
	return bookings, nil
}

// Get returns one booking with its service attached
func (u *BookingUsecase) Get(ctx context.Context, bookingID uuid.UUID) (*entities.Booking, error) {
	booking, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("booking not found")
		}
		return nil, err
	}
	u.enrich(ctx, booking)
	return booking, nil
}

// enrich attaches the service and the user and provider summaries.
// Lookups that fail leave the field empty rather than failing the read.
func (u *BookingUsecase) enrich(ctx context.Context, booking *entities.Booking) {
	if service, err := u.serviceRepo.GetByID(ctx, booking.ServiceID); err == nil {
		booking.Service = service
	}
	if user, err := u.userRepo.GetByID(ctx, booking.UserID); err == nil {
		booking.User = user.Summary()
	}
	if provider, err := u.userRepo.GetByID(ctx, booking.ProviderID); err == nil {
		booking.Provider = provider.Summary()
	}
}
