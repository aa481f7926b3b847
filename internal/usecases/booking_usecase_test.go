package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"localserve.backend/internal/domain/entities"
	domainerrors "localserve.backend/internal/domain/errors"
	"localserve.backend/internal/usecases"
)

type bookingMocks struct {
	bookingRepo *MockBookingRepository
	serviceRepo *MockServiceRepository
	userRepo    *MockUserRepository
	cartRepo    *MockCartRepository
}

func newBookingUsecaseForTest(strict bool) (*usecases.BookingUsecase, bookingMocks) {
	m := bookingMocks{
		bookingRepo: new(MockBookingRepository),
		serviceRepo: new(MockServiceRepository),
		userRepo:    new(MockUserRepository),
		cartRepo:    new(MockCartRepository),
	}
	uc := usecases.NewBookingUsecase(m.bookingRepo, m.serviceRepo, m.userRepo, m.cartRepo, strict)
	return uc, m
}

func TestBookingUsecase_Create_SnapshotsDiscountedTotal(t *testing.T) {
	uc, m := newBookingUsecaseForTest(false)
	ctx := context.Background()

	userID := uuid.New()
	service := &entities.Service{
		ID:        uuid.New(),
		BasePrice: 2500,
		Discount:  10,
	}
	m.serviceRepo.On("GetByID", ctx, service.ID).Return(service, nil).Once()

	var persisted *entities.Booking
	m.bookingRepo.On("Create", ctx, mock.AnythingOfType("*entities.Booking")).Return(nil).Run(func(args mock.Arguments) {
		persisted = args.Get(1).(*entities.Booking)
	}).Once()
	m.cartRepo.On("DeleteByUserAndService", ctx, userID, service.ID).Return(nil).Once()

	resp, err := uc.Create(ctx, userID, &entities.CreateBookingInput{
		ServiceID:     service.ID,
		ProviderID:    uuid.New(),
		AddressID:     uuid.New(),
		HoursDays:     2,
		PaymentMethod: "upi",
	})
	assert.NoError(t, err)
	assert.Equal(t, 4500.0, resp.TotalAmount)
	assert.Equal(t, entities.BookingStatusPending, persisted.Status)
	assert.Equal(t, 4500.0, persisted.TotalAmount)
	m.cartRepo.AssertExpectations(t)
}

func TestBookingUsecase_Create_InvalidMethodAndMissingService(t *testing.T) {
	uc, m := newBookingUsecaseForTest(false)
	ctx := context.Background()

	_, err := uc.Create(ctx, uuid.New(), &entities.CreateBookingInput{
		ServiceID:     uuid.New(),
		PaymentMethod: "card",
		HoursDays:     1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	missing := uuid.New()
	m.serviceRepo.On("GetByID", ctx, missing).Return(nil, domainerrors.ErrNotFound).Once()
	_, err = uc.Create(ctx, uuid.New(), &entities.CreateBookingInput{
		ServiceID:     missing,
		PaymentMethod: "cash",
		HoursDays:     1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestBookingUsecase_Create_CartCleanupFailureIsIgnored(t *testing.T) {
	uc, m := newBookingUsecaseForTest(false)
	ctx := context.Background()

	userID := uuid.New()
	service := &entities.Service{ID: uuid.New(), BasePrice: 800}
	m.serviceRepo.On("GetByID", ctx, service.ID).Return(service, nil).Once()
	m.bookingRepo.On("Create", ctx, mock.AnythingOfType("*entities.Booking")).Return(nil).Once()
	m.cartRepo.On("DeleteByUserAndService", ctx, userID, service.ID).Return(assert.AnError).Once()

	resp, err := uc.Create(ctx, userID, &entities.CreateBookingInput{
		ServiceID:     service.ID,
		ProviderID:    uuid.New(),
		AddressID:     uuid.New(),
		HoursDays:     1,
		PaymentMethod: "cash",
	})
	assert.NoError(t, err)
	assert.NotNil(t, resp)
}

func TestBookingUsecase_UpdateStatus_Permissive(t *testing.T) {
	uc, m := newBookingUsecaseForTest(false)
	ctx := context.Background()
	id := uuid.New()

	// permissive mode allows backward moves without loading the booking
	m.bookingRepo.On("UpdateStatus", ctx, id, entities.BookingStatusPending).Return(nil).Once()
	assert.NoError(t, uc.UpdateStatus(ctx, id, entities.BookingStatusPending))

	assert.ErrorIs(t, uc.UpdateStatus(ctx, id, entities.BookingStatus("shipped")), domainerrors.ErrInvalidInput)
	m.bookingRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestBookingUsecase_UpdateStatus_Strict(t *testing.T) {
	uc, m := newBookingUsecaseForTest(true)
	ctx := context.Background()
	id := uuid.New()

	m.bookingRepo.On("GetByID", ctx, id).Return(&entities.Booking{
		ID:     id,
		Status: entities.BookingStatusCompleted,
	}, nil)

	err := uc.UpdateStatus(ctx, id, entities.BookingStatusPending)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	m.bookingRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingUsecase_UpdateStatus_StrictAllowsForward(t *testing.T) {
	uc, m := newBookingUsecaseForTest(true)
	ctx := context.Background()
	id := uuid.New()

	m.bookingRepo.On("GetByID", ctx, id).Return(&entities.Booking{
		ID:     id,
		Status: entities.BookingStatusPending,
	}, nil).Once()
	m.bookingRepo.On("UpdateStatus", ctx, id, entities.BookingStatusInProgress).Return(nil).Once()

	assert.NoError(t, uc.UpdateStatus(ctx, id, entities.BookingStatusInProgress))
	m.bookingRepo.AssertExpectations(t)
}

func TestBookingUsecase_List_ScopedByRole(t *testing.T) {
	uc, m := newBookingUsecaseForTest(false)
	ctx := context.Background()
	callerID := uuid.New()

	booking := &entities.Booking{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		ServiceID:  uuid.New(),
		ProviderID: uuid.New(),
		Status:     entities.BookingStatusPending,
		CreatedAt:  time.Now(),
	}
	service := &entities.Service{ID: booking.ServiceID, Name: "Deep Cleaning"}
	customer := &entities.User{ID: booking.UserID, Name: "Kumar", Email: "kumar@example.com"}
	provider := &entities.User{ID: booking.ProviderID, Name: "Ravi", Email: "ravi@example.com"}

	m.bookingRepo.On("ListByUser", ctx, callerID).Return([]*entities.Booking{booking}, nil).Once()
	m.serviceRepo.On("GetByID", ctx, booking.ServiceID).Return(service, nil)
	m.userRepo.On("GetByID", ctx, booking.UserID).Return(customer, nil)
	m.userRepo.On("GetByID", ctx, booking.ProviderID).Return(provider, nil)

	got, err := uc.List(ctx, callerID, entities.UserRoleUser)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "Deep Cleaning", got[0].Service.Name)
	assert.Equal(t, "Kumar", got[0].User.Name)
	assert.Equal(t, "Ravi", got[0].Provider.Name)

	m.bookingRepo.On("ListByProvider", ctx, callerID).Return([]*entities.Booking{}, nil).Once()
	_, err = uc.List(ctx, callerID, entities.UserRoleProvider)
	assert.NoError(t, err)

	m.bookingRepo.On("ListAll", ctx).Return([]*entities.Booking{}, nil).Once()
	_, err = uc.List(ctx, callerID, entities.UserRoleAdmin)
	assert.NoError(t, err)
	m.bookingRepo.AssertExpectations(t)
}

func TestBookingUsecase_Get(t *testing.T) {
	uc, m := newBookingUsecaseForTest(false)
	ctx := context.Background()

	booking := &entities.Booking{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		ServiceID:  uuid.New(),
		ProviderID: uuid.New(),
	}
	m.bookingRepo.On("GetByID", ctx, booking.ID).Return(booking, nil).Once()
	m.serviceRepo.On("GetByID", ctx, booking.ServiceID).Return(&entities.Service{ID: booking.ServiceID}, nil)
	m.userRepo.On("GetByID", ctx, booking.UserID).Return(nil, domainerrors.ErrNotFound)
	m.userRepo.On("GetByID", ctx, booking.ProviderID).Return(nil, domainerrors.ErrNotFound)

	got, err := uc.Get(ctx, booking.ID)
	assert.NoError(t, err)
	assert.NotNil(t, got.Service)
	assert.Nil(t, got.User)

	missing := uuid.New()
	m.bookingRepo.On("GetByID", ctx, missing).Return(nil, domainerrors.ErrNotFound).Once()
	_, err = uc.Get(ctx, missing)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
