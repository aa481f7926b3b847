package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"localserve.backend/internal/domain/entities"
	domainerrors "localserve.backend/internal/domain/errors"
	"localserve.backend/internal/usecases"
)

func TestAddressUsecase_Create(t *testing.T) {
	addressRepo := new(MockAddressRepository)
	uc := usecases.NewAddressUsecase(addressRepo)
	ctx := context.Background()

	userID := uuid.New()
	lat := 11.0168
	addressRepo.On("Create", ctx, mock.AnythingOfType("*entities.Address")).Return(nil).Once()

	address, err := uc.Create(ctx, userID, &entities.CreateAddressInput{
		UserName:   "Kumar",
		StreetName: "12 Gandhi Street",
		City:       "Coimbatore",
		District:   "Coimbatore",
		Pincode:    "641001",
		Latitude:   &lat,
	})
	assert.NoError(t, err)
	assert.Equal(t, userID, address.UserID)
	assert.True(t, address.Latitude.Valid)
	assert.False(t, address.Longitude.Valid)
	assert.False(t, address.Landmark.Valid)
}

func TestAddressUsecase_ListAndDelete(t *testing.T) {
	addressRepo := new(MockAddressRepository)
	uc := usecases.NewAddressUsecase(addressRepo)
	ctx := context.Background()

	userID := uuid.New()
	addressRepo.On("ListByUser", ctx, userID).Return([]*entities.Address{{ID: uuid.New()}}, nil).Once()
	list, err := uc.List(ctx, userID)
	assert.NoError(t, err)
	assert.Len(t, list, 1)

	addressID := uuid.New()
	addressRepo.On("Delete", ctx, addressID, userID).Return(domainerrors.ErrNotFound).Once()
	assert.ErrorIs(t, uc.Delete(ctx, userID, addressID), domainerrors.ErrNotFound)
}
