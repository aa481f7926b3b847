package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"localserve.backend/internal/domain/entities"
	domainerrors "localserve.backend/internal/domain/errors"
	"localserve.backend/internal/domain/repositories"
	"localserve.backend/pkg/utils"
)

// AddressUsecase handles the per-user address book
type AddressUsecase struct {
	addressRepo repositories.AddressRepository
}

// NewAddressUsecase creates a new address usecase
func NewAddressUsecase(addressRepo repositories.AddressRepository) *AddressUsecase {
	return &AddressUsecase{addressRepo: addressRepo}
}

// Create saves a new address for the user
func (u *AddressUsecase) Create(ctx context.Context, userID uuid.UUID, input *entities.CreateAddressInput) (*entities.Address, error) {
	address := &entities.Address{
		ID:         utils.GenerateUUIDv7(),
		UserID:     userID,
		UserName:   input.UserName,
		StreetName: input.StreetName,
		City:       input.City,
		District:   input.District,
		Pincode:    input.Pincode,
		Landmark:   nullFromString(input.Landmark),
		Latitude:   null.Float64FromPtr(input.Latitude),
		Longitude:  null.Float64FromPtr(input.Longitude),
		CreatedAt:  time.Now(),
	}
	if err := u.addressRepo.Create(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

// List returns the user's saved addresses
func (u *AddressUsecase) List(ctx context.Context, userID uuid.UUID) ([]*entities.Address, error) {
	return u.addressRepo.ListByUser(ctx, userID)
}

// Delete removes an address the user owns
func (u *AddressUsecase) Delete(ctx context.Context, userID, addressID uuid.UUID) error {
	err := u.addressRepo.Delete(ctx, addressID, userID)
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.NotFound("address not found")
	}
	return err
}
