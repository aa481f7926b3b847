package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"localserve.backend/internal/domain/entities"
	domainerrors "localserve.backend/internal/domain/errors"
	"localserve.backend/internal/domain/repositories"
	"localserve.backend/pkg/utils"
)

// CartUsecase handles the advisory cart
type CartUsecase struct {
	cartRepo    repositories.CartRepository
	serviceRepo repositories.ServiceRepository
}

// NewCartUsecase creates a new cart usecase
func NewCartUsecase(cartRepo repositories.CartRepository, serviceRepo repositories.ServiceRepository) *CartUsecase {
	return &CartUsecase{cartRepo: cartRepo, serviceRepo: serviceRepo}
}

// Add puts a service in the user's cart
func (u *CartUsecase) Add(ctx context.Context, userID uuid.UUID, input *entities.AddCartItemInput) (*entities.CartItem, error) {
	if _, err := u.serviceRepo.GetByID(ctx, input.ServiceID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("service not found")
		}
		return nil, err
	}

	item := &entities.CartItem{
		ID:        utils.GenerateUUIDv7(),
		UserID:    userID,
		ServiceID: input.ServiceID,
		HoursDays: input.HoursDays,
		AddedAt:   time.Now(),
	}
	if err := u.cartRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// List returns the user's cart with each entry priced against the
// service's current discounted rate
func (u *CartUsecase) List(ctx context.Context, userID uuid.UUID) ([]*entities.CartItem, error) {
	items, err := u.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if service, err := u.serviceRepo.GetByID(ctx, item.ServiceID); err == nil {
			item.Service = service
			item.TotalAmount = roundMoney(service.FinalPrice() * item.HoursDays)
		}
	}
	return items, nil
}

// Remove deletes a cart entry the user owns
func (u *CartUsecase) Remove(ctx context.Context, userID, itemID uuid.UUID) error {
	err := u.cartRepo.Delete(ctx, itemID, userID)
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.NotFound("cart item not found")
	}
	return err
}
