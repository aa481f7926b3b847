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

// ServiceUsecase handles the provider catalog and public discovery
type ServiceUsecase struct {
	serviceRepo repositories.ServiceRepository
	userRepo    repositories.UserRepository
}

// NewServiceUsecase creates a new service usecase
func NewServiceUsecase(serviceRepo repositories.ServiceRepository, userRepo repositories.UserRepository) *ServiceUsecase {
	return &ServiceUsecase{serviceRepo: serviceRepo, userRepo: userRepo}
}

// ServiceListResult pairs a discovery page with its pagination metadata
type ServiceListResult struct {
	Services   []*entities.Service  `json:"services"`
	Pagination utils.PaginationMeta `json:"pagination"`
}

// Create adds a listing owned by the calling provider
func (u *ServiceUsecase) Create(ctx context.Context, providerID uuid.UUID, input *entities.CreateServiceInput) (*entities.Service, error) {
	now := time.Now()
	service := &entities.Service{
		ID:          utils.GenerateUUIDv7(),
		ProviderID:  providerID,
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		BasePrice:   input.BasePrice,
		Unit:        input.Unit,
		Discount:    input.Discount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.serviceRepo.Create(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

// ListOwn lists the calling provider's listings
func (u *ServiceUsecase) ListOwn(ctx context.Context, providerID uuid.UUID) ([]*entities.Service, error) {
	return u.serviceRepo.ListByProvider(ctx, providerID)
}

// Update applies a partial update to a listing the provider owns
func (u *ServiceUsecase) Update(ctx context.Context, providerID, serviceID uuid.UUID, input *entities.UpdateServiceInput) (*entities.Service, error) {
	service, err := u.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("service not found")
		}
		return nil, err
	}
	if service.ProviderID != providerID {
		return nil, domainerrors.Forbidden("service belongs to another provider")
	}

	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.BasePrice != nil {
		if *input.BasePrice <= 0 {
			return nil, domainerrors.BadRequest("base price must be positive")
		}
		service.BasePrice = *input.BasePrice
	}
	if input.Discount != nil {
		if *input.Discount < 0 || *input.Discount > 100 {
			return nil, domainerrors.BadRequest("discount must be between 0 and 100")
		}
		service.Discount = *input.Discount
	}
	service.UpdatedAt = time.Now()

	if err := u.serviceRepo.Update(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

// Delete removes a listing the provider owns
func (u *ServiceUsecase) Delete(ctx context.Context, providerID, serviceID uuid.UUID) error {
	err := u.serviceRepo.Delete(ctx, serviceID, providerID)
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.NotFound("service not found")
	}
	return err
}

// List runs public discovery with filters and pagination, enriching each
// result with the provider summary and a placeholder rating
func (u *ServiceUsecase) List(ctx context.Context, filter entities.ServiceFilter) (*ServiceListResult, error) {
	params := utils.GetPaginationParams(filter.Page, filter.Limit)
	filter.Page = params.Page
	filter.Limit = params.Limit

	services, total, err := u.serviceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for _, service := range services {
		u.enrich(ctx, service)
	}
	return &ServiceListResult{
		Services:   services,
		Pagination: utils.CalculateMeta(total, params.Page, params.Limit),
	}, nil
}

// Get returns one listing with provider summary and rating
func (u *ServiceUsecase) Get(ctx context.Context, serviceID uuid.UUID) (*entities.Service, error) {
	service, err := u.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("service not found")
		}
		return nil, err
	}
	u.enrich(ctx, service)
	return service, nil
}

func (u *ServiceUsecase) enrich(ctx context.Context, service *entities.Service) {
	if provider, err := u.userRepo.GetByID(ctx, service.ProviderID); err == nil {
		service.Provider = provider.Summary()
	}
	service.Rating = mockRating(service.ID)
}

// mockRating derives a stable placeholder in [3.5, 5.0] from the service
// id until a real review system exists
func mockRating(id uuid.UUID) float64 {
	var sum int
	for _, b := range id {
		sum += int(b)
	}
	return 3.5 + float64(sum%16)/10
}
