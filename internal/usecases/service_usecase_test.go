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

func TestServiceUsecase_Create(t *testing.T) {
	serviceRepo := new(MockServiceRepository)
	uc := usecases.NewServiceUsecase(serviceRepo, new(MockUserRepository))
	ctx := context.Background()

	providerID := uuid.New()
	serviceRepo.On("Create", ctx, mock.AnythingOfType("*entities.Service")).Return(nil).Once()

	service, err := uc.Create(ctx, providerID, &entities.CreateServiceInput{
		Name:        "Deep Cleaning",
		Category:    "cleaning",
		Description: "Full home deep clean",
		BasePrice:   2500,
		Unit:        "per_day",
		Discount:    10,
	})
	assert.NoError(t, err)
	assert.Equal(t, providerID, service.ProviderID)
	assert.Equal(t, 2250.0, service.FinalPrice())
}

func TestServiceUsecase_Update_OwnershipAndBounds(t *testing.T) {
	serviceRepo := new(MockServiceRepository)
	uc := usecases.NewServiceUsecase(serviceRepo, new(MockUserRepository))
	ctx := context.Background()

	owner := uuid.New()
	service := &entities.Service{ID: uuid.New(), ProviderID: owner, Name: "Plumbing", BasePrice: 800}
	serviceRepo.On("GetByID", ctx, service.ID).Return(service, nil)

	_, err := uc.Update(ctx, uuid.New(), service.ID, &entities.UpdateServiceInput{})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	badPrice := -5.0
	_, err = uc.Update(ctx, owner, service.ID, &entities.UpdateServiceInput{BasePrice: &badPrice})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	badDiscount := 150.0
	_, err = uc.Update(ctx, owner, service.ID, &entities.UpdateServiceInput{Discount: &badDiscount})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	newName := "Plumbing Pro"
	newPrice := 900.0
	serviceRepo.On("Update", ctx, mock.AnythingOfType("*entities.Service")).Return(nil).Once()
	updated, err := uc.Update(ctx, owner, service.ID, &entities.UpdateServiceInput{
		Name:      &newName,
		BasePrice: &newPrice,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Plumbing Pro", updated.Name)
	assert.Equal(t, 900.0, updated.BasePrice)
}

func TestServiceUsecase_Delete(t *testing.T) {
	serviceRepo := new(MockServiceRepository)
	uc := usecases.NewServiceUsecase(serviceRepo, new(MockUserRepository))
	ctx := context.Background()

	providerID := uuid.New()
	serviceID := uuid.New()
	serviceRepo.On("Delete", ctx, serviceID, providerID).Return(domainerrors.ErrNotFound).Once()

	err := uc.Delete(ctx, providerID, serviceID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestServiceUsecase_List_EnrichesAndPaginates(t *testing.T) {
	serviceRepo := new(MockServiceRepository)
	userRepo := new(MockUserRepository)
	uc := usecases.NewServiceUsecase(serviceRepo, userRepo)
	ctx := context.Background()

	providerID := uuid.New()
	services := []*entities.Service{
		{ID: uuid.New(), ProviderID: providerID, Name: "Deep Cleaning"},
		{ID: uuid.New(), ProviderID: providerID, Name: "Sofa Cleaning"},
	}
	serviceRepo.On("List", ctx, mock.AnythingOfType("entities.ServiceFilter")).Return(services, int64(7), nil).Once()
	userRepo.On("GetByID", ctx, providerID).Return(&entities.User{
		ID:    providerID,
		Name:  "Ravi",
		Email: "ravi@example.com",
	}, nil)

	result, err := uc.List(ctx, entities.ServiceFilter{Page: 2, Limit: 2})
	assert.NoError(t, err)
	assert.Len(t, result.Services, 2)
	assert.Equal(t, "Ravi", result.Services[0].Provider.Name)
	assert.GreaterOrEqual(t, result.Services[0].Rating, 3.5)
	assert.LessOrEqual(t, result.Services[0].Rating, 5.0)
	assert.EqualValues(t, 7, result.Pagination.TotalCount)
	assert.Equal(t, 4, result.Pagination.TotalPages)
	assert.Equal(t, 2, result.Pagination.Page)
}

func TestServiceUsecase_Get(t *testing.T) {
	serviceRepo := new(MockServiceRepository)
	userRepo := new(MockUserRepository)
	uc := usecases.NewServiceUsecase(serviceRepo, userRepo)
	ctx := context.Background()

	service := &entities.Service{ID: uuid.New(), ProviderID: uuid.New(), Name: "Pipe Repair"}
	serviceRepo.On("GetByID", ctx, service.ID).Return(service, nil).Once()
	userRepo.On("GetByID", ctx, service.ProviderID).Return(nil, domainerrors.ErrNotFound).Once()

	got, err := uc.Get(ctx, service.ID)
	assert.NoError(t, err)
	assert.Nil(t, got.Provider)
	assert.Greater(t, got.Rating, 0.0)

	missing := uuid.New()
	serviceRepo.On("GetByID", ctx, missing).Return(nil, domainerrors.ErrNotFound).Once()
	_, err = uc.Get(ctx, missing)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
