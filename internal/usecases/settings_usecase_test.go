package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"localserve.backend/internal/domain/entities"
	domainerrors "localserve.backend/internal/domain/errors"
	"localserve.backend/internal/usecases"
	"localserve.backend/pkg/otp"
)

func newSettingsUsecaseForTest(settingsRepo *MockSettingsRepository) *usecases.SettingsUsecase {
	manager := otp.NewManager(otp.NewMemoryStore(), 5*time.Minute)
	return usecases.NewSettingsUsecase(settingsRepo, manager)
}

func TestSettingsUsecase_GetSocialMediaLinks(t *testing.T) {
	settingsRepo := new(MockSettingsRepository)
	uc := newSettingsUsecaseForTest(settingsRepo)
	ctx := context.Background()

	settingsRepo.On("GetSocialMediaLinks", ctx).Return(map[string]string{
		"instagram": "https://instagram.com/localserve",
	}, nil).Once()

	links, err := uc.GetSocialMediaLinks(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "https://instagram.com/localserve", links.Links["instagram"])
}

func TestSettingsUsecase_UpdateFlow(t *testing.T) {
	settingsRepo := new(MockSettingsRepository)
	uc := newSettingsUsecaseForTest(settingsRepo)
	ctx := context.Background()

	code, err := uc.RequestUpdateOTP(ctx, "instagram")
	assert.NoError(t, err)
	assert.Len(t, code, 6)

	settingsRepo.On("UpsertSocialMediaLink", ctx, "instagram", "https://instagram.com/new").Return(nil).Once()
	assert.NoError(t, uc.UpdateSocialMediaLink(ctx, &entities.UpdateSocialMediaInput{
		Platform: "instagram",
		URL:      "https://instagram.com/new",
		OTP:      code,
	}))

	// consumed: the same code cannot authorize a second update
	err = uc.UpdateSocialMediaLink(ctx, &entities.UpdateSocialMediaInput{
		Platform: "instagram",
		URL:      "https://instagram.com/again",
		OTP:      code,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	settingsRepo.AssertExpectations(t)
}

func TestSettingsUsecase_Update_CodeIsPerPlatform(t *testing.T) {
	settingsRepo := new(MockSettingsRepository)
	uc := newSettingsUsecaseForTest(settingsRepo)
	ctx := context.Background()

	code, err := uc.RequestUpdateOTP(ctx, "instagram")
	assert.NoError(t, err)

	err = uc.UpdateSocialMediaLink(ctx, &entities.UpdateSocialMediaInput{
		Platform: "youtube",
		URL:      "https://youtube.com/@x",
		OTP:      code,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	settingsRepo.AssertNotCalled(t, "UpsertSocialMediaLink", mock.Anything, mock.Anything, mock.Anything)
}

func TestSettingsUsecase_RequestUpdateOTP_EmptyPlatform(t *testing.T) {
	uc := newSettingsUsecaseForTest(new(MockSettingsRepository))

	_, err := uc.RequestUpdateOTP(context.Background(), "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}
