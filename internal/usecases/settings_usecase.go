package usecases

import (
	"context"
	"errors"

	"localserve.backend/internal/domain/entities"
	domainerrors "localserve.backend/internal/domain/errors"
	"localserve.backend/internal/domain/repositories"
	"localserve.backend/pkg/otp"
)

// SettingsUsecase handles admin-managed site settings. Social media link
// updates are gated behind a one-time code keyed by the platform name.
type SettingsUsecase struct {
	settingsRepo repositories.SettingsRepository
	otpManager   *otp.Manager
}

// NewSettingsUsecase creates a new settings usecase
func NewSettingsUsecase(settingsRepo repositories.SettingsRepository, otpManager *otp.Manager) *SettingsUsecase {
	return &SettingsUsecase{settingsRepo: settingsRepo, otpManager: otpManager}
}

// GetSocialMediaLinks returns the public platform to URL map
func (u *SettingsUsecase) GetSocialMediaLinks(ctx context.Context) (*entities.SocialMediaLinks, error) {
	links, err := u.settingsRepo.GetSocialMediaLinks(ctx)
	if err != nil {
		return nil, err
	}
	return &entities.SocialMediaLinks{Links: links}, nil
}

// RequestUpdateOTP issues a code the admin must present to change links
// for the given platform
func (u *SettingsUsecase) RequestUpdateOTP(ctx context.Context, platform string) (string, error) {
	if platform == "" {
		return "", domainerrors.BadRequest("platform is required")
	}
	return u.otpManager.Issue(ctx, settingsOTPKey(platform))
}

// UpdateSocialMediaLink verifies the code and upserts the link
func (u *SettingsUsecase) UpdateSocialMediaLink(ctx context.Context, input *entities.UpdateSocialMediaInput) error {
	if err := u.otpManager.Verify(ctx, settingsOTPKey(input.Platform), input.OTP); err != nil {
		switch {
		case errors.Is(err, otp.ErrNotFound):
			return domainerrors.BadRequest("no otp requested for this platform")
		case errors.Is(err, otp.ErrExpired):
			return domainerrors.BadRequest("otp expired")
		case errors.Is(err, otp.ErrMismatch):
			return domainerrors.BadRequest("incorrect otp")
		default:
			return err
		}
	}
	return u.settingsRepo.UpsertSocialMediaLink(ctx, input.Platform, input.URL)
}

func settingsOTPKey(platform string) string {
	return "settings:social_media:" + platform
}
