package repositories

import (
	"context"
)

// SettingsRepository defines site-wide settings operations
type SettingsRepository interface {
	GetSocialMediaLinks(ctx context.Context) (map[string]string, error)
	UpsertSocialMediaLink(ctx context.Context, platform, url string) error
}
