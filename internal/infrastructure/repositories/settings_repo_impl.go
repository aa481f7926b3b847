package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"localserve.backend/internal/infrastructure/models"
)

const socialMediaKey = "social_media"

// SettingsRepository implements site-wide settings storage backed by a
// keyed JSON table
type SettingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetSocialMediaLinks returns the platform to URL map. A missing row
// yields an empty map, not an error.
func (r *SettingsRepository) GetSocialMediaLinks(ctx context.Context) (map[string]string, error) {
	var m models.Setting
	if err := r.db.WithContext(ctx).Where("key = ?", socialMediaKey).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	links := map[string]string{}
	if err := json.Unmarshal([]byte(m.Value), &links); err != nil {
		return nil, err
	}
	return links, nil
}

// UpsertSocialMediaLink sets or replaces the URL for one platform
func (r *SettingsRepository) UpsertSocialMediaLink(ctx context.Context, platform, url string) error {
	links, err := r.GetSocialMediaLinks(ctx)
	if err != nil {
		return err
	}
	links[platform] = url
	value, err := json.Marshal(links)
	if err != nil {
		return err
	}
	m := &models.Setting{
		Key:       socialMediaKey,
		Value:     string(value),
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(m).Error
}
