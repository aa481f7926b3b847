package utils

import (
	"github.com/google/uuid"
)

// GenerateUUIDv7 returns a time-ordered v7 id so primary keys sort by
// creation time. Falls back to v4 when the entropy source fails.
func GenerateUUIDv7() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
