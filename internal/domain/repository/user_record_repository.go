package repository

import (
	"context"

	"github.com/devjourney/journey-go/internal/domain/entity"
)

// UserRecordRepository defines the interface for journey progress operations
type UserRecordRepository interface {
	// GetOrCreate fetches the record for username, lazily creating an empty
	// one when absent.
	GetOrCreate(ctx context.Context, username string) (*entity.UserRecord, error)

	// Set merge-writes the given fields into the user's document.
	Set(ctx context.Context, username string, fields map[string]any) error

	// AddCompletedMission transactionally appends a mission ID and returns
	// the updated record.
	AddCompletedMission(ctx context.Context, username, missionID string) (*entity.UserRecord, error)
}

// UserProfileRepository defines the interface for contact profile operations
type UserProfileRepository interface {
	// Save merge-upserts the profile, last write wins per field.
	Save(ctx context.Context, profile *entity.UserProfile) error

	// Get fetches a profile by username, nil when absent.
	Get(ctx context.Context, username string) (*entity.UserProfile, error)
}
