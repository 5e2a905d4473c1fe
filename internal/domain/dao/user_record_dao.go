// Package dao defines the data access interfaces for the document store.
package dao

import (
	"context"

	"github.com/devjourney/journey-go/internal/domain/entity"
)

// UserRecordDAO provides access to per-user journey progress documents.
type UserRecordDAO interface {
	// GetOrCreate fetches the record for username, lazily creating an empty
	// one if it does not exist yet. It never fails merely because the record
	// is absent.
	GetOrCreate(ctx context.Context, username string) (*entity.UserRecord, error)

	// Set merges the given fields into the user's document, creating it if
	// needed. Fields not present in the map are left untouched.
	Set(ctx context.Context, username string, fields map[string]any) error

	// AddCompletedMission appends missionID to the user's completed missions
	// inside a single read-modify-write transaction, so concurrent appends
	// for the same username never overwrite each other. A missing record is
	// created first. Returns the updated record.
	AddCompletedMission(ctx context.Context, username, missionID string) (*entity.UserRecord, error)
}

// UserProfileDAO provides access to contact profile documents.
type UserProfileDAO interface {
	// Save merge-writes the profile, last write wins per field.
	Save(ctx context.Context, profile *entity.UserProfile) error

	// Get fetches a profile by username, nil when absent.
	Get(ctx context.Context, username string) (*entity.UserProfile, error)
}

// StoreHealth exposes liveness diagnostics for the document store.
type StoreHealth interface {
	// IsConnected races a lightweight metadata call against a timer and
	// reports whether the store answered in time. It returns false on any
	// error and never panics or propagates one.
	IsConnected(ctx context.Context, timeoutSeconds int) bool

	// RoundTrip writes a diagnostic document and reads it back.
	RoundTrip(ctx context.Context) error
}
