package entity

import (
	"time"

	"github.com/devjourney/journey-go/internal/game"
)

// UserRecord is the persisted per-user journey progress. It is keyed by
// username, which doubles as its ID.
type UserRecord struct {
	ID                string         `json:"id"`
	Username          string         `json:"username"`
	CompletedMissions []string       `json:"completedMissions"`
	ItemsCollected    []string       `json:"itemsCollected"`
	CurrentMission    string         `json:"currentMission,omitempty"`
	Position          *game.Position `json:"position,omitempty"`
	CreatedAt         time.Time      `json:"-"`
	UpdatedAt         time.Time      `json:"-"`
}

// NewUserRecord creates an empty record for a first-seen username.
func NewUserRecord(username string) *UserRecord {
	return &UserRecord{
		ID:                username,
		Username:          username,
		CompletedMissions: []string{},
		ItemsCollected:    []string{},
	}
}

// Normalize fills in the defaults older documents may lack: a missing ID is
// backfilled from the username and nil lists become empty ones.
func (r *UserRecord) Normalize() {
	if r.ID == "" {
		r.ID = r.Username
	}
	if r.CompletedMissions == nil {
		r.CompletedMissions = []string{}
	}
	if r.ItemsCollected == nil {
		r.ItemsCollected = []string{}
	}
}

// HasCompleted reports whether the mission is already on the record.
// Appends are not deduplicated, so this only reflects first completion.
func (r *UserRecord) HasCompleted(missionID string) bool {
	for _, id := range r.CompletedMissions {
		if id == missionID {
			return true
		}
	}
	return false
}
