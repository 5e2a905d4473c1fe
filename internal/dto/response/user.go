package response

import (
	"github.com/devjourney/journey-go/internal/domain/entity"
	"github.com/devjourney/journey-go/internal/game"
)

// UserRecordResponse is the wire shape of a user's journey progress.
type UserRecordResponse struct {
	ID                string         `json:"id"`
	Username          string         `json:"username"`
	CompletedMissions []string       `json:"completedMissions"`
	ItemsCollected    []string       `json:"itemsCollected"`
	CurrentMission    string         `json:"currentMission,omitempty"`
	Position          *game.Position `json:"position,omitempty"`
}

// NewUserRecordResponse maps a record entity to its wire shape. The mission
// and item lists are never null on the wire.
func NewUserRecordResponse(record *entity.UserRecord) UserRecordResponse {
	resp := UserRecordResponse{
		ID:                record.ID,
		Username:          record.Username,
		CompletedMissions: record.CompletedMissions,
		ItemsCollected:    record.ItemsCollected,
		CurrentMission:    record.CurrentMission,
		Position:          record.Position,
	}
	if resp.CompletedMissions == nil {
		resp.CompletedMissions = []string{}
	}
	if resp.ItemsCollected == nil {
		resp.ItemsCollected = []string{}
	}
	return resp
}
