package request

import "github.com/devjourney/journey-go/internal/game"

// MissionRef identifies a mission by its ID.
type MissionRef struct {
	ID string `json:"id"`
}

// CompleteMissionRequest records a finished mission. Two body shapes are
// accepted: the flat {"id": ...} and the older client's {"mission": {"id": ...}}.
type CompleteMissionRequest struct {
	ID      string      `json:"id"`
	Mission *MissionRef `json:"mission"`
}

// MissionID resolves the mission ID from whichever shape was sent.
func (r *CompleteMissionRequest) MissionID() string {
	if r.ID != "" {
		return r.ID
	}
	if r.Mission != nil {
		return r.Mission.ID
	}
	return ""
}

// SaveStateRequest carries the resumable journey state: where the player is
// on the board and which mission they are on. Both fields are optional so
// clients can update either independently.
type SaveStateRequest struct {
	CurrentMission string         `json:"currentMission"`
	Position       *game.Position `json:"position"`
}
