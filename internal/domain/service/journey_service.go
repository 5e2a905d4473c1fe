package service

import (
	"context"

	"github.com/devjourney/journey-go/internal/dto/request"
	"github.com/devjourney/journey-go/internal/dto/response"
)

// JourneyService defines the interface for journey progress operations
type JourneyService interface {
	// Get returns the user's progress record, creating an empty one on
	// first access.
	Get(ctx context.Context, username string) (*response.UserRecordResponse, error)

	// CompleteMission appends a finished mission to the user's record and
	// returns the updated record.
	CompleteMission(ctx context.Context, username string, req *request.CompleteMissionRequest) (*response.UserRecordResponse, error)

	// SaveState merge-writes the resumable state (current mission, board
	// position) and returns the updated record.
	SaveState(ctx context.Context, username string, req *request.SaveStateRequest) (*response.UserRecordResponse, error)
}
