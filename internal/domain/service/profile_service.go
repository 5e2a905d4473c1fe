package service

import (
	"context"

	"github.com/devjourney/journey-go/internal/dto/request"
)

// ProfileService defines the interface for contact profile operations
type ProfileService interface {
	// Save merge-upserts the submitted profile fields.
	Save(ctx context.Context, req *request.UserProfileRequest) error
}
