package service

import (
	"context"
	"errors"

	"github.com/devjourney/journey-go/internal/dto/request"
	"github.com/devjourney/journey-go/internal/dto/response"
)

var (
	ErrInvalidToken    = errors.New("invalid or expired token")
	ErrMissionRequired = errors.New("mission id is required")
	ErrInvalidPosition = errors.New("position is outside the board")
)

// AuthService defines the interface for sign-in operations
type AuthService interface {
	// SignIn verifies a Google ID token, derives the stable username from
	// the verified email, and ensures a journey record exists for it.
	SignIn(ctx context.Context, req *request.GoogleAuthRequest) (*response.AuthResponse, error)
}
