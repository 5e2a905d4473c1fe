package impl

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/devjourney/journey-go/internal/domain/repository"
	"github.com/devjourney/journey-go/internal/domain/service"
	"github.com/devjourney/journey-go/internal/dto/request"
	"github.com/devjourney/journey-go/internal/dto/response"
	"github.com/devjourney/journey-go/internal/security"
)

// authService implements service.AuthService
type authService struct {
	verifier   security.TokenVerifier
	recordRepo repository.UserRecordRepository
	logger     *zap.Logger
}

// NewAuthService creates a new AuthService instance
func NewAuthService(verifier security.TokenVerifier, recordRepo repository.UserRecordRepository, logger *zap.Logger) service.AuthService {
	return &authService{
		verifier:   verifier,
		recordRepo: recordRepo,
		logger:     logger,
	}
}

func (s *authService) SignIn(ctx context.Context, req *request.GoogleAuthRequest) (*response.AuthResponse, error) {
	identity, err := s.verifier.Verify(ctx, req.Token)
	if err != nil {
		if errors.Is(err, security.ErrInvalidToken) {
			return nil, service.ErrInvalidToken
		}
		return nil, fmt.Errorf("verifying token: %w", err)
	}

	username := security.DeriveUsername(identity.Email)

	// Sign-in must never clobber existing progress, so the record is created
	// only when absent rather than merge-written every time.
	if _, err := s.recordRepo.GetOrCreate(ctx, username); err != nil {
		return nil, fmt.Errorf("ensuring record for %q: %w", username, err)
	}

	s.logger.Info("user signed in", zap.String("username", username))

	resp := response.NewAuthResponse(username, identity)
	return &resp, nil
}
