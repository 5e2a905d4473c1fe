package impl

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/devjourney/journey-go/internal/domain/entity"
	"github.com/devjourney/journey-go/internal/domain/repository"
	"github.com/devjourney/journey-go/internal/domain/service"
	"github.com/devjourney/journey-go/internal/dto/request"
)

// profileService implements service.ProfileService
type profileService struct {
	profileRepo repository.UserProfileRepository
	logger      *zap.Logger
}

// NewProfileService creates a new ProfileService instance
func NewProfileService(profileRepo repository.UserProfileRepository, logger *zap.Logger) service.ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (s *profileService) Save(ctx context.Context, req *request.UserProfileRequest) error {
	profile := &entity.UserProfile{
		Username:           req.Username,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		PhoneNumber:        req.PhoneNumber,
		TechnologyInterest: req.TechnologyInterest,
	}

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return fmt.Errorf("saving profile for %q: %w", req.Username, err)
	}

	s.logger.Info("profile saved", zap.String("username", req.Username))
	return nil
}
