package impl

import (
	"context"

	"github.com/devjourney/journey-go/internal/domain/dao"
	"github.com/devjourney/journey-go/internal/domain/entity"
	"github.com/devjourney/journey-go/internal/domain/repository"
	"github.com/devjourney/journey-go/internal/observability"
	apperrors "github.com/devjourney/journey-go/pkg/errors"
)

// userProfileRepository implements repository.UserProfileRepository by
// delegating to UserProfileDAO.
type userProfileRepository struct {
	dao     dao.UserProfileDAO
	metrics *observability.Metrics
}

// NewUserProfileRepository creates a new UserProfileRepository instance.
func NewUserProfileRepository(profileDAO dao.UserProfileDAO, metrics *observability.Metrics) repository.UserProfileRepository {
	return &userProfileRepository{dao: profileDAO, metrics: metrics}
}

// Save merge-upserts the profile.
func (r *userProfileRepository) Save(ctx context.Context, profile *entity.UserProfile) error {
	err := r.dao.Save(ctx, profile)
	r.metrics.ObserveStoreOp("profile_save", err)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrStore)
	}
	return nil
}

// Get fetches a profile by username.
func (r *userProfileRepository) Get(ctx context.Context, username string) (*entity.UserProfile, error) {
	profile, err := r.dao.Get(ctx, username)
	r.metrics.ObserveStoreOp("profile_get", err)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrStore)
	}
	return profile, nil
}
