// Package impl provides repository implementations that delegate to the DAO
// layer and record store operation metrics on the way through. Store failures
// surface as ErrStore so callers can classify them without knowing the driver.
package impl

import (
	"context"

	"github.com/devjourney/journey-go/internal/domain/dao"
	"github.com/devjourney/journey-go/internal/domain/entity"
	"github.com/devjourney/journey-go/internal/domain/repository"
	"github.com/devjourney/journey-go/internal/observability"
	apperrors "github.com/devjourney/journey-go/pkg/errors"
)

// userRecordRepository implements repository.UserRecordRepository by
// delegating to UserRecordDAO.
type userRecordRepository struct {
	dao     dao.UserRecordDAO
	metrics *observability.Metrics
}

// NewUserRecordRepository creates a new UserRecordRepository instance.
func NewUserRecordRepository(recordDAO dao.UserRecordDAO, metrics *observability.Metrics) repository.UserRecordRepository {
	return &userRecordRepository{dao: recordDAO, metrics: metrics}
}

// GetOrCreate fetches or lazily creates the record for username.
func (r *userRecordRepository) GetOrCreate(ctx context.Context, username string) (*entity.UserRecord, error) {
	rec, err := r.dao.GetOrCreate(ctx, username)
	r.metrics.ObserveStoreOp("get_or_create", err)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrStore)
	}
	return rec, nil
}

// Set merge-writes the given fields into the user's document.
func (r *userRecordRepository) Set(ctx context.Context, username string, fields map[string]any) error {
	err := r.dao.Set(ctx, username, fields)
	r.metrics.ObserveStoreOp("merge_set", err)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrStore)
	}
	return nil
}

// AddCompletedMission transactionally appends a mission ID.
func (r *userRecordRepository) AddCompletedMission(ctx context.Context, username, missionID string) (*entity.UserRecord, error) {
	rec, err := r.dao.AddCompletedMission(ctx, username, missionID)
	r.metrics.ObserveStoreOp("add_completed_mission", err)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrStore)
	}
	return rec, nil
}
