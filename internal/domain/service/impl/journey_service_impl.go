package impl

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/devjourney/journey-go/internal/domain/repository"
	"github.com/devjourney/journey-go/internal/domain/service"
	"github.com/devjourney/journey-go/internal/dto/request"
	"github.com/devjourney/journey-go/internal/dto/response"
	"github.com/devjourney/journey-go/internal/game"
)

// journeyService implements service.JourneyService
type journeyService struct {
	recordRepo repository.UserRecordRepository
	board      game.Board
	logger     *zap.Logger
}

// NewJourneyService creates a new JourneyService instance
func NewJourneyService(recordRepo repository.UserRecordRepository, logger *zap.Logger) service.JourneyService {
	return &journeyService{
		recordRepo: recordRepo,
		board:      game.DefaultBoard(),
		logger:     logger,
	}
}

func (s *journeyService) Get(ctx context.Context, username string) (*response.UserRecordResponse, error) {
	record, err := s.recordRepo.GetOrCreate(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("loading record for %q: %w", username, err)
	}

	resp := response.NewUserRecordResponse(record)
	return &resp, nil
}

func (s *journeyService) CompleteMission(ctx context.Context, username string, req *request.CompleteMissionRequest) (*response.UserRecordResponse, error) {
	missionID := req.MissionID()
	if missionID == "" {
		return nil, service.ErrMissionRequired
	}

	record, err := s.recordRepo.AddCompletedMission(ctx, username, missionID)
	if err != nil {
		return nil, fmt.Errorf("recording mission %q for %q: %w", missionID, username, err)
	}

	s.logger.Info("mission completed",
		zap.String("username", username),
		zap.String("mission", missionID),
		zap.Int("total", len(record.CompletedMissions)),
	)

	resp := response.NewUserRecordResponse(record)
	return &resp, nil
}

func (s *journeyService) SaveState(ctx context.Context, username string, req *request.SaveStateRequest) (*response.UserRecordResponse, error) {
	fields := map[string]any{}

	if req.CurrentMission != "" {
		fields["current_mission"] = req.CurrentMission
	}
	if req.Position != nil {
		if !s.board.Contains(*req.Position) {
			return nil, service.ErrInvalidPosition
		}
		fields["position"] = req.Position
	}

	if len(fields) > 0 {
		fields["updated_at"] = time.Now()
		if err := s.recordRepo.Set(ctx, username, fields); err != nil {
			return nil, fmt.Errorf("saving state for %q: %w", username, err)
		}
	}

	return s.Get(ctx, username)
}
