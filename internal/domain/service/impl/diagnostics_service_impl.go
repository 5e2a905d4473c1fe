package impl

import (
	"context"

	"go.uber.org/zap"

	"github.com/devjourney/journey-go/internal/config"
	"github.com/devjourney/journey-go/internal/domain/dao"
	"github.com/devjourney/journey-go/internal/domain/service"
	"github.com/devjourney/journey-go/internal/dto/response"
)

// diagnosticsService implements service.DiagnosticsService
type diagnosticsService struct {
	health dao.StoreHealth
	cfg    *config.Config
	logger *zap.Logger
}

// NewDiagnosticsService creates a new DiagnosticsService instance
func NewDiagnosticsService(health dao.StoreHealth, cfg *config.Config, logger *zap.Logger) service.DiagnosticsService {
	return &diagnosticsService{
		health: health,
		cfg:    cfg,
		logger: logger,
	}
}

func (s *diagnosticsService) Check(ctx context.Context) *response.StoreTestResponse {
	resp := &response.StoreTestResponse{
		Environment: s.cfg.App.Environment,
		Database:    s.cfg.Database.Name,
	}

	resp.Connected = s.health.IsConnected(ctx, s.cfg.Probe.TimeoutSeconds)
	if !resp.Connected {
		resp.Error = "store did not answer within the probe timeout"
		return resp
	}

	if err := s.health.RoundTrip(ctx); err != nil {
		s.logger.Warn("diagnostic round trip failed", zap.Error(err))
		resp.Error = err.Error()
		return resp
	}

	resp.RoundTrip = true
	return resp
}
