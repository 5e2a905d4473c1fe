// Package probe runs the periodic store liveness check.
package probe

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/devjourney/journey-go/internal/config"
	"github.com/devjourney/journey-go/internal/domain/dao"
	"github.com/devjourney/journey-go/internal/observability"
)

// StoreProbe periodically checks store connectivity on a cron schedule and
// feeds the result into the store-up gauge. State transitions are logged once
// rather than on every tick.
type StoreProbe struct {
	health   dao.StoreHealth
	metrics  *observability.Metrics
	cfg      *config.ProbeConfig
	logger   *zap.Logger
	cron     *cron.Cron
	mu       sync.Mutex
	up       bool
	everseen bool
}

// NewStoreProbe creates a StoreProbe from configuration.
func NewStoreProbe(health dao.StoreHealth, metrics *observability.Metrics, cfg *config.ProbeConfig, logger *zap.Logger) *StoreProbe {
	return &StoreProbe{
		health:  health,
		metrics: metrics,
		cfg:     cfg,
		logger:  logger,
		cron:    cron.New(),
	}
}

// Start registers the probe job and starts the scheduler. An initial check
// runs immediately so the gauge is meaningful before the first tick.
func (p *StoreProbe) Start(ctx context.Context) error {
	if !p.cfg.Enabled {
		p.logger.Info("store probe disabled")
		return nil
	}

	if _, err := p.cron.AddFunc(p.cfg.Schedule, p.check); err != nil {
		return fmt.Errorf("invalid probe schedule %q: %w", p.cfg.Schedule, err)
	}

	go p.check()
	p.cron.Start()
	p.logger.Info("store probe started", zap.String("schedule", p.cfg.Schedule))
	return nil
}

// Stop stops the scheduler and waits for a running check to finish.
func (p *StoreProbe) Stop(ctx context.Context) error {
	stopped := p.cron.Stop()
	select {
	case <-stopped.Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

func (p *StoreProbe) check() {
	up := p.health.IsConnected(context.Background(), p.cfg.TimeoutSeconds)
	p.metrics.SetStoreUp(up)

	p.mu.Lock()
	changed := !p.everseen || up != p.up
	p.up = up
	p.everseen = true
	p.mu.Unlock()

	if !changed {
		return
	}
	if up {
		p.logger.Info("store reachable")
	} else {
		p.logger.Warn("store unreachable", zap.Int("timeout_seconds", p.cfg.TimeoutSeconds))
	}
}

// Up reports the last observed store state.
func (p *StoreProbe) Up() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.up
}
