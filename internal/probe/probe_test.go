package probe

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/devjourney/journey-go/internal/config"
	"github.com/devjourney/journey-go/internal/observability"
	"github.com/devjourney/journey-go/internal/testutil/mocks"
)

func newProbe(health *mocks.MockStoreHealth, enabled bool) *StoreProbe {
	metrics := observability.NewMetrics(&config.MetricsConfig{Enabled: true, Path: "/metrics"}, zap.NewNop())
	cfg := &config.ProbeConfig{Enabled: enabled, Schedule: "* * * * *", TimeoutSeconds: 5}
	return NewStoreProbe(health, metrics, cfg, zap.NewNop())
}

func TestStoreProbe_CheckTracksState(t *testing.T) {
	health := &mocks.MockStoreHealth{Connected: true}
	p := newProbe(health, true)

	p.check()
	if !p.Up() {
		t.Error("Up() = false after healthy check")
	}

	health.Connected = false
	p.check()
	if p.Up() {
		t.Error("Up() = true after failed check")
	}
}

func TestStoreProbe_DisabledDoesNotSchedule(t *testing.T) {
	p := newProbe(&mocks.MockStoreHealth{Connected: true}, false)

	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if p.Up() {
		t.Error("disabled probe must not report the store up")
	}
}

func TestStoreProbe_RejectsBadSchedule(t *testing.T) {
	p := newProbe(&mocks.MockStoreHealth{}, true)
	p.cfg = &config.ProbeConfig{Enabled: true, Schedule: "not a schedule", TimeoutSeconds: 5}

	if err := p.Start(context.Background()); err == nil {
		t.Fatal("Start() expected error for invalid schedule")
	}
}
