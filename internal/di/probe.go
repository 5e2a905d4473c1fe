package di

import (
	"context"

	"go.uber.org/fx"

	"github.com/devjourney/journey-go/internal/probe"
)

// ProbeModule provides and starts the periodic store liveness probe
var ProbeModule = fx.Module("probe",
	fx.Provide(probe.NewStoreProbe),
	fx.Invoke(startProbe),
)

func startProbe(lc fx.Lifecycle, p *probe.StoreProbe) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return p.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return p.Stop(ctx)
		},
	})
}
