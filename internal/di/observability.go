package di

import (
	"go.uber.org/fx"

	"github.com/devjourney/journey-go/internal/observability"
)

// ObservabilityModule provides the metrics registry
var ObservabilityModule = fx.Module("observability",
	fx.Provide(
		observability.NewMetrics,
	),
)
