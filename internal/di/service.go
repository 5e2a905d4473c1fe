package di

import (
	"go.uber.org/fx"

	"github.com/devjourney/journey-go/internal/domain/service/impl"
)

// ServiceModule provides service dependencies
var ServiceModule = fx.Module("service",
	fx.Provide(
		impl.NewAuthService,
		impl.NewJourneyService,
		impl.NewProfileService,
		impl.NewDiagnosticsService,
	),
)
