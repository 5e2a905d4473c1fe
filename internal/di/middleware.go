package di

import (
	"go.uber.org/fx"

	"github.com/devjourney/journey-go/internal/middleware"
)

// MiddlewareModule provides middleware dependencies
var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		middleware.NewSessionAuth,
	),
)
