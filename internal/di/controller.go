package di

import (
	"go.uber.org/fx"

	httpctrl "github.com/devjourney/journey-go/internal/controller/http"
)

// ControllerModule provides HTTP controller dependencies
var ControllerModule = fx.Module("controller",
	fx.Provide(
		httpctrl.NewAuthController,
		httpctrl.NewUserController,
		httpctrl.NewProfileController,
		httpctrl.NewConfigController,
		httpctrl.NewDiagnosticsController,
	),
)
