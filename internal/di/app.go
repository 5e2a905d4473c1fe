// Package di wires the application together with fx modules, one per
// architectural concern.
package di

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/devjourney/journey-go/internal/config"
)

// AppModule aggregates all application modules
var AppModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	ObservabilityModule,
	DAOModule,        // DAO layer (between Database and Repository)
	RepositoryModule, // Repository layer (delegates to DAO)
	SecurityModule,
	ServiceModule,
	MiddlewareModule,
	ControllerModule,
	ProbeModule,
	HTTPServerModule,
)

// PrintBanner prints the application startup banner
func PrintBanner(cfg *config.Config, logger *zap.Logger) {
	logger.Info("===========================================")
	logger.Info("        Developer Journey Backend          ")
	logger.Info("===========================================")
	logger.Info("Application Info",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)
	logger.Info("Store Config",
		zap.String("database", cfg.Database.Name),
		zap.String("host", cfg.Database.Host),
	)
	logger.Info("===========================================")
}
