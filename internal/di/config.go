package di

import (
	"go.uber.org/fx"

	"github.com/devjourney/journey-go/internal/config"
)

// ConfigModule provides configuration dependencies
var ConfigModule = fx.Module("config",
	fx.Provide(
		config.Load,
		provideAppConfig,
		provideServerConfig,
		provideDatabaseConfig,
		provideRedisConfig,
		provideGoogleConfig,
		provideSessionConfig,
		provideProbeConfig,
		provideMetricsConfig,
	),
)

func provideAppConfig(cfg *config.Config) *config.AppConfig {
	return &cfg.App
}

func provideServerConfig(cfg *config.Config) *config.ServerConfig {
	return &cfg.Server
}

func provideDatabaseConfig(cfg *config.Config) *config.DatabaseConfig {
	return &cfg.Database
}

func provideRedisConfig(cfg *config.Config) *config.RedisConfig {
	return &cfg.Redis
}

func provideGoogleConfig(cfg *config.Config) *config.GoogleConfig {
	return &cfg.Google
}

func provideSessionConfig(cfg *config.Config) *config.SessionConfig {
	return &cfg.Session
}

func provideProbeConfig(cfg *config.Config) *config.ProbeConfig {
	return &cfg.Probe
}

func provideMetricsConfig(cfg *config.Config) *config.MetricsConfig {
	return &cfg.Metrics
}
