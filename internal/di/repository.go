package di

import (
	"go.uber.org/fx"

	"github.com/devjourney/journey-go/internal/domain/repository/impl"
)

// RepositoryModule provides repository dependencies
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		impl.NewUserRecordRepository,
		impl.NewUserProfileRepository,
	),
)
