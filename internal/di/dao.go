package di

import (
	"go.uber.org/fx"

	"github.com/devjourney/journey-go/internal/domain/dao"
	mongodao "github.com/devjourney/journey-go/internal/domain/dao/mongo"
)

// DAOModule provides the document-store DAOs
var DAOModule = fx.Module("dao",
	fx.Provide(
		provideUserRecordDAO,
		provideUserProfileDAO,
		provideStoreHealth,
	),
)

func provideUserRecordDAO(mongoDB *MongoDatabase) dao.UserRecordDAO {
	return mongodao.NewUserRecordDAO(mongoDB.DB, mongoDB.Client)
}

func provideUserProfileDAO(mongoDB *MongoDatabase) dao.UserProfileDAO {
	return mongodao.NewUserProfileDAO(mongoDB.DB)
}

func provideStoreHealth(mongoDB *MongoDatabase) dao.StoreHealth {
	return mongodao.NewStoreHealth(mongoDB.DB)
}
