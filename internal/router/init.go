package router

import (
	"github.com/greenloop/greencycle/internal/application"
	"github.com/greenloop/greencycle/internal/container"
	"github.com/greenloop/greencycle/internal/infrastructure/mongodb"
	handlers "github.com/greenloop/greencycle/internal/interface/http"
	"github.com/greenloop/greencycle/internal/router/modules"
)

// InitModules constructs all feature modules from container singletons and
// registers them with the router registry. Called once during startup.
func InitModules(r *Registry) {
	db := container.GetMongo()
	logger := container.GetLogger()
	cfg := container.GetConfig()

	authSvc := application.NewAuthService(
		mongodb.NewUserRepository(db),
		container.GetJWT(),
		container.GetRedis(),
		logger,
	)
	authHandler := handlers.NewAuthHandler(authSvc, logger, cfg, container.GetRabbitPub())

	collectionSvc := application.NewCollectionService(
		mongodb.NewCollectionRepository(db),
		logger,
		container.GetES(),
		cfg.ESCollectionsIndex,
	)
	collectionHandler := handlers.NewCollectionHandler(collectionSvc, logger)

	referenceSvc := application.NewReferenceService(
		mongodb.NewCenterRepository(db),
		mongodb.NewTutorialRepository(db),
		logger,
	)
	referenceHandler := handlers.NewReferenceHandler(referenceSvc)

	r.Add(modules.NewAuthModule(authHandler, container.GetJWT()))
	r.Add(modules.NewCollectionModule(collectionHandler))
	r.Add(modules.NewReferenceModule(referenceHandler))
}
