package router

import (
	"github.com/estatia/estatia/internal/application"
	"github.com/estatia/estatia/internal/container"
	"github.com/estatia/estatia/internal/infrastructure/postgres"
	handlers "github.com/estatia/estatia/internal/interface/http"
	"github.com/estatia/estatia/internal/router/modules"
)

// BuildPropertyService constructs the property service from container
// singletons; main reuses it for startup seeding.
func BuildPropertyService() *application.PropertyService {
	cfg := container.GetConfig()
	return application.NewPropertyService(
		postgres.NewPropertyRepository(container.GetPGPool()),
		container.GetRedis(),
		cfg.ListingCacheTTL,
		container.GetES(),
		cfg.ESPropertiesIndex,
		container.GetLogger(),
	)
}

func buildUserService() *application.UserService {
	var queue application.EmailQueue
	if pub := container.GetRabbitPub(); pub != nil {
		queue = pub
	}
	return application.NewUserService(
		postgres.NewUserRepository(container.GetPGPool()),
		queue,
		container.GetLogger(),
	)
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	logger := container.GetLogger()

	propertyHandler := handlers.NewPropertyHandler(BuildPropertyService(), logger)
	r.Add(modules.NewPropertyModule(propertyHandler))

	userHandler := handlers.NewUserHandler(buildUserService(), logger)
	r.Add(modules.NewUserModule(userHandler))
}
