// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	healthfeature "github.com/dalemusser/userhub/internal/app/features/health"
	usersfeature "github.com/dalemusser/userhub/internal/app/features/users"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. userhub mounts the health endpoint used
// by load balancers and the users resource that is the whole of its API.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// User records CRUD
	usersHandler := usersfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/users", usersfeature.Routes(usersHandler))

	return r, nil
}
