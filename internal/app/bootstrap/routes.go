// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	bookingsfeature "github.com/vattavada/stayhub/internal/app/features/bookings"
	contactfeature "github.com/vattavada/stayhub/internal/app/features/contact"
	experiencesfeature "github.com/vattavada/stayhub/internal/app/features/experiences"
	healthfeature "github.com/vattavada/stayhub/internal/app/features/health"
	propertiesfeature "github.com/vattavada/stayhub/internal/app/features/properties"
	testimonialsfeature "github.com/vattavada/stayhub/internal/app/features/testimonials"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. StayHub mounts one feature router per
// API area plus the health endpoint, all behind CORS middleware for the
// browser frontend.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: appCfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.StayHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	db := deps.StayHubMongoDatabase

	propertiesHandler := propertiesfeature.NewHandler(db, logger)
	r.Route("/properties", propertiesHandler.MountRoutes)

	experiencesHandler := experiencesfeature.NewHandler(db, logger)
	r.Route("/experiences", experiencesHandler.MountRoutes)

	testimonialsHandler := testimonialsfeature.NewHandler(db, logger)
	r.Route("/testimonials", testimonialsHandler.MountRoutes)

	contactHandler := contactfeature.NewHandler(db, appCfg.ListLimit, logger)
	r.Route("/contact", contactHandler.MountRoutes)

	bookingsHandler := bookingsfeature.NewHandler(db, appCfg.ListLimit, logger)
	r.Route("/bookings", bookingsHandler.MountRoutes)

	return r, nil
}
