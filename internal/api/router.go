package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Cheertaboi/marketplace-schema/internal/api/handlers"
	"github.com/Cheertaboi/marketplace-schema/internal/api/middleware"
	"github.com/Cheertaboi/marketplace-schema/internal/service"
)

// NewRouter builds the HTTP router for the schema service. db may be nil
// when no database is configured.
func NewRouter(logger *slog.Logger, svc *service.ValidationService, db handlers.Pinger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(chimw.Recoverer)

	healthHandler := handlers.NewHealthHandler(db)
	schemaHandler := handlers.NewSchemaHandler()
	validationHandler := handlers.NewValidationHandler(svc)

	// schema catalogue
	r.Route("/schema", func(r chi.Router) {
		r.Get("/", schemaHandler.Tables)
		r.Get("/ddl", schemaHandler.DDL)
	})

	// offline validation, nothing is persisted
	r.Route("/validate/{entity}", func(r chi.Router) {
		r.Post("/", validationHandler.Validate)
		r.Post("/batch", validationHandler.ValidateBatch)
	})

	// health
	r.Get("/health", healthHandler.Health)

	return r
}
