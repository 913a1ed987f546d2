// Package api wires the HTTP surface: router, handlers, middleware and
// response helpers.
package api

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wynet321/fund-insight-backend/internal/api/handlers"
	custommiddleware "github.com/wynet321/fund-insight-backend/internal/api/middleware"
	"github.com/wynet321/fund-insight-backend/internal/config"
	"github.com/wynet321/fund-insight-backend/internal/fundapi"
	"github.com/wynet321/fund-insight-backend/internal/service"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(
	db *sql.DB,
	client fundapi.Client,
	fundService *service.FundService,
	catalogService *service.CatalogService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(db)
			r.Get("/health", systemHandler.Health)
		})

		r.Route("/fund", func(r chi.Router) {
			fundHandler := handlers.NewFundHandler(fundService)
			suggestHandler := handlers.NewSuggestHandler(client, cfg.Suggest.Limit)
			r.Get("/search", fundHandler.Search)
			r.Get("/suggest", suggestHandler.Suggest)
		})

		r.Route("/chart", func(r chi.Router) {
			chartHandler := handlers.NewChartHandler(fundService)
			r.Get("/data/{fundID}", chartHandler.Data)
			r.Post("/simulate/{fundID}", chartHandler.Simulate)
		})

		r.Route("/rate", func(r chi.Router) {
			catalogHandler := handlers.NewCatalogHandler(catalogService)
			r.Get("/list", catalogHandler.List)
		})
	})

	return r
}
