package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"planetarium/internal/catalog"
	"planetarium/internal/handlers/api"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(svc *catalog.Service) {
	planetHandler := api.NewPlanetHandler(svc)

	// Operational routes
	s.App.Get("/healthz", api.Health)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Derived view routes - read-only projections over the collection
	s.App.Get("/api/planets", planetHandler.List)
	s.App.Get("/api/terrains", planetHandler.Terrains)
	s.App.Get("/api/status", planetHandler.Status)

	// Refresh trigger
	s.App.Post("/api/refresh", planetHandler.Refresh)
}
