package api

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v3"

	"planetarium/internal/catalog"
	"planetarium/internal/models"
)

// PlanetHandler serves the derived views over the planet collection via
// JSON API. Handlers only read service state; all mutation happens inside
// the catalog service.
type PlanetHandler struct {
	svc *catalog.Service
}

// NewPlanetHandler creates a new API planet handler.
func NewPlanetHandler(svc *catalog.Service) *PlanetHandler {
	return &PlanetHandler{svc: svc}
}

// List returns the collection filtered by terrain substring and search
// term. Both filters default to empty, which matches everything.
func (h *PlanetHandler) List(c fiber.Ctx) error {
	terrain := c.Query("terrain", "")
	search := c.Query("q", "")

	planets := catalog.FilterPlanets(h.svc.Planets(), terrain, search)
	return jsonSuccess(c, models.PlanetListResponse{
		Planets: planets,
		Count:   len(planets),
	})
}

// Terrains returns the deduplicated, sorted terrain set.
func (h *PlanetHandler) Terrains(c fiber.Ctx) error {
	return jsonSuccess(c, models.TerrainsResponse{
		Terrains: catalog.UniqueTerrains(h.svc.Planets()),
	})
}

// Status reports the refresh state of the catalog.
func (h *PlanetHandler) Status(c fiber.Ctx) error {
	return jsonSuccess(c, h.svc.Status())
}

// Refresh triggers a new crawl in the background. A refresh already in
// flight is reported as a conflict rather than superseded; the guard is
// claimed before responding, so concurrent triggers cannot both be
// acknowledged. The crawl runs detached from the request context and
// completes regardless of the client that triggered it.
func (h *PlanetHandler) Refresh(c fiber.Ctx) error {
	if err := h.svc.StartRefresh(context.Background()); err != nil {
		if errors.Is(err, catalog.ErrRefreshInFlight) {
			return jsonError(c, fiber.StatusConflict, "refresh already in progress")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to start refresh")
	}

	return jsonSuccess(c, models.RefreshResponse{Message: "refresh started"})
}
