package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"league-ranking-system/middleware"
	"league-ranking-system/services"
)

func SetupFederationRoutes(app *fiber.App, api *services.FederationAPIService, log *logrus.Logger) {
	// Public reads
	app.Get("/federations", api.ListFederations)
	app.Get("/federations/:id", api.GetFederation)
	app.Get("/federations/:id/rules/:sport", api.GetFederationRules)
	app.Get("/rules/:sport/fallback", api.GetFallbackRules)

	// Authenticated routes
	secured := app.Group("/", middleware.UserContextMiddleware(log))

	secured.Post("/conflicts/detect", api.DetectConflicts)
	secured.Get("/conflicts/pending", api.ListPendingConflicts)
	secured.Post("/conflicts/:id/resolve", api.ResolveConflict)
}
