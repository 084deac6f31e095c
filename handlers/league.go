package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"league-ranking-system/middleware"
	"league-ranking-system/services"
)

func SetupLeagueRoutes(app *fiber.App, api *services.LeagueAPIService, log *logrus.Logger) {
	// Public reads
	app.Get("/seasons", api.ListSeasons)
	app.Get("/seasons/:id", api.GetSeason)
	app.Get("/seasons/:id/standings", api.GetStandings)
	app.Get("/tiers", api.GetTierInfo)
	app.Get("/tiers/:id", api.GetTierInfo)
	app.Get("/age-brackets", api.GetAgeBrackets)
	app.Get("/age-brackets/eligibility", api.CheckAgeEligibility)

	// Authenticated routes
	secured := app.Group("/", middleware.UserContextMiddleware(log))

	secured.Post("/seasons", api.CreateSeason)
	secured.Post("/seasons/:id/join", api.JoinSeason)
	secured.Post("/seasons/:id/matches", api.RecordMatchResult)
	secured.Post("/seasons/:id/promotions", api.ProcessPromotions)
	secured.Patch("/seasons/:id/status", api.UpdateSeasonStatus)
}
