package services

import (
	"context"

	"github.com/sirupsen/logrus"
)

// SeedDemoSeasons creates a couple of demo seasons with joined teams so a
// fresh environment has data to poke at. Opt-in via SEED_DEMO_SEASONS; it is
// never an implicit side effect of construction.
func SeedDemoSeasons(ctx context.Context, engine *LeagueEngine, log *logrus.Logger) {
	seeds := []struct {
		tierID string
		name   string
		region string
		teams  []struct{ id, name, region string }
	}{
		{
			tierID: "amateur",
			name:   "Amateur Spring League",
			region: "North America",
			teams: []struct{ id, name, region string }{
				{"demo-thunder", "Thunder FC", "North America"},
				{"demo-lightning", "Lightning United", "North America"},
				{"demo-storm", "Storm City", "Europe"},
			},
		},
		{
			tierID: "club",
			name:   "Club Championship",
			region: "Europe",
			teams: []struct{ id, name, region string }{
				{"demo-eagles", "Eagles SC", "Europe"},
				{"demo-falcons", "Falcons Club", "Asia"},
			},
		},
	}

	for _, seed := range seeds {
		seasonID, err := engine.CreateSeason(ctx, seed.tierID, seed.name, seed.region, "global")
		if err != nil {
			log.WithError(err).Warn("demo season creation failed")
			continue
		}
		for _, team := range seed.teams {
			engine.JoinSeason(ctx, seasonID, team.id, team.id+"-captain", team.name, team.name+" Captain", team.region)
		}
		log.WithFields(logrus.Fields{
			"season_id": seasonID,
			"teams":     len(seed.teams),
		}).Info("demo season seeded")
	}
}
