package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"league-ranking-system/models"
)

const standingsCacheTTL = 30 * time.Second

// StandingsCache is a read-through cache for standings queries. A nil client
// disables caching entirely; every method is safe to call on a cache built
// without Redis configured.
type StandingsCache struct {
	client *redis.Client
	log    *logrus.Entry
}

// NewStandingsCache connects to Redis via REDIS_URL. When the variable is
// unset or unparseable the cache runs disabled rather than failing startup.
func NewStandingsCache(log *logrus.Logger) *StandingsCache {
	entry := log.WithField("component", "standings_cache")
	raw := os.Getenv("REDIS_URL")
	if raw == "" {
		entry.Info("REDIS_URL not set, standings cache disabled")
		return &StandingsCache{log: entry}
	}
	opt, err := redis.ParseURL(raw)
	if err != nil {
		entry.WithError(err).Warn("invalid REDIS_URL, standings cache disabled")
		return &StandingsCache{log: entry}
	}
	return &StandingsCache{client: redis.NewClient(opt), log: entry}
}

func standingsKey(seasonID string) string {
	return fmt.Sprintf("league:standings:%s", seasonID)
}

// GetStandings returns the cached standings, or nil on miss or any error.
func (c *StandingsCache) GetStandings(ctx context.Context, seasonID string) []models.Standing {
	if c.client == nil {
		return nil
	}
	raw, err := c.client.Get(ctx, standingsKey(seasonID)).Bytes()
	if err != nil {
		return nil
	}
	var standings []models.Standing
	if err := json.Unmarshal(raw, &standings); err != nil {
		return nil
	}
	return standings
}

// SetStandings stores standings with a short TTL. Errors are logged, never
// returned; a cache write failure must not fail the read path.
func (c *StandingsCache) SetStandings(ctx context.Context, seasonID string, standings []models.Standing) {
	if c.client == nil {
		return
	}
	raw, err := json.Marshal(standings)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, standingsKey(seasonID), raw, standingsCacheTTL).Err(); err != nil {
		c.log.WithError(err).Debug("standings cache write failed")
	}
}

// Invalidate drops the cached standings for a season, called after any
// mutation that changes participant state.
func (c *StandingsCache) Invalidate(ctx context.Context, seasonID string) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, standingsKey(seasonID)).Err(); err != nil {
		c.log.WithError(err).Debug("standings cache invalidation failed")
	}
}
