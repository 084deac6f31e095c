package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"league-ranking-system/models"
	"league-ranking-system/storage"
)

// PromotionResult is the outcome of one promotion/relegation resolution.
type PromotionResult struct {
	Promotions     []string `json:"promotions"`
	AutoPromotions []string `json:"auto_promotions"`
	Relegations    []string `json:"relegations"`
}

// ProcessPromotionRelegation recomputes standings and partitions the field:
// the top promotionSpots ranks are promoted unconditionally, criteria-based
// auto-promotions fill whatever slot headroom remains, and the bottom
// relegationSpots ranks go down. Results are written back onto the season.
func (e *LeagueEngine) ProcessPromotionRelegation(ctx context.Context, seasonID string) (*PromotionResult, error) {
	var result PromotionResult
	err := e.seasons.Update(ctx, seasonID, func(season *models.Season) error {
		tier := GetTier(season.TierID)
		if tier == nil {
			return ErrUnknownTier
		}

		standings := ComputeStandings(season, tier)
		season.Standings = standings

		promoted := make([]string, 0, tier.PromotionSpots)
		for _, s := range standings {
			if len(promoted) >= tier.PromotionSpots {
				break
			}
			promoted = append(promoted, s.TeamID)
		}

		headroom := tier.PromotionSpots - len(promoted)
		autoPromoted := []string{}
		for _, s := range standings {
			if headroom <= 0 {
				break
			}
			if !s.AutoPromotionEligible || contains(promoted, s.TeamID) {
				continue
			}
			autoPromoted = append(autoPromoted, s.TeamID)
			headroom--
		}

		relegated := []string{}
		if tier.RelegationSpots > 0 {
			start := len(standings) - tier.RelegationSpots
			if start < 0 {
				start = 0
			}
			for _, s := range standings[start:] {
				relegated = append(relegated, s.TeamID)
			}
		}

		season.Promotions = promoted
		season.AutoPromotions = autoPromoted
		season.Relegations = relegated
		result = PromotionResult{
			Promotions:     promoted,
			AutoPromotions: autoPromoted,
			Relegations:    relegated,
		}
		return nil
	})
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrSeasonNotFound
	}
	if err != nil {
		return nil, err
	}

	e.log.WithFields(logrus.Fields{
		"season_id": seasonID,
		"promoted":  len(result.Promotions),
		"auto":      len(result.AutoPromotions),
		"relegated": len(result.Relegations),
	}).Info("promotion resolution complete")
	return &result, nil
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
