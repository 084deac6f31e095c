package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/sirupsen/logrus"

	"league-ranking-system/models"
	"league-ranking-system/storage"
)

// LeagueEngine owns season state and exposes the ranking lifecycle:
// create/join seasons, ingest match results, compute standings and resolve
// promotion and relegation. All mutations go through the repository's
// per-season Update so writers to one season serialize.
type LeagueEngine struct {
	seasons storage.SeasonRepository
	log     *logrus.Entry
}

func NewLeagueEngine(seasons storage.SeasonRepository, log *logrus.Logger) *LeagueEngine {
	return &LeagueEngine{
		seasons: seasons,
		log:     log.WithField("component", "league_engine"),
	}
}

// CreateSeason registers a new season of the given tier. An unknown tier id
// is a configuration error and fails immediately.
func (e *LeagueEngine) CreateSeason(ctx context.Context, tierID, name, region, federationID string) (string, error) {
	tier := GetTier(tierID)
	if tier == nil {
		return "", fmt.Errorf("create season %q: %w", tierID, ErrUnknownTier)
	}
	if region == "" {
		region = DefaultRegion
	}
	if federationID == "" {
		federationID = "global"
	}

	now := time.Now().UTC()
	season := &models.Season{
		ID:           fmt.Sprintf("%s-%s-%s", slug.Make(name), tierID, uuid.NewString()[:8]),
		TierID:       tierID,
		Name:         name,
		Region:       region,
		FederationID: federationID,
		Status:       models.SeasonUpcoming,
		StartDate:    now,
		EndDate:      now.AddDate(0, 0, tier.SeasonDurationDays),
		Participants: []models.Participant{},
		Standings:    []models.Standing{},
	}
	if err := e.seasons.Create(ctx, season); err != nil {
		return "", fmt.Errorf("create season: %w", err)
	}

	e.log.WithFields(logrus.Fields{
		"season_id": season.ID,
		"tier":      tierID,
		"region":    region,
	}).Info("season created")
	return season.ID, nil
}

// JoinSeason adds a team to a season. It fails soft: any rejection (unknown
// season or tier, capacity reached, duplicate team) returns false rather
// than an error, so one bad registration never aborts a batch.
func (e *LeagueEngine) JoinSeason(ctx context.Context, seasonID, teamID, captainID, teamName, captainName, teamRegion string) bool {
	if teamRegion == "" {
		teamRegion = DefaultRegion
	}

	err := e.seasons.Update(ctx, seasonID, func(season *models.Season) error {
		tier := GetTier(season.TierID)
		if tier == nil {
			return ErrUnknownTier
		}
		if len(season.Participants) >= tier.MaxTeams {
			return ErrCapacityExceeded
		}
		if season.FindParticipant(teamID) != nil {
			return ErrDuplicateParticipant
		}

		season.Participants = append(season.Participants, models.Participant{
			TeamID:                   teamID,
			TeamName:                 teamName,
			CaptainID:                captainID,
			CaptainName:              captainName,
			JoinDate:                 time.Now().UTC(),
			ConsecutiveSeasonsInTier: 1,
			RegionStats:              BuildRegionStats(teamRegion, season.Region),
		})
		return nil
	})
	if err != nil {
		e.log.WithFields(logrus.Fields{
			"season_id": seasonID,
			"team_id":   teamID,
		}).WithError(err).Warn("join season rejected")
		return false
	}

	e.log.WithFields(logrus.Fields{
		"season_id": seasonID,
		"team_id":   teamID,
		"region":    teamRegion,
	}).Info("team joined season")
	return true
}

// RecordMatchResult ingests one match outcome: points, win/loss/tie counters
// and a fresh performance score for both sides, then recomputes standings in
// the same critical section. Missing season or participants make the call a
// silent no-op.
func (e *LeagueEngine) RecordMatchResult(ctx context.Context, seasonID, teamAID, teamBID string, scoreA, scoreB int) {
	err := e.seasons.Update(ctx, seasonID, func(season *models.Season) error {
		teamA := season.FindParticipant(teamAID)
		teamB := season.FindParticipant(teamBID)
		if teamA == nil || teamB == nil {
			return ErrParticipantNotFound
		}

		teamA.MatchesPlayed++
		teamB.MatchesPlayed++
		switch {
		case scoreA > scoreB:
			teamA.Wins++
			teamA.TotalPoints += 3
			teamB.Losses++
		case scoreB > scoreA:
			teamB.Wins++
			teamB.TotalPoints += 3
			teamA.Losses++
		default:
			teamA.Ties++
			teamB.Ties++
			teamA.TotalPoints++
			teamB.TotalPoints++
		}

		teamA.PerformanceScore = matchPerformanceScore(scoreA, scoreB, teamA.RegionStats)
		teamB.PerformanceScore = matchPerformanceScore(scoreB, scoreA, teamB.RegionStats)

		tier := GetTier(season.TierID)
		if tier != nil {
			season.Standings = ComputeStandings(season, tier)
		}
		return nil
	})
	if err != nil {
		// Fail soft by contract: unknown season or team is dropped quietly.
		e.log.WithFields(logrus.Fields{
			"season_id": seasonID,
			"team_a":    teamAID,
			"team_b":    teamBID,
		}).WithError(err).Debug("match result ignored")
	}
}

// matchPerformanceScore computes the per-match score for one side: 100 base
// for the winner, 50 otherwise, plus 5 per goal of margin, capped at 100,
// then discounted by the side's frozen region factors and clamped to [0,100].
// The result overwrites any previous score; it reflects only this match.
func matchPerformanceScore(ownScore, oppScore int, rs models.RegionStats) float64 {
	base := 50.0
	if ownScore > oppScore {
		base = 100.0
	}
	raw := math.Min(100, base+5*math.Abs(float64(ownScore-oppScore)))

	adjusted := raw *
		(1 - rs.TravelDistance*0.0001) *
		(1 - rs.TimeZoneAdjustment) *
		(1 - rs.ClimateAdjustment)
	return math.Max(0, math.Min(100, adjusted))
}

// GetLeagueInfo returns the season aggregate, or nil when unknown.
func (e *LeagueEngine) GetLeagueInfo(ctx context.Context, seasonID string) *models.Season {
	season, err := e.seasons.Get(ctx, seasonID)
	if err != nil {
		return nil
	}
	return season
}

// GetLeagueStandings recomputes standings from the current participant state.
// Empty before any match has been recorded or when the season is unknown.
func (e *LeagueEngine) GetLeagueStandings(ctx context.Context, seasonID string) []models.Standing {
	season, err := e.seasons.Get(ctx, seasonID)
	if err != nil {
		return nil
	}
	tier := GetTier(season.TierID)
	if tier == nil {
		return nil
	}
	return ComputeStandings(season, tier)
}

// GetAvailableLeagues lists seasons, optionally filtered by tier.
func (e *LeagueEngine) GetAvailableLeagues(ctx context.Context, tierID string) []models.Season {
	seasons, err := e.seasons.List(ctx, "")
	if err != nil {
		return nil
	}
	if tierID == "" {
		return seasons
	}
	out := make([]models.Season, 0, len(seasons))
	for _, season := range seasons {
		if season.TierID == tierID {
			out = append(out, season)
		}
	}
	return out
}

// SetSeasonStatus overwrites the lifecycle status. Status transitions are
// driven by the scheduler worker and the admin endpoint, never by the
// ranking operations themselves.
func (e *LeagueEngine) SetSeasonStatus(ctx context.Context, seasonID, status string) error {
	err := e.seasons.Update(ctx, seasonID, func(season *models.Season) error {
		season.Status = status
		return nil
	})
	if errors.Is(err, storage.ErrNotFound) {
		return ErrSeasonNotFound
	}
	return err
}
