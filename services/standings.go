package services

import (
	"sort"

	"league-ranking-system/models"
)

// regionAdjustedScore scales a participant's current-form performance score
// by its frozen region factors. Never negative.
func regionAdjustedScore(p models.Participant) float64 {
	rs := p.RegionStats
	score := p.PerformanceScore *
		rs.StrengthOfSchedule *
		(1 - rs.TravelDistance*0.0001) *
		(1 - rs.TimeZoneAdjustment) *
		(1 - rs.ClimateAdjustment)
	if score < 0 {
		return 0
	}
	return score
}

// winPercentage is wins over matches played; zero before any match.
func winPercentage(p models.Participant) float64 {
	if p.MatchesPlayed == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.MatchesPlayed)
}

// meetsPromotionCriteria requires every criterion, not any.
func meetsPromotionCriteria(p models.Participant, criteria models.PromotionCriteria) bool {
	return p.Wins >= criteria.MinWins &&
		winPercentage(p) >= criteria.MinWinPercentage &&
		p.PerformanceScore >= criteria.MinPerformanceScore &&
		p.ConsecutiveSeasonsInTier >= criteria.MinConsecutiveSeasonsInTier
}

// ComputeStandings ranks a season's participants by region-adjusted score,
// descending. The sort is stable: equal scores keep their join order. The
// caller owns persisting the result back onto the season.
func ComputeStandings(season *models.Season, tier *models.Tier) []models.Standing {
	type scored struct {
		participant models.Participant
		score       float64
	}

	rows := make([]scored, len(season.Participants))
	for i, p := range season.Participants {
		rows[i] = scored{participant: p, score: regionAdjustedScore(p)}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].score > rows[j].score
	})

	total := len(rows)
	standings := make([]models.Standing, total)
	for i, row := range rows {
		p := row.participant
		position := i + 1
		standings[i] = models.Standing{
			Position:            position,
			TeamID:              p.TeamID,
			TeamName:            p.TeamName,
			TotalPoints:         p.TotalPoints,
			MatchesPlayed:       p.MatchesPlayed,
			Wins:                p.Wins,
			Losses:              p.Losses,
			Ties:                p.Ties,
			PerformanceScore:    p.PerformanceScore,
			RegionAdjustedScore: row.score,
			PromotionChance:     promotionChance(position, tier.PromotionSpots),
			RelegationRisk:      relegationRisk(position, total, tier.RelegationSpots),
			AutoPromotionEligible: tier.AutoPromotionEnabled &&
				meetsPromotionCriteria(p, tier.PromotionCriteria),
		}
	}
	return standings
}

func promotionChance(position, promotionSpots int) float64 {
	switch {
	case position <= promotionSpots:
		return 1.0
	case position <= promotionSpots+2:
		return 0.5
	default:
		return 0.0
	}
}

func relegationRisk(position, totalTeams, relegationSpots int) float64 {
	if relegationSpots == 0 {
		return 0.0
	}
	threshold := totalTeams - relegationSpots
	switch {
	case position > threshold:
		return 1.0
	case position > threshold-2:
		return 0.5
	default:
		return 0.0
	}
}
