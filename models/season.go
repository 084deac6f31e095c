package models

import (
	"time"
)

// Season lifecycle statuses. The engine never transitions status on its own;
// the scheduler worker (or the status endpoint) drives it.
const (
	SeasonUpcoming  = "upcoming"
	SeasonActive    = "active"
	SeasonCompleted = "completed"
	SeasonCancelled = "cancelled"
)

// Participant is one team's membership record within a season.
type Participant struct {
	TeamID      string    `json:"team_id"`
	TeamName    string    `json:"team_name"`
	CaptainID   string    `json:"captain_id"`
	CaptainName string    `json:"captain_name"`
	JoinDate    time.Time `json:"join_date"`

	TotalPoints   int `json:"total_points"`
	MatchesPlayed int `json:"matches_played"`
	Wins          int `json:"wins"`
	Losses        int `json:"losses"`
	Ties          int `json:"ties"`

	// PerformanceScore reflects only the most recent match: it is overwritten
	// on every result, not averaged. Promotion criteria read it as a
	// current-form score.
	PerformanceScore float64 `json:"performance_score"`

	// ConsecutiveSeasonsInTier starts at 1 on join. No rollover operation
	// exists yet; see DESIGN.md.
	ConsecutiveSeasonsInTier int `json:"consecutive_seasons_in_tier"`

	RegionStats RegionStats `json:"region_stats"`
}

// Standing is a derived ranking row. It is recomputed on demand and never
// authoritative on its own.
type Standing struct {
	Position              int     `json:"position"`
	TeamID                string  `json:"team_id"`
	TeamName              string  `json:"team_name"`
	TotalPoints           int     `json:"total_points"`
	MatchesPlayed         int     `json:"matches_played"`
	Wins                  int     `json:"wins"`
	Losses                int     `json:"losses"`
	Ties                  int     `json:"ties"`
	PerformanceScore      float64 `json:"performance_score"`
	RegionAdjustedScore   float64 `json:"region_adjusted_score"`
	PromotionChance       float64 `json:"promotion_chance"`
	RelegationRisk        float64 `json:"relegation_risk"`
	AutoPromotionEligible bool    `json:"auto_promotion_eligible"`
}

// Season is the aggregate owned by the engine. Participants, standings and
// the promotion result lists are stored as JSON columns so the repository
// keeps whole-aggregate get/put semantics.
type Season struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	TierID       string    `json:"tier_id" gorm:"index;not null"`
	Name         string    `json:"name" gorm:"not null"`
	Region       string    `json:"region"`
	FederationID string    `json:"federation_id" gorm:"index"`
	Status       string    `json:"status" gorm:"default:'upcoming'"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Participants []Participant `json:"participants" gorm:"serializer:json"`
	Standings    []Standing    `json:"standings" gorm:"serializer:json"`

	// Result of the last promotion/relegation resolution.
	Promotions     []string `json:"promotions" gorm:"serializer:json"`
	AutoPromotions []string `json:"auto_promotions" gorm:"serializer:json"`
	Relegations    []string `json:"relegations" gorm:"serializer:json"`
}

// FindParticipant returns a pointer into the season's participant slice, or
// nil when the team has not joined.
func (s *Season) FindParticipant(teamID string) *Participant {
	for i := range s.Participants {
		if s.Participants[i].TeamID == teamID {
			return &s.Participants[i]
		}
	}
	return nil
}
