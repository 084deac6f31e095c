package services

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"league-ranking-system/models"
)

// LeagueAPIService exposes the league engine over HTTP.
type LeagueAPIService struct {
	Engine *LeagueEngine
	Cache  *StandingsCache
}

func NewLeagueAPIService(engine *LeagueEngine, cache *StandingsCache) *LeagueAPIService {
	return &LeagueAPIService{Engine: engine, Cache: cache}
}

type createSeasonRequest struct {
	TierID       string `json:"tier_id"`
	Name         string `json:"name"`
	Region       string `json:"region"`
	FederationID string `json:"federation_id"`
}

func (s *LeagueAPIService) CreateSeason(c *fiber.Ctx) error {
	var req createSeasonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
	}
	if req.TierID == "" || req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "tier_id and name are required"})
	}

	seasonID, err := s.Engine.CreateSeason(c.Context(), req.TierID, req.Name, req.Region, req.FederationID)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "unknown tier_id"})
	}
	return c.Status(201).JSON(fiber.Map{"season_id": seasonID})
}

type joinSeasonRequest struct {
	TeamID      string `json:"team_id"`
	TeamName    string `json:"team_name"`
	CaptainID   string `json:"captain_id"`
	CaptainName string `json:"captain_name"`
	TeamRegion  string `json:"team_region"`
}

func (s *LeagueAPIService) JoinSeason(c *fiber.Ctx) error {
	seasonID := c.Params("id")
	var req joinSeasonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
	}
	if req.TeamID == "" || req.TeamName == "" {
		return c.Status(400).JSON(fiber.Map{"error": "team_id and team_name are required"})
	}

	joined := s.Engine.JoinSeason(c.Context(), seasonID, req.TeamID, req.CaptainID, req.TeamName, req.CaptainName, req.TeamRegion)
	if joined {
		s.Cache.Invalidate(c.Context(), seasonID)
	}
	return c.JSON(fiber.Map{"joined": joined})
}

type matchResultRequest struct {
	TeamAID string `json:"team_a_id"`
	TeamBID string `json:"team_b_id"`
	ScoreA  int    `json:"score_a"`
	ScoreB  int    `json:"score_b"`
}

func (s *LeagueAPIService) RecordMatchResult(c *fiber.Ctx) error {
	seasonID := c.Params("id")
	var req matchResultRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
	}
	if req.TeamAID == "" || req.TeamBID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "team_a_id and team_b_id are required"})
	}

	// Unknown seasons and teams are absorbed; the engine call never fails.
	s.Engine.RecordMatchResult(c.Context(), seasonID, req.TeamAID, req.TeamBID, req.ScoreA, req.ScoreB)
	s.Cache.Invalidate(c.Context(), seasonID)
	return c.JSON(fiber.Map{"recorded": true})
}

func (s *LeagueAPIService) GetSeason(c *fiber.Ctx) error {
	season := s.Engine.GetLeagueInfo(c.Context(), c.Params("id"))
	if season == nil {
		return c.Status(404).JSON(fiber.Map{"error": "season not found"})
	}
	return c.JSON(season)
}

func (s *LeagueAPIService) GetStandings(c *fiber.Ctx) error {
	seasonID := c.Params("id")
	if cached := s.Cache.GetStandings(c.Context(), seasonID); cached != nil {
		return c.JSON(fiber.Map{"season_id": seasonID, "standings": cached, "cached": true})
	}

	standings := s.Engine.GetLeagueStandings(c.Context(), seasonID)
	if standings == nil {
		return c.Status(404).JSON(fiber.Map{"error": "season not found"})
	}
	s.Cache.SetStandings(c.Context(), seasonID, standings)
	return c.JSON(fiber.Map{"season_id": seasonID, "standings": standings})
}

func (s *LeagueAPIService) ListSeasons(c *fiber.Ctx) error {
	seasons := s.Engine.GetAvailableLeagues(c.Context(), c.Query("tier_id"))
	return c.JSON(fiber.Map{"seasons": seasons, "count": len(seasons)})
}

func (s *LeagueAPIService) ProcessPromotions(c *fiber.Ctx) error {
	result, err := s.Engine.ProcessPromotionRelegation(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "season not found"})
	}
	s.Cache.Invalidate(c.Context(), c.Params("id"))
	return c.JSON(result)
}

type seasonStatusRequest struct {
	Status string `json:"status"`
}

func (s *LeagueAPIService) UpdateSeasonStatus(c *fiber.Ctx) error {
	var req seasonStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON"})
	}
	switch req.Status {
	case models.SeasonUpcoming, models.SeasonActive, models.SeasonCompleted, models.SeasonCancelled:
	default:
		return c.Status(400).JSON(fiber.Map{"error": "invalid status"})
	}
	if err := s.Engine.SetSeasonStatus(c.Context(), c.Params("id"), req.Status); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "season not found"})
	}
	return c.JSON(fiber.Map{"season_id": c.Params("id"), "status": req.Status})
}

func (s *LeagueAPIService) GetTierInfo(c *fiber.Ctx) error {
	tierID := c.Params("id")
	if tierID == "" {
		return c.JSON(LeagueTiers)
	}
	tier := GetTier(tierID)
	if tier == nil {
		return c.Status(404).JSON(fiber.Map{"error": "tier not found"})
	}
	return c.JSON(tier)
}

func (s *LeagueAPIService) GetAgeBrackets(c *fiber.Ctx) error {
	return c.JSON(AgeBrackets)
}

func (s *LeagueAPIService) CheckAgeEligibility(c *fiber.Ctx) error {
	age, err := strconv.Atoi(c.Query("age"))
	if err != nil || age < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "age must be a non-negative integer"})
	}
	bracket := c.Query("bracket")
	if bracket == "" {
		return c.Status(400).JSON(fiber.Map{"error": "bracket is required"})
	}
	return c.JSON(fiber.Map{
		"age":      age,
		"bracket":  bracket,
		"eligible": CheckAgeEligibility(age, bracket),
	})
}
