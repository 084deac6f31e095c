package services

import (
	"github.com/gofiber/fiber/v2"
)

// FederationAPIService exposes federation templates, harmonized rules and
// conflict resolution over HTTP.
type FederationAPIService struct {
	Conflicts *ConflictService
}

func NewFederationAPIService(conflicts *ConflictService) *FederationAPIService {
	return &FederationAPIService{Conflicts: conflicts}
}

func (s *FederationAPIService) ListFederations(c *fiber.Ctx) error {
	return c.JSON(FederationTemplates)
}

func (s *FederationAPIService) GetFederation(c *fiber.Ctx) error {
	fed, ok := FederationTemplates[c.Params("id")]
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "federation not found"})
	}
	return c.JSON(fed)
}

func (s *FederationAPIService) GetFederationRules(c *fiber.Ctx) error {
	federationID := c.Params("id")
	if _, ok := FederationTemplates[federationID]; !ok {
		return c.Status(404).JSON(fiber.Map{"error": "federation not found"})
	}
	sport := c.Params("sport")
	rules := federationEffectiveRules(federationID, sport)
	if rules == nil {
		return c.Status(404).JSON(fiber.Map{"error": "no rules for sport"})
	}
	return c.JSON(fiber.Map{"federation_id": federationID, "sport": sport, "rules": rules})
}

// GetFallbackRules returns the harmonized ruleset for a sport and age group.
// Unknown sports or brackets harmonize to the generic default, so this
// endpoint never 404s.
func (s *FederationAPIService) GetFallbackRules(c *fiber.Ctx) error {
	sport := c.Params("sport")
	ageGroup := c.Query("age_group")
	return c.JSON(GetFallbackLeagueRules(sport, ageGroup))
}

type detectConflictsRequest struct {
	FederationA string `json:"federation_a"`
	FederationB string `json:"federation_b"`
	Sport       string `json:"sport"`
}

func (s *FederationAPIService) DetectConflicts(c *fiber.Ctx) error {
	var req detectConflictsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
	}
	if req.FederationA == "" || req.FederationB == "" || req.Sport == "" {
		return c.Status(400).JSON(fiber.Map{"error": "federation_a, federation_b and sport are required"})
	}

	conflicts, err := s.Conflicts.DetectConflicts(c.Context(), req.FederationA, req.FederationB, req.Sport)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to store conflicts"})
	}
	return c.JSON(fiber.Map{"conflicts": conflicts, "count": len(conflicts)})
}

func (s *FederationAPIService) ListPendingConflicts(c *fiber.Ctx) error {
	conflicts, err := s.Conflicts.PendingConflicts(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to list conflicts"})
	}
	return c.JSON(fiber.Map{"conflicts": conflicts, "count": len(conflicts)})
}

func (s *FederationAPIService) ResolveConflict(c *fiber.Ctx) error {
	conflict, resolution, err := s.Conflicts.ResolveConflictByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "conflict not found"})
	}
	return c.JSON(fiber.Map{
		"conflict":   conflict,
		"resolution": resolution,
	})
}
