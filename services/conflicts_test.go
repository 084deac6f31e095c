package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"league-ranking-system/models"
	"league-ranking-system/storage"
)

type stubAdvisory struct {
	resolution string
	err        error
}

func (s *stubAdvisory) ProposeResolution(ctx context.Context, conflict *models.RuleConflict) (string, error) {
	return s.resolution, s.err
}

func pendingConflict() *models.RuleConflict {
	return &models.RuleConflict{
		ID:          "conflict-test",
		FederationA: "uil",
		FederationB: "ncaa",
		Sport:       "basketball",
		RuleType:    "timing",
		Severity:    models.SeverityHigh,
		Status:      models.ConflictPending,
	}
}

func TestResolveConflictAdvisoryFailure(t *testing.T) {
	svc := NewConflictService(storage.NewMemoryConflictRepository(),
		&stubAdvisory{err: errors.New("connection refused")}, testLogger())

	conflict := pendingConflict()
	resolution := svc.ResolveConflict(context.Background(), conflict)

	assert.Equal(t, "Manual resolution required", resolution)
	assert.Equal(t, "pending", conflict.Status, "failed advisory leaves status untouched")
	assert.Empty(t, conflict.ResolvedBy)
	assert.Nil(t, conflict.ResolvedAt)
}

func TestResolveConflictSuccess(t *testing.T) {
	repo := storage.NewMemoryConflictRepository()
	svc := NewConflictService(repo,
		&stubAdvisory{resolution: "Adopt NCAA timing for inter-federation play"}, testLogger())
	ctx := context.Background()

	conflict := pendingConflict()
	require.NoError(t, repo.Save(ctx, conflict))

	resolution := svc.ResolveConflict(ctx, conflict)

	assert.Equal(t, "Adopt NCAA timing for inter-federation play", resolution)
	assert.Equal(t, "resolved", conflict.Status)
	assert.Equal(t, "ai_system", conflict.ResolvedBy)
	require.NotNil(t, conflict.ResolvedAt)

	stored, err := repo.Get(ctx, conflict.ID)
	require.NoError(t, err)
	assert.Equal(t, "resolved", stored.Status)

	pending, err := svc.PendingConflicts(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestDetectRuleConflicts(t *testing.T) {
	conflicts := DetectRuleConflicts("uil", "ncaa", "basketball")
	require.NotEmpty(t, conflicts)

	byType := make(map[string]models.RuleConflict, len(conflicts))
	for _, c := range conflicts {
		byType[c.RuleType] = c
		assert.Equal(t, models.ConflictPending, c.Status)
		assert.Equal(t, "uil", c.FederationA)
		assert.Equal(t, "ncaa", c.FederationB)
	}

	timing, ok := byType["timing"]
	require.True(t, ok, "UIL quarters vs NCAA halves must conflict")
	assert.Equal(t, models.SeverityHigh, timing.Severity)

	dims, ok := byType["field_dimensions"]
	require.True(t, ok, "84ft vs 94ft courts must conflict")
	assert.Equal(t, models.SeverityCritical, dims.Severity)

	// both federations share the base scoring rules
	_, ok = byType["scoring"]
	assert.False(t, ok)
}

func TestDetectRuleConflictsUnknownSport(t *testing.T) {
	assert.Nil(t, DetectRuleConflicts("uil", "ncaa", "cricket"))
}

func TestAssessConflictSeverity(t *testing.T) {
	tests := []struct {
		ruleType string
		want     string
	}{
		{"equipment", "critical"},
		{"field_dimensions", "critical"},
		{"player_count", "critical"},
		{"scoring", "high"},
		{"timing", "high"},
		{"substitutions", "medium"},
		{"timeouts", "medium"},
		{"uniforms", "low"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, assessConflictSeverity(tt.ruleType), tt.ruleType)
	}
}

func TestFederationEffectiveRules(t *testing.T) {
	rules := federationEffectiveRules("aau", "basketball")
	require.NotNil(t, rules)

	assert.Equal(t, 6, rules["timing"]["quarter_duration"], "AAU override wins")
	assert.Equal(t, "8ft", rules["equipment"]["hoop_height"])

	base := federationEffectiveRules("global", "basketball")
	require.NotNil(t, base)
	assert.Equal(t, "regulation", base["equipment"]["ball_size"],
		"federation without overrides keeps base rules")
}
