package models

import (
	"time"
)

// RulePayload holds one sport's rules keyed by category
// (scoring, timing, equipment, field_dimensions, player_count, ...).
type RulePayload map[string]map[string]interface{}

// SportRuleSet is the harmonizer's working shape: the categories that
// cross-sport harmonization may fill in, plus the stat names the engine
// surfaces for scoreboards.
type SportRuleSet struct {
	Sport         string                 `json:"sport"`
	PrimaryStat   string                 `json:"primary_stat"`
	SecondaryStat string                 `json:"secondary_stat"`
	Duration      int                    `json:"duration"`
	Scoring       map[string]interface{} `json:"scoring,omitempty"`
	Timing        map[string]interface{} `json:"timing,omitempty"`
	Equipment     map[string]string      `json:"equipment,omitempty"`
}

// Clone returns a deep copy so harmonization never mutates the static tables.
func (r SportRuleSet) Clone() SportRuleSet {
	out := r
	if r.Scoring != nil {
		out.Scoring = make(map[string]interface{}, len(r.Scoring))
		for k, v := range r.Scoring {
			out.Scoring[k] = v
		}
	}
	if r.Timing != nil {
		out.Timing = make(map[string]interface{}, len(r.Timing))
		for k, v := range r.Timing {
			out.Timing[k] = v
		}
	}
	if r.Equipment != nil {
		out.Equipment = make(map[string]string, len(r.Equipment))
		for k, v := range r.Equipment {
			out.Equipment[k] = v
		}
	}
	return out
}

// Conflict severities and statuses.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"

	ConflictPending   = "pending"
	ConflictResolved  = "resolved"
	ConflictEscalated = "escalated"
)

// RuleConflict records a rule disagreement between two federations for one
// sport and rule category. Conflicts are created by detection (or externally)
// and mutated only by the resolution operation.
type RuleConflict struct {
	ID           string                 `json:"id" gorm:"primaryKey"`
	FederationA  string                 `json:"federation_a" gorm:"index;not null"`
	FederationB  string                 `json:"federation_b" gorm:"index;not null"`
	Sport        string                 `json:"sport" gorm:"index"`
	RuleType     string                 `json:"rule_type"`
	Description  string                 `json:"description"`
	Severity     string                 `json:"severity" gorm:"index"`
	Status       string                 `json:"status" gorm:"index;default:'pending'"`
	RuleAPayload map[string]interface{} `json:"rule_a_payload" gorm:"serializer:json"`
	RuleBPayload map[string]interface{} `json:"rule_b_payload" gorm:"serializer:json"`
	Resolution   string                 `json:"resolution,omitempty"`
	ResolvedBy   string                 `json:"resolved_by,omitempty"`
	ResolvedAt   *time.Time             `json:"resolved_at,omitempty"`
	CreatedAt    time.Time              `json:"created_at" gorm:"autoCreateTime"`
}

// Federation is a static template describing a governing body and its
// per-sport rule overrides layered over the base sport rules.
type Federation struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Type        string                 `json:"type"`
	Region      string                 `json:"region"`
	Sports      []string               `json:"sports"`
	AgeBrackets []string               `json:"age_brackets"`
	SportRules  map[string]RulePayload `json:"sport_rules,omitempty"`
}
