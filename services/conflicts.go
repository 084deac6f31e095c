package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"league-ranking-system/models"
	"league-ranking-system/storage"
)

// ManualResolutionFallback is returned verbatim when the advisory cannot be
// reached. Callers and tests depend on the exact string.
const ManualResolutionFallback = "Manual resolution required"

// ConflictService detects rule conflicts between federations and drives
// their resolution through the external advisory.
type ConflictService struct {
	conflicts storage.ConflictRepository
	advisory  RuleAdvisory
	log       *logrus.Entry
}

func NewConflictService(conflicts storage.ConflictRepository, advisory RuleAdvisory, log *logrus.Logger) *ConflictService {
	return &ConflictService{
		conflicts: conflicts,
		advisory:  advisory,
		log:       log.WithField("component", "conflict_service"),
	}
}

// DetectConflicts compares two federations' effective rules for a sport,
// persists every mismatch as a pending conflict and returns them.
func (s *ConflictService) DetectConflicts(ctx context.Context, fedA, fedB, sport string) ([]models.RuleConflict, error) {
	conflicts := DetectRuleConflicts(fedA, fedB, sport)
	for i := range conflicts {
		if err := s.conflicts.Save(ctx, &conflicts[i]); err != nil {
			return nil, err
		}
	}
	s.log.WithFields(logrus.Fields{
		"federation_a": fedA,
		"federation_b": fedB,
		"sport":        sport,
		"found":        len(conflicts),
	}).Info("conflict detection complete")
	return conflicts, nil
}

// ResolveConflict asks the advisory for a resolution. On success the conflict
// is marked resolved and persisted. On any advisory failure the conflict is
// left pending and the fixed manual-resolution text is returned; the failure
// never propagates.
func (s *ConflictService) ResolveConflict(ctx context.Context, conflict *models.RuleConflict) string {
	resolution, err := s.advisory.ProposeResolution(ctx, conflict)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"conflict_id": conflict.ID,
			"severity":    conflict.Severity,
		}).WithError(err).Warn("advisory unavailable, conflict stays pending")
		return ManualResolutionFallback
	}

	now := time.Now().UTC()
	conflict.Resolution = resolution
	conflict.Status = models.ConflictResolved
	conflict.ResolvedBy = "ai_system"
	conflict.ResolvedAt = &now
	if err := s.conflicts.Save(ctx, conflict); err != nil {
		s.log.WithError(err).Error("failed to persist resolved conflict")
	}
	return resolution
}

// ResolveConflictByID loads a stored conflict and resolves it.
func (s *ConflictService) ResolveConflictByID(ctx context.Context, id string) (*models.RuleConflict, string, error) {
	conflict, err := s.conflicts.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	resolution := s.ResolveConflict(ctx, conflict)
	return conflict, resolution, nil
}

// PendingConflicts lists conflicts still awaiting resolution.
func (s *ConflictService) PendingConflicts(ctx context.Context) ([]models.RuleConflict, error) {
	return s.conflicts.ListPending(ctx)
}
