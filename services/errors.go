package services

import "errors"

// Engine error categories. Join/record entry points absorb most of these into
// soft failures; creation surfaces configuration problems immediately.
var (
	ErrUnknownTier          = errors.New("unknown tier id")
	ErrSeasonNotFound       = errors.New("season not found")
	ErrParticipantNotFound  = errors.New("participant not found")
	ErrCapacityExceeded     = errors.New("season at capacity")
	ErrDuplicateParticipant = errors.New("team already joined season")
	ErrAdvisoryUnavailable  = errors.New("rule advisory unavailable")
)
