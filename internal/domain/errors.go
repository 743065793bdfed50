package domain

import "errors"

var (
	// ErrInvalidDifficulty is returned when a caller passes a difficulty
	// outside the known enumeration. No state is mutated.
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	// ErrInsufficientPool is returned when the filtered candidate pool has
	// fewer countries than a question needs options. The session stays idle.
	ErrInsufficientPool = errors.New("insufficient country pool")
	// ErrInsufficientCandidates indicates distractor generation could not
	// produce enough wrong answers even after relaxing the no-repeat rule.
	ErrInsufficientCandidates = errors.New("insufficient distractor candidates")
	// ErrDataUnavailable is propagated from the country reference provider;
	// retry and fallback policy live with the provider, not the engine.
	ErrDataUnavailable = errors.New("country data unavailable")
	// ErrSessionNotFound is returned for operations on a session id that
	// was never started.
	ErrSessionNotFound = errors.New("quiz session not found")
)
