package app

import (
	"context"

	"flagquiz-service/internal/domain"
)

// SessionRepository abstracts how quiz sessions are stored (in-memory, Redis-marked, etc).
type SessionRepository interface {
	GetOrCreate(sessionID string, opts ...SessionOption) *Session
	Get(sessionID string) (*Session, bool)
	DeleteIfInactive(sessionID string)
}

// CountryRepository supplies the country reference dataset
// (from cache/backing store).
type CountryRepository interface {
	GetCountries(ctx context.Context) ([]domain.CountryRecord, error)
}

// QuizService contains the quiz use cases: it validates input, builds the
// difficulty-filtered pool, and drives the session state machine.
type QuizService struct {
	sessions  SessionRepository
	countries CountryRepository
}

func NewQuizService(store SessionRepository, countries CountryRepository) *QuizService {
	return &QuizService{sessions: store, countries: countries}
}

// Connect binds a client's adapters to the session before any
// play-through starts, creating the session if needed.
func (s *QuizService) Connect(_ context.Context, sessionID string, p PresentationAdapter, g GeoHighlightAdapter, opts ...SessionOption) *Session {
	session := s.sessions.GetOrCreate(sessionID, opts...)
	session.Attach(p, g)
	return session
}

// StartSession begins a play-through for sessionID at the given
// difficulty. Unknown difficulties are rejected before any state changes;
// the tier table's fallback-to-easy applies only to direct ResolveTier
// callers, never here.
func (s *QuizService) StartSession(ctx context.Context, sessionID string, difficulty domain.Difficulty, opts ...SessionOption) (*Session, error) {
	if !difficulty.Known() {
		return nil, domain.ErrInvalidDifficulty
	}

	all, err := s.countries.GetCountries(ctx)
	if err != nil {
		return nil, err
	}

	tier := ResolveTier(difficulty)
	pool, err := BuildPool(all, tier)
	if err != nil {
		return nil, err
	}

	session := s.sessions.GetOrCreate(sessionID, opts...)
	if err := session.Start(difficulty, pool, tier.QuestionCount); err != nil {
		return nil, err
	}
	return session, nil
}

// SubmitAnswer scores the player's pick for the session's current
// question. Mistimed submissions inside a known session are silent no-ops.
func (s *QuizService) SubmitAnswer(_ context.Context, sessionID string, selectedIndex int) error {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.ErrSessionNotFound
	}
	session.Submit(selectedIndex)
	return nil
}

// Advance moves the session past the answered question.
func (s *QuizService) Advance(_ context.Context, sessionID string) error {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.ErrSessionNotFound
	}
	return session.Advance()
}

// EndSession finishes the play-through early.
func (s *QuizService) EndSession(_ context.Context, sessionID string) error {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.ErrSessionNotFound
	}
	session.End()
	return nil
}

// RestartSession ends the current play-through and, when sameDifficulty is
// set and the session has played before, immediately starts a new one at
// that difficulty. Otherwise the session returns to its idle state.
func (s *QuizService) RestartSession(ctx context.Context, sessionID string, sameDifficulty bool) (*Session, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	session.End()
	if sameDifficulty && session.Difficulty() != "" {
		return s.StartSession(ctx, sessionID, session.Difficulty())
	}
	return session, nil
}

// Release drops the session if it is no longer active; transports call
// this when a client disconnects.
func (s *QuizService) Release(_ context.Context, sessionID string) {
	s.sessions.DeleteIfInactive(sessionID)
}
