package app

import (
	"math/rand"
	"time"

	"flagquiz-service/internal/domain"
)

// Session holds the state of one quiz play-through. State is mutated only
// through the methods below; there is no lock because a session is driven
// by exactly one caller at a time (a socket read loop or a CLI loop) and
// the active/answered flags guard against mistimed calls.
type Session struct {
	id       string
	rng      *rand.Rand
	language string

	presenter   PresentationAdapter
	highlighter GeoHighlightAdapter

	difficulty     domain.Difficulty
	pool           []domain.CountryRecord
	questionIndex  int
	totalQuestions int
	score          int
	usedIDs        map[string]struct{}
	current        *domain.Question
	active         bool
	answered       bool
}

// SessionOption configures a session at construction time.
type SessionOption func(*Session)

// WithRand injects the random source; tests use a fixed seed for
// reproducible shuffles.
func WithRand(rng *rand.Rand) SessionOption {
	return func(s *Session) { s.rng = rng }
}

// WithLanguage sets the language used for option and feedback names.
func WithLanguage(lang string) SessionOption {
	return func(s *Session) {
		if lang != "" {
			s.language = lang
		}
	}
}

// NewSession creates an idle session. Adapters default to no-ops until a
// client attaches.
func NewSession(id string, opts ...SessionOption) *Session {
	s := &Session{
		id:          id,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		language:    domain.DefaultLanguage,
		presenter:   NopPresenter{},
		highlighter: NopHighlighter{},
		usedIDs:     make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Attach wires the collaborators that render engine notifications. Nil
// arguments keep the current adapter, so a transport may attach only one.
func (s *Session) Attach(p PresentationAdapter, g GeoHighlightAdapter) {
	if p != nil {
		s.presenter = p
	}
	if g != nil {
		s.highlighter = g
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Active reports whether a play-through is in progress.
func (s *Session) Active() bool { return s.active }

// Difficulty returns the tier of the current or most recent play-through.
func (s *Session) Difficulty() domain.Difficulty { return s.difficulty }

// Score returns the count of correct answers so far.
func (s *Session) Score() int { return s.score }

// QuestionIndex returns the count of completed questions.
func (s *Session) QuestionIndex() int { return s.questionIndex }

// TotalQuestions returns the session length fixed at start.
func (s *Session) TotalQuestions() int { return s.totalQuestions }

// Current returns the active question, or nil outside a pending question.
func (s *Session) Current() *domain.Question { return s.current }

// UsedCount returns how many distinct countries the no-repeat tracking
// currently holds.
func (s *Session) UsedCount() int { return len(s.usedIDs) }

// Start begins a play-through over an already-built pool. The pool is
// immutable for the lifetime of the run. The first question is generated
// as part of start; callers never ask for it separately.
func (s *Session) Start(difficulty domain.Difficulty, pool []domain.CountryRecord, totalQuestions int) error {
	if len(pool) < domain.OptionCount {
		return domain.ErrInsufficientPool
	}

	s.difficulty = difficulty
	s.pool = pool
	s.totalQuestions = totalQuestions
	s.score = 0
	s.questionIndex = 0
	s.usedIDs = make(map[string]struct{})
	s.current = nil
	s.answered = false
	s.active = true

	s.presenter.OnSessionStart(totalQuestions)
	s.presenter.OnScoreChanged(0, 0)
	s.presenter.OnProgressChanged(0)
	s.highlighter.ClearHighlight()

	return s.nextQuestion()
}

// nextQuestion picks an unused country uniformly at random, wrapping the
// used set around once the pool is exhausted, and builds the shuffled
// four-option question.
func (s *Session) nextQuestion() error {
	candidates := make([]domain.CountryRecord, 0, len(s.pool))
	for _, c := range s.pool {
		if _, used := s.usedIDs[c.ID]; !used {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		// Every country has been shown; repeats beat a stalled session.
		s.usedIDs = make(map[string]struct{})
		candidates = append(candidates, s.pool...)
	}

	correct := candidates[s.rng.Intn(len(candidates))]
	s.usedIDs[correct.ID] = struct{}{}

	distractors, err := pickDistractors(s.rng, correct, s.pool, domain.OptionCount-1, s.usedIDs)
	if err != nil {
		return err
	}

	options := make([]domain.CountryRecord, 0, domain.OptionCount)
	options = append(options, correct)
	options = append(options, distractors...)
	shuffle(s.rng, options)

	correctIndex := 0
	for i, opt := range options {
		if opt.ID == correct.ID {
			correctIndex = i
			break
		}
	}

	s.current = &domain.Question{
		Correct:      correct,
		Options:      options,
		CorrectIndex: correctIndex,
	}
	s.answered = false

	names := make([]string, len(options))
	for i, opt := range options {
		names[i] = opt.DisplayName(s.language)
	}
	s.presenter.OnQuestionReady(correct.FlagRef, names)
	return nil
}

// Submit scores the player's pick for the current question. Calls while
// inactive or after the question was already answered are defined no-ops,
// not errors: the flags are the double-click guard. The correct country is
// highlighted on the map whether or not the pick was right, so the player
// always sees where it is.
func (s *Session) Submit(selectedIndex int) {
	if !s.active || s.answered || s.current == nil {
		return
	}
	s.answered = true

	q := s.current
	if selectedIndex == q.CorrectIndex {
		s.score++
	}
	s.highlighter.Highlight(q.Correct.ID, q.Correct.Coords)
	s.presenter.OnAnswerResult(q.CorrectIndex, selectedIndex, q.Correct.DisplayName(s.language))
	s.presenter.OnScoreChanged(s.score, s.questionIndex+1)
}

// Advance moves past the current question: next question if any remain,
// otherwise the session ends with its final summary. Advancing is a
// separate step from Submit so the caller can hold feedback on screen.
func (s *Session) Advance() error {
	if !s.active {
		return nil
	}
	s.questionIndex++
	s.presenter.OnProgressChanged(ProgressPercent(s.questionIndex, s.totalQuestions))
	if s.questionIndex < s.totalQuestions {
		return s.nextQuestion()
	}
	s.End()
	return nil
}

// End finishes the play-through and emits the final summary. The session
// stays around in its ended state until Start or Restart.
func (s *Session) End() {
	if !s.active {
		return
	}
	s.active = false
	s.current = nil
	s.answered = false
	s.presenter.OnSessionEnd(domain.SessionSummary{
		Score:    s.score,
		Total:    s.totalQuestions,
		Answered: s.questionIndex,
		Accuracy: FinalAccuracy(s.score, s.questionIndex),
	})
}
