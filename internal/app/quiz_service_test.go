package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"flagquiz-service/internal/app"
	"flagquiz-service/internal/domain"
	"flagquiz-service/internal/infra/memory"
)

func newTestService(countries []domain.CountryRecord) (*app.QuizService, *memory.SessionStore) {
	store := memory.NewSessionStore()
	repo := memory.NewCountryRepository(memory.NewStaticCountryLoader(countries), 5*time.Minute)
	return app.NewQuizService(store, repo), store
}

func TestStartSessionFullFlow(t *testing.T) {
	ctx := context.Background()
	service, store := newTestService(testPool(30))

	presenter := &recordingPresenter{}
	highlighter := &recordingHighlighter{}
	service.Connect(ctx, "quiz-1", presenter, highlighter)

	session, err := service.StartSession(ctx, "quiz-1", domain.DifficultyEasy)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if session.TotalQuestions() != app.ResolveTier(domain.DifficultyEasy).QuestionCount {
		t.Fatalf("total questions %d does not match tier", session.TotalQuestions())
	}
	if len(presenter.questions) != 1 {
		t.Fatalf("expected first question notification, got %d", len(presenter.questions))
	}

	q := session.Current()
	if err := service.SubmitAnswer(ctx, "quiz-1", q.CorrectIndex); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if session.Score() != 1 {
		t.Fatalf("expected score 1, got %d", session.Score())
	}
	if err := service.Advance(ctx, "quiz-1"); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if len(presenter.questions) != 2 {
		t.Fatalf("expected second question after advance, got %d", len(presenter.questions))
	}

	if err := service.EndSession(ctx, "quiz-1"); err != nil {
		t.Fatalf("end: %v", err)
	}
	if _, ok := store.Get("quiz-1"); !ok {
		t.Fatalf("ended session should remain until released")
	}
	service.Release(ctx, "quiz-1")
	if _, ok := store.Get("quiz-1"); ok {
		t.Fatalf("released inactive session should be gone")
	}
}

func TestStartSessionRejectsUnknownDifficulty(t *testing.T) {
	ctx := context.Background()
	service, store := newTestService(testPool(30))

	_, err := service.StartSession(ctx, "quiz-1", "nonexistent-difficulty")
	if !errors.Is(err, domain.ErrInvalidDifficulty) {
		t.Fatalf("expected ErrInvalidDifficulty, got %v", err)
	}
	if _, ok := store.Get("quiz-1"); ok {
		t.Fatalf("no session may be created for rejected difficulty")
	}
}

func TestStartSessionFailsOnTinyDataset(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(testPool(3))

	_, err := service.StartSession(ctx, "quiz-1", domain.DifficultyEasy)
	if !errors.Is(err, domain.ErrInsufficientPool) {
		t.Fatalf("expected ErrInsufficientPool, got %v", err)
	}
}

func TestStartSessionPropagatesDataUnavailable(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(nil)

	_, err := service.StartSession(ctx, "quiz-1", domain.DifficultyMedium)
	if !errors.Is(err, domain.ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got %v", err)
	}
}

func TestOperationsOnUnknownSession(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(testPool(30))

	if err := service.SubmitAnswer(ctx, "nope", 0); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("submit: expected ErrSessionNotFound, got %v", err)
	}
	if err := service.Advance(ctx, "nope"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("advance: expected ErrSessionNotFound, got %v", err)
	}
	if _, err := service.RestartSession(ctx, "nope", true); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("restart: expected ErrSessionNotFound, got %v", err)
	}
}

func TestRestartSameDifficultyStartsNewRun(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(testPool(30))

	presenter := &recordingPresenter{}
	service.Connect(ctx, "quiz-1", presenter, nil)

	first, err := service.StartSession(ctx, "quiz-1", domain.DifficultyMedium)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	service.SubmitAnswer(ctx, "quiz-1", first.Current().CorrectIndex)

	session, err := service.RestartSession(ctx, "quiz-1", true)
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if !session.Active() {
		t.Fatalf("expected restarted session to be active")
	}
	if session.Difficulty() != domain.DifficultyMedium {
		t.Fatalf("expected same difficulty, got %s", session.Difficulty())
	}
	if session.Score() != 0 || session.QuestionIndex() != 0 {
		t.Fatalf("expected reset state, got score=%d index=%d", session.Score(), session.QuestionIndex())
	}
	if len(presenter.summaries) != 1 {
		t.Fatalf("expected end summary from the replaced run, got %d", len(presenter.summaries))
	}
	if len(presenter.starts) != 2 {
		t.Fatalf("expected two session starts, got %d", len(presenter.starts))
	}
}

func TestRestartWithoutSameDifficultyGoesIdle(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(testPool(30))

	if _, err := service.StartSession(ctx, "quiz-1", domain.DifficultyHard); err != nil {
		t.Fatalf("start: %v", err)
	}
	session, err := service.RestartSession(ctx, "quiz-1", false)
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if session.Active() {
		t.Fatalf("expected idle session after restart without difficulty")
	}
	if session.Current() != nil {
		t.Fatalf("expected no pending question")
	}
}
