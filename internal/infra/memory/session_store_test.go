package memory

import (
	"testing"

	"flagquiz-service/internal/domain"
)

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore()

	session := store.GetOrCreate("quiz-1")
	if session == nil {
		t.Fatalf("expected session")
	}
	if again := store.GetOrCreate("quiz-1"); again != session {
		t.Fatalf("expected the same session instance")
	}
	if _, ok := store.Get("quiz-1"); !ok {
		t.Fatalf("expected session present")
	}

	store.DeleteIfInactive("quiz-1")
	if _, ok := store.Get("quiz-1"); ok {
		t.Fatalf("expected idle session removed")
	}
}

func TestSessionStoreKeepsActiveSessions(t *testing.T) {
	store := NewSessionStore()

	session := store.GetOrCreate("quiz-1")
	pool := []domain.CountryRecord{
		{ID: "AA"}, {ID: "BB"}, {ID: "CC"}, {ID: "DD"},
	}
	if err := session.Start(domain.DifficultyEasy, pool, 3); err != nil {
		t.Fatalf("start: %v", err)
	}

	store.DeleteIfInactive("quiz-1")
	if _, ok := store.Get("quiz-1"); !ok {
		t.Fatalf("active session must not be removed")
	}

	session.End()
	store.DeleteIfInactive("quiz-1")
	if _, ok := store.Get("quiz-1"); ok {
		t.Fatalf("ended session should be removed")
	}
}
