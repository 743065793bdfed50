package app

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"flagquiz-service/internal/domain"
)

func distractorPool(n int) []domain.CountryRecord {
	pool := make([]domain.CountryRecord, n)
	for i := range pool {
		pool[i] = domain.CountryRecord{ID: fmt.Sprintf("C%02d", i)}
	}
	return pool
}

func TestPickDistractorsExcludesCorrectAndUsed(t *testing.T) {
	pool := distractorPool(10)
	correct := pool[0]
	used := map[string]struct{}{"C00": {}, "C01": {}, "C02": {}}

	got, err := pickDistractors(rand.New(rand.NewSource(1)), correct, pool, 3, used)
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 distractors, got %d", len(got))
	}
	for _, d := range got {
		if d.ID == correct.ID {
			t.Fatalf("correct country offered as distractor")
		}
		if _, wasUsed := used[d.ID]; wasUsed {
			t.Fatalf("used country %s offered while enough fresh candidates exist", d.ID)
		}
	}
}

func TestPickDistractorsRelaxesUsedExclusion(t *testing.T) {
	// Only one unused candidate remains; the no-repeat rule is dropped so
	// the question can still offer three wrong answers. The correct country
	// stays excluded even then.
	pool := distractorPool(5)
	correct := pool[0]
	used := map[string]struct{}{"C00": {}, "C01": {}, "C02": {}, "C03": {}}

	got, err := pickDistractors(rand.New(rand.NewSource(2)), correct, pool, 3, used)
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 distractors after relaxation, got %d", len(got))
	}
	for _, d := range got {
		if d.ID == correct.ID {
			t.Fatalf("correct country offered as distractor after relaxation")
		}
	}
}

func TestPickDistractorsFailsWhenPoolTooSmall(t *testing.T) {
	pool := distractorPool(3)
	_, err := pickDistractors(rand.New(rand.NewSource(3)), pool[0], pool, 3, nil)
	if !errors.Is(err, domain.ErrInsufficientCandidates) {
		t.Fatalf("expected ErrInsufficientCandidates, got %v", err)
	}
}

func TestPickDistractorsDeterministicUnderSeed(t *testing.T) {
	pool := distractorPool(12)
	used := map[string]struct{}{"C05": {}}

	first, err := pickDistractors(rand.New(rand.NewSource(7)), pool[2], pool, 3, used)
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	second, err := pickDistractors(rand.New(rand.NewSource(7)), pool[2], pool, 3, used)
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("same seed produced different distractors: %v vs %v", first, second)
		}
	}
}

func TestShuffleIsAPermutation(t *testing.T) {
	pool := distractorPool(8)
	shuffled := append([]domain.CountryRecord(nil), pool...)
	shuffle(rand.New(rand.NewSource(4)), shuffled)

	seen := map[string]int{}
	for _, c := range shuffled {
		seen[c.ID]++
	}
	for _, c := range pool {
		if seen[c.ID] != 1 {
			t.Fatalf("shuffle lost or duplicated %s", c.ID)
		}
	}
}
