package app

import (
	"math/rand"

	"flagquiz-service/internal/domain"
)

// pickDistractors selects count wrong answers for correct out of pool.
// Countries already shown this session are excluded; if that leaves too
// few candidates the exclusion is relaxed so late-session questions stay
// playable (repeats among wrong answers are acceptable, the correct
// country is never offered as a wrong answer).
func pickDistractors(rng *rand.Rand, correct domain.CountryRecord, pool []domain.CountryRecord, count int, usedIDs map[string]struct{}) ([]domain.CountryRecord, error) {
	candidates := make([]domain.CountryRecord, 0, len(pool))
	for _, c := range pool {
		if c.ID == correct.ID {
			continue
		}
		if _, used := usedIDs[c.ID]; used {
			continue
		}
		candidates = append(candidates, c)
	}

	if len(candidates) < count {
		candidates = candidates[:0]
		for _, c := range pool {
			if c.ID != correct.ID {
				candidates = append(candidates, c)
			}
		}
	}
	if len(candidates) < count {
		return nil, domain.ErrInsufficientCandidates
	}

	shuffle(rng, candidates)
	return candidates[:count], nil
}

// shuffle permutes records in place (Fisher–Yates).
func shuffle(rng *rand.Rand, records []domain.CountryRecord) {
	for i := len(records) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		records[i], records[j] = records[j], records[i]
	}
}
