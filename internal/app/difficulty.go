package app

import (
	"sort"

	"flagquiz-service/internal/domain"
)

// TierConfig describes a difficulty tier: how large the candidate pool
// is, which regions feed it, and how many questions a session runs.
type TierConfig struct {
	PoolSize      int
	QuestionCount int
	// Regions restricts the pool to these region names; nil means no restriction.
	Regions []string
	// Priority lists country ids placed at the front of the pool before the
	// population-ordered remainder.
	Priority []string
}

var tiers = map[domain.Difficulty]TierConfig{
	domain.DifficultyEasy: {
		PoolSize:      25,
		QuestionCount: 10,
		Regions:       []string{"Europe", "Americas"},
		Priority:      []string{"US", "GB", "FR", "DE", "IT", "ES", "CA", "BR", "MX", "AR"},
	},
	domain.DifficultyMedium: {
		PoolSize:      60,
		QuestionCount: 15,
	},
	domain.DifficultyHard: {
		PoolSize:      150,
		QuestionCount: 20,
	},
}

// ResolveTier maps a difficulty to its tier configuration. It is total:
// an unknown difficulty resolves to the easy tier rather than failing.
// Callers that want strict validation check Difficulty.Known first.
func ResolveTier(d domain.Difficulty) TierConfig {
	if tier, ok := tiers[d]; ok {
		return tier
	}
	return tiers[domain.DifficultyEasy]
}

// BuildPool constructs a session's candidate pool from the full reference
// set: region filter, priority countries first, the rest ordered by
// descending population with input order preserved on ties, truncated to
// the tier's pool size.
func BuildPool(all []domain.CountryRecord, tier TierConfig) ([]domain.CountryRecord, error) {
	filtered := make([]domain.CountryRecord, 0, len(all))
	for _, c := range all {
		if matchesRegion(c, tier.Regions) {
			filtered = append(filtered, c)
		}
	}

	var pool []domain.CountryRecord
	if len(tier.Priority) > 0 {
		prioritized := make(map[string]struct{}, len(tier.Priority))
		for _, id := range tier.Priority {
			prioritized[id] = struct{}{}
		}
		var front, rest []domain.CountryRecord
		byID := make(map[string]domain.CountryRecord, len(filtered))
		for _, c := range filtered {
			if _, ok := prioritized[c.ID]; ok {
				byID[c.ID] = c
			} else {
				rest = append(rest, c)
			}
		}
		// Keep the tier's own priority order, skipping ids absent from the dataset.
		for _, id := range tier.Priority {
			if c, ok := byID[id]; ok {
				front = append(front, c)
			}
		}
		sortByPopulation(rest)
		pool = append(front, rest...)
	} else {
		pool = filtered
		sortByPopulation(pool)
	}

	if tier.PoolSize > 0 && len(pool) > tier.PoolSize {
		pool = pool[:tier.PoolSize]
	}
	if len(pool) < domain.OptionCount {
		return nil, domain.ErrInsufficientPool
	}
	return pool, nil
}

func matchesRegion(c domain.CountryRecord, regions []string) bool {
	if len(regions) == 0 {
		return true
	}
	for _, r := range regions {
		if c.Region == r {
			return true
		}
	}
	return false
}

func sortByPopulation(pool []domain.CountryRecord) {
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Population > pool[j].Population
	})
}
