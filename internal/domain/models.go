package domain

// Difficulty selects a quiz tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Known reports whether d is one of the fixed difficulty tiers.
func (d Difficulty) Known() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// DefaultLanguage is the language key every country record carries a name for.
const DefaultLanguage = "en"

// Coordinates is a latitude/longitude pair, passed through to the map
// highlighter and otherwise opaque to the engine.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CountryRecord is a single entry of the country reference dataset.
// Records are read-only to the engine.
type CountryRecord struct {
	ID         string            `json:"id"` // 2-letter code, unique within the pool
	Names      map[string]string `json:"names"`
	Region     string            `json:"region"`
	Subregion  string            `json:"subregion"`
	Coords     Coordinates       `json:"coords"`
	FlagRef    string            `json:"flagRef"` // opaque image reference
	Population int64             `json:"population"`
}

// DisplayName returns the country name for lang, falling back to the
// default language and then to any available name.
func (c CountryRecord) DisplayName(lang string) string {
	if name, ok := c.Names[lang]; ok && name != "" {
		return name
	}
	if name, ok := c.Names[DefaultLanguage]; ok && name != "" {
		return name
	}
	for _, name := range c.Names {
		if name != "" {
			return name
		}
	}
	return c.ID
}

// OptionCount is the number of answer options per question.
const OptionCount = 4

// Question is one round of the quiz: a correct country plus three
// distractors, shuffled. It is replaced, never mutated, on advance.
type Question struct {
	Correct      CountryRecord
	Options      []CountryRecord // exactly OptionCount entries with distinct ids
	CorrectIndex int             // index of Correct within Options, recomputed after shuffle
}

// SessionSummary is the final results payload of a finished session.
type SessionSummary struct {
	Score    int `json:"score"`
	Total    int `json:"total"`
	Answered int `json:"questionsAnswered"`
	Accuracy int `json:"accuracy"` // percent, rounded
}
