package app

import "math"

// ProgressPercent is the share of the session completed so far.
func ProgressPercent(questionIndex, totalQuestions int) int {
	if totalQuestions <= 0 {
		return 0
	}
	return roundPercent(questionIndex, totalQuestions)
}

// LiveAccuracy is the accuracy shown mid-session. The question currently
// being answered counts toward the denominator, which is why this divides
// by questionIndex+1 while FinalAccuracy divides by questionIndex; both
// formulas are observed behavior and kept as-is.
func LiveAccuracy(score, questionIndex int) int {
	return roundPercent(score, questionIndex+1)
}

// FinalAccuracy is the accuracy reported in the end-of-session summary.
func FinalAccuracy(score, questionsAnswered int) int {
	if questionsAnswered == 0 {
		return 0
	}
	return roundPercent(score, questionsAnswered)
}

func roundPercent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(whole)))
}

// Remaining returns how many questions the session has left.
func (s *Session) Remaining() int {
	return s.totalQuestions - s.questionIndex
}

// Valid checks the session state invariants. It is meant for tests and
// defensive assertions, not control flow.
func (s *Session) Valid() bool {
	// A correctly answered question raises score before Advance raises
	// questionIndex, so the answered flag widens the bound by one.
	answeredLimit := s.questionIndex
	if s.answered && s.active {
		answeredLimit++
	}
	if s.score < 0 || s.score > answeredLimit || s.questionIndex > s.totalQuestions {
		return false
	}
	if len(s.usedIDs) > len(s.pool) {
		return false
	}
	poolIDs := make(map[string]struct{}, len(s.pool))
	for _, c := range s.pool {
		poolIDs[c.ID] = struct{}{}
	}
	for id := range s.usedIDs {
		if _, ok := poolIDs[id]; !ok {
			return false
		}
	}
	if s.current != nil && !s.active {
		return false
	}
	return true
}
