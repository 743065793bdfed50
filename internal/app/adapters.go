package app

import "flagquiz-service/internal/domain"

// PresentationAdapter receives display notifications from the engine.
// All calls are fire-and-forget; the engine never consumes a return value.
type PresentationAdapter interface {
	OnSessionStart(totalQuestions int)
	OnQuestionReady(flagRef string, optionNames []string)
	OnAnswerResult(correctIndex, selectedIndex int, correctName string)
	OnScoreChanged(score, questionsAnswered int)
	OnProgressChanged(percent int)
	OnSessionEnd(summary domain.SessionSummary)
}

// GeoHighlightAdapter receives map highlight requests from the engine.
type GeoHighlightAdapter interface {
	Highlight(countryID string, coords domain.Coordinates)
	ClearHighlight()
}

// NopPresenter is the default presentation adapter; sessions without an
// attached client run against it.
type NopPresenter struct{}

func (NopPresenter) OnSessionStart(int)                 {}
func (NopPresenter) OnQuestionReady(string, []string)   {}
func (NopPresenter) OnAnswerResult(int, int, string)    {}
func (NopPresenter) OnScoreChanged(int, int)            {}
func (NopPresenter) OnProgressChanged(int)              {}
func (NopPresenter) OnSessionEnd(domain.SessionSummary) {}

// NopHighlighter is the default geo adapter.
type NopHighlighter struct{}

func (NopHighlighter) Highlight(string, domain.Coordinates) {}
func (NopHighlighter) ClearHighlight()                      {}
