package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"flagquiz-service/internal/app"
	"flagquiz-service/internal/config"
	"flagquiz-service/internal/domain"
	"flagquiz-service/internal/infra/memory"
	"github.com/spf13/cobra"
)

// NewPlayCmd runs a quiz session in the terminal against the embedded
// dataset; useful as a scripted harness for the engine.
func NewPlayCmd() *cobra.Command {
	var difficulty string
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a quiz session in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, domain.Difficulty(difficulty))
		},
	}
	cmd.Flags().StringVar(&difficulty, "difficulty", string(domain.DifficultyEasy), "difficulty tier (easy, medium, hard)")
	return cmd
}

func runPlay(cmd *cobra.Command, difficulty domain.Difficulty) error {
	countries := memory.NewCountryRepository(
		memory.NewStaticCountryLoader(sampleCountries()),
		config.TTLDuration("", time.Hour),
	)
	store := memory.NewSessionStore()
	service := app.NewQuizService(store, countries)

	presenter := &consolePresenter{out: cmd.OutOrStdout()}
	service.Connect(cmd.Context(), "local", presenter, presenter)

	if _, err := service.StartSession(cmd.Context(), "local", difficulty); err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	session, _ := store.Get("local")
	for session.Active() {
		fmt.Fprint(cmd.OutOrStdout(), "answer [1-4], q to quit: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "q" {
			return service.EndSession(cmd.Context(), "local")
		}
		pick, err := strconv.Atoi(input)
		if err != nil || pick < 1 || pick > domain.OptionCount {
			fmt.Fprintln(cmd.OutOrStdout(), "pick a number between 1 and 4")
			continue
		}
		if err := service.SubmitAnswer(cmd.Context(), "local", pick-1); err != nil {
			return err
		}
		if err := service.Advance(cmd.Context(), "local"); err != nil {
			return err
		}
	}
	return nil
}

// consolePresenter renders engine notifications to the terminal. Map
// highlights print the coordinates since there is no map to color in.
type consolePresenter struct {
	out io.Writer
}

func (p *consolePresenter) OnSessionStart(total int) {
	fmt.Fprintf(p.out, "\nNew session: %d questions\n", total)
}

func (p *consolePresenter) OnQuestionReady(flagRef string, options []string) {
	fmt.Fprintf(p.out, "\nWhich country does this flag belong to?\n  %s\n", flagRef)
	for i, name := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, name)
	}
}

func (p *consolePresenter) OnAnswerResult(correctIndex, selectedIndex int, correctName string) {
	if correctIndex == selectedIndex {
		fmt.Fprintf(p.out, "Correct! It is %s.\n", correctName)
	} else {
		fmt.Fprintf(p.out, "Wrong. It is %s.\n", correctName)
	}
}

func (p *consolePresenter) OnScoreChanged(score, answered int) {
	if answered == 0 {
		return
	}
	fmt.Fprintf(p.out, "Score: %d/%d (%d%%)\n", score, answered, app.LiveAccuracy(score, answered-1))
}

func (p *consolePresenter) OnProgressChanged(percent int) {}

func (p *consolePresenter) OnSessionEnd(summary domain.SessionSummary) {
	fmt.Fprintf(p.out, "\nDone: %d/%d correct, accuracy %d%%\n", summary.Score, summary.Total, summary.Accuracy)
}

func (p *consolePresenter) Highlight(countryID string, coords domain.Coordinates) {
	fmt.Fprintf(p.out, "Map: %s at %.1f, %.1f\n", countryID, coords.Lat, coords.Lng)
}

func (p *consolePresenter) ClearHighlight() {}
