package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/promptlab/internal/batch"
	"github.com/abhisek/promptlab/internal/evaluator"
	"github.com/abhisek/promptlab/internal/exercise"
	"github.com/abhisek/promptlab/internal/report"
	"github.com/abhisek/promptlab/internal/session"
)

func newPracticeCmd(rt *deps) *cobra.Command {
	practiceCmd := &cobra.Command{
		Use:   "practice",
		Short: "Practice an exercise line by line (no TUI)",
		Long: `Show an exercise and evaluate each prompt typed on stdin until EOF.

Enter one prompt per line. A line containing only "?" prints the example
prompt. A session summary is printed when input ends.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPractice(cmd, rt)
		},
	}
	practiceCmd.Flags().StringP("exercise", "e", "", "Exercise ID (default from config)")
	return practiceCmd
}

func runPractice(cmd *cobra.Command, rt *deps) error {
	e, err := exercise.Get(rt.exerciseFlag(cmd))
	if err != nil {
		return fmt.Errorf("%w (known: %s)", err, strings.Join(exercise.IDs(), ", "))
	}

	out := cmd.OutOrStdout()
	sess := session.New()
	logger := rt.logger.With(zap.String("session", sess.ID))
	logger.Info("session started", zap.String("mode", "practice"), zap.String("exercise", e.ID))

	if _, err := lipgloss.Fprint(out, renderExercise(e, false)); err != nil {
		return err
	}
	fmt.Fprintln(out, `Type a prompt and press Enter ("?" shows the example, Ctrl+D ends).`)

	scanner := batch.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "\nYour prompt: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		text := strings.TrimRight(scanner.Text(), "\r")

		switch strings.TrimSpace(text) {
		case "":
			fmt.Fprintln(out, "(skipped)")
			continue
		case "?":
			fmt.Fprintf(out, "Example: %q\n", e.Example)
			continue
		}

		fb := evaluator.Evaluate(text, e.ID)
		sess.Record(e.ID, text, fb)
		logEvaluation(logger, e.ID, text, fb)

		if err := report.WriteText(out, report.New(e.ID, fb)); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read prompts: %w", err)
	}

	sum := session.BuildSummary(sess)
	if sum.TotalAttempts == 0 {
		fmt.Fprintln(out, "── No prompts evaluated ──")
		return nil
	}
	fmt.Fprintf(out, "── Summary: %d prompts, best %d/%d, average %.1f ──\n",
		sum.TotalAttempts, sum.Best, evaluator.MaxScore, sum.AverageScore)
	logger.Info("session ended", zap.Int("attempts", sum.TotalAttempts), zap.Int("best", sum.Best))
	return nil
}
