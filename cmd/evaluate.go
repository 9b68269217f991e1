package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/promptlab/internal/batch"
	"github.com/abhisek/promptlab/internal/evaluator"
	"github.com/abhisek/promptlab/internal/exercise"
	"github.com/abhisek/promptlab/internal/heuristics"
	"github.com/abhisek/promptlab/internal/report"
)

func newEvaluateCmd(rt *deps) *cobra.Command {
	evaluateCmd := &cobra.Command{
		Use:   "evaluate [prompt]",
		Short: "Evaluate a prompt against an exercise",
		Long: `Score a prompt for an exercise and list what to improve.

The prompt is taken from the argument, or read from stdin when no argument
is given. With --file, every non-blank line of the file is evaluated as a
separate prompt and the results are printed in file order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(cmd, rt, args)
		},
	}

	evaluateCmd.Flags().StringP("exercise", "e", "", "Exercise ID (default from config)")
	evaluateCmd.Flags().Bool("json", false, "Print the result as JSON")
	evaluateCmd.Flags().String("file", "", "Evaluate each non-blank line of this file (\"-\" for stdin)")
	evaluateCmd.Flags().Int("jobs", batch.DefaultJobs, "Prompts evaluated concurrently with --file")
	evaluateCmd.Flags().Bool("allow-unknown", false, "Accept exercise IDs outside the catalog (general rules only)")

	return evaluateCmd
}

func runEvaluate(cmd *cobra.Command, rt *deps, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	file, _ := cmd.Flags().GetString("file")
	jobs, _ := cmd.Flags().GetInt("jobs")
	allowUnknown, _ := cmd.Flags().GetBool("allow-unknown")

	id := rt.exerciseFlag(cmd)
	if _, err := exercise.Get(id); err != nil && !allowUnknown {
		return fmt.Errorf("%w (known: %s)", err, strings.Join(exercise.IDs(), ", "))
	}

	if file != "" {
		if len(args) > 0 {
			return errors.New("use a prompt argument or --file, not both")
		}
		return runEvaluateBatch(cmd, rt, id, file, jobs, asJSON)
	}

	text, err := promptText(cmd, args)
	if err != nil {
		return err
	}

	fb := evaluator.Evaluate(text, id)
	logEvaluation(rt.logger, id, text, fb)

	r := report.New(id, fb)
	if asJSON {
		return report.EncodeJSON(cmd.OutOrStdout(), r.WithPrompt(text))
	}
	return report.WriteText(cmd.OutOrStdout(), r)
}

func runEvaluateBatch(cmd *cobra.Command, rt *deps, id, file string, jobs int, asJSON bool) error {
	var in io.Reader = cmd.InOrStdin()
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("open prompts file: %w", err)
		}
		defer f.Close()
		in = f
	}

	prompts, err := batch.ReadPrompts(in)
	if err != nil {
		return err
	}

	results, err := batch.Evaluate(cmd.Context(), id, prompts, jobs)
	if err != nil {
		return err
	}

	reports := make([]report.Report, len(results))
	for i, fb := range results {
		logEvaluation(rt.logger, id, prompts[i], fb)
		reports[i] = report.New(id, fb).WithPrompt(prompts[i])
	}
	rt.logger.Info("batch evaluated", zap.String("exercise", id), zap.Int("prompts", len(prompts)))

	if asJSON {
		return report.EncodeBatchJSON(cmd.OutOrStdout(), reports)
	}

	out := cmd.OutOrStdout()
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "── Prompt %d/%d ──\n%s\n", i+1, len(reports), r.Prompt)
		if err := report.WriteText(out, r); err != nil {
			return err
		}
	}
	return nil
}

// promptText returns the prompt argument, or all of stdin without its
// trailing newline.
func promptText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read prompt: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// logEvaluation records the outcome of one evaluation. The prompt text is
// never logged.
func logEvaluation(logger *zap.Logger, id, text string, fb evaluator.Feedback) {
	logger.Info("prompt evaluated",
		zap.String("exercise", id),
		zap.Int("score", fb.Score),
		zap.Int("suggestions", len(fb.Suggestions)),
		zap.Int("warnings", len(fb.Warnings)),
		zap.Int("length", heuristics.Length(text)),
	)
}
