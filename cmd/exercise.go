package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/promptlab/internal/exercise"
	"github.com/abhisek/promptlab/internal/ui/theme"
)

func newExerciseCmd(rt *deps) *cobra.Command {
	exerciseCmd := &cobra.Command{
		Use:   "exercise",
		Short: "Browse the practice exercises",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all exercises",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			exercises := exercise.All()

			fmt.Fprintf(out, "%-14s  %-24s  %s\n", "ID", "Title", "Skill")
			fmt.Fprintln(out, strings.Repeat("─", 62))
			for _, e := range exercises {
				marker := " "
				if e.ID == rt.cfg.DefaultExercise {
					marker = "*"
				}
				fmt.Fprintf(out, "%-14s  %-24s  %s\n", e.ID+marker, e.Title, e.Skill)
			}

			fmt.Fprintf(out, "\n%d exercises (* default)\n", len(exercises))
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show an exercise's challenge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := exercise.Get(args[0])
			if err != nil {
				return fmt.Errorf("%w (known: %s)", err, strings.Join(exercise.IDs(), ", "))
			}
			withExample, _ := cmd.Flags().GetBool("example")
			_, err = lipgloss.Fprint(cmd.OutOrStdout(), renderExercise(e, withExample))
			return err
		},
	}
	showCmd.Flags().Bool("example", false, "Also print the example prompt")

	exerciseCmd.AddCommand(listCmd, showCmd)
	return exerciseCmd
}

func renderExercise(e exercise.Exercise, withExample bool) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(e.Title))
	b.WriteString("  ")
	b.WriteString(theme.Badge(e.ID, e.Skill))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("📝 Challenge"))
	b.WriteString("\n")
	b.WriteString(e.Problem)
	b.WriteString("\n")
	if withExample {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("💡 Example Prompt"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Italic(true).Render(fmt.Sprintf("%q", e.Example)))
		b.WriteString("\n")
	}
	return b.String()
}
