package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/promptlab/internal/guide"
	"github.com/abhisek/promptlab/internal/ui/theme"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide",
		Short: "Print the prompting rules and pro tips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			heading := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			bold := lipgloss.NewStyle().Bold(true)

			var b strings.Builder
			b.WriteString(heading.Render("📖 Prompting Rules"))
			b.WriteString("\n")
			for i, r := range guide.Rules() {
				fmt.Fprintf(&b, "  %d. %s\n", i+1, r)
			}
			b.WriteString("\n")
			b.WriteString(heading.Render("💡 Pro Tips"))
			b.WriteString("\n")
			for _, t := range guide.Tips() {
				fmt.Fprintf(&b, "  %s %s\n", bold.Render(t.Title+":"), t.Body)
			}

			_, err := lipgloss.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}
}
