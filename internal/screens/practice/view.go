package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/promptlab/internal/evaluator"
	"github.com/abhisek/promptlab/internal/ui/components"
	"github.com/abhisek/promptlab/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	cw := min(width-4, maxWidth)
	e := s.Current()

	var b strings.Builder

	b.WriteString(s.tabs.View(cw))
	b.WriteString("\n\n")

	// Problem card.
	heading := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(e.Title) +
		"  " + theme.Badge(e.ID, e.Skill)
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(components.Panel("📝 Challenge", e.Problem, cw, theme.SuggestionCard))
	b.WriteString("\n\n")

	// Input and actions.
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Your Prompt"))
	b.WriteString("\n")
	b.WriteString(s.input.View())
	b.WriteString("\n")

	submit := s.submit
	submit.Active = s.CanSubmit()
	b.WriteString(submit.View())
	if !submit.Active {
		b.WriteString("  " + theme.Hint.Render(fmt.Sprintf("at least %d characters", s.minLen)))
	}
	b.WriteString("\n")

	if s.showExample {
		b.WriteString("\n")
		b.WriteString(components.Panel("💡 Example Prompt", fmt.Sprintf("%q", e.Example), cw, theme.ExampleCard))
		b.WriteString("\n")
	}

	if s.feedback != nil {
		b.WriteString("\n")
		b.WriteString(renderFeedback(*s.feedback, cw))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderFeedback renders the score line and the warning and suggestion
// panels. Empty panels are omitted.
func renderFeedback(fb evaluator.Feedback, cw int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw)))
	b.WriteString("\n")
	b.WriteString(components.NewScoreBar("Score:", fb.Score, evaluator.MaxScore, min(cw, 40)).View())
	b.WriteString("  ")
	b.WriteString(theme.ScoreStyle(fb.Score).Render(evaluator.Rating(fb.Score)))
	b.WriteString("\n")

	if len(fb.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(components.Panel("Issues to Fix", bullets(fb.Warnings), cw,
			theme.WarningCard.Foreground(theme.Error)))
		b.WriteString("\n")
	}
	if len(fb.Suggestions) > 0 {
		b.WriteString("\n")
		b.WriteString(components.Panel("Suggestions", bullets(fb.Suggestions), cw,
			theme.SuggestionCard.Foreground(theme.Primary)))
		b.WriteString("\n")
	}

	return b.String()
}

func bullets(items []string) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = "• " + it
	}
	return strings.Join(lines, "\n")
}
