package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/promptlab/internal/evaluator"
	"github.com/abhisek/promptlab/internal/router"
	"github.com/abhisek/promptlab/internal/screen"
	"github.com/abhisek/promptlab/internal/session"
	"github.com/abhisek/promptlab/internal/ui/layout"
	"github.com/abhisek/promptlab/internal/ui/theme"
)

// SummaryScreen displays the attempts made during this run.
type SummaryScreen struct {
	summary  *session.Summary
	selected int
	practice func(exerciseID string) screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

// WithPractice lets the user reopen an exercise from its row. The
// summary is replaced by the screen open returns.
func (s *SummaryScreen) WithPractice(open func(exerciseID string) screen.Screen) *SummaryScreen {
	s.practice = open
	return s
}

func (s *SummaryScreen) canPractice() bool {
	return s.practice != nil && s.summary != nil && len(s.summary.Results) > 0
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
	if s.canPractice() {
		hints = append([]layout.KeyHint{
			{Key: "↑↓", Description: "Select"},
			{Key: "P", Description: "Practice again"},
		}, hints...)
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.summary != nil && s.selected < len(s.summary.Results)-1 {
				s.selected++
			}
			return s, nil
		case "p":
			if !s.canPractice() {
				return s, nil
			}
			next := s.practice(s.summary.Results[s.selected].ExerciseID)
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), "Session summary"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	if sum.TotalAttempts == 0 {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
			"No prompts evaluated yet. Pick an exercise from the home screen."))
		return b.String()
	}

	statsLine := fmt.Sprintf("Prompts: %d        Best: %d/%d        Average: %.1f",
		sum.TotalAttempts, sum.Best, evaluator.MaxScore, sum.AverageScore)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text), statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Exercises")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for i, r := range sum.Results {
		marker := "  "
		if s.canPractice() && i == s.selected {
			marker = "▸ "
		}
		line := fmt.Sprintf("%s%-24s %2d tries    best %d/5    last %s",
			marker, r.Title, r.Attempts, r.Best,
			theme.ScoreStyle(r.Last).Render(fmt.Sprintf("%d (%s)", r.Last, evaluator.Rating(r.Last))))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
