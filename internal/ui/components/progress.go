package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/promptlab/internal/ui/theme"
)

// ScoreBar displays a score out of max as a horizontal bar coloured by
// the score band.
type ScoreBar struct {
	Label string
	Score int
	Max   int
	Width int
}

// NewScoreBar creates a new score bar.
func NewScoreBar(label string, score, maxScore, width int) ScoreBar {
	return ScoreBar{
		Label: label,
		Score: score,
		Max:   maxScore,
		Width: width,
	}
}

// View renders the score bar.
func (p ScoreBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	suffix := fmt.Sprintf("  %d/%d", p.Score, p.Max)
	barWidth := p.Width - lipgloss.Width(result) - len(suffix)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := 0
	if p.Max > 0 {
		filled = barWidth * p.Score / p.Max
	}
	filled = min(max(filled, 0), barWidth)
	empty := barWidth - filled

	result += lipgloss.NewStyle().
		Background(theme.ScoreColor(p.Score)).
		Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))
	result += theme.ScoreStyle(p.Score).Render(suffix)

	return result
}
