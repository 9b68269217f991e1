package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/promptlab/internal/ui/theme"
)

// The practice screen needs room for the challenge card, a multi-line
// prompt editor and the feedback panel.
const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal cannot fit the practice screen.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to enlarge the terminal. Typed prompts
// are kept while the message is shown.
func RenderMinSizeMessage(width, height int) string {
	need := lipgloss.NewStyle().Foreground(theme.Warning).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	lines := []string{
		need.Render("Promptlab needs a bigger window"),
		"",
		dim.Render(fmt.Sprintf("at least %d×%d, now %d×%d", MinWidth, MinHeight, width, height)),
		"",
		dim.Render("Your prompt is kept. Resize to continue."),
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// RenderHeader renders the application header bar. The right side shows
// how many prompts were evaluated this session and the best score so far.
func RenderHeader(title string, attempts, best int, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  Promptlab")

	center := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(title)

	bestText := "-"
	if best > 0 {
		bestText = fmt.Sprintf("%d/5", best)
	}
	right := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(fmt.Sprintf("✎ %d", attempts)) +
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("   ") +
		lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render("★ best "+bestText)

	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	rightLen := lipgloss.Width(right)

	innerWidth := max(width-4, 0)
	leftGap := max((innerWidth-centerLen)/2-leftLen, 1)
	rightGap := max(innerWidth-leftLen-leftGap-centerLen-rightLen, 1)

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right

	return bar(content, width)
}

const hintSep = "  ·  "

// RenderFooter renders the key hints. When they do not all fit, the hints
// just before the last one are dropped until they do; the first and the
// last hint are always shown.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, renderHint(h))
	}

	avail := width - 6
	for len(parts) > 2 && lipgloss.Width(strings.Join(parts, hintSep)) > avail {
		parts = append(parts[:len(parts)-2], parts[len(parts)-1])
	}

	return bar("  "+strings.Join(parts, hintSep), width)
}

func renderHint(h KeyHint) string {
	key := lipgloss.NewStyle().
		Foreground(theme.BgCard).
		Background(theme.TextDim).
		Bold(true).
		Render(" " + h.Key + " ")
	return key + " " + lipgloss.NewStyle().Foreground(theme.Text).Render(h.Description)
}

func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderFrame composes the full frame: header + content + footer.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	styledContent := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return header + "\n" + styledContent + "\n" + footer
}
