package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/promptlab/internal/ui/theme"
)

const titleFull = `╔═╗┬─┐┌─┐┌┬┐┌─┐┌┬┐  ╦  ┌─┐┌┐
╠═╝├┬┘│ ││││├─┘ │   ║  ├─┤├┴┐
╩  ┴└─└─┘┴ ┴┴   ┴   ╩═╝┴ ┴└─┘`

const titleCompact = "P R O M P T L A B"

const tagline = "Master the art of AI prompting through interactive exercises and real-time feedback"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	art := titleFull
	if compact {
		art = titleCompact
	}

	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)
	return center.Render(style.Render(art)) + "\n\n" +
		center.Foreground(theme.TextDim).Render(tagline)
}

// renderStatsBar shows this run's attempt count and best score.
func renderStatsBar(attempts, best, cw int) string {
	count := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	bestText := dim.Render("★ no score yet")
	if attempts > 0 {
		bestText = theme.ScoreStyle(best).Render(fmt.Sprintf("★ best %d/5", best))
	}

	stats := count.Render(fmt.Sprintf("✎ %d EVALUATED", attempts)) + "   " + bestText

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderMenuBlock centers the rendered menu within the content width.
func renderMenuBlock(menu string, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Left).
		PaddingLeft(max((cw-44)/2, 0)).
		Render(strings.TrimRight(menu, "\n"))
}

// renderFrame centers content within the given dimensions.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
