package components

import "charm.land/lipgloss/v2"

// ContentWidth returns the uniform inner width for boxed sections, capped
// so text stays readable on wide terminals.
func ContentWidth(frameWidth, maxWidth int) int {
	w := frameWidth - 6
	if w > maxWidth {
		w = maxWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Panel wraps content in a rounded card of width cw with a coloured
// heading line.
func Panel(heading, content string, cw int, style lipgloss.Style) string {
	body := content
	if heading != "" {
		body = lipgloss.NewStyle().Bold(true).Render(heading) + "\n" + content
	}
	return style.
		Width(cw - 2).
		Render(body)
}

// Centered places s horizontally in the middle of width.
func Centered(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
