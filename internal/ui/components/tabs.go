package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/promptlab/internal/ui/theme"
)

// Tabs is a horizontal tab bar. Active wraps around in both directions.
type Tabs struct {
	Labels []string
	Active int
}

// NewTabs creates a tab bar with the given tab active. An out-of-range
// active index selects the first tab.
func NewTabs(labels []string, active int) Tabs {
	if active < 0 || active >= len(labels) {
		active = 0
	}
	return Tabs{Labels: labels, Active: active}
}

// Next activates the tab to the right.
func (t Tabs) Next() Tabs {
	if len(t.Labels) > 0 {
		t.Active = (t.Active + 1) % len(t.Labels)
	}
	return t
}

// Prev activates the tab to the left.
func (t Tabs) Prev() Tabs {
	if n := len(t.Labels); n > 0 {
		t.Active = (t.Active - 1 + n) % n
	}
	return t
}

// View renders the tab bar with an underline spanning width.
func (t Tabs) View(width int) string {
	parts := make([]string, 0, len(t.Labels))
	for i, l := range t.Labels {
		if i == t.Active {
			parts = append(parts, theme.TabActive.Render(l))
		} else {
			parts = append(parts, theme.TabInactive.Render(l))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	rule := lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("─", max(width, lipgloss.Width(bar))))
	return bar + "\n" + rule
}
