// Package guide shows the prompting rules and pro tips.
package guide

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	content "github.com/abhisek/promptlab/internal/guide"
	"github.com/abhisek/promptlab/internal/router"
	"github.com/abhisek/promptlab/internal/screen"
	"github.com/abhisek/promptlab/internal/ui/components"
	"github.com/abhisek/promptlab/internal/ui/layout"
	"github.com/abhisek/promptlab/internal/ui/theme"
)

// GuideScreen is a read-only reference page.
type GuideScreen struct{}

var _ screen.Screen = (*GuideScreen)(nil)
var _ screen.KeyHintProvider = (*GuideScreen)(nil)

// New creates a new GuideScreen.
func New() *GuideScreen {
	return &GuideScreen{}
}

func (g *GuideScreen) Init() tea.Cmd {
	return nil
}

func (g *GuideScreen) Title() string {
	return "Prompting Guide"
}

func (g *GuideScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back"},
		{Key: "Esc", Description: "Back"},
	}
}

func (g *GuideScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return g, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return g, nil
}

func (g *GuideScreen) View(width, height int) string {
	cw := components.ContentWidth(width, 70)

	num := lipgloss.NewStyle().
		Foreground(theme.Text).
		Background(theme.Primary).
		Bold(true)

	var rules strings.Builder
	for i, r := range content.Rules() {
		if i > 0 {
			rules.WriteString("\n")
		}
		rules.WriteString(num.Render(fmt.Sprintf(" %d ", i+1)) + " " + r)
	}

	tipColors := []lipgloss.Style{
		lipgloss.NewStyle().Foreground(theme.Warning),
		lipgloss.NewStyle().Foreground(theme.Success),
		lipgloss.NewStyle().Foreground(theme.Primary),
	}
	var tips strings.Builder
	for i, t := range content.Tips() {
		if i > 0 {
			tips.WriteString("\n")
		}
		style := tipColors[i%len(tipColors)]
		tips.WriteString(style.Bold(true).Render(t.Title+":") + " " + style.Render(t.Body))
	}

	var b strings.Builder
	b.WriteString(components.Panel("📖 Prompting Rules", rules.String(), cw, theme.Card))
	b.WriteString("\n\n")
	b.WriteString(components.Panel("💡 Pro Tips", tips.String(), cw, theme.Card))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
