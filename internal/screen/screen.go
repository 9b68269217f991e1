// Package screen defines what the router needs from a page of the TUI.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/promptlab/internal/ui/layout"
)

// Screen is one page of the app: home, practice, guide or summary.
//
// A screen receives the current tea.WindowSizeMsg right after Init when it
// is opened, and again on every resize.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the area between header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider is implemented by screens that replace the default
// footer hints. The app appends the quit hint itself.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
