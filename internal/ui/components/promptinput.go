package components

import (
	"strconv"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/promptlab/internal/heuristics"
	"github.com/abhisek/promptlab/internal/ui/theme"
)

// PromptCharLimit caps how much text the prompt box accepts.
const PromptCharLimit = 2000

// PromptInput wraps bubbles/textarea for multi-line prompt entry.
type PromptInput struct {
	Model textarea.Model
}

// NewPromptInput creates a focused, empty prompt box.
func NewPromptInput(placeholder string, width, height int) PromptInput {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = PromptCharLimit
	ta.SetWidth(width)
	ta.SetHeight(height)
	ta.Focus()

	return PromptInput{Model: ta}
}

// Init returns the focus command.
func (p PromptInput) Init() tea.Cmd {
	return p.Model.Focus()
}

// Update forwards messages to the textarea.
func (p PromptInput) Update(msg tea.Msg) (PromptInput, tea.Cmd) {
	var cmd tea.Cmd
	p.Model, cmd = p.Model.Update(msg)
	return p, cmd
}

// SetWidth resizes the box.
func (p *PromptInput) SetWidth(w int) {
	p.Model.SetWidth(w)
}

// View renders the box with a character counter underneath.
func (p PromptInput) View() string {
	counter := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(strconv.Itoa(p.Len()) + " characters")
	return p.Model.View() + "\n" + counter
}

// Value returns the current text.
func (p PromptInput) Value() string {
	return p.Model.Value()
}

// SetValue replaces the current text.
func (p *PromptInput) SetValue(s string) {
	p.Model.SetValue(s)
}

// Len returns the length of the current text in characters.
func (p PromptInput) Len() int {
	return heuristics.Length(p.Model.Value())
}
