// Package report turns evaluator feedback into the documents the CLI
// prints: schema-checked JSON and styled text.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/promptlab/internal/evaluator"
	"github.com/abhisek/promptlab/internal/ui/theme"
)

// Report is the printable form of one evaluation.
type Report struct {
	Exercise    string   `json:"exercise"`
	Prompt      string   `json:"prompt,omitempty"`
	Score       int      `json:"score"`
	Rating      string   `json:"rating"`
	Suggestions []string `json:"suggestions"`
	Warnings    []string `json:"warnings"`
}

// New builds a Report from feedback.
func New(exerciseID string, fb evaluator.Feedback) Report {
	return Report{
		Exercise:    exerciseID,
		Score:       fb.Score,
		Rating:      evaluator.Rating(fb.Score),
		Suggestions: nonNil(fb.Suggestions),
		Warnings:    nonNil(fb.Warnings),
	}
}

// WithPrompt returns a copy of r that carries the evaluated prompt.
func (r Report) WithPrompt(text string) Report {
	r.Prompt = text
	return r
}

// EncodeJSON writes r as indented JSON after validating it against
// ReportSchema.
func EncodeJSON(w io.Writer, r Report) error {
	return encode(w, ReportSchema, r)
}

// EncodeBatchJSON writes reports as one JSON array after validating it
// against BatchSchema.
func EncodeBatchJSON(w io.Writer, reports []Report) error {
	if reports == nil {
		reports = []Report{}
	}
	return encode(w, BatchSchema, reports)
}

func encode(w io.Writer, schema *Schema, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := Validate(schema, raw); err != nil {
		return err
	}
	raw = append(raw, '\n')
	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// WriteText writes a human-readable rendering of r. Colour is dropped
// automatically when w is not a terminal.
func WriteText(w io.Writer, r Report) error {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Score: "))
	b.WriteString(theme.ScoreStyle(r.Score).Render(fmt.Sprintf("%d/%d  %s", r.Score, evaluator.MaxScore, r.Rating)))
	b.WriteString("\n")

	if len(r.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Issues to Fix"))
		b.WriteString("\n")
		for _, msg := range r.Warnings {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  • " + msg))
			b.WriteString("\n")
		}
	}

	if len(r.Suggestions) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Suggestions"))
		b.WriteString("\n")
		for _, msg := range r.Suggestions {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render("  • " + msg))
			b.WriteString("\n")
		}
	}

	_, err := lipgloss.Fprint(w, b.String())
	return err
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
