package evaluator

import "github.com/abhisek/promptlab/internal/heuristics"

// Kind says which feedback list a rule's message lands in.
type Kind string

const (
	KindSuggestion Kind = "suggestion"
	KindWarning    Kind = "warning"
)

// Rule is one heuristic check. When Match returns true the Message is
// appended to the list named by Kind.
type Rule struct {
	Name    string
	Kind    Kind
	Message string
	Match   func(t heuristics.Text) bool
}

// Feedback is the result of evaluating one prompt.
// Suggestions and Warnings are never nil and keep detection order.
type Feedback struct {
	Suggestions []string `json:"suggestions"`
	Warnings    []string `json:"warnings"`
	Score       int      `json:"score"`
}
