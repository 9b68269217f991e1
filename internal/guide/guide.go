// Package guide holds the static prompting advice shown next to the
// exercises.
package guide

// Tip is a short piece of advice with a bold lead-in.
type Tip struct {
	Title string
	Body  string
}

var rules = []string{
	"Be clear & specific about what you want",
	"Tell the AI how to respond (format, tone, style)",
	"Use examples to guide complex prompts",
	"Break big tasks into smaller subtasks",
	"Iterate and improve based on output",
	"For coding, define input/output & ask for explanation",
}

var tips = []Tip{
	{Title: "Context is key", Body: "Give the AI background information for better results."},
	{Title: "Be specific", Body: `Instead of "write code", say "write Python code for a calculator".`},
	{Title: "Ask for examples", Body: "Request examples when you want to understand concepts better."},
}

// Rules returns the numbered prompting rules in display order.
func Rules() []string {
	out := make([]string, len(rules))
	copy(out, rules)
	return out
}

// Tips returns the pro tips in display order.
func Tips() []Tip {
	out := make([]Tip, len(tips))
	copy(out, tips)
	return out
}
