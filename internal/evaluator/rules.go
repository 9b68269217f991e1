package evaluator

import (
	"github.com/abhisek/promptlab/internal/exercise"
	"github.com/abhisek/promptlab/internal/heuristics"
)

// Messages shared with callers and tests.
const (
	MsgTooShort      = "Your prompt is too short. Add more detail to guide the AI better."
	MsgMoreContext   = "Consider adding more context or specific requirements."
	MsgQuestionForm  = "Good use of question format!"
	MsgDetailedInput = "Your prompt is detailed - this usually leads to better results."

	MsgSimpleLanguage  = "For basic explanations, specify you want simple language."
	MsgInstructionVerb = "Use clear instruction words like 'explain' or 'tell me about'."
	MsgAgeAppropriate  = "Great! You're using age-appropriate language guidance."

	MsgTableFormat    = "Don't forget to specify the table format for structured output."
	MsgAskComparison  = "Make sure to explicitly ask for a comparison."
	MsgTableStructure = "Excellent! You're specifying the table structure."

	MsgAskForCode      = "Remember to ask for code generation specifically."
	MsgAskExplanations = "Don't forget to ask for explanations of the code."
	MsgDetailedSteps   = "Perfect! You're asking for detailed explanations."
)

// Length thresholds, in characters.
const (
	MinLength      = 10
	AdvisoryLength = 30

	// DetailedWordCount is exclusive: more words than this earns the
	// detailed-prompt suggestion.
	DetailedWordCount = 20
)

// lacksAll matches when none of the keywords appear in the folded text.
func lacksAll(keywords ...string) func(heuristics.Text) bool {
	return func(t heuristics.Text) bool {
		return !heuristics.ContainsAny(t.Folded, keywords...)
	}
}

// hasAny matches when at least one keyword appears in the folded text.
func hasAny(keywords ...string) func(heuristics.Text) bool {
	return func(t heuristics.Text) bool {
		return heuristics.ContainsAny(t.Folded, keywords...)
	}
}

// hasAll matches when every keyword appears in the folded text.
func hasAll(keywords ...string) func(heuristics.Text) bool {
	return func(t heuristics.Text) bool {
		return heuristics.ContainsAll(t.Folded, keywords...)
	}
}

// lengthAdvisory fires for prompts that passed the short-circuit but are
// still brief.
var lengthAdvisory = Rule{
	Name:    "length-advisory",
	Kind:    KindSuggestion,
	Message: MsgMoreContext,
	Match: func(t heuristics.Text) bool {
		return heuristics.Length(t.Raw) < AdvisoryLength
	},
}

// exerciseRules maps an exercise id to its ordered rule set.
var exerciseRules = map[string][]Rule{
	exercise.LevelBasic: {
		{Name: "simple-language", Kind: KindSuggestion, Message: MsgSimpleLanguage, Match: lacksAll("simple", "easy")},
		{Name: "instruction-verb", Kind: KindSuggestion, Message: MsgInstructionVerb, Match: lacksAll("explain", "tell")},
		{Name: "age-appropriate", Kind: KindSuggestion, Message: MsgAgeAppropriate, Match: hasAll("like", "old")},
	},
	exercise.LevelIntermediate: {
		{Name: "table-format", Kind: KindWarning, Message: MsgTableFormat, Match: lacksAll("table", "format")},
		{Name: "ask-comparison", Kind: KindSuggestion, Message: MsgAskComparison, Match: lacksAll("compare")},
		{Name: "table-structure", Kind: KindSuggestion, Message: MsgTableStructure, Match: hasAny("columns")},
	},
	exercise.LevelAdvanced: {
		{Name: "ask-for-code", Kind: KindWarning, Message: MsgAskForCode, Match: lacksAll("code", "programming")},
		{Name: "ask-explanations", Kind: KindSuggestion, Message: MsgAskExplanations, Match: lacksAll("explain", "comment")},
		{Name: "detailed-steps", Kind: KindSuggestion, Message: MsgDetailedSteps, Match: hasAny("line by line", "step by step")},
	},
}

// generalRules run after the exercise rules for every exercise id.
var generalRules = []Rule{
	{
		Name:    "question-format",
		Kind:    KindSuggestion,
		Message: MsgQuestionForm,
		Match: func(t heuristics.Text) bool {
			return heuristics.HasQuestionMark(t.Raw)
		},
	},
	{
		Name:    "detailed-prompt",
		Kind:    KindSuggestion,
		Message: MsgDetailedInput,
		Match: func(t heuristics.Text) bool {
			return heuristics.WordCount(t.Raw) > DetailedWordCount
		},
	},
}

// RulesFor returns the exercise-specific rules for id, in evaluation
// order. Unknown ids have no rules. The returned slice is a copy.
func RulesFor(id string) []Rule {
	rules := exerciseRules[id]
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// GeneralRules returns the rules applied to every exercise.
func GeneralRules() []Rule {
	out := make([]Rule, len(generalRules))
	copy(out, generalRules)
	return out
}
