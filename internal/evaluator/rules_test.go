package evaluator

import (
	"testing"

	"github.com/abhisek/promptlab/internal/exercise"
	"github.com/abhisek/promptlab/internal/heuristics"
)

func ruleByName(t *testing.T, rules []Rule, name string) Rule {
	t.Helper()
	for _, r := range rules {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("rule %q not found", name)
	return Rule{}
}

func TestRulesFor_EveryExerciseHasRules(t *testing.T) {
	for _, e := range exercise.All() {
		rules := RulesFor(e.ID)
		if len(rules) == 0 {
			t.Errorf("exercise %q has no rules", e.ID)
		}
		for _, r := range rules {
			if r.Name == "" || r.Message == "" || r.Match == nil {
				t.Errorf("exercise %q: incomplete rule %+v", e.ID, r)
			}
			if r.Kind != KindSuggestion && r.Kind != KindWarning {
				t.Errorf("exercise %q rule %q: bad kind %q", e.ID, r.Name, r.Kind)
			}
		}
	}
}

func TestRulesFor_UnknownIsEmpty(t *testing.T) {
	if got := RulesFor("nonexistent"); len(got) != 0 {
		t.Errorf("got %d rules for unknown exercise, want 0", len(got))
	}
}

func TestRulesFor_ReturnsCopy(t *testing.T) {
	rules := RulesFor(exercise.LevelBasic)
	rules[0].Message = "mutated"
	if RulesFor(exercise.LevelBasic)[0].Message == "mutated" {
		t.Error("mutating RulesFor result leaked into the rule table")
	}
}

func TestRulesFor_Order(t *testing.T) {
	want := map[string][]string{
		exercise.LevelBasic:        {"simple-language", "instruction-verb", "age-appropriate"},
		exercise.LevelIntermediate: {"table-format", "ask-comparison", "table-structure"},
		exercise.LevelAdvanced:     {"ask-for-code", "ask-explanations", "detailed-steps"},
	}
	for id, names := range want {
		rules := RulesFor(id)
		if len(rules) != len(names) {
			t.Fatalf("%s: got %d rules, want %d", id, len(rules), len(names))
		}
		for i, name := range names {
			if rules[i].Name != name {
				t.Errorf("%s rule %d: got %q, want %q", id, i, rules[i].Name, name)
			}
		}
	}
}

func TestRuleKinds(t *testing.T) {
	tests := []struct {
		exercise string
		rule     string
		want     Kind
	}{
		{exercise.LevelBasic, "simple-language", KindSuggestion},
		{exercise.LevelBasic, "instruction-verb", KindSuggestion},
		{exercise.LevelBasic, "age-appropriate", KindSuggestion},
		{exercise.LevelIntermediate, "table-format", KindWarning},
		{exercise.LevelIntermediate, "ask-comparison", KindSuggestion},
		{exercise.LevelIntermediate, "table-structure", KindSuggestion},
		{exercise.LevelAdvanced, "ask-for-code", KindWarning},
		{exercise.LevelAdvanced, "ask-explanations", KindSuggestion},
		{exercise.LevelAdvanced, "detailed-steps", KindSuggestion},
	}
	for _, tc := range tests {
		r := ruleByName(t, RulesFor(tc.exercise), tc.rule)
		if r.Kind != tc.want {
			t.Errorf("%s/%s: kind %q, want %q", tc.exercise, tc.rule, r.Kind, tc.want)
		}
	}
}

func TestRuleMatches(t *testing.T) {
	tests := []struct {
		exercise string
		rule     string
		text     string
		want     bool
	}{
		{exercise.LevelBasic, "simple-language", "explain rain", true},
		{exercise.LevelBasic, "simple-language", "keep it SIMPLE", false},
		{exercise.LevelBasic, "simple-language", "make it easy", false},
		{exercise.LevelBasic, "instruction-verb", "describe rain", true},
		{exercise.LevelBasic, "instruction-verb", "Tell me about rain", false},
		{exercise.LevelBasic, "instruction-verb", "please explain rain", false},
		{exercise.LevelBasic, "age-appropriate", "like a 10 year old", true},
		{exercise.LevelBasic, "age-appropriate", "like a child", false},
		{exercise.LevelBasic, "age-appropriate", "for a 10 year old", false},

		{exercise.LevelIntermediate, "table-format", "compare two wars", true},
		{exercise.LevelIntermediate, "table-format", "use a table", false},
		{exercise.LevelIntermediate, "table-format", "markdown format", false},
		{exercise.LevelIntermediate, "ask-comparison", "two wars in a table", true},
		{exercise.LevelIntermediate, "ask-comparison", "Compare two wars", false},
		{exercise.LevelIntermediate, "table-structure", "with Columns for causes", true},
		{exercise.LevelIntermediate, "table-structure", "with rows", false},

		{exercise.LevelAdvanced, "ask-for-code", "make a to-do app", true},
		{exercise.LevelAdvanced, "ask-for-code", "write the code", false},
		{exercise.LevelAdvanced, "ask-for-code", "a programming task", false},
		{exercise.LevelAdvanced, "ask-explanations", "write the code", true},
		{exercise.LevelAdvanced, "ask-explanations", "explain the code", false},
		{exercise.LevelAdvanced, "ask-explanations", "add comments", false},
		{exercise.LevelAdvanced, "detailed-steps", "go line by line", true},
		{exercise.LevelAdvanced, "detailed-steps", "go Step By Step", true},
		{exercise.LevelAdvanced, "detailed-steps", "line-by-line", false},
	}

	for _, tc := range tests {
		r := ruleByName(t, RulesFor(tc.exercise), tc.rule)
		if got := r.Match(heuristics.Normalize(tc.text)); got != tc.want {
			t.Errorf("%s/%s on %q = %v, want %v", tc.exercise, tc.rule, tc.text, got, tc.want)
		}
	}
}

func TestGeneralRules(t *testing.T) {
	rules := GeneralRules()
	if len(rules) != 2 {
		t.Fatalf("got %d general rules, want 2", len(rules))
	}

	q := ruleByName(t, rules, "question-format")
	if !q.Match(heuristics.Normalize("why?")) {
		t.Error("question-format should match a question mark")
	}
	if q.Match(heuristics.Normalize("why.")) {
		t.Error("question-format should not match without a question mark")
	}

	d := ruleByName(t, rules, "detailed-prompt")
	if d.Match(heuristics.Normalize("a b c")) {
		t.Error("detailed-prompt should not match three words")
	}
}
