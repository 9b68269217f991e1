// Package evaluator scores a prompt against the heuristic rules of an
// exercise.
//
// Evaluate is a pure function: it keeps no state between calls and is
// safe to call from any number of goroutines. The only shared data are
// the read-only rule tables and the exercise catalog.
package evaluator

import "github.com/abhisek/promptlab/internal/heuristics"

// Evaluate scores text for the exercise identified by exerciseID.
//
// Steps, in order:
//  1. Text shorter than MinLength short-circuits with the too-short
//     warning and score 1.
//  2. Text shorter than AdvisoryLength gets a more-context suggestion.
//  3. The exercise's own rules run; unknown ids have none.
//  4. The general rules run.
//  5. The score is computed from the suggestion and warning counts.
func Evaluate(text, exerciseID string) Feedback {
	if heuristics.Length(text) < MinLength {
		return Feedback{
			Suggestions: []string{},
			Warnings:    []string{MsgTooShort},
			Score:       MinScore,
		}
	}

	t := heuristics.Normalize(text)
	fb := Feedback{
		Suggestions: []string{},
		Warnings:    []string{},
	}

	apply(&fb, t, lengthAdvisory)
	for _, r := range exerciseRules[exerciseID] {
		apply(&fb, t, r)
	}
	for _, r := range generalRules {
		apply(&fb, t, r)
	}

	fb.Score = Score(len(fb.Suggestions), len(fb.Warnings))
	return fb
}

// apply runs a single rule and records its message when it matches.
func apply(fb *Feedback, t heuristics.Text, r Rule) {
	if !r.Match(t) {
		return
	}
	switch r.Kind {
	case KindWarning:
		fb.Warnings = append(fb.Warnings, r.Message)
	default:
		fb.Suggestions = append(fb.Suggestions, r.Message)
	}
}
