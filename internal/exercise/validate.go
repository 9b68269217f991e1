package exercise

import (
	"fmt"
	"strings"
)

// validateExercises performs structural checks on the exercise set.
// Returns a combined error describing all problems found, or nil if valid.
func validateExercises(exercises []Exercise) error {
	var errs []string

	if len(exercises) == 0 {
		errs = append(errs, "catalog is empty")
	}

	seen := make(map[string]bool, len(exercises))
	for i, e := range exercises {
		if e.ID == "" {
			errs = append(errs, fmt.Sprintf("exercise %d has an empty ID", i))
			continue
		}
		if seen[e.ID] {
			errs = append(errs, fmt.Sprintf("duplicate exercise ID: %q", e.ID))
		}
		seen[e.ID] = true

		if strings.TrimSpace(e.Title) == "" {
			errs = append(errs, fmt.Sprintf("exercise %q: title is empty", e.ID))
		}
		if strings.TrimSpace(e.Problem) == "" {
			errs = append(errs, fmt.Sprintf("exercise %q: problem is empty", e.ID))
		}
		if strings.TrimSpace(e.Skill) == "" {
			errs = append(errs, fmt.Sprintf("exercise %q: skill is empty", e.ID))
		}
		if strings.TrimSpace(e.Example) == "" {
			errs = append(errs, fmt.Sprintf("exercise %q: example is empty", e.ID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("exercise catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
