package session

import (
	"time"

	"github.com/abhisek/promptlab/internal/exercise"
)

// ExerciseResult aggregates the attempts made on one exercise.
type ExerciseResult struct {
	ExerciseID string
	Title      string
	Attempts   int
	Best       int
	Last       int
}

// Summary holds the data displayed on the summary screen.
type Summary struct {
	SessionID     string
	Duration      time.Duration
	TotalAttempts int
	Best          int
	AverageScore  float64
	Results       []ExerciseResult
}

// BuildSummary aggregates the session's attempts. Results follow catalog
// order; attempts on ids outside the catalog come last, in the order they
// were first seen.
func BuildSummary(s *Session) *Summary {
	byID := make(map[string]*ExerciseResult)
	var extra []string
	var total int

	for _, a := range s.attempts {
		r, ok := byID[a.ExerciseID]
		if !ok {
			r = &ExerciseResult{ExerciseID: a.ExerciseID, Title: a.ExerciseID}
			if e, found := exercise.Lookup(a.ExerciseID); found {
				r.Title = e.Title
			} else {
				extra = append(extra, a.ExerciseID)
			}
			byID[a.ExerciseID] = r
		}
		r.Attempts++
		r.Best = max(r.Best, a.Score)
		r.Last = a.Score
		total += a.Score
	}

	var results []ExerciseResult
	for _, id := range exercise.IDs() {
		if r, ok := byID[id]; ok {
			results = append(results, *r)
		}
	}
	for _, id := range extra {
		results = append(results, *byID[id])
	}

	var avg float64
	if n := len(s.attempts); n > 0 {
		avg = float64(total) / float64(n)
	}

	return &Summary{
		SessionID:     s.ID,
		Duration:      s.Elapsed(),
		TotalAttempts: len(s.attempts),
		Best:          s.Best(),
		AverageScore:  avg,
		Results:       results,
	}
}
