// Package session keeps an in-memory record of the prompts evaluated
// during one run of the app. Nothing here is persisted.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/promptlab/internal/evaluator"
	"github.com/abhisek/promptlab/internal/heuristics"
)

// Attempt is one evaluated prompt. The prompt text itself is not kept.
type Attempt struct {
	ExerciseID  string
	Score       int
	Suggestions int
	Warnings    int
	Length      int // characters in the prompt
	At          time.Time
}

// Session is the attempt log of a single run.
// It is owned by one goroutine and is not safe for concurrent use.
type Session struct {
	ID        string
	StartedAt time.Time

	attempts []Attempt
	now      func() time.Time
}

// New starts a session with a fresh id.
func New() *Session {
	return newWithClock(time.Now)
}

func newWithClock(now func() time.Time) *Session {
	return &Session{
		ID:        uuid.New().String(),
		StartedAt: now(),
		now:       now,
	}
}

// Record appends the outcome of evaluating text for exerciseID.
func (s *Session) Record(exerciseID, text string, fb evaluator.Feedback) Attempt {
	a := Attempt{
		ExerciseID:  exerciseID,
		Score:       fb.Score,
		Suggestions: len(fb.Suggestions),
		Warnings:    len(fb.Warnings),
		Length:      heuristics.Length(text),
		At:          s.now(),
	}
	s.attempts = append(s.attempts, a)
	return a
}

// Attempts returns a copy of the attempt log in recording order.
func (s *Session) Attempts() []Attempt {
	out := make([]Attempt, len(s.attempts))
	copy(out, s.attempts)
	return out
}

// Count returns the number of recorded attempts.
func (s *Session) Count() int {
	return len(s.attempts)
}

// Best returns the highest score recorded, or 0 when there are none.
func (s *Session) Best() int {
	best := 0
	for _, a := range s.attempts {
		best = max(best, a.Score)
	}
	return best
}

// Last returns the most recent attempt for exerciseID.
func (s *Session) Last(exerciseID string) (Attempt, bool) {
	for i := len(s.attempts) - 1; i >= 0; i-- {
		if s.attempts[i].ExerciseID == exerciseID {
			return s.attempts[i], true
		}
	}
	return Attempt{}, false
}

// Elapsed returns the time since the session started.
func (s *Session) Elapsed() time.Duration {
	return s.now().Sub(s.StartedAt)
}
