package session

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/promptlab/internal/evaluator"
)

// fakeClock advances by step on every call.
func fakeClock(start time.Time, step time.Duration) func() time.Time {
	t := start
	return func() time.Time {
		now := t
		t = t.Add(step)
		return now
	}
}

func TestNew_AssignsID(t *testing.T) {
	s1 := New()
	s2 := New()
	if _, err := uuid.Parse(s1.ID); err != nil {
		t.Fatalf("session ID %q is not a UUID: %v", s1.ID, err)
	}
	if s1.ID == s2.ID {
		t.Error("expected distinct session IDs")
	}
	if s1.Count() != 0 || s1.Best() != 0 {
		t.Error("expected an empty session")
	}
}

func TestRecord(t *testing.T) {
	start := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	s := newWithClock(fakeClock(start, time.Minute))

	text := "Tell me about dogs"
	a := s.Record("intermediate", text, evaluator.Evaluate(text, "intermediate"))

	if a.ExerciseID != "intermediate" {
		t.Errorf("ExerciseID = %q", a.ExerciseID)
	}
	if a.Score != 2 || a.Suggestions != 2 || a.Warnings != 1 {
		t.Errorf("got score=%d suggestions=%d warnings=%d, want 2/2/1", a.Score, a.Suggestions, a.Warnings)
	}
	if a.Length != len(text) {
		t.Errorf("Length = %d, want %d", a.Length, len(text))
	}
	if !a.At.Equal(start.Add(time.Minute)) {
		t.Errorf("At = %v, want one minute after start", a.At)
	}
	if s.Count() != 1 {
		t.Errorf("Count = %d, want 1", s.Count())
	}
}

func TestBestAndLast(t *testing.T) {
	s := New()
	s.Record("basic", "x", evaluator.Feedback{Score: 2})
	s.Record("advanced", "x", evaluator.Feedback{Score: 5})
	s.Record("basic", "x", evaluator.Feedback{Score: 3})

	if s.Best() != 5 {
		t.Errorf("Best = %d, want 5", s.Best())
	}

	last, ok := s.Last("basic")
	if !ok || last.Score != 3 {
		t.Errorf("Last(basic) = %+v, %v; want score 3", last, ok)
	}
	if _, ok := s.Last("intermediate"); ok {
		t.Error("expected no attempt for intermediate")
	}
}

func TestAttempts_ReturnsCopy(t *testing.T) {
	s := New()
	s.Record("basic", "x", evaluator.Feedback{Score: 2})
	got := s.Attempts()
	got[0].Score = 5
	if s.Best() != 2 {
		t.Error("mutating Attempts() result leaked into the session")
	}
}

func TestBuildSummary(t *testing.T) {
	start := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	s := newWithClock(fakeClock(start, 30*time.Second))

	s.Record("advanced", "x", evaluator.Feedback{Score: 3})
	s.Record("custom", "x", evaluator.Feedback{Score: 1})
	s.Record("basic", "x", evaluator.Feedback{Score: 5})
	s.Record("advanced", "x", evaluator.Feedback{Score: 2})

	sum := BuildSummary(s)

	if sum.SessionID != s.ID {
		t.Errorf("SessionID = %q, want %q", sum.SessionID, s.ID)
	}
	if sum.TotalAttempts != 4 {
		t.Errorf("TotalAttempts = %d, want 4", sum.TotalAttempts)
	}
	if sum.Best != 5 {
		t.Errorf("Best = %d, want 5", sum.Best)
	}
	if sum.AverageScore != 2.75 {
		t.Errorf("AverageScore = %f, want 2.75", sum.AverageScore)
	}

	want := []ExerciseResult{
		{ExerciseID: "basic", Title: "Basic Prompting", Attempts: 1, Best: 5, Last: 5},
		{ExerciseID: "advanced", Title: "Advanced Prompting", Attempts: 2, Best: 3, Last: 2},
		{ExerciseID: "custom", Title: "custom", Attempts: 1, Best: 1, Last: 1},
	}
	if len(sum.Results) != len(want) {
		t.Fatalf("got %d results, want %d", len(sum.Results), len(want))
	}
	for i := range want {
		if sum.Results[i] != want[i] {
			t.Errorf("result %d = %+v, want %+v", i, sum.Results[i], want[i])
		}
	}
}

func TestBuildSummary_Empty(t *testing.T) {
	sum := BuildSummary(New())
	if sum.TotalAttempts != 0 || sum.AverageScore != 0 || len(sum.Results) != 0 {
		t.Errorf("expected empty summary, got %+v", sum)
	}
}
