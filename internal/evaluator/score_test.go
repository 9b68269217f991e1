package evaluator

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		suggestions int
		warnings    int
		want        int
	}{
		{0, 0, 3},
		{2, 0, 3},
		{3, 0, 5},
		{6, 0, 5},
		{0, 1, 2},
		{2, 1, 2},
		{3, 1, 4},
		{0, 2, 1},
		{0, 5, 1},
		{4, 2, 3},
		{4, 9, 1},
	}

	for _, tc := range tests {
		if got := Score(tc.suggestions, tc.warnings); got != tc.want {
			t.Errorf("Score(%d, %d) = %d, want %d", tc.suggestions, tc.warnings, got, tc.want)
		}
	}
}

func TestRating(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{5, RatingExcellent},
		{4, RatingExcellent},
		{3, RatingGood},
		{2, RatingNeedsWork},
		{1, RatingPoor},
		{0, RatingPoor},
	}

	for _, tc := range tests {
		if got := Rating(tc.score); got != tc.want {
			t.Errorf("Rating(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}
