package evaluator

// Score bounds.
const (
	MinScore  = 1
	BaseScore = 3
	MaxScore  = 5

	// BonusSuggestionCount is exclusive: more suggestions than this lifts
	// the base score to MaxScore.
	BonusSuggestionCount = 2
)

// Rating labels shown next to a score.
const (
	RatingExcellent = "Excellent"
	RatingGood      = "Good"
	RatingNeedsWork = "Needs Work"
	RatingPoor      = "Poor"
)

// Score computes the 1..5 score from the number of suggestions and
// warnings collected for a prompt.
func Score(suggestions, warnings int) int {
	score := BaseScore
	if suggestions > BonusSuggestionCount {
		score = MaxScore
	}
	if warnings > 0 {
		score = max(MinScore, score-warnings)
	}
	return score
}

// Rating returns the label for a score.
func Rating(score int) string {
	switch {
	case score >= 4:
		return RatingExcellent
	case score >= 3:
		return RatingGood
	case score >= 2:
		return RatingNeedsWork
	default:
		return RatingPoor
	}
}
