package exercise

// Level identifies an exercise. Levels double as the catalog keys.
const (
	LevelBasic        = "basic"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Exercise is a single prompt-writing challenge.
type Exercise struct {
	ID      string // basic, intermediate, advanced
	Title   string
	Problem string // What the learner is asked to write a prompt for
	Skill   string // Skill category label shown as a badge
	Example string // Example answer, for display only
}
