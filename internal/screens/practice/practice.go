// Package practice implements the exercise screen: pick an exercise, write
// a prompt, get heuristic feedback.
package practice

import (
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/promptlab/internal/evaluator"
	"github.com/abhisek/promptlab/internal/exercise"
	"github.com/abhisek/promptlab/internal/screen"
	"github.com/abhisek/promptlab/internal/session"
	"github.com/abhisek/promptlab/internal/ui/components"
	"github.com/abhisek/promptlab/internal/ui/layout"
)

const (
	placeholder = "Write your prompt here... Be specific and clear!"
	inputHeight = 6
	maxWidth    = 90
)

// Options configures a PracticeScreen.
type Options struct {
	ExerciseID      string // tab to open on; unknown ids open the first tab
	Session         *session.Session
	Logger          *zap.Logger
	MinSubmitLength int
}

// evaluatedMsg carries the result of evaluating the current input.
type evaluatedMsg struct {
	ExerciseID string
	Text       string
	Feedback   evaluator.Feedback
}

// PracticeScreen implements screen.Screen for prompt practice.
type PracticeScreen struct {
	exercises   []exercise.Exercise
	tabs        components.Tabs
	input       components.PromptInput
	submit      components.Button
	showExample bool
	feedback    *evaluator.Feedback
	minLen      int
	sess        *session.Session
	logger      *zap.Logger
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen.
func New(opts Options) *PracticeScreen {
	if opts.Session == nil {
		opts.Session = session.New()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	exercises := exercise.All()
	labels := make([]string, len(exercises))
	for i, e := range exercises {
		labels[i] = e.Title
	}

	s := &PracticeScreen{
		exercises: exercises,
		tabs:      components.NewTabs(labels, exercise.Index(opts.ExerciseID)),
		input:     components.NewPromptInput(placeholder, maxWidth-4, inputHeight),
		minLen:    max(opts.MinSubmitLength, 0),
		sess:      opts.Session,
		logger:    opts.Logger,
	}
	s.submit = components.NewButton("Evaluate Prompt", "ctrl+s", false, s.evaluate)
	return s
}

func (s *PracticeScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	example := "Show example"
	if s.showExample {
		example = "Hide example"
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next exercise"},
		{Key: "Ctrl+S", Description: "Evaluate"},
		{Key: "Ctrl+E", Description: example},
		{Key: "Esc", Description: "Back"},
	}
}

// Current returns the exercise on the active tab.
func (s *PracticeScreen) Current() exercise.Exercise {
	return s.exercises[s.tabs.Active]
}

// Feedback returns the last evaluation shown, if any.
func (s *PracticeScreen) Feedback() (evaluator.Feedback, bool) {
	if s.feedback == nil {
		return evaluator.Feedback{}, false
	}
	return *s.feedback, true
}

// CanSubmit reports whether the input is long enough to evaluate.
func (s *PracticeScreen) CanSubmit() bool {
	return s.input.Len() >= s.minLen
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.input.SetWidth(min(msg.Width, maxWidth) - 4)
		return s, nil

	case evaluatedMsg:
		return s.handleEvaluated(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab":
		s.switchTab(s.tabs.Next())
		return s, nil
	case "shift+tab":
		s.switchTab(s.tabs.Prev())
		return s, nil
	case "ctrl+e":
		s.showExample = !s.showExample
		return s, nil
	case "ctrl+s":
		s.submit.Active = s.CanSubmit()
		var cmd tea.Cmd
		s.submit, cmd = s.submit.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// switchTab moves to another exercise. The draft prompt is kept so it can
// be tried against the new exercise; feedback belongs to the old one and
// is cleared.
func (s *PracticeScreen) switchTab(t components.Tabs) {
	if t.Active == s.tabs.Active {
		return
	}
	s.tabs = t
	s.feedback = nil
	s.showExample = false
}

// evaluate snapshots the current input and exercise and evaluates them
// off the update loop.
func (s *PracticeScreen) evaluate() tea.Cmd {
	text := s.input.Value()
	id := s.Current().ID
	return func() tea.Msg {
		return evaluatedMsg{
			ExerciseID: id,
			Text:       text,
			Feedback:   evaluator.Evaluate(text, id),
		}
	}
}

func (s *PracticeScreen) handleEvaluated(msg evaluatedMsg) (screen.Screen, tea.Cmd) {
	a := s.sess.Record(msg.ExerciseID, msg.Text, msg.Feedback)
	s.logger.Info("prompt evaluated",
		zap.String("session", s.sess.ID),
		zap.String("exercise", a.ExerciseID),
		zap.Int("score", a.Score),
		zap.Int("suggestions", a.Suggestions),
		zap.Int("warnings", a.Warnings),
		zap.Int("length", a.Length),
	)

	// The user may have switched tabs while the command ran.
	if msg.ExerciseID != s.Current().ID {
		return s, nil
	}
	fb := msg.Feedback
	s.feedback = &fb
	return s, nil
}
