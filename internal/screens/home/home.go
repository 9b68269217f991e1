package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/promptlab/internal/exercise"
	"github.com/abhisek/promptlab/internal/router"
	"github.com/abhisek/promptlab/internal/screen"
	"github.com/abhisek/promptlab/internal/screens/guide"
	"github.com/abhisek/promptlab/internal/screens/practice"
	"github.com/abhisek/promptlab/internal/screens/summary"
	"github.com/abhisek/promptlab/internal/session"
	"github.com/abhisek/promptlab/internal/ui/components"
)

// Options carries what the home screen passes on to the screens it opens.
type Options struct {
	Session         *session.Session
	Logger          *zap.Logger
	MinSubmitLength int
	DefaultExercise string // preselected menu entry
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu components.Menu
	sess *session.Session
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	if opts.Session == nil {
		opts.Session = session.New()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	openPractice := func(id string) screen.Screen {
		return practice.New(practice.Options{
			ExerciseID:      id,
			Session:         opts.Session,
			Logger:          opts.Logger,
			MinSubmitLength: opts.MinSubmitLength,
		})
	}

	var items []components.MenuItem
	for _, e := range exercise.All() {
		id := e.ID
		items = append(items, components.MenuItem{
			Label: e.Title,
			Hint:  e.Skill,
			Action: func() tea.Cmd {
				return push(openPractice(id))
			},
		})
	}

	items = append(items,
		components.MenuItem{Label: "Prompting Guide", Action: func() tea.Cmd {
			return push(guide.New())
		}},
		components.MenuItem{Label: "Session Summary", Action: func() tea.Cmd {
			return push(summary.New(session.BuildSummary(opts.Session)).WithPractice(openPractice))
		}},
		components.MenuItem{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	menu := components.NewMenu(items)
	if i := exercise.Index(opts.DefaultExercise); i >= 0 {
		menu.Selected = i
	}

	return &HomeScreen{
		menu: menu,
		sess: opts.Session,
	}
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width, 70)

	sections := []string{
		renderTitle(cw, compact),
		renderStatsBar(h.sess.Count(), h.sess.Best(), cw),
		renderMenuBlock(h.menu.View(), cw),
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
