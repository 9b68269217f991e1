package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/promptlab/internal/config"
	"github.com/abhisek/promptlab/internal/router"
)

func TestNewAppModel_StartsOnHome(t *testing.T) {
	m := newAppModel(Options{Config: config.Default()})
	if m.router.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", m.router.Depth())
	}
	if m.router.Active().Title() != "Home" {
		t.Errorf("active = %q, want Home", m.router.Active().Title())
	}
}

func TestNewAppModel_StartExercise(t *testing.T) {
	m := newAppModel(Options{Config: config.Default(), StartExercise: "advanced"})
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}
	if m.router.Active().Title() != "Practice" {
		t.Errorf("active = %q, want Practice", m.router.Active().Title())
	}
}

func TestUpdate_EscPops(t *testing.T) {
	m := newAppModel(Options{Config: config.Default(), StartExercise: "basic"})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg")
	}
}

func TestUpdate_EscAtHomeIsNoop(t *testing.T) {
	m := newAppModel(Options{Config: config.Default()})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("expected no command at the bottom of the stack")
	}
}

func TestUpdate_CtrlCQuits(t *testing.T) {
	m := newAppModel(Options{Config: config.Default()})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	m := newAppModel(Options{Config: config.Default()})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	am := updated.(AppModel)
	if am.width != 120 || am.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", am.width, am.height)
	}
}
