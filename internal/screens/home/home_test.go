package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/promptlab/internal/evaluator"
	"github.com/abhisek/promptlab/internal/router"
	"github.com/abhisek/promptlab/internal/screens/practice"
	"github.com/abhisek/promptlab/internal/screens/summary"
	"github.com/abhisek/promptlab/internal/session"
)

func TestHomeScreen_MenuLists(t *testing.T) {
	h := New(Options{})
	view := h.View(120, 40)
	for _, want := range []string{"Basic Prompting", "Intermediate Prompting", "Advanced Prompting",
		"Prompting Guide", "Session Summary", "Quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHomeScreen_EnterOpensPractice(t *testing.T) {
	h := New(Options{MinSubmitLength: 5})
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	p, ok := msg.Screen.(*practice.PracticeScreen)
	if !ok {
		t.Fatalf("pushed %T, want *practice.PracticeScreen", msg.Screen)
	}
	if p.Current().ID != "intermediate" {
		t.Errorf("opened %q, want intermediate", p.Current().ID)
	}
}

func TestHomeScreen_SummaryReflectsSession(t *testing.T) {
	sess := session.New()
	sess.Record("basic", "x", evaluator.Feedback{Score: 4})
	h := New(Options{Session: sess})

	if !strings.Contains(h.View(120, 40), "1 EVALUATED") {
		t.Error("expected stats bar to show one evaluation")
	}

	for range 4 {
		h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	msg := cmd().(router.PushScreenMsg)
	if _, ok := msg.Screen.(*summary.SummaryScreen); !ok {
		t.Fatalf("pushed %T, want *summary.SummaryScreen", msg.Screen)
	}
}

func TestHomeScreen_DefaultExercisePreselected(t *testing.T) {
	h := New(Options{DefaultExercise: "advanced"})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	msg := cmd().(router.PushScreenMsg)
	p := msg.Screen.(*practice.PracticeScreen)
	if p.Current().ID != "advanced" {
		t.Errorf("opened %q, want advanced", p.Current().ID)
	}
}
