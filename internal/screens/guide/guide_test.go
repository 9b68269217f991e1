package guide

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/promptlab/internal/router"
)

func TestGuideScreen_View(t *testing.T) {
	view := New().View(100, 40)
	for _, want := range []string{"Prompting Rules", "Pro Tips", "Context is key", "Break big tasks"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestGuideScreen_EnterPops(t *testing.T) {
	_, cmd := New().Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestGuideScreen_OtherKeysIgnored(t *testing.T) {
	_, cmd := New().Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd != nil {
		t.Error("expected no command")
	}
}
