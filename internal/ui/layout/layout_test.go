package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{120, 40, false},
		{79, 24, true},
		{80, 23, true},
	}
	for _, tc := range tests {
		if got := IsTooSmall(tc.w, tc.h); got != tc.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tc.w, tc.h, got, tc.want)
		}
	}
}

func TestRenderMinSizeMessage(t *testing.T) {
	out := RenderMinSizeMessage(60, 20)
	for _, want := range []string{"bigger window", "80×24", "60×20", "prompt is kept"} {
		if !strings.Contains(out, want) {
			t.Errorf("message missing %q", want)
		}
	}
}

func TestRenderHeader_Stats(t *testing.T) {
	out := RenderHeader("Practice", 3, 4, 100)
	for _, want := range []string{"Promptlab", "Practice", "✎ 3", "best 4/5"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q", want)
		}
	}
	if !strings.Contains(RenderHeader("Home", 0, 0, 100), "best -") {
		t.Error("expected placeholder best score with no attempts")
	}
}

func TestRenderFooter_AllFit(t *testing.T) {
	out := RenderFooter([]KeyHint{{"Tab", "Next"}, {"Ctrl+C", "Quit"}}, 100)
	if !strings.Contains(out, "Next") || !strings.Contains(out, "Quit") {
		t.Errorf("footer missing hints: %q", out)
	}
}

func TestRenderFooter_DropsToFit(t *testing.T) {
	hints := []KeyHint{
		{"Tab", "Next exercise"},
		{"Ctrl+S", "Evaluate prompt"},
		{"Ctrl+E", "Show example"},
		{"Esc", "Back to menu"},
		{"Ctrl+C", "Quit"},
	}
	out := RenderFooter(hints, 50)
	if !strings.Contains(out, "Next exercise") {
		t.Error("first hint should stay visible")
	}
	if !strings.Contains(out, "Quit") {
		t.Error("last hint should stay visible")
	}
	if strings.Contains(out, "Back to menu") {
		t.Error("expected hints before the last one to be dropped")
	}
}

func TestRenderFrame_Height(t *testing.T) {
	header := RenderHeader("Home", 0, 0, 90)
	footer := RenderFooter([]KeyHint{{"Ctrl+C", "Quit"}}, 90)
	out := RenderFrame(header, "body", footer, 90, 30)
	if h := lipgloss.Height(out); h != 30 {
		t.Errorf("frame height = %d, want 30", h)
	}
}
