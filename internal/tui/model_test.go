package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/colorpick/picker"
	"github.com/gogpu/colorpick/pointer"
)

func newModel(t *testing.T, mode picker.Mode) Model {
	t.Helper()
	p, err := picker.New(
		picker.WithMode(mode),
		picker.WithFieldSize(40, 16),
		picker.WithSliderMargin(2),
	)
	if err != nil {
		t.Fatalf("picker.New: %v", err)
	}
	t.Cleanup(func() { _ = p.Close() })
	return New(p)
}

func apply(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestPointerEventMapping(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.MouseMsg
		want pointer.Event
		ok   bool
	}{
		{"press", mouse(tea.MouseActionPress, 3, headerRows+2), pointer.Event{Kind: pointer.Down, X: 3, Y: 4}, true},
		{"motion", mouse(tea.MouseActionMotion, 5, headerRows), pointer.Event{Kind: pointer.Move, X: 5, Y: 0}, true},
		{"release", mouse(tea.MouseActionRelease, 5, headerRows), pointer.Event{Kind: pointer.Up, X: 5, Y: 0}, true},
		{"right press", tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, pointer.Event{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pointerEvent(tt.msg)
			if ok != tt.ok || got != tt.want {
				t.Errorf("pointerEvent = %+v, %v; want %+v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestMouseDragSelectsColor(t *testing.T) {
	m := newModel(t, picker.Advanced)

	m = apply(t, m, mouse(tea.MouseActionPress, 0, headerRows))
	if got := m.picker.Value().Hex; got != "#ffffff" {
		t.Errorf("value after press at top-left = %s, want #ffffff", got)
	}
	m = apply(t, m, mouse(tea.MouseActionMotion, 39, headerRows+7))
	m = apply(t, m, mouse(tea.MouseActionRelease, 39, headerRows+7))
	if m.picker.Plane().State().Dragging {
		t.Error("plane still dragging after release")
	}
	if v := m.picker.Plane().Value(); v.X != 39 || v.Y != 14 {
		t.Errorf("plane position = (%d,%d), want (39,14)", v.X, v.Y)
	}
}

func TestViewShowsDetails(t *testing.T) {
	m := newModel(t, picker.Basic)
	m = apply(t, m, mouse(tea.MouseActionPress, 0, headerRows))

	view := m.View()
	for _, want := range []string{"Color Picker", "#ffffff", "HEX", "hsv(0, 0%, 100%)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	// 16 pixel rows render as 8 cell rows, each 40 cells wide.
	if n := strings.Count(view, "▀"); n != 40*8 {
		t.Errorf("half blocks = %d, want %d", n, 40*8)
	}
}

func TestQuit(t *testing.T) {
	m := newModel(t, picker.Basic)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q did not return a command")
	}
	if next.(Model).View() != "" {
		t.Error("view not empty after quit")
	}
}
