// Package tui hosts a color picker in a terminal.
//
// Each terminal cell shows two surface pixels stacked vertically with the
// upper half block: the foreground is the top pixel, the background the
// bottom one. Mouse cell coordinates map to pixel coordinates with y
// doubled.
package tui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"

	"github.com/gogpu/colorpick"
	"github.com/gogpu/colorpick/picker"
	"github.com/gogpu/colorpick/pointer"
)

// headerRows is the number of terminal rows above the picker.
const headerRows = 2

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
)

// Model is the bubbletea model of the picker TUI.
type Model struct {
	picker   *picker.Picker
	quitting bool
}

// New returns a model hosting p. The picker's origin must be (0, 0).
func New(p *picker.Picker) Model {
	return Model{picker: p}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	case tea.MouseMsg:
		if ev, ok := pointerEvent(msg); ok {
			m.picker.Handle(ev)
		}
	}
	return m, nil
}

// pointerEvent converts a terminal mouse event to a pixel-space pointer event.
func pointerEvent(msg tea.MouseMsg) (pointer.Event, bool) {
	ev := pointer.Event{X: msg.X, Y: (msg.Y - headerRows) * 2}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return pointer.Event{}, false
		}
		ev.Kind = pointer.Down
	case tea.MouseActionMotion:
		ev.Kind = pointer.Move
	case tea.MouseActionRelease:
		ev.Kind = pointer.Up
	default:
		return pointer.Event{}, false
	}
	return ev, true
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Color Picker"))
	b.WriteString("\n\n")
	b.WriteString(renderCells(m.canvas()))
	b.WriteString("\n")
	b.WriteString(m.details())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("drag with the mouse, q to quit"))
	return b.String()
}

// canvas composes every widget surface at its screen position.
func (m Model) canvas() *image.NRGBA {
	bounds := m.picker.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Max.X, bounds.Max.Y))
	type shot interface {
		Snapshot() *image.NRGBA
		Bounds() image.Rectangle
	}
	var shots []shot
	if s := m.picker.Spectrum(); s != nil {
		shots = append(shots, s)
	}
	if p := m.picker.Plane(); p != nil {
		shots = append(shots, p)
	}
	if s := m.picker.Slider(); s != nil {
		shots = append(shots, s)
	}
	for _, s := range shots {
		src := s.Snapshot()
		draw.Copy(dst, s.Bounds().Min, src, src.Bounds(), draw.Src, nil)
	}
	return dst
}

func renderCells(img *image.NRGBA) string {
	r := img.Bounds()
	var b strings.Builder
	for y := r.Min.Y; y < r.Max.Y; y += 2 {
		for x := r.Min.X; x < r.Max.X; x++ {
			b.WriteString(cell(img.NRGBAAt(x, y), img.NRGBAAt(x, y+1)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func cell(top, bottom color.NRGBA) string {
	if top.A == 0 && bottom.A == 0 {
		return " "
	}
	style := lipgloss.NewStyle()
	if top.A != 0 {
		style = style.Foreground(lipgloss.Color(colorpick.FromNRGBA(top).Hex))
	}
	if bottom.A != 0 {
		style = style.Background(lipgloss.Color(colorpick.FromNRGBA(bottom).Hex))
	}
	if top.A == 0 {
		return style.Render(" ")
	}
	return style.Render("▀")
}

func (m Model) details() string {
	d := m.picker.Details()
	swatch := lipgloss.NewStyle().Background(lipgloss.Color(m.picker.Preview())).Render("      ")
	return fmt.Sprintf("%s  %s %s  %s %s  %s %s  %s %s  %s",
		swatch,
		labelStyle.Render("R"), valueStyle.Render(d.R),
		labelStyle.Render("G"), valueStyle.Render(d.G),
		labelStyle.Render("B"), valueStyle.Render(d.B),
		labelStyle.Render("HEX"), valueStyle.Render(d.Hex),
		labelStyle.Render(m.picker.Value().HSV().String()),
	)
}
