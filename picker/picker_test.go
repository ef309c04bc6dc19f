package picker

import (
	"image"
	"testing"

	"github.com/gogpu/colorpick"
	"github.com/gogpu/colorpick/pointer"
	"github.com/gogpu/colorpick/widget"
)

func newPicker(t *testing.T, opts ...Option) *Picker {
	t.Helper()
	p, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func TestBasicPickerUsesSpectrum(t *testing.T) {
	var got []colorpick.ColorValue
	p := newPicker(t, WithOnChange(func(v colorpick.ColorValue) { got = append(got, v) }))

	if p.Spectrum() == nil || p.Plane() != nil || p.Slider() != nil {
		t.Fatal("basic picker should only have a spectrum")
	}
	if len(got) != 1 {
		t.Fatalf("initial onChange calls = %d, want 1", len(got))
	}

	p.Handle(pointer.Event{Kind: pointer.Down, X: 0, Y: 149})
	if p.Value().Hex != "#000000" {
		t.Errorf("bottom-left = %s, want #000000", p.Value().Hex)
	}
	if p.Preview() != p.Value().Hex {
		t.Errorf("Preview = %s, want %s", p.Preview(), p.Value().Hex)
	}
}

func TestAdvancedSliderDrivesPlane(t *testing.T) {
	p := newPicker(t, WithMode(Advanced))

	sliderHex := p.Slider().Value().Hex
	if p.Plane().Color() != sliderHex {
		t.Errorf("plane base = %s, want slider color %s", p.Plane().Color(), sliderHex)
	}
	// Default plane pointer is the top-right corner, which shows the base.
	if p.Value().Hex != sliderHex {
		t.Errorf("value = %s, want %s", p.Value().Hex, sliderHex)
	}

	sliderY := FieldHeight + SliderMargin + 4
	p.Handle(pointer.Event{Kind: pointer.Down, X: 100, Y: sliderY})
	p.Handle(pointer.Event{Kind: pointer.Up, X: 100, Y: sliderY})

	if p.Slider().Pos() != 100 {
		t.Fatalf("slider pos = %d, want 100", p.Slider().Pos())
	}
	newHex := p.Slider().Value().Hex
	if newHex == sliderHex {
		t.Fatalf("slider color did not change from %s", sliderHex)
	}
	if p.Plane().Color() != newHex || p.Value().Hex != newHex {
		t.Errorf("plane base %s / value %s, want %s", p.Plane().Color(), p.Value().Hex, newHex)
	}

	p.Handle(pointer.Event{Kind: pointer.Down, X: 0, Y: 0})
	if p.Value().Hex != "#ffffff" {
		t.Errorf("plane top-left = %s, want #ffffff", p.Value().Hex)
	}
}

func TestPickerCaptureAndLeave(t *testing.T) {
	p := newPicker(t, WithMode(Advanced), WithOrigin(image.Pt(10, 10)))

	p.Handle(pointer.Event{Kind: pointer.Down, X: 20, Y: 20})
	if !p.Plane().State().Dragging {
		t.Fatal("plane not dragging after Down")
	}

	// Leaving the plane over the slider ends the plane drag and does not
	// start a slider drag.
	p.Handle(pointer.Event{Kind: pointer.Move, X: 50, Y: 10 + FieldHeight + SliderMargin + 2})
	if p.Plane().State().Dragging {
		t.Error("plane still dragging after the pointer left it")
	}
	if p.Slider().State().Dragging {
		t.Error("slider started dragging without a Down")
	}
	if p.Plane().Value().X != 10 || p.Plane().Value().Y != 10 {
		t.Errorf("plane position = (%d,%d), want (10,10)", p.Plane().Value().X, p.Plane().Value().Y)
	}
}

func TestPickerDownOutsideIgnored(t *testing.T) {
	p := newPicker(t, WithMode(Advanced))
	before := p.Value()
	if p.Handle(pointer.Event{Kind: pointer.Down, X: 1000, Y: 1000}) {
		t.Error("Down outside every widget reported a change")
	}
	if p.Handle(pointer.Event{Kind: pointer.Move, X: 10, Y: 10}) {
		t.Error("Move without capture reported a change")
	}
	if p.Value() != before {
		t.Error("value changed")
	}
}

func TestPickerDetails(t *testing.T) {
	p := newPicker(t, WithValue(widget.AreaValue{X: 0, Y: 0}))
	d := p.Details()
	if d.R != "255" || d.G != "255" || d.B != "255" || d.Hex != "#ffffff" {
		t.Errorf("Details = %+v, want white", d)
	}
}

func TestPickerBounds(t *testing.T) {
	p := newPicker(t, WithMode(Advanced), WithOrigin(image.Pt(5, 5)))
	want := image.Rect(5, 5, 5+Width, 5+FieldHeight+SliderMargin+9)
	if got := p.Bounds(); got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}
}

func TestPickerDisabled(t *testing.T) {
	p := newPicker(t, WithMode(Advanced), WithDisabled(true))
	before := p.Value()
	p.Handle(pointer.Event{Kind: pointer.Down, X: 0, Y: 0})
	if p.Value() != before {
		t.Error("disabled picker changed value")
	}
	p.SetDisabled(false)
	p.Handle(pointer.Event{Kind: pointer.Down, X: 0, Y: 0})
	if p.Value().Hex != "#ffffff" {
		t.Errorf("value = %s, want #ffffff", p.Value().Hex)
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"basic": Basic, "ADVANCED": Advanced, " Advanced ": Advanced} {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseMode("pro"); err == nil {
		t.Error("ParseMode(pro) succeeded")
	}
}
