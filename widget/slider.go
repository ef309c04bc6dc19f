package widget

import (
	"fmt"
	"image"

	"github.com/google/uuid"

	"github.com/gogpu/colorpick"
	"github.com/gogpu/colorpick/pointer"
	"github.com/gogpu/colorpick/render"
	"github.com/gogpu/colorpick/surface"
)

// Slider is a hue slider: the rainbow along a track with a square thumb.
type Slider struct {
	id          string
	backend     string
	length      int
	orientation colorpick.Orientation
	surf        surface.Surface
	ctrl        *pointer.Controller
	value       SliderValue
	onChange    func(SliderValue)
}

// NewSlider creates a slider and runs its first render cycle. The thumb
// starts at position 0 unless WithSliderValue is given.
// Relevant options: WithLength, WithOrientation, WithSliderValue,
// WithDisabled, WithOrigin, WithBackend, WithOnSliderChange.
func NewSlider(opts ...Option) (*Slider, error) {
	o := buildOptions(opts)
	s := &Slider{
		id:          uuid.NewString(),
		backend:     o.backend,
		length:      o.length,
		orientation: o.orientation,
		onChange:    o.onSlider,
	}

	surf, err := s.newSurface()
	if err != nil {
		return nil, err
	}
	s.surf = surf

	policy := s.policy()
	start := 0
	if o.sliderValue != nil {
		start = clampPos(o.sliderValue.Pos, policy.MaxPos()-1)
	}
	s.ctrl = pointer.NewController(policy.Point(start), s.screenBounds(o.origin), policy)
	s.ctrl.SetDisabled(o.disabled)

	colorpick.Logger().Info("widget created",
		"widget", "slider", "id", s.id, "length", s.length, "orientation", s.orientation.String())
	s.refresh()
	return s, nil
}

func clampPos(pos, maxPos int) int {
	if pos > maxPos {
		pos = maxPos
	}
	if pos < 0 {
		pos = 0
	}
	return pos
}

func (s *Slider) newSurface() (surface.Surface, error) {
	w, h := s.length, render.TrackThickness
	if s.orientation == colorpick.Vertical {
		w, h = h, w
	}
	surf, err := surface.NewSurfaceByName(s.backend, w, h)
	if err != nil {
		return nil, fmt.Errorf("widget: slider: %w", err)
	}
	return surf, nil
}

func (s *Slider) policy() pointer.SliderPolicy {
	return pointer.SliderPolicy{
		Orientation: s.orientation,
		Length:      s.length,
		Thickness:   render.PointerSize,
	}
}

func (s *Slider) screenBounds(origin image.Point) image.Rectangle {
	size := image.Pt(s.length, render.TrackThickness)
	if s.orientation == colorpick.Vertical {
		size = image.Pt(render.TrackThickness, s.length)
	}
	return image.Rectangle{Min: origin, Max: origin.Add(size)}
}

// Pos returns the committed track position.
func (s *Slider) Pos() int {
	return s.policy().Project(s.ctrl.Position())
}

// refresh renders, samples and notifies.
func (s *Slider) refresh() {
	render.SliderField{
		Orientation: s.orientation,
		Length:      s.length,
		Thickness:   render.TrackThickness,
	}.Render(s.surf)

	pos := s.Pos()
	render.SliderThumb(s.surf, pos, s.orientation, render.TrackThickness)

	s.value = SliderValue{Pos: pos, ColorValue: SampleSlider(s.surf, pos, s.orientation)}
	colorpick.Logger().Debug("sampled",
		"widget", "slider", "id", s.id, "pos", pos, "hex", s.value.Hex)

	if s.onChange != nil {
		s.onChange(s.value)
	}
}

// Handle applies a pointer event. It reports whether the slider state
// changed, in which case the slider was re-rendered and the callback run.
func (s *Slider) Handle(ev pointer.Event) bool {
	_, changed := s.ctrl.Handle(ev)
	if changed {
		s.refresh()
	}
	return changed
}

// Orientation returns the slider orientation.
func (s *Slider) Orientation() colorpick.Orientation { return s.orientation }

// SetOrientation turns the slider, keeping the scalar position and the
// screen origin, and re-renders. The surface is replaced.
func (s *Slider) SetOrientation(o colorpick.Orientation) error {
	if o == s.orientation {
		return nil
	}
	pos := s.Pos()
	origin := s.ctrl.Bounds().Min

	prev := s.orientation
	s.orientation = o
	surf, err := s.newSurface()
	if err != nil {
		s.orientation = prev
		return err
	}
	_ = s.surf.Close()
	s.surf = surf

	policy := s.policy()
	s.ctrl.SetPolicy(policy)
	s.ctrl.SetBounds(s.screenBounds(origin))
	s.ctrl.SetPosition(policy.Point(pos))
	s.refresh()
	return nil
}

// Value returns the last sampled value.
func (s *Slider) Value() SliderValue { return s.value }

// State returns the pointer state.
func (s *Slider) State() pointer.State { return s.ctrl.State() }

// ID returns the widget instance ID used in log records.
func (s *Slider) ID() string { return s.id }

// Bounds returns the slider rectangle in screen coordinates.
func (s *Slider) Bounds() image.Rectangle { return s.ctrl.Bounds() }

// SetOrigin moves the slider on screen without re-rendering.
func (s *Slider) SetOrigin(p image.Point) { s.ctrl.SetBounds(s.screenBounds(p)) }

// Disabled reports whether pointer events are ignored.
func (s *Slider) Disabled() bool { return s.ctrl.Disabled() }

// SetDisabled enables or disables pointer handling.
func (s *Slider) SetDisabled(d bool) { s.ctrl.SetDisabled(d) }

// Snapshot returns a copy of the rendered surface.
func (s *Slider) Snapshot() *image.NRGBA { return s.surf.Snapshot() }

// Close releases the surface.
func (s *Slider) Close() error { return s.surf.Close() }
