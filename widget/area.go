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

// area is the shared core of Spectrum and Plane.
type area struct {
	kind     string
	id       string
	surf     surface.Surface
	ctrl     *pointer.Controller
	field    render.Field
	value    AreaValue
	onChange func(AreaValue)
}

func newArea(kind string, field render.Field, o options) (*area, error) {
	surf, err := surface.NewSurfaceByName(o.backend, o.width, o.height)
	if err != nil {
		return nil, fmt.Errorf("widget: %s: %w", kind, err)
	}

	policy := pointer.AreaPolicy{Width: o.width, Height: o.height}
	start := image.Pt(o.width-1, 0)
	if o.areaValue != nil {
		start, _ = policy.Commit(image.Pt(o.areaValue.X, o.areaValue.Y), start)
	}
	bounds := image.Rectangle{Min: o.origin, Max: o.origin.Add(image.Pt(o.width, o.height))}

	a := &area{
		kind:     kind,
		id:       uuid.NewString(),
		surf:     surf,
		ctrl:     pointer.NewController(start, bounds, policy),
		field:    field,
		onChange: o.onArea,
	}
	a.ctrl.SetDisabled(o.disabled)

	colorpick.Logger().Info("widget created",
		"widget", kind, "id", a.id, "width", o.width, "height", o.height)
	a.refresh()
	return a, nil
}

// refresh renders, samples and notifies.
func (a *area) refresh() {
	a.field.Render(a.surf)
	pos := a.ctrl.Position()
	render.Selector(a.surf, pos)

	a.value = AreaValue{X: pos.X, Y: pos.Y, ColorValue: SampleArea(a.surf, pos)}
	colorpick.Logger().Debug("sampled",
		"widget", a.kind, "id", a.id, "x", pos.X, "y", pos.Y, "hex", a.value.Hex)

	if a.onChange != nil {
		a.onChange(a.value)
	}
}

// Handle applies a pointer event. It reports whether the widget state
// changed, in which case the widget was re-rendered and the callback run.
func (a *area) Handle(ev pointer.Event) bool {
	_, changed := a.ctrl.Handle(ev)
	if changed {
		a.refresh()
	}
	return changed
}

// Value returns the last sampled value.
func (a *area) Value() AreaValue { return a.value }

// State returns the pointer state.
func (a *area) State() pointer.State { return a.ctrl.State() }

// ID returns the widget instance ID used in log records.
func (a *area) ID() string { return a.id }

// Bounds returns the widget rectangle in screen coordinates.
func (a *area) Bounds() image.Rectangle { return a.ctrl.Bounds() }

// SetOrigin moves the widget on screen without re-rendering.
func (a *area) SetOrigin(p image.Point) {
	size := a.ctrl.Bounds().Size()
	a.ctrl.SetBounds(image.Rectangle{Min: p, Max: p.Add(size)})
}

// Disabled reports whether pointer events are ignored.
func (a *area) Disabled() bool { return a.ctrl.Disabled() }

// SetDisabled enables or disables pointer handling.
func (a *area) SetDisabled(d bool) { a.ctrl.SetDisabled(d) }

// Snapshot returns a copy of the rendered surface.
func (a *area) Snapshot() *image.NRGBA { return a.surf.Snapshot() }

// Close releases the surface.
func (a *area) Close() error { return a.surf.Close() }
