// Package colorpick provides headless color-selection widgets: a hue
// spectrum, a saturation/value plane and a hue slider.
//
// # Overview
//
// Every widget owns a pixel surface. It paints a deterministic gradient
// field onto the surface, draws a pointer glyph at the committed pointer
// position, then reads one pixel back to decide the selected color. The
// rendered pixel is the source of truth: the reported value can never
// disagree with what is drawn.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/colorpick"
//	    "github.com/gogpu/colorpick/pointer"
//	    "github.com/gogpu/colorpick/widget"
//	)
//
//	plane, err := widget.NewPlane(
//	    widget.WithSize(250, 150),
//	    widget.WithColor("#0084ff"),
//	    widget.WithOnChange(func(v widget.AreaValue) {
//	        fmt.Println(v.Hex)
//	    }),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	plane.Handle(pointer.Event{Kind: pointer.Down, X: 10, Y: 10})
//
// # Architecture
//
// The module is organized into:
//   - colorpick: color values, RGB/HEX/HSV conversion, gradient stops, logging
//   - surface: the owned pixel buffer and its backend registry
//   - render: gradient fields and pointer glyphs
//   - pointer: coordinate mapping and the Idle/Dragging state machine
//   - widget: Spectrum, Plane and Slider (render, sample, notify)
//   - picker: a basic or advanced picker composed from the widgets
//
// Two commands host a picker: cmd/colorpick replays a scripted drag and
// writes the surfaces to image files, cmd/colorpicktui runs one in a
// terminal with mouse input.
//
// # Coordinate System
//
// Origin (0,0) at the top-left of a surface, x increases right, y increases
// down. Pointer events carry screen coordinates; each widget translates them
// using its origin.
//
// # Concurrency
//
// Widgets are driven from a single goroutine and process one event to
// completion before the next. Only SetLogger/Logger and the surface
// registry are safe for concurrent use.
package colorpick

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
