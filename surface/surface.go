// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"

	"github.com/gogpu/colorpick"
)

// Surface is an owned pixel buffer.
//
// Surfaces are NOT thread-safe. A surface belongs to exactly one widget and
// is used from that widget's goroutine only.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Bounds returns image.Rect(0, 0, Width(), Height()).
	Bounds() image.Rectangle

	// Clear replaces every pixel with c, without compositing.
	Clear(c colorpick.RGBA)

	// FillRect composites c over every pixel of r.
	FillRect(r image.Rectangle, c colorpick.RGBA)

	// FillGradient composites g over every pixel of r. The gradient is
	// evaluated at each pixel's integer coordinates.
	FillGradient(r image.Rectangle, g *colorpick.LinearGradient)

	// StrokeRing composites c over the pixels whose distance from
	// (cx, cy) lies within lineWidth/2 of radius.
	StrokeRing(cx, cy int, radius, lineWidth float64, c colorpick.RGBA)

	// StrokeRect composites c over the one-pixel border of r.
	StrokeRect(r image.Rectangle, c colorpick.RGBA)

	// ReadPixel returns the pixel at (x, y). Coordinates outside the
	// surface read as transparent black.
	ReadPixel(x, y int) color.NRGBA

	// Snapshot returns a copy of the current contents.
	Snapshot() *image.NRGBA

	// Close releases the pixel buffer. Drawing on a closed surface is a
	// no-op and reads return transparent black. Close is idempotent.
	Close() error
}

// Options configures surface creation.
type Options struct {
	// Width is the surface width in pixels. Must be positive.
	Width int

	// Height is the surface height in pixels. Must be positive.
	Height int
}
