// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"

	"github.com/gogpu/colorpick"
	"github.com/gogpu/colorpick/surface"
)

// Field paints a gradient field over a whole surface.
type Field interface {
	Render(s surface.Surface)
}

// SpectrumField is the hue/saturation-value spectrum.
type SpectrumField struct{}

// Render paints the rainbow then the black-and-white overlay.
func (SpectrumField) Render(s surface.Surface) {
	w, h := s.Width(), s.Height()
	full := s.Bounds()

	s.Clear(colorpick.Transparent)
	rainbow := colorpick.NewLinearGradient(0, 0, last(w), 0).
		AddColorStops(colorpick.PrimaryColorStops())
	s.FillGradient(full, rainbow)

	overlay := colorpick.NewLinearGradient(0, 0, 0, last(h)).
		AddColorStops(colorpick.BlackAndWhiteStops())
	s.FillGradient(full, overlay)
}

// PlaneField is the saturation/value plane of one base color.
type PlaneField struct {
	Base colorpick.RGBA
}

// Render paints the base, then the white fade, then the black fade.
func (f PlaneField) Render(s surface.Surface) {
	w, h := s.Width(), s.Height()
	full := s.Bounds()

	s.Clear(colorpick.Transparent)
	s.FillRect(full, f.Base)

	white := colorpick.NewLinearGradient(0, 0, last(w), 0).
		AddColorStop(0, colorpick.RGBA2(1, 1, 1, 1)).
		AddColorStop(1, colorpick.RGBA2(1, 1, 1, 0))
	s.FillGradient(full, white)

	black := colorpick.NewLinearGradient(0, 0, 0, last(h)).
		AddColorStop(0, colorpick.RGBA2(0, 0, 0, 0)).
		AddColorStop(1, colorpick.RGBA2(0, 0, 0, 1))
	s.FillGradient(full, black)
}

// SliderField is the hue track of a slider. Length runs along Orientation;
// Thickness is the band across it.
type SliderField struct {
	Orientation colorpick.Orientation
	Length      int
	Thickness   int
}

// Render paints the rainbow inside the band.
func (f SliderField) Render(s surface.Surface) {
	s.Clear(colorpick.Transparent)

	var (
		g    *colorpick.LinearGradient
		band image.Rectangle
	)
	if f.Orientation == colorpick.Vertical {
		g = colorpick.NewLinearGradient(0, 0, 0, last(f.Length))
		band = image.Rect(0, 0, f.Thickness, f.Length)
	} else {
		g = colorpick.NewLinearGradient(0, 0, last(f.Length), 0)
		band = image.Rect(0, 0, f.Length, f.Thickness)
	}
	g.AddColorStops(colorpick.PrimaryColorStops())
	s.FillGradient(band, g)
}

// last returns the coordinate of the last pixel of an n-pixel run.
func last(n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(n - 1)
}
