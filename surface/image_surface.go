// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/colorpick"
)

// ImageSurface is a CPU surface backed by *image.NRGBA.
type ImageSurface struct {
	img    *image.NRGBA
	closed bool
}

// NewImageSurface creates a transparent surface of the given size.
// Non-positive dimensions produce an empty surface; use NewSurface to get
// a validated one.
func NewImageSurface(width, height int) *ImageSurface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &ImageSurface{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the surface.
func (s *ImageSurface) Width() int { return s.img.Rect.Dx() }

// Height returns the height of the surface.
func (s *ImageSurface) Height() int { return s.img.Rect.Dy() }

// Bounds returns the surface rectangle.
func (s *ImageSurface) Bounds() image.Rectangle { return s.img.Rect }

// Clear replaces every pixel with c.
func (s *ImageSurface) Clear(c colorpick.RGBA) {
	if s.closed {
		return
	}
	r, g, b, a := colorpick.Quantize(c.R), colorpick.Quantize(c.G), colorpick.Quantize(c.B), colorpick.Quantize(c.A)
	pix := s.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = r
		pix[i+1] = g
		pix[i+2] = b
		pix[i+3] = a
	}
}

// FillRect composites c over r.
func (s *ImageSurface) FillRect(r image.Rectangle, c colorpick.RGBA) {
	if s.closed {
		return
	}
	r = r.Intersect(s.img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s.blend(x, y, c)
		}
	}
}

// FillGradient composites g over r.
func (s *ImageSurface) FillGradient(r image.Rectangle, g *colorpick.LinearGradient) {
	if s.closed || g == nil {
		return
	}
	r = r.Intersect(s.img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s.blend(x, y, g.ColorAt(float64(x), float64(y)))
		}
	}
}

// StrokeRing composites c over a ring centred on the pixel (cx, cy).
func (s *ImageSurface) StrokeRing(cx, cy int, radius, lineWidth float64, c colorpick.RGBA) {
	if s.closed {
		return
	}
	half := lineWidth / 2
	outer := int(math.Ceil(radius + half))
	box := image.Rect(cx-outer, cy-outer, cx+outer+1, cy+outer+1).Intersect(s.img.Rect)
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			d := math.Hypot(float64(x-cx), float64(y-cy))
			if math.Abs(d-radius) <= half {
				s.blend(x, y, c)
			}
		}
	}
}

// StrokeRect composites c over the border pixels of r.
func (s *ImageSurface) StrokeRect(r image.Rectangle, c colorpick.RGBA) {
	if s.closed || r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		s.blendClipped(x, r.Min.Y, c)
		if r.Max.Y-1 != r.Min.Y {
			s.blendClipped(x, r.Max.Y-1, c)
		}
	}
	for y := r.Min.Y + 1; y < r.Max.Y-1; y++ {
		s.blendClipped(r.Min.X, y, c)
		if r.Max.X-1 != r.Min.X {
			s.blendClipped(r.Max.X-1, y, c)
		}
	}
}

// ReadPixel returns the pixel at (x, y).
func (s *ImageSurface) ReadPixel(x, y int) color.NRGBA {
	if s.closed || !image.Pt(x, y).In(s.img.Rect) {
		return color.NRGBA{}
	}
	return s.img.NRGBAAt(x, y)
}

// Snapshot returns a copy of the surface contents.
func (s *ImageSurface) Snapshot() *image.NRGBA {
	out := image.NewNRGBA(s.img.Rect)
	copy(out.Pix, s.img.Pix)
	return out
}

// Close releases the pixel buffer.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.img = image.NewNRGBA(image.Rectangle{})
	return nil
}

func (s *ImageSurface) blendClipped(x, y int, c colorpick.RGBA) {
	if image.Pt(x, y).In(s.img.Rect) {
		s.blend(x, y, c)
	}
}

// blend composites src over the pixel at (x, y) using non-premultiplied
// source-over and writes the quantized result.
func (s *ImageSurface) blend(x, y int, src colorpick.RGBA) {
	sa := src.A
	if sa <= 0 {
		return
	}
	i := s.img.PixOffset(x, y)
	pix := s.img.Pix[i : i+4 : i+4]

	if sa >= 1 {
		pix[0] = colorpick.Quantize(src.R)
		pix[1] = colorpick.Quantize(src.G)
		pix[2] = colorpick.Quantize(src.B)
		pix[3] = 255
		return
	}

	da := float64(pix[3]) / 255
	outA := sa + da*(1-sa)
	mix := func(sc float64, dc uint8) uint8 {
		return colorpick.Quantize((sc*sa + float64(dc)/255*da*(1-sa)) / outA)
	}
	pix[0] = mix(src.R, pix[0])
	pix[1] = mix(src.G, pix[1])
	pix[2] = mix(src.B, pix[2])
	pix[3] = colorpick.Quantize(outA)
}
