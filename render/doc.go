// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render paints the gradient fields and pointer glyphs of the color
// widgets onto a surface.
//
// # Fields
//
//   - Spectrum: the seven-stop hue rainbow across x with a white-to-black
//     overlay down y
//   - Plane: a base color with a white fade across x and a black fade down y
//   - SliderTrack: the hue rainbow along one axis of a thin band
//
// Each field repaints the whole surface, so rendering a field always erases
// the previous glyph. Output depends only on the surface size and the
// field's parameters.
//
// # Glyphs
//
// Selector draws the ring used by the 2D fields; SliderThumb draws the
// square thumb with its shadow. Neither covers the pixel the widgets sample.
package render
