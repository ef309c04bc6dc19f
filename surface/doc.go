// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface provides the pixel surface a widget renders into and
// reads back from.
//
// A Surface is an addressable 2D buffer of non-premultiplied RGBA pixels.
// It supports the small set of operations a color widget needs:
//
//   - solid rectangle fills
//   - linear-gradient fills built from ordered color stops
//   - pointer glyphs (a stroked ring and a stroked rectangle)
//   - single-pixel read-back
//
// Every drawing operation composites with source-over and quantizes to 8
// bits per channel once per operation, so identical drawing sequences
// always produce identical pixels.
//
// # Registry
//
// Surfaces are created through a registry of named backends. The built-in
// "image" backend is backed by *image.NRGBA:
//
//	s, err := surface.NewSurface(250, 150)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	s.FillRect(s.Bounds(), colorpick.MustParseColor("#0084ff"))
//	px := s.ReadPixel(10, 10)
//
// Third-party backends register under their own name:
//
//	surface.Register("shm", 50, shmFactory, shmAvailable)
package surface
