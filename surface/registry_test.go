// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"testing"
)

func imageFactory(opts Options) (Surface, error) {
	return NewImageSurface(opts.Width, opts.Height), nil
}

func TestRegistryRegisterAndCreate(t *testing.T) {
	r := NewRegistry()
	r.Register("test", 50, imageFactory, nil)

	s, err := r.NewSurfaceByName("test", Options{Width: 4, Height: 3})
	if err != nil {
		t.Fatalf("NewSurfaceByName: %v", err)
	}
	if s.Width() != 4 || s.Height() != 3 {
		t.Errorf("size = %dx%d, want 4x3", s.Width(), s.Height())
	}
}

func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register("temp", 10, imageFactory, nil)
	r.Unregister("temp")

	_, err := r.NewSurfaceByName("temp", Options{Width: 1, Height: 1})
	if !errors.Is(err, ErrNoSurface) {
		t.Errorf("err = %v, want ErrNoSurface", err)
	}
}

func TestRegistryAvailableOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("low", 10, imageFactory, nil)
	r.Register("high", 100, imageFactory, nil)
	r.Register("off", 500, imageFactory, func() bool { return false })

	got := r.Available()
	want := []string{"high", "low"}
	if len(got) != len(want) {
		t.Fatalf("Available() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Available()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestRegistryEmpty(t *testing.T) {
	r := NewRegistry()
	if _, err := r.NewSurface(Options{Width: 1, Height: 1}); !errors.Is(err, ErrNoSurface) {
		t.Errorf("err = %v, want ErrNoSurface", err)
	}
}

func TestRegistryUnavailableBackend(t *testing.T) {
	r := NewRegistry()
	r.Register("gpu", 100, imageFactory, func() bool { return false })

	if _, err := r.NewSurfaceByName("gpu", Options{Width: 1, Height: 1}); !errors.Is(err, ErrNoSurface) {
		t.Errorf("err = %v, want ErrNoSurface", err)
	}
}

func TestRegistryFallsBackOnFactoryError(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	r.Register("broken", 100, func(Options) (Surface, error) { return nil, boom }, nil)
	r.Register("image", 10, imageFactory, nil)

	s, err := r.NewSurface(Options{Width: 2, Height: 2})
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	if s.Width() != 2 {
		t.Errorf("Width = %d, want 2", s.Width())
	}
}

func TestRegistryInvalidSize(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"zero width", Options{Width: 0, Height: 10}},
		{"zero height", Options{Width: 10, Height: 0}},
		{"negative", Options{Width: -1, Height: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSurfaceByName(DefaultBackend, tt.opts.Width, tt.opts.Height)
			if !errors.Is(err, ErrInvalidSize) {
				t.Errorf("err = %v, want ErrInvalidSize", err)
			}
		})
	}
}

func TestDefaultBackendRegistered(t *testing.T) {
	s, err := NewSurfaceByName("", 8, 8)
	if err != nil {
		t.Fatalf("NewSurfaceByName(\"\"): %v", err)
	}
	if _, ok := s.(*ImageSurface); !ok {
		t.Errorf("default surface is %T, want *ImageSurface", s)
	}
}
