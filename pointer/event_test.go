// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pointer

import (
	"image"
	"testing"
)

func TestMap(t *testing.T) {
	bounds := image.Rect(100, 50, 350, 200)
	tests := []struct {
		name   string
		screen image.Point
		want   image.Point
	}{
		{"origin", image.Pt(100, 50), image.Pt(0, 0)},
		{"inside", image.Pt(110, 70), image.Pt(10, 20)},
		{"left of target", image.Pt(90, 70), image.Pt(0, 20)},
		{"above target", image.Pt(110, 10), image.Pt(10, 0)},
		{"past bottom right is not clamped", image.Pt(400, 300), image.Pt(300, 250)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Map(tt.screen, bounds); got != tt.want {
				t.Errorf("Map(%v) = %v, want %v", tt.screen, got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{Down: "down", Move: "move", Up: "up", Leave: "leave", Kind(9): "Kind(9)"} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
