package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/colorpick/picker"
	"github.com/gogpu/colorpick/pointer"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("COLORPICK_CONFIG", "")
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Mode() != picker.Basic {
		t.Errorf("mode = %v, want basic", c.Mode())
	}
	if c.Picker.Width != picker.Width || c.Picker.Height != picker.FieldHeight {
		t.Errorf("size = %dx%d", c.Picker.Width, c.Picker.Height)
	}
	if c.Output.Format != "png" {
		t.Errorf("format = %q, want png", c.Output.Format)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "colorpick.toml", `
[picker]
mode = "advanced"
width = 200

[output]
format = "bmp"

[[drag]]
kind = "down"
x = 10
y = 20

[[drag]]
kind = "up"
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Mode() != picker.Advanced {
		t.Errorf("mode = %v, want advanced", c.Mode())
	}
	if c.Picker.Width != 200 || c.Picker.Height != picker.FieldHeight {
		t.Errorf("size = %dx%d, want 200x%d", c.Picker.Width, c.Picker.Height, picker.FieldHeight)
	}
	if len(c.Drag) != 2 {
		t.Fatalf("drag steps = %d, want 2", len(c.Drag))
	}
	ev, err := c.Drag[0].Event()
	if err != nil {
		t.Fatalf("Event: %v", err)
	}
	if ev != (pointer.Event{Kind: pointer.Down, X: 10, Y: 20}) {
		t.Errorf("event = %+v", ev)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("COLORPICK_CONFIG", "")
	t.Setenv("COLORPICK_OUTPUT_FORMAT", "tiff")
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Output.Format != "tiff" {
		t.Errorf("format = %q, want tiff", c.Output.Format)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"mode":   "[picker]\nmode = \"pro\"\n",
		"size":   "[picker]\nwidth = 0\n",
		"format": "[output]\nformat = \"gif\"\n",
		"level":  "[log]\nlevel = \"loud\"\n",
		"drag":   "[[drag]]\nkind = \"click\"\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeFile(t, "bad.toml", data)); err == nil {
				t.Error("Load succeeded, want error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}
