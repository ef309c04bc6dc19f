// Package config loads the settings of the colorpick command.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/gogpu/colorpick/picker"
	"github.com/gogpu/colorpick/pointer"
)

// Config holds command configuration.
type Config struct {
	Picker PickerConfig
	Output OutputConfig
	Log    LogConfig
	Drag   []DragStep
}

// PickerConfig selects the picker to build.
type PickerConfig struct {
	Mode   string
	Width  int
	Height int
}

// OutputConfig controls where snapshots go.
type OutputConfig struct {
	Dir    string
	Format string
}

// LogConfig controls log output.
type LogConfig struct {
	Level string
}

// DragStep is one scripted pointer event in picker coordinates.
type DragStep struct {
	Kind string
	X    int
	Y    int
}

// Load reads configuration from path (if not empty), then the environment.
// Env var overrides use prefix COLORPICK_, e.g. COLORPICK_PICKER_MODE.
// The file format is taken from the extension (toml, yaml, json).
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("picker.mode", "basic")
	v.SetDefault("picker.width", picker.Width)
	v.SetDefault("picker.height", picker.FieldHeight)
	v.SetDefault("output.dir", ".")
	v.SetDefault("output.format", "png")
	v.SetDefault("log.level", "info")

	if path == "" {
		path = os.Getenv("COLORPICK_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("COLORPICK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that viper cannot.
func (c Config) Validate() error {
	if _, err := picker.ParseMode(c.Picker.Mode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Picker.Width <= 0 || c.Picker.Height <= 0 {
		return fmt.Errorf("config: picker size %dx%d must be positive", c.Picker.Width, c.Picker.Height)
	}
	switch strings.ToLower(c.Output.Format) {
	case "png", "bmp", "tiff":
	default:
		return fmt.Errorf("config: unknown output format %q", c.Output.Format)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	for i, s := range c.Drag {
		if _, err := s.Event(); err != nil {
			return fmt.Errorf("config: drag step %d: %w", i, err)
		}
	}
	return nil
}

// Mode returns the parsed picker mode.
func (c Config) Mode() picker.Mode {
	m, _ := picker.ParseMode(c.Picker.Mode)
	return m
}

// SlogLevel parses Log.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("config: log level: %w", err)
	}
	return l, nil
}

// Event converts the step to a pointer event.
func (s DragStep) Event() (pointer.Event, error) {
	var k pointer.Kind
	switch strings.ToLower(s.Kind) {
	case "down":
		k = pointer.Down
	case "move":
		k = pointer.Move
	case "up":
		k = pointer.Up
	case "leave":
		k = pointer.Leave
	default:
		return pointer.Event{}, fmt.Errorf("unknown event kind %q", s.Kind)
	}
	return pointer.Event{Kind: k, X: s.X, Y: s.Y}, nil
}
