// Command colorpick builds a color picker, replays a scripted drag on it and
// writes each widget surface to an image file.
//
// Usage:
//
//	colorpick -config drag.toml
//
// See internal/config for the configuration keys.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/colorpick"
	"github.com/gogpu/colorpick/internal/config"
	"github.com/gogpu/colorpick/internal/snapshot"
	"github.com/gogpu/colorpick/picker"
)

func main() {
	cfgPath := flag.String("config", "", "config file (toml, yaml or json)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("colorpick: %v", err)
	}
	level, _ := cfg.SlogLevel()
	colorpick.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(cfg); err != nil {
		log.Fatalf("colorpick: %v", err)
	}
}

func run(cfg config.Config) error {
	p, err := picker.New(
		picker.WithMode(cfg.Mode()),
		picker.WithFieldSize(cfg.Picker.Width, cfg.Picker.Height),
	)
	if err != nil {
		return err
	}
	defer p.Close()

	for _, step := range cfg.Drag {
		ev, err := step.Event()
		if err != nil {
			return err
		}
		p.Handle(ev)
	}

	shots := map[string]*image.NRGBA{}
	if s := p.Spectrum(); s != nil {
		shots["spectrum"] = s.Snapshot()
	}
	if pl := p.Plane(); pl != nil {
		shots["plane"] = pl.Snapshot()
	}
	if sl := p.Slider(); sl != nil {
		shots["slider"] = sl.Snapshot()
	}
	for name, img := range shots {
		path := filepath.Join(cfg.Output.Dir, name+snapshot.Ext(cfg.Output.Format))
		if err := snapshot.Save(path, img, cfg.Output.Format); err != nil {
			return err
		}
		colorpick.Logger().Info("snapshot written", "widget", name, "path", path)
	}

	v := p.Value()
	out, err := json.Marshal(struct {
		colorpick.ColorValue
		HSV colorpick.HSV `json:"hsv"`
	}{v, v.HSV()})
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
