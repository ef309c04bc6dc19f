// Command colorpicktui runs a color picker in the terminal. Drag with the
// mouse on the field or the hue slider; press q to quit.
//
// Usage:
//
//	colorpicktui [-mode advanced] [-width 64] [-height 24] [-log file]
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/colorpick"
	"github.com/gogpu/colorpick/internal/tui"
	"github.com/gogpu/colorpick/picker"
)

func main() {
	mode := flag.String("mode", "advanced", "picker mode: basic or advanced")
	width := flag.Int("width", 64, "field width in terminal columns")
	height := flag.Int("height", 24, "field height in pixels (two per row)")
	logPath := flag.String("log", "", "write debug logs to this file")
	flag.Parse()

	m, err := picker.ParseMode(*mode)
	if err != nil {
		log.Fatalf("colorpicktui: %v", err)
	}

	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.Fatalf("colorpicktui: %v", err)
		}
		defer f.Close()
		colorpick.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	p, err := picker.New(
		picker.WithMode(m),
		picker.WithFieldSize(*width, *height),
		picker.WithSliderMargin(2),
	)
	if err != nil {
		log.Fatalf("colorpicktui: %v", err)
	}
	defer p.Close()

	prog := tea.NewProgram(tui.New(p), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := prog.Run(); err != nil {
		log.Fatalf("colorpicktui: %v", err)
	}
	fmt.Println(p.Value().Hex)
}
