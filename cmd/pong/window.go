package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/window"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a match in an 800x460 desktop window.

Controls:
  W/Up, S/Down   - Move paddle while held (or move the mouse)
  Click/Space    - Start, continue after a point, restart
  Q/Esc          - Quit

Examples:
  pong window
  pong window --sound
  pong window --spectate :8080`,
	Run: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := mustLogger("pong", os.Stderr)
	defer closeLog()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	opts := window.Options{Logger: logger}
	if hub := startSpectator(ctx, logger); hub != nil {
		opts.Publisher = hub
	}
	cues := startSound(logger)
	if cues != nil {
		defer cues.Close()
	}
	opts.Listeners = listeners(cues)

	if err := window.Run(pong.NewParams(cfg), rc, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running match: %v\n", err)
		os.Exit(1)
	}
}
