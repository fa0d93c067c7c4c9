package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/spectate"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

var (
	flagSpectate string
	flagSound    bool
	flagVolume   float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a match in the terminal.

Controls:
  W/Up, S/Down   - Move paddle (or move the mouse)
  Click/Space    - Start, continue after a point, restart
  ?              - Toggle help
  Ctrl+S         - Save screenshot to ~/.pong/screenshots
  Q/Ctrl+C       - Quit

Examples:
  pong play
  pong play --seed 42
  pong play --sound
  pong play --spectate :8080 --log-file pong.log`,
	Run: runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, windowCmd} {
		cmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a read-only websocket feed on this address")
		cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
		cmd.Flags().Float64Var(&flagVolume, "volume", 0.4, "Sound volume from 0 to 1")
	}
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := mustLogger("pong", io.Discard)
	defer closeLog()

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := tui.Options{
		HoldFor: time.Duration(cfg.Input.TerminalHoldMS) * time.Millisecond,
		Logger:  logger,
	}
	if hub := startSpectator(ctx, logger); hub != nil {
		opts.Publisher = hub
	}
	cues := startSound(logger)
	if cues != nil {
		defer cues.Close()
	}
	opts.Listeners = listeners(cues)

	if err := tui.Run(pong.NewParams(cfg), rc, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running match: %v\n", err)
		os.Exit(1)
	}
}

// startSpectator starts the websocket feed when --spectate is set. Failing
// to listen is fatal.
func startSpectator(ctx context.Context, logger *log.Logger) *spectate.Hub {
	if flagSpectate == "" {
		return nil
	}

	ln, err := net.Listen("tcp", flagSpectate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: spectate: %v\n", err)
		os.Exit(1)
	}

	hub := spectate.NewHub(logger.WithPrefix("spectate"))
	go func() {
		if err := hub.Serve(ctx, ln); err != nil {
			logger.Error("spectator server stopped", "error", err)
		}
	}()
	return hub
}

// startSound opens the audio device when --sound is set. Failure is logged
// and the match runs silently.
func startSound(logger *log.Logger) *audio.Cues {
	if !flagSound {
		return nil
	}

	cues := audio.NewCues(core.ClampF(flagVolume, 0, 1), logger.WithPrefix("audio"))
	if err := cues.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil
	}
	return cues
}

// listeners collects the optional match listeners.
func listeners(cues *audio.Cues) []pong.Listener {
	if cues == nil {
		return nil
	}
	return []pong.Listener{cues}
}
