package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridiron/internal/core"
	"github.com/vovakirdan/gridiron/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a match in this terminal.

Controls:
  W/Up, S/Down      - Run upfield / downfield
  A/Left, D/Right   - Run left / right
  1-6               - Call a play
  R                 - New match
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

Terminals only report key presses, so a direction stays held for
input.hold_ms (default 250ms) after its last press or auto-repeat.

Examples:
  gridiron play
  gridiron play --fps 30
  gridiron play --config ./football.yaml --log-file gridiron.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("gridiron", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	rt := core.DefaultConfig()
	rt.FrameRate = flagFPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	return tui.Run(tui.Options{
		Config:  cfg,
		Runtime: rt,
		Logger:  logger,
	})
}
