package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridiron/internal/core"
	"github.com/vovakirdan/gridiron/internal/engine"
	"github.com/vovakirdan/gridiron/internal/football"
	"github.com/vovakirdan/gridiron/internal/playbook"
)

// scriptStep is how often a script may change the held directions.
const scriptStep = 250 * time.Millisecond

var (
	flagScript        string
	flagClockInterval time.Duration
	flagDuration      int
	flagPlay          string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless scripted match",
	Long: `Run a match without a terminal UI. A script steers the runner,
scoring events are logged, and the final score is printed.

Scripts:
  forward  - Run straight at the goal line
  idle     - Stand still and wait for the tackle
  zigzag   - Run upfield while cutting left and right

Examples:
  gridiron simulate
  gridiron simulate --script zigzag --clock-interval 10ms
  gridiron simulate --script idle --duration 30 --play defense_zone`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagScript, "script", "forward", "Runner script: forward, idle, zigzag")
	simulateCmd.Flags().DurationVar(&flagClockInterval, "clock-interval", 0, "Clock tick interval (default from config)")
	simulateCmd.Flags().IntVar(&flagDuration, "duration", 0, "Match length in clock ticks (default from config)")
	simulateCmd.Flags().StringVar(&flagPlay, "play", "", "Play to call before kickoff")
}

// script returns the held directions for the n-th script step.
type script func(n int) core.InputState

var scripts = map[string]script{
	"forward": func(int) core.InputState {
		return core.NewInputState(core.Forward)
	},
	"idle": func(int) core.InputState {
		return core.NewInputState()
	},
	"zigzag": func(n int) core.InputState {
		// Four steps each way, starting with a cut to the left.
		if (n/4)%2 == 0 {
			return core.NewInputState(core.Forward, core.Left)
		}
		return core.NewInputState(core.Forward, core.Right)
	},
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	drive, ok := scripts[flagScript]
	if !ok {
		return fmt.Errorf("unknown script %q (want forward, idle or zigzag)", flagScript)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("gridiron-sim", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := engine.Options{
		Settings:      football.SettingsFromConfig(cfg),
		FrameInterval: time.Second / time.Duration(flagFPS),
		ClockInterval: cfg.ClockInterval(),
		Logger:        logger,
	}
	if flagClockInterval > 0 {
		opts.ClockInterval = flagClockInterval
	}
	if flagDuration > 0 {
		opts.Settings.ClockDuration = flagDuration
	}
	sink := engine.NewChannelSink(256)
	opts.Sink = sink

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := engine.New(opts)
	go steer(runner, drive, scriptStep)
	go report(logger, sink, runner.Done())

	if flagPlay != "" {
		go callPlay(ctx, logger, runner, playbook.ID(flagPlay))
	}

	res, err := runner.Run(ctx)
	if err != nil && res.Reason != engine.EndCanceled {
		return fmt.Errorf("simulate: %w", err)
	}

	fmt.Printf("Final score  HOME %d - AWAY %d  (%s after %d frames, match %s)\n",
		res.Score.Home, res.Score.Away, res.Reason, res.Frames, res.MatchID)
	return nil
}

// steer feeds the script to the runner until the match ends.
func steer(r *engine.Runner, drive script, step time.Duration) {
	ticker := time.NewTicker(step)
	defer ticker.Stop()

	n := 0
	r.SetInput(drive(n))
	for {
		select {
		case <-ticker.C:
			n++
			r.SetInput(drive(n))
		case <-r.Done():
			return
		}
	}
}

// report logs scoring events as they arrive.
func report(logger *log.Logger, sink *engine.ChannelSink, done <-chan struct{}) {
	for {
		select {
		case evt := <-sink.Events():
			switch e := evt.(type) {
			case engine.ScoreEvent:
				logger.Debug("scoreboard", "event", e.Event, "home", e.Score.Home, "away", e.Score.Away, "frame", e.Frame)
			case engine.ClockEvent:
				if e.Remaining%60 == 0 {
					logger.Info("clock", "remaining", football.FormatClock(e.Remaining))
				}
			}
		case <-done:
			return
		}
	}
}

func callPlay(ctx context.Context, logger *log.Logger, r *engine.Runner, id playbook.ID) {
	if err := r.SelectPlay(ctx, id); err != nil {
		logger.Warn("play not called", "play", id, "error", err)
	}
}
