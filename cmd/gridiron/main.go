// gridiron is a terminal football match: steer the runner past a pursuing
// defender to the goal line before the clock runs out.
//
// Usage:
//
//	gridiron play       - Play a match in this terminal
//	gridiron plays      - List the playbook
//	gridiron simulate   - Run a headless scripted match
//	gridiron serve      - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--config <path>       - Match config YAML
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridiron/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridiron",
	Short: "Gridiron - a football match in your terminal",
	Long: `Gridiron is a minimal real-time football match for the terminal.

Steer the runner toward the goal line while the defender closes in.
A touchdown scores 7 for HOME, a tackle scores 7 for AWAY, and the
match ends when the clock reaches 0:00.

Available commands:
  play      - Play a match in this terminal
  plays     - List the playbook
  simulate  - Run a headless scripted match
  serve     - Start SSH server for remote play

Examples:
  gridiron play
  gridiron play --config ./football.yaml
  gridiron simulate --script zigzag --clock-interval 10ms
  gridiron serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to match config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(playsCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the match config named by --config.
func loadConfig() (config.FootballConfig, error) {
	cfg, err := config.LoadFootball(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the logger for a command. Without --log-file, fallback
// receives the logs; full-screen commands pass io.Discard.
// The returned close function must be called when the command ends.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", openErr)
		}
		w = f
		//nolint:errcheck // Best-effort close at exit
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}
