// breakout is a terminal Breakout game with synthesized sound effects.
//
// Usage:
//
//	breakout                 - Play the game (same as "breakout play")
//	breakout play            - Play the game
//	breakout sfx [cue...]    - Play sound effects to check the audio device
//	breakout config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: from config, 60)
//	--config <path>    - Use a custom config YAML
//	--mute             - Disable sound
//	--volume <0-100>   - Set volume
//	--log-file <path>  - Write logs to a file
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagConfig  string
	flagMute    bool
	flagVolume  int
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - break bricks in your terminal",
	Long: `Breakout is a terminal version of the classic brick breaker with
procedurally synthesized sound effects.

Available commands:
  play     - Play the game (default)
  sfx      - Play sound effects
  config   - Print the effective configuration

Examples:
  breakout
  breakout play --fps 30
  breakout --mute
  breakout sfx paddle_hit brick_hit
  breakout config > ~/.breakout/config.yaml`,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	rootCmd.PersistentFlags().IntVar(&flagVolume, "volume", -1, "Volume 0-100 (-1 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(sfxCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies command line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	if flagVolume >= 0 {
		if flagVolume > 100 {
			return cfg, fmt.Errorf("volume must be between 0 and 100, got %d", flagVolume)
		}
		cfg.Audio.Volume = float64(flagVolume) / 100
	}
	return cfg, nil
}

// newLogger creates the program logger. Logs go to --log-file when set and to
// fallback otherwise; pass io.Discard when the terminal belongs to the UI.
// The returned function closes the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", flagLogFile, err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
