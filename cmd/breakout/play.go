package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/flow"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
	"github.com/vovakirdan/tui-breakout/internal/synth"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game at the main menu.

Controls:
  Menu:      Space/Enter play, C credits, Esc/Q quit
  Credits:   Esc/B back, Q quit
  Game:      Left/Right (h/l, a/d) move, Q/Ctrl+C quit
  Game over: Space/R play again, Esc/B main menu, Q quit
  Anywhere:  M toggles sound

Examples:
  breakout play
  breakout play --fps 30 --volume 40
  breakout play --config ./my-breakout.yaml --log-file breakout.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so logs only go to --log-file
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size before the first resize message
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	player := audio.NewSpeakerPlayer(cfg.Audio, logger)
	if err := player.Start(); err != nil {
		return fmt.Errorf("failed to start audio: %w", err)
	}
	defer player.Close()

	cache := synth.NewCache(synth.NewTable(cfg.Sounds))
	cache.Preload()

	opts := []flow.Option{
		flow.WithDispatcher(audio.NewDispatcher(cache, player, logger)),
		flow.WithMuter(player),
		flow.WithLogger(logger),
	}

	// The ledger only lives as long as this process
	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("could not open session ledger", "error", err)
	} else {
		defer store.Close()
		opts = append(opts, flow.WithLedger(store))
	}

	machine := flow.New(cfg, opts...)

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.TickRate,
	}

	logger.Info("starting", "screen", fmt.Sprintf("%dx%d", width, height), "fps", cfg.TickRate, "audio", !player.Silent() && !player.Muted())

	if err := tui.Run(machine, rt, cfg.Input.HoldFrames); err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}
