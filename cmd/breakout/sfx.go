package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/synth"
)

var sfxCmd = &cobra.Command{
	Use:   "sfx [cue...]",
	Short: "Play sound effects",
	Long: `Synthesize and play sound effects one after another, waiting for each
to finish. Plays every cue when none is given.

Cues: wall_bounce, paddle_hit, brick_hit, game_over

Examples:
  breakout sfx
  breakout sfx brick_hit game_over --volume 50`,
	RunE: runSfx,
}

func runSfx(_ *cobra.Command, args []string) error {
	cues := synth.AllCues()
	if len(args) > 0 {
		cues = cues[:0]
		for _, arg := range args {
			cue, err := synth.ParseCue(arg)
			if err != nil {
				return err
			}
			cues = append(cues, cue)
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.Audio.Enabled {
		return errors.New("audio is disabled")
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	player := audio.NewSpeakerPlayer(cfg.Audio, logger)
	if err := player.Start(); err != nil {
		return fmt.Errorf("failed to start audio: %w", err)
	}
	defer player.Close()

	if player.Silent() {
		return errors.New("no audio device available")
	}

	table := synth.NewTable(cfg.Sounds)
	cache := synth.NewCache(table)

	for _, cue := range cues {
		voice := table.Voice(cue)
		fmt.Printf("%-12s %-6s %6.0f Hz  %.2fs\n", cue, voice.Wave, voice.Frequency, voice.Duration)

		timeout := time.Duration(voice.Duration*float64(time.Second)) + time.Second
		select {
		case <-player.PlayDone(cache.Get(cue)):
		case <-time.After(timeout):
			logger.Warn("playback did not finish", "cue", cue)
		}
	}
	return nil
}
