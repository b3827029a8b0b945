// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
)

// Config contains all tunables of the game. Distances are world units and
// speeds are world units per frame.
type Config struct {
	TickRate int           `yaml:"tick_rate"`
	World    WorldConfig   `yaml:"world"`
	Paddle   PaddleConfig  `yaml:"paddle"`
	Ball     BallConfig    `yaml:"ball"`
	Bricks   BricksConfig  `yaml:"bricks"`
	Scoring  ScoringConfig `yaml:"scoring"`
	Sounds   SoundsConfig  `yaml:"sounds"`
	Audio    AudioConfig   `yaml:"audio"`
	Input    InputConfig   `yaml:"input"`
}

// WorldConfig defines the logical playfield the simulation runs in.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PaddleConfig defines paddle size and inertia.
type PaddleConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	BottomOffset  int     `yaml:"bottom_offset"`  // Distance from the bottom edge to the paddle top
	Speed         float64 `yaml:"speed"`          // Speed set while a direction is held
	Friction      float64 `yaml:"friction"`       // Speed multiplier per frame without input
	StopThreshold float64 `yaml:"stop_threshold"` // Below this magnitude speed snaps to zero
}

// BallConfig defines ball size and launch velocity.
type BallConfig struct {
	Radius int     `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // Magnitude of each velocity component
}

// BricksConfig defines the brick grid layout.
type BricksConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	Rows      int `yaml:"rows"`
	TopOffset int `yaml:"top_offset"`
	HighRows  int `yaml:"high_rows"` // Rows drawn in the "high" color
}

// ScoringConfig defines points awarded.
type ScoringConfig struct {
	BrickPoints int `yaml:"brick_points"`
}

// SoundConfig describes one synthesized sound effect.
type SoundConfig struct {
	Wave      string  `yaml:"wave"` // "tone" or "impact"
	Frequency float64 `yaml:"frequency"`
	Duration  float64 `yaml:"duration"` // Seconds
	Amplitude float64 `yaml:"amplitude"`
}

// SoundsConfig maps each game sound cue to its synthesis parameters.
type SoundsConfig struct {
	WallBounce SoundConfig `yaml:"wall_bounce"`
	PaddleHit  SoundConfig `yaml:"paddle_hit"`
	BrickHit   SoundConfig `yaml:"brick_hit"`
	GameOver   SoundConfig `yaml:"game_over"`
}

// AudioConfig controls the playback backend.
type AudioConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Volume   float64 `yaml:"volume"`    // 0.0 - 1.0
	BufferMS int     `yaml:"buffer_ms"` // Speaker buffer length
}

// InputConfig controls how terminal key presses become held directions.
type InputConfig struct {
	// HoldFrames is how many frames a direction key stays held after its last
	// press or auto-repeat. Terminals report no key releases.
	HoldFrames int `yaml:"hold_frames"`
}

// Wave names accepted in SoundConfig.
const (
	WaveTone   = "tone"
	WaveImpact = "impact"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	switch {
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidConfig, c.TickRate)
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world must have positive size, got %dx%d", ErrInvalidConfig, c.World.Width, c.World.Height)
	case c.Paddle.Width <= 0 || c.Paddle.Width > c.World.Width:
		return fmt.Errorf("%w: paddle width %d does not fit world width %d", ErrInvalidConfig, c.Paddle.Width, c.World.Width)
	case c.Paddle.Friction < 0 || c.Paddle.Friction >= 1:
		return fmt.Errorf("%w: paddle friction must be in [0, 1), got %g", ErrInvalidConfig, c.Paddle.Friction)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball radius must be positive, got %d", ErrInvalidConfig, c.Ball.Radius)
	case c.Bricks.Width <= 0 || c.Bricks.Height <= 0:
		return fmt.Errorf("%w: bricks must have positive size, got %dx%d", ErrInvalidConfig, c.Bricks.Width, c.Bricks.Height)
	case c.Bricks.Rows < 0:
		return fmt.Errorf("%w: bricks.rows must not be negative, got %d", ErrInvalidConfig, c.Bricks.Rows)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio volume must be in [0, 1], got %g", ErrInvalidConfig, c.Audio.Volume)
	}

	for name, s := range map[string]SoundConfig{
		"wall_bounce": c.Sounds.WallBounce,
		"paddle_hit":  c.Sounds.PaddleHit,
		"brick_hit":   c.Sounds.BrickHit,
		"game_over":   c.Sounds.GameOver,
	} {
		if s.Wave != WaveTone && s.Wave != WaveImpact {
			return fmt.Errorf("%w: sounds.%s.wave must be %q or %q, got %q", ErrInvalidConfig, name, WaveTone, WaveImpact, s.Wave)
		}
	}
	return nil
}
