package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickRate: 60,
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:         100,
			Height:        10,
			BottomOffset:  50,
			Speed:         8,
			Friction:      0.85,
			StopThreshold: 0.1,
		},
		Ball: BallConfig{
			Radius: 10,
			Speed:  5,
		},
		Bricks: BricksConfig{
			Width:     75,
			Height:    20,
			Rows:      5,
			TopOffset: 50,
			HighRows:  2,
		},
		Scoring: ScoringConfig{
			BrickPoints: 10,
		},
		Sounds: SoundsConfig{
			WallBounce: SoundConfig{Wave: WaveTone, Frequency: 440, Duration: 0.1, Amplitude: 0.5},
			PaddleHit:  SoundConfig{Wave: WaveImpact, Frequency: 600, Duration: 0.1, Amplitude: 0.5},
			BrickHit:   SoundConfig{Wave: WaveImpact, Frequency: 300, Duration: 0.05, Amplitude: 0.5},
			GameOver:   SoundConfig{Wave: WaveTone, Frequency: 220, Duration: 0.5, Amplitude: 0.5},
		},
		Audio: AudioConfig{
			Enabled:  true,
			Volume:   1.0,
			BufferMS: 100,
		},
		Input: InputConfig{
			HoldFrames: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
