package synth

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

// Cue identifies a sound event raised by the game.
type Cue int

const (
	WallBounce Cue = iota
	PaddleHit
	BrickHit
	GameOver

	cueCount
)

var cueNames = [cueCount]string{
	WallBounce: "wall_bounce",
	PaddleHit:  "paddle_hit",
	BrickHit:   "brick_hit",
	GameOver:   "game_over",
}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return fmt.Sprintf("cue(%d)", int(c))
	}
	return cueNames[c]
}

// AllCues returns every cue in declaration order.
func AllCues() []Cue {
	cues := make([]Cue, 0, cueCount)
	for c := Cue(0); c < cueCount; c++ {
		cues = append(cues, c)
	}
	return cues
}

// ParseCue resolves a cue by name. Dashes and case are ignored.
func ParseCue(name string) (Cue, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for c, n := range cueNames {
		if n == key {
			return Cue(c), nil
		}
	}
	return 0, fmt.Errorf("synth: unknown cue %q", name)
}

// Voice holds the synthesis parameters of one cue.
type Voice struct {
	Wave      string
	Frequency float64
	Duration  float64
	Amplitude float64
}

// Render synthesizes the voice.
func (v Voice) Render() []float64 {
	if v.Wave == config.WaveImpact {
		return GenerateImpact(v.Frequency, v.Duration, v.Amplitude)
	}
	return GenerateTone(v.Frequency, v.Duration, v.Amplitude)
}

// Table maps each cue to its voice.
type Table [cueCount]Voice

// NewTable builds the cue table from configuration.
func NewTable(cfg config.SoundsConfig) Table {
	var t Table
	t[WallBounce] = voiceFrom(cfg.WallBounce)
	t[PaddleHit] = voiceFrom(cfg.PaddleHit)
	t[BrickHit] = voiceFrom(cfg.BrickHit)
	t[GameOver] = voiceFrom(cfg.GameOver)
	return t
}

// DefaultTable returns the built-in cue table.
func DefaultTable() Table {
	return NewTable(config.Default().Sounds)
}

// Voice returns the voice for c, or a zero voice for unknown cues.
func (t Table) Voice(c Cue) Voice {
	if c < 0 || c >= cueCount {
		return Voice{}
	}
	return t[c]
}

func voiceFrom(s config.SoundConfig) Voice {
	return Voice{
		Wave:      s.Wave,
		Frequency: s.Frequency,
		Duration:  s.Duration,
		Amplitude: s.Amplitude,
	}
}
