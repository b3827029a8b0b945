package core

// RuntimeConfig describes the terminal the game is presented on.
// The simulation itself runs in world units and never reads it.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// MinScreenW and MinScreenH are the smallest terminal the game renders into.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// TooSmall reports whether the terminal is below the playable size.
func (c RuntimeConfig) TooSmall() bool {
	return c.ScreenW < MinScreenW || c.ScreenH < MinScreenH
}
