package breakout

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Snapshot contains the complete session state.
// Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick            int
	PaddleX         float64
	PaddleSpeed     float64
	BallX, BallY    float64
	BallVX, BallVY  float64
	Score           int
	BricksDestroyed int
	Over            bool

	// Standing bricks, each 5 ints: X, Y, W, H, Tone
	BrickData []int
}

// Snapshot returns the current session state.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]int, 0, g.bricks.Len()*5)
	for _, b := range g.bricks.bricks {
		brickData = append(brickData, b.Box.X, b.Box.Y, b.Box.W, b.Box.H, int(b.Tone))
	}

	return Snapshot{
		Tick:            g.tick,
		PaddleX:         g.paddle.X,
		PaddleSpeed:     g.paddle.Speed,
		BallX:           g.ball.X,
		BallY:           g.ball.Y,
		BallVX:          g.ball.VX,
		BallVY:          g.ball.VY,
		Score:           g.score,
		BricksDestroyed: g.destroyed,
		Over:            g.over,
		BrickData:       brickData,
	}
}

// Hash returns an xxhash digest of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	buf := make([]byte, 0, 8*(10+len(snap.BrickData)))
	putInt := func(v int) { buf = binary.LittleEndian.AppendUint64(buf, uint64(v)) } //#nosec G115 -- hash computation
	putFloat := func(v float64) { buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v)) }

	putInt(snap.Tick)
	putFloat(snap.PaddleX)
	putFloat(snap.PaddleSpeed)
	putFloat(snap.BallX)
	putFloat(snap.BallY)
	putFloat(snap.BallVX)
	putFloat(snap.BallVY)
	putInt(snap.Score)
	putInt(snap.BricksDestroyed)
	if snap.Over {
		putInt(1)
	} else {
		putInt(0)
	}
	for _, v := range snap.BrickData {
		putInt(v)
	}

	return xxhash.Sum64(buf)
}
