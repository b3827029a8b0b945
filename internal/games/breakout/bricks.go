package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Tone is the color class of a brick.
type Tone int

const (
	ToneHigh Tone = iota // Top rows
	ToneLow
)

// Brick is a single destructible brick.
type Brick struct {
	Box  core.Rect
	Tone Tone
}

// BrickSet holds the bricks still standing, in row-major order with the top
// row first. Removal keeps the order of the survivors.
type BrickSet struct {
	bricks []Brick
}

// NewGrid lays out rows of bricks across the world width, starting
// cfg.TopOffset units below the top edge.
func NewGrid(cfg config.BricksConfig, world config.WorldConfig) *BrickSet {
	cols := 0
	if cfg.Width > 0 {
		cols = world.Width / cfg.Width
	}

	set := &BrickSet{bricks: make([]Brick, 0, cfg.Rows*cols)}
	for row := 0; row < cfg.Rows; row++ {
		tone := ToneLow
		if row < cfg.HighRows {
			tone = ToneHigh
		}
		for col := 0; col < cols; col++ {
			set.bricks = append(set.bricks, Brick{
				Box:  core.NewRect(col*cfg.Width, row*cfg.Height+cfg.TopOffset, cfg.Width, cfg.Height),
				Tone: tone,
			})
		}
	}
	return set
}

// NewBrickSet wraps an explicit list of bricks.
func NewBrickSet(bricks []Brick) *BrickSet {
	return &BrickSet{bricks: append([]Brick(nil), bricks...)}
}

// Len returns the number of standing bricks.
func (s *BrickSet) Len() int {
	return len(s.bricks)
}

// All returns a snapshot of the standing bricks.
func (s *BrickSet) All() []Brick {
	return append([]Brick(nil), s.bricks...)
}

// Overlapping returns the indices of bricks intersecting box, in order.
func (s *BrickSet) Overlapping(box core.Rect) []int {
	var hits []int
	for i, b := range s.bricks {
		if b.Box.Intersects(box) {
			hits = append(hits, i)
		}
	}
	return hits
}

// Remove deletes the bricks at the given indices in one compaction pass.
// Indices refer to the set as it was before the call; duplicates and
// out-of-range indices are ignored. Returns the number removed.
func (s *BrickSet) Remove(indices []int) int {
	if len(indices) == 0 {
		return 0
	}

	marked := make([]bool, len(s.bricks))
	for _, i := range indices {
		if i >= 0 && i < len(marked) {
			marked[i] = true
		}
	}

	kept := s.bricks[:0]
	removed := 0
	for i, b := range s.bricks {
		if marked[i] {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	clear(s.bricks[len(kept):])
	s.bricks = kept
	return removed
}
