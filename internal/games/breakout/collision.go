package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/synth"
)

// PaddleContact is the paddle argument of Resolve: either NoPaddle or a
// PaddleRef.
type PaddleContact interface {
	paddleBox() (core.Rect, bool)
}

// NoPaddle skips the paddle check.
type NoPaddle struct{}

func (NoPaddle) paddleBox() (core.Rect, bool) { return core.Rect{}, false }

// PaddleRef checks the ball against Paddle.
type PaddleRef struct {
	Paddle *Paddle
}

func (r PaddleRef) paddleBox() (core.Rect, bool) {
	if r.Paddle == nil {
		return core.Rect{}, false
	}
	return r.Paddle.Box(), true
}

// Arena is what Resolve needs to know about the playfield.
type Arena struct {
	Width       int
	Height      int
	BrickPoints int
}

// Outcome reports what happened in one collision pass.
type Outcome struct {
	Sounds          []synth.Cue // In emission order
	Points          int
	BricksDestroyed int
	FellThrough     bool
}

// Resolve runs the collision checks for one frame, after movement:
// walls, paddle, bricks, then the bottom edge. It reflects the ball in place
// and removes destroyed bricks. Positions are never corrected.
func Resolve(ball *Ball, paddle PaddleContact, bricks *BrickSet, arena Arena) Outcome {
	var out Outcome

	// Walls and ceiling
	if ball.Top() <= 0 {
		ball.BounceY()
		out.Sounds = append(out.Sounds, synth.WallBounce)
	}
	if ball.Left() <= 0 || ball.Right() >= float64(arena.Width) {
		ball.BounceX()
		out.Sounds = append(out.Sounds, synth.WallBounce)
	}

	box := ball.Box()

	// Paddle
	if paddle == nil {
		paddle = NoPaddle{}
	}
	if pbox, ok := paddle.paddleBox(); ok && box.Intersects(pbox) {
		ball.BounceY()
		out.Sounds = append(out.Sounds, synth.PaddleHit)
	}

	// Bricks: every overlapping brick in the pre-pass set counts once
	if bricks != nil {
		hits := bricks.Overlapping(box)
		for range hits {
			ball.BounceY()
			out.Points += arena.BrickPoints
			out.Sounds = append(out.Sounds, synth.BrickHit)
		}
		out.BricksDestroyed = bricks.Remove(hits)
	}

	// Fall-through
	if ball.Bottom() >= float64(arena.Height) {
		out.FellThrough = true
		out.Sounds = append(out.Sounds, synth.GameOver)
	}

	return out
}
