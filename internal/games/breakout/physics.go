package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Intent is the paddle direction requested for one frame.
type Intent int

const (
	IntentNone Intent = iota
	IntentLeft
	IntentRight
)

func (i Intent) String() string {
	switch i {
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	default:
		return "none"
	}
}

// Paddle is the player's paddle. X is the left edge in world units.
type Paddle struct {
	X      float64
	Y      int
	Width  int
	Height int
	Speed  float64 // Signed, world units per frame

	push     float64 // Speed set while a direction is held
	friction float64
	stop     float64
	maxX     float64
}

// NewPaddle creates a paddle centered horizontally, bottomOffset units above
// the bottom of the world.
func NewPaddle(cfg config.PaddleConfig, world config.WorldConfig) *Paddle {
	return &Paddle{
		X:        float64(world.Width-cfg.Width) / 2,
		Y:        world.Height - cfg.BottomOffset,
		Width:    cfg.Width,
		Height:   cfg.Height,
		push:     cfg.Speed,
		friction: cfg.Friction,
		stop:     cfg.StopThreshold,
		maxX:     float64(world.Width - cfg.Width),
	}
}

// Move applies one frame of paddle motion.
// A held direction sets full speed unless the paddle already touches that
// edge; otherwise speed decays by friction and snaps to zero when tiny.
// Leaving the world clamps the paddle to the edge and stops it.
func (p *Paddle) Move(intent Intent) {
	switch {
	case intent == IntentLeft && p.X > 0:
		p.Speed = -p.push
	case intent == IntentRight && p.X < p.maxX:
		p.Speed = p.push
	default:
		p.Speed *= p.friction
		if math.Abs(p.Speed) < p.stop {
			p.Speed = 0
		}
	}

	next := p.X + p.Speed
	p.X = core.ClampF(next, 0, p.maxX)
	if p.X != next {
		p.Speed = 0
	}
}

// MaxX returns the largest valid left edge.
func (p *Paddle) MaxX() float64 {
	return p.maxX
}

// Box returns the paddle's collision box.
func (p *Paddle) Box() core.Rect {
	return core.NewRect(int(p.X), p.Y, p.Width, p.Height)
}

// Ball is the ball. X and Y are its center in world units.
type Ball struct {
	X, Y   float64
	VX, VY float64 // Velocity per frame
	Radius int
}

// NewBall creates a ball at the center of the world moving up and right.
func NewBall(cfg config.BallConfig, world config.WorldConfig) *Ball {
	return &Ball{
		X:      float64(world.Width) / 2,
		Y:      float64(world.Height) / 2,
		VX:     cfg.Speed,
		VY:     -cfg.Speed,
		Radius: cfg.Radius,
	}
}

// Move advances the ball by its velocity.
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.VX = -b.VX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.VY = -b.VY
}

// Edge positions of the ball's bounding box.
func (b *Ball) Left() float64   { return b.X - float64(b.Radius) }
func (b *Ball) Right() float64  { return b.X + float64(b.Radius) }
func (b *Ball) Top() float64    { return b.Y - float64(b.Radius) }
func (b *Ball) Bottom() float64 { return b.Y + float64(b.Radius) }

// Box returns the ball's collision box.
func (b *Ball) Box() core.Rect {
	d := 2 * b.Radius
	return core.NewRect(int(math.Floor(b.Left())), int(math.Floor(b.Top())), d, d)
}
