// Package breakout implements the Breakout simulation: paddle inertia, ball
// reflection and brick collisions in a fixed world, rendered onto a
// terminal-sized screen.
package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/synth"
)

// Visual characters for rendering
const (
	PaddleChar = '▀'
	BallChar   = '●'
	BrickChar  = '█'
)

// StepResult reports the effects of one frame.
type StepResult struct {
	Sounds   []synth.Cue
	Points   int
	Score    int
	GameOver bool
}

// Game is one Breakout session. It owns the paddle, ball, bricks and score.
type Game struct {
	cfg config.Config

	paddle *Paddle
	ball   *Ball
	bricks *BrickSet

	score     int
	destroyed int
	tick      int
	over      bool
}

// NewGame creates a session ready to play.
func NewGame(cfg config.Config) *Game {
	g := &Game{cfg: cfg}
	g.Reset()
	return g
}

// Reset starts a fresh session: centered paddle and ball, full grid, score 0.
func (g *Game) Reset() {
	g.paddle = NewPaddle(g.cfg.Paddle, g.cfg.World)
	g.ball = NewBall(g.cfg.Ball, g.cfg.World)
	g.bricks = NewGrid(g.cfg.Bricks, g.cfg.World)
	g.score = 0
	g.destroyed = 0
	g.tick = 0
	g.over = false
}

// Step advances the session by one frame. Once the ball has fallen through,
// further steps do nothing.
func (g *Game) Step(intent Intent) StepResult {
	if g.over {
		return StepResult{Score: g.score, GameOver: true}
	}

	g.tick++

	g.paddle.Move(intent)
	g.ball.Move()

	out := Resolve(g.ball, PaddleRef{Paddle: g.paddle}, g.bricks, g.arena())
	g.score += out.Points
	g.destroyed += out.BricksDestroyed
	g.over = out.FellThrough

	return StepResult{
		Sounds:   out.Sounds,
		Points:   out.Points,
		Score:    g.score,
		GameOver: g.over,
	}
}

func (g *Game) arena() Arena {
	return Arena{
		Width:       g.cfg.World.Width,
		Height:      g.cfg.World.Height,
		BrickPoints: g.cfg.Scoring.BrickPoints,
	}
}

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// BricksDestroyed returns the number of bricks destroyed this session.
func (g *Game) BricksDestroyed() int { return g.destroyed }

// BricksLeft returns the number of standing bricks.
func (g *Game) BricksLeft() int { return g.bricks.Len() }

// Tick returns the number of frames played.
func (g *Game) Tick() int { return g.tick }

// Over reports whether the ball has fallen through.
func (g *Game) Over() bool { return g.over }

// Render draws the session onto dst, scaling the world to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	rt := core.RuntimeConfig{ScreenW: dst.Width(), ScreenH: dst.Height()}
	if rt.TooSmall() {
		RenderTooSmall(dst)
		return
	}

	g.renderBricks(dst)
	g.renderPaddle(dst)
	g.renderBall(dst)
	g.renderHUD(dst)
}

// RenderTooSmall draws the undersized-terminal notice.
func RenderTooSmall(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorWhite)
	dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", core.MinScreenW, core.MinScreenH), core.ColorGray)
}

func (g *Game) scale(r core.Rect, dst *core.Screen) core.Rect {
	return r.Scale(g.cfg.World.Width, g.cfg.World.Height, dst.Width(), dst.Height())
}

// renderHUD draws the score.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorWhite)
}

// renderBricks draws standing bricks, leaving a one-cell gap between
// horizontal neighbours when there is room.
func (g *Game) renderBricks(dst *core.Screen) {
	for _, b := range g.bricks.bricks {
		r := g.scale(b.Box, dst)
		if r.W > 1 {
			r.W--
		}
		color := core.ColorGreen
		if b.Tone == ToneHigh {
			color = core.ColorYellow
		}
		dst.DrawRect(r, BrickChar, color)
	}
}

// renderPaddle draws the player's paddle.
func (g *Game) renderPaddle(dst *core.Screen) {
	dst.DrawRect(g.scale(g.paddle.Box(), dst), PaddleChar, core.ColorWhite)
}

// renderBall draws the ball.
func (g *Game) renderBall(dst *core.Screen) {
	cx, cy := g.scale(g.ball.Box(), dst).Center()
	radius := g.ball.Radius * dst.Height() / g.cfg.World.Height
	dst.DrawCircle(cx, cy, radius, BallChar, core.ColorRed)
}
