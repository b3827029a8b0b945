package breakout

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/synth"
)

func newTestGame() *Game {
	return NewGame(config.Default())
}

func defaultArena() Arena {
	return Arena{Width: 800, Height: 600, BrickPoints: 10}
}

func TestGameDeterminism(t *testing.T) {
	// Same inputs must produce identical sessions
	inputs := make([]Intent, 600)
	for i := range inputs {
		switch {
		case i%7 < 3:
			inputs[i] = IntentRight
		case i%11 < 4:
			inputs[i] = IntentLeft
		}
	}

	run := func() Snapshot {
		g := newTestGame()
		for _, in := range inputs {
			if g.Step(in).GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
}

func TestSnapshotHashChanges(t *testing.T) {
	g := newTestGame()
	before := g.Snapshot()
	g.Step(IntentRight)
	after := g.Snapshot()

	if before.Hash() == after.Hash() {
		t.Error("hash should change after a step")
	}
}

func TestNewGameInitialState(t *testing.T) {
	g := newTestGame()

	if g.paddle.X != 350 || g.paddle.Y != 550 {
		t.Errorf("paddle at (%g, %d), expected (350, 550)", g.paddle.X, g.paddle.Y)
	}
	if g.paddle.Speed != 0 {
		t.Errorf("paddle speed = %g, expected 0", g.paddle.Speed)
	}
	if g.ball.X != 400 || g.ball.Y != 300 {
		t.Errorf("ball at (%g, %g), expected (400, 300)", g.ball.X, g.ball.Y)
	}
	if g.ball.VX != 5 || g.ball.VY != -5 {
		t.Errorf("ball velocity (%g, %g), expected (5, -5)", g.ball.VX, g.ball.VY)
	}
	if g.BricksLeft() != 50 {
		t.Errorf("bricks = %d, expected 50", g.BricksLeft())
	}
	if g.Score() != 0 || g.Over() {
		t.Error("new game should have score 0 and not be over")
	}
}

func TestBallFreeFlight(t *testing.T) {
	ball := &Ball{X: 400, Y: 300, VX: 5, VY: -5, Radius: 10}
	ball.Move()
	out := Resolve(ball, NoPaddle{}, NewBrickSet(nil), defaultArena())

	if ball.X != 405 || ball.Y != 295 {
		t.Errorf("ball at (%g, %g), expected (405, 295)", ball.X, ball.Y)
	}
	if ball.VX != 5 || ball.VY != -5 {
		t.Errorf("velocity changed to (%g, %g)", ball.VX, ball.VY)
	}
	if len(out.Sounds) != 0 || out.Points != 0 || out.FellThrough {
		t.Errorf("unexpected outcome %+v", out)
	}
}

func TestCeilingBounce(t *testing.T) {
	ball := &Ball{X: 400, Y: 15, VX: 5, VY: -5, Radius: 10}
	ball.Move()
	out := Resolve(ball, NoPaddle{}, NewBrickSet(nil), defaultArena())

	if ball.VX != 5 || ball.VY != 5 {
		t.Errorf("velocity = (%g, %g), expected (5, 5)", ball.VX, ball.VY)
	}
	if len(out.Sounds) != 1 || out.Sounds[0] != synth.WallBounce {
		t.Fatalf("sounds = %v, expected [wall_bounce]", out.Sounds)
	}

	voice := synth.DefaultTable().Voice(out.Sounds[0])
	if voice.Wave != config.WaveTone || voice.Frequency != 440 || voice.Duration != 0.1 || voice.Amplitude != 0.5 {
		t.Errorf("wall bounce voice = %+v", voice)
	}
}

func TestWallBounces(t *testing.T) {
	tests := []struct {
		name       string
		ball       Ball
		wantVX     float64
		wantVY     float64
		wantSounds int
	}{
		{"left wall", Ball{X: 15, Y: 300, VX: -5, VY: 5, Radius: 10}, 5, 5, 1},
		{"right wall", Ball{X: 785, Y: 300, VX: 5, VY: 5, Radius: 10}, -5, 5, 1},
		{"corner", Ball{X: 15, Y: 15, VX: -5, VY: -5, Radius: 10}, 5, 5, 2},
		{"clear", Ball{X: 100, Y: 300, VX: -5, VY: 5, Radius: 10}, -5, 5, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ball := tc.ball
			ball.Move()
			out := Resolve(&ball, NoPaddle{}, NewBrickSet(nil), defaultArena())

			if ball.VX != tc.wantVX || ball.VY != tc.wantVY {
				t.Errorf("velocity = (%g, %g), expected (%g, %g)", ball.VX, ball.VY, tc.wantVX, tc.wantVY)
			}
			if len(out.Sounds) != tc.wantSounds {
				t.Errorf("got %d sounds, expected %d", len(out.Sounds), tc.wantSounds)
			}
			for _, s := range out.Sounds {
				if s != synth.WallBounce {
					t.Errorf("unexpected sound %s", s)
				}
			}
		})
	}
}

func TestPaddleContact(t *testing.T) {
	cfg := config.Default()
	paddle := NewPaddle(cfg.Paddle, cfg.World)

	ball := &Ball{X: 400, Y: 540, VX: 5, VY: 5, Radius: 10}
	ball.Move()
	out := Resolve(ball, PaddleRef{Paddle: paddle}, NewBrickSet(nil), defaultArena())

	if ball.VY != -5 || ball.VX != 5 {
		t.Errorf("velocity = (%g, %g), expected (5, -5)", ball.VX, ball.VY)
	}
	if len(out.Sounds) != 1 || out.Sounds[0] != synth.PaddleHit {
		t.Errorf("sounds = %v, expected [paddle_hit]", out.Sounds)
	}

	// Same overlap without a paddle
	ball = &Ball{X: 405, Y: 545, VX: 5, VY: 5, Radius: 10}
	out = Resolve(ball, NoPaddle{}, NewBrickSet(nil), defaultArena())
	if ball.VY != 5 || len(out.Sounds) != 0 {
		t.Error("NoPaddle should skip the paddle check")
	}

	out = Resolve(ball, PaddleRef{}, NewBrickSet(nil), defaultArena())
	if len(out.Sounds) != 0 {
		t.Error("empty PaddleRef should behave like NoPaddle")
	}
}

func TestBrickHitsProcessedOnce(t *testing.T) {
	cfg := config.Default()
	bricks := NewGrid(cfg.Bricks, cfg.World)

	// Straddles row 4, columns 1 and 2
	ball := &Ball{X: 150, Y: 140, VX: 5, VY: -5, Radius: 10}
	out := Resolve(ball, NoPaddle{}, bricks, defaultArena())

	if out.BricksDestroyed != 2 || out.Points != 20 {
		t.Errorf("destroyed %d for %d points, expected 2 for 20", out.BricksDestroyed, out.Points)
	}
	if bricks.Len() != 48 {
		t.Errorf("bricks left = %d, expected 48", bricks.Len())
	}
	// Two flips cancel
	if ball.VY != -5 {
		t.Errorf("VY = %g, expected -5 after two flips", ball.VY)
	}
	if len(out.Sounds) != 2 || out.Sounds[0] != synth.BrickHit || out.Sounds[1] != synth.BrickHit {
		t.Errorf("sounds = %v, expected two brick hits", out.Sounds)
	}

	// Destroyed bricks never collide again
	out = Resolve(ball, NoPaddle{}, bricks, defaultArena())
	if out.BricksDestroyed != 0 || out.Points != 0 {
		t.Errorf("removed bricks collided again: %+v", out)
	}
}

func TestDestroyThreeBricks(t *testing.T) {
	g := newTestGame()

	// Centers of row 4 bricks in columns 0, 3 and 6
	targets := [][2]float64{{37.5, 140}, {262.5, 140}, {487.5, 140}}
	for i, c := range targets {
		g.ball.X = c[0] - g.ball.VX
		g.ball.Y = c[1] - g.ball.VY
		res := g.Step(IntentNone)

		if res.Points != 10 {
			t.Errorf("hit %d scored %d, expected 10", i, res.Points)
		}
		if len(res.Sounds) != 1 || res.Sounds[0] != synth.BrickHit {
			t.Errorf("hit %d sounds = %v", i, res.Sounds)
		}
	}

	if g.Score() != 30 {
		t.Errorf("score = %d, expected 30", g.Score())
	}
	if g.BricksLeft() != 47 {
		t.Errorf("bricks left = %d, expected 47", g.BricksLeft())
	}
	if g.Score() != g.cfg.Scoring.BrickPoints*g.BricksDestroyed() {
		t.Errorf("score %d does not match %d destroyed bricks", g.Score(), g.BricksDestroyed())
	}
}

func TestFallThroughEndsGame(t *testing.T) {
	g := newTestGame()
	g.score = 30
	g.ball.X, g.ball.Y = 400, 585
	g.ball.VX, g.ball.VY = 5, 5

	res := g.Step(IntentNone)
	if !res.GameOver || !g.Over() {
		t.Fatal("ball past the bottom edge should end the game")
	}
	if res.Score != 30 {
		t.Errorf("final score = %d, expected 30", res.Score)
	}
	if len(res.Sounds) != 1 || res.Sounds[0] != synth.GameOver {
		t.Fatalf("sounds = %v, expected [game_over]", res.Sounds)
	}

	voice := synth.DefaultTable().Voice(synth.GameOver)
	if voice.Frequency != 220 || voice.Duration != 0.5 || voice.Amplitude != 0.5 {
		t.Errorf("game over voice = %+v", voice)
	}

	// Finished sessions stay put
	snap := g.Snapshot()
	res = g.Step(IntentRight)
	if len(res.Sounds) != 0 || !res.GameOver {
		t.Error("step after game over should be inert")
	}
	after := g.Snapshot()
	if snap.Hash() != after.Hash() {
		t.Error("state changed after game over")
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame()
	for i := 0; i < 200; i++ {
		g.Step(IntentRight)
	}
	g.score = 120
	g.over = true

	g.Reset()

	if g.Score() != 0 || g.Over() || g.Tick() != 0 {
		t.Errorf("reset left score=%d over=%v tick=%d", g.Score(), g.Over(), g.Tick())
	}
	if g.BricksLeft() != 50 {
		t.Errorf("bricks = %d, expected 50", g.BricksLeft())
	}
	if g.ball.X != 400 || g.ball.Y != 300 || g.ball.VX != 5 || g.ball.VY != -5 {
		t.Errorf("ball not reset: %+v", *g.ball)
	}
	if g.paddle.X != 350 || g.paddle.Speed != 0 {
		t.Errorf("paddle not reset: X=%g speed=%g", g.paddle.X, g.paddle.Speed)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame()
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(rowText(screen, 0), "Score: 0") {
		t.Errorf("HUD row = %q", rowText(screen, 0))
	}

	yellow, green := 0, 0
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			cell := screen.GetCell(x, y)
			if cell.Rune != BrickChar {
				continue
			}
			switch cell.Color {
			case core.ColorYellow:
				yellow++
			case core.ColorGreen:
				green++
			}
		}
	}
	if yellow == 0 || green == 0 {
		t.Errorf("expected both brick tones, got yellow=%d green=%d", yellow, green)
	}

	// Paddle row 550/600 of 24 rows
	if !strings.ContainsRune(rowText(screen, 22), PaddleChar) {
		t.Errorf("paddle missing from row 22: %q", rowText(screen, 22))
	}
	if cell := screen.GetCell(40, 11); cell.Rune != BallChar || cell.Color != core.ColorRed {
		t.Errorf("ball cell = %+v", cell)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame()
	screen := core.NewScreen(30, 10)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("undersized screen should show a notice")
	}
}

func rowText(s *core.Screen, y int) string {
	return strings.Split(s.String(), "\n")[y]
}
