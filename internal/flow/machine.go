// Package flow runs the session state machine: menu, credits, play and
// game over. It owns the active game and decides what each frame does.
package flow

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/storage"
	"github.com/vovakirdan/tui-breakout/internal/synth"
)

// State is the active screen of the session.
type State int

const (
	StateMenu State = iota
	StateCredits
	StateGame
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateCredits:
		return "credits"
	case StateGame:
		return "game"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Screen texts
const (
	TitleText         = "Breakout"
	CreditsTitle      = "Credits"
	CreditsLine       = "Game made by [Your Name]"
	GameOverTitle     = "Game Over"
	PlayHint          = "Press SPACE to Play"
	CreditsHint       = "Press C for Credits"
	QuitHint          = "Press ESC to Quit"
	ReturnHint        = "Press ESC to return"
	PlayAgainHint     = "Press SPACE to Play Again"
	MainMenuHint      = "Press ESC for Main Menu"
	MutedLabel        = "[muted]"
	recentSessionsCap = 5
)

// panelWidth is the width of the frame drawn around the credits and game
// over texts.
const panelWidth = 31

// CueDispatcher plays sound cues. *audio.Dispatcher satisfies it.
type CueDispatcher interface {
	Dispatch(cues []synth.Cue)
}

// Muter toggles sound output. *audio.SpeakerPlayer satisfies it.
type Muter interface {
	SetMuted(muted bool)
	Muted() bool
}

// Ledger records finished sessions. *storage.Store satisfies it.
type Ledger interface {
	RecordSession(stats storage.SessionStats) (storage.SessionEntry, error)
	BestScore() (int, error)
	SessionCount() (int, error)
	RecentSessions(limit int) ([]storage.SessionEntry, error)
}

// Result reports what one frame did.
type Result struct {
	State  State
	Quit   bool
	Sounds []synth.Cue
}

// Machine is the session state machine.
type Machine struct {
	cfg    config.Config
	state  State
	game   *breakout.Game
	sounds CueDispatcher
	muter  Muter
	ledger Ledger
	logger *log.Logger

	finalScore int
	bestScore  int
	runNumber  int
	recent     []storage.SessionEntry
	quit       bool
}

// Option configures a Machine.
type Option func(*Machine)

// WithDispatcher routes sound cues to d.
func WithDispatcher(d CueDispatcher) Option {
	return func(m *Machine) { m.sounds = d }
}

// WithMuter lets the mute command toggle mu.
func WithMuter(mu Muter) Option {
	return func(m *Machine) { m.muter = mu }
}

// WithLedger records finished sessions in l.
func WithLedger(l Ledger) Option {
	return func(m *Machine) { m.ledger = l }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates a machine in the menu state.
func New(cfg config.Config, opts ...Option) *Machine {
	m := &Machine{
		cfg:    cfg,
		state:  StateMenu,
		game:   breakout.NewGame(cfg),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the active state.
func (m *Machine) State() State { return m.state }

// Quit reports whether the session has been terminated.
func (m *Machine) Quit() bool { return m.quit }

// Game returns the active game session.
func (m *Machine) Game() *breakout.Game { return m.game }

// FinalScore returns the score carried into the last game over.
func (m *Machine) FinalScore() int { return m.finalScore }

// BestScore returns the best score recorded this run.
func (m *Machine) BestScore() int { return m.bestScore }

// RunNumber returns the ledger position of the last finished session, or 0
// when it was not recorded.
func (m *Machine) RunNumber() int { return m.runNumber }

// Muted reports whether sound output is muted.
func (m *Machine) Muted() bool {
	return m.muter != nil && m.muter.Muted()
}

// RecentSessions returns the sessions shown on the game over screen,
// newest first.
func (m *Machine) RecentSessions() []storage.SessionEntry { return m.recent }

// Frame runs one frame: apply commands, step the active state, render into
// dst (when non-nil), then dispatch the frame's sound cues.
func (m *Machine) Frame(in core.InputFrame, dst *core.Screen) Result {
	res := m.step(in)
	if dst != nil && !res.Quit {
		m.Render(dst)
	}
	if len(res.Sounds) > 0 && m.sounds != nil {
		m.sounds.Dispatch(res.Sounds)
	}
	return res
}

func (m *Machine) step(in core.InputFrame) Result {
	if m.quit {
		return Result{State: m.state, Quit: true}
	}

	if in.Has(core.ActionQuit) {
		m.quit = true
		m.logger.Debug("quit", "state", m.state)
		return Result{State: m.state, Quit: true}
	}

	if in.Has(core.ActionMute) {
		m.toggleMute()
	}

	switch m.state {
	case StateMenu:
		switch {
		case in.Has(core.ActionStart):
			m.startGame()
		case in.Has(core.ActionCredits):
			m.transition(StateCredits)
		}

	case StateCredits:
		if in.Has(core.ActionBack) {
			m.transition(StateMenu)
		}

	case StateGame:
		step := m.game.Step(intentOf(in))
		if step.GameOver {
			m.endGame(step.Score)
		}
		return Result{State: m.state, Sounds: step.Sounds}

	case StateGameOver:
		switch {
		case in.Has(core.ActionRestart):
			m.startGame()
		case in.Has(core.ActionBack):
			m.transition(StateMenu)
		}
	}

	return Result{State: m.state}
}

func (m *Machine) transition(to State) {
	m.logger.Debug("state change", "from", m.state, "to", to)
	m.state = to
}

func (m *Machine) toggleMute() {
	if m.muter == nil {
		return
	}
	muted := !m.muter.Muted()
	m.muter.SetMuted(muted)
	m.logger.Info("sound toggled", "muted", muted)
}

func (m *Machine) startGame() {
	m.game.Reset()
	m.transition(StateGame)
}

// endGame carries the score into game over and records the session.
// Ledger failures are logged and otherwise ignored.
func (m *Machine) endGame(score int) {
	m.finalScore = score
	m.runNumber = 0
	m.transition(StateGameOver)
	m.logger.Info("game over", "score", score, "bricks", m.game.BricksDestroyed(), "frames", m.game.Tick())

	if score > m.bestScore {
		m.bestScore = score
	}
	if m.ledger == nil {
		return
	}

	entry, err := m.ledger.RecordSession(storage.SessionStats{
		Score:           score,
		BricksDestroyed: m.game.BricksDestroyed(),
		Frames:          m.game.Tick(),
	})
	if err != nil {
		m.logger.Warn("failed to record session", "error", err)
		return
	}
	m.logger.Debug("session recorded", "id", entry.ID)

	if best, err := m.ledger.BestScore(); err != nil {
		m.logger.Warn("failed to read best score", "error", err)
	} else {
		m.bestScore = best
	}

	if count, err := m.ledger.SessionCount(); err != nil {
		m.logger.Warn("failed to count sessions", "error", err)
	} else {
		m.runNumber = count
	}

	if recent, err := m.ledger.RecentSessions(recentSessionsCap); err != nil {
		m.logger.Warn("failed to read recent sessions", "error", err)
	} else {
		m.recent = recent
	}
}

// intentOf maps the frame's direction actions to a paddle intent.
// Opposite directions cancel out.
func intentOf(in core.InputFrame) breakout.Intent {
	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
	switch {
	case left && !right:
		return breakout.IntentLeft
	case right && !left:
		return breakout.IntentRight
	default:
		return breakout.IntentNone
	}
}

// Render draws the active state onto dst.
func (m *Machine) Render(dst *core.Screen) {
	if m.state == StateGame {
		m.game.Render(dst)
		if m.Muted() && dst.Width() >= core.MinScreenW && dst.Height() >= core.MinScreenH {
			dst.DrawText(dst.Width()-len(MutedLabel)-1, 0, MutedLabel, core.ColorGray)
		}
		return
	}

	dst.Clear()
	rt := core.RuntimeConfig{ScreenW: dst.Width(), ScreenH: dst.Height()}
	if rt.TooSmall() {
		breakout.RenderTooSmall(dst)
		return
	}

	third := dst.Height() / 3
	half := dst.Height() / 2

	switch m.state {
	case StateMenu:
		dst.DrawTextCentered(third, TitleText, core.ColorWhite)
		drawRule(dst, third+1, TitleText)
		dst.DrawTextCentered(half, PlayHint, core.ColorWhite)
		dst.DrawTextCentered(half+2, CreditsHint, core.ColorWhite)
		dst.DrawTextCentered(half+4, QuitHint, core.ColorGray)

	case StateCredits:
		drawPanel(dst, third-1, half+3)
		dst.DrawTextCentered(third, CreditsTitle, core.ColorWhite)
		drawRule(dst, third+1, CreditsTitle)
		dst.DrawTextCentered(half, CreditsLine, core.ColorWhite)
		dst.DrawTextCentered(half+2, ReturnHint, core.ColorWhite)

	case StateGameOver:
		drawPanel(dst, third-1, half+7)
		dst.DrawTextCentered(third, GameOverTitle, core.ColorRed)
		drawRule(dst, third+1, GameOverTitle)
		if m.runNumber > 0 {
			dst.DrawTextCentered(third+2, fmt.Sprintf("Run #%d", m.runNumber), core.ColorGray)
		}
		dst.DrawTextCentered(half, fmt.Sprintf("Your Score: %d", m.finalScore), core.ColorWhite)
		dst.DrawTextCentered(half+2, PlayAgainHint, core.ColorWhite)
		dst.DrawTextCentered(half+4, MainMenuHint, core.ColorWhite)
		if m.bestScore > 0 {
			dst.DrawTextCentered(half+6, fmt.Sprintf("Best this run: %d", m.bestScore), core.ColorGray)
		}
	}
}

// drawPanel frames rows top through bottom, centered horizontally.
func drawPanel(dst *core.Screen, top, bottom int) {
	x := (dst.Width() - panelWidth) / 2
	dst.DrawBox(core.NewRect(x, top, panelWidth, bottom-top+1), core.ColorGray)
}

// drawRule underlines a centered title.
func drawRule(dst *core.Screen, y int, title string) {
	n := len([]rune(title))
	dst.DrawHLine((dst.Width()-n)/2, y, n, '─', core.ColorGray)
}
