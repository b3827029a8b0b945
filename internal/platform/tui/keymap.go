package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/flow"
)

// KeyMap defines the key bindings of every screen.
type KeyMap struct {
	Start    key.Binding
	Credits  key.Binding
	MenuQuit key.Binding
	Back     key.Binding
	Left     key.Binding
	Right    key.Binding
	Restart  key.Binding
	Quit     key.Binding
	Mute     key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "play"),
		),
		Credits: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "credits"),
		),
		MenuQuit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "right"),
		),
		Restart: key.NewBinding(
			key.WithKeys(" ", "r"),
			key.WithHelp("space/r", "play again"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
	}
}

// MapKey translates a key message to an action for the given screen.
// Returns ActionNone for keys the screen does not use.
func (k KeyMap) MapKey(state flow.State, msg tea.KeyMsg) core.Action {
	if key.Matches(msg, k.Mute) {
		return core.ActionMute
	}

	switch state {
	case flow.StateMenu:
		switch {
		case key.Matches(msg, k.MenuQuit):
			return core.ActionQuit
		case key.Matches(msg, k.Start):
			return core.ActionStart
		case key.Matches(msg, k.Credits):
			return core.ActionCredits
		}

	case flow.StateCredits:
		switch {
		case key.Matches(msg, k.Quit):
			return core.ActionQuit
		case key.Matches(msg, k.Back):
			return core.ActionBack
		}

	case flow.StateGame:
		switch {
		case key.Matches(msg, k.Quit):
			return core.ActionQuit
		case key.Matches(msg, k.Left):
			return core.ActionLeft
		case key.Matches(msg, k.Right):
			return core.ActionRight
		}

	case flow.StateGameOver:
		switch {
		case key.Matches(msg, k.Quit):
			return core.ActionQuit
		case key.Matches(msg, k.Restart):
			return core.ActionRestart
		case key.Matches(msg, k.Back):
			return core.ActionBack
		}
	}

	return core.ActionNone
}

// screenKeys exposes the bindings of one screen to the help view.
type screenKeys []key.Binding

// ShortHelp implements help.KeyMap.
func (s screenKeys) ShortHelp() []key.Binding { return s }

// FullHelp implements help.KeyMap.
func (s screenKeys) FullHelp() [][]key.Binding { return [][]key.Binding{s} }

// HelpFor returns the bindings shown in the footer of a screen.
func (k KeyMap) HelpFor(state flow.State) help.KeyMap {
	switch state {
	case flow.StateMenu:
		return screenKeys{k.Start, k.Credits, k.Mute, k.MenuQuit}
	case flow.StateCredits:
		return screenKeys{k.Back, k.Mute, k.Quit}
	case flow.StateGame:
		return screenKeys{k.Left, k.Right, k.Mute, k.Quit}
	case flow.StateGameOver:
		return screenKeys{k.Restart, k.Back, k.Mute, k.Quit}
	}
	return screenKeys{}
}

// HoldLatch turns direction key presses into held directions.
// Terminals report presses and auto-repeats but no releases, so a direction
// stays held for a number of frames after its last press.
type HoldLatch struct {
	frames int
	left   int
	right  int
}

// NewHoldLatch creates a latch holding each press for frames ticks.
func NewHoldLatch(frames int) *HoldLatch {
	if frames < 1 {
		frames = 1
	}
	return &HoldLatch{frames: frames}
}

// Press records a direction press. The opposite direction is released.
func (h *HoldLatch) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left, h.right = h.frames, 0
	case core.ActionRight:
		h.right, h.left = h.frames, 0
	}
}

// Apply sets the held directions on frame and counts one tick down.
func (h *HoldLatch) Apply(frame *core.InputFrame) {
	if h.left > 0 {
		frame.Set(core.ActionLeft)
		h.left--
	}
	if h.right > 0 {
		frame.Set(core.ActionRight)
		h.right--
	}
}

// Release drops every held direction.
func (h *HoldLatch) Release() {
	h.left, h.right = 0, 0
}
