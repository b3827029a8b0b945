package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/flow"
)

// helpHeight is the number of lines reserved for the key help footer.
const helpHeight = 1

// Model is the Bubble Tea model running the game session.
type Model struct {
	machine    *flow.Machine
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	latch      *HoldLatch
	help       help.Model
	inputFrame core.InputFrame
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given machine.
func NewModel(machine *flow.Machine, cfg core.RuntimeConfig, holdFrames int) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		machine:    machine,
		screen:     core.NewScreen(1, 1),
		config:     cfg,
		keys:       DefaultKeyMap(),
		latch:      NewHoldLatch(holdFrames),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
	m.layout()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.layout()
		m.machine.Render(m.screen)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(m.machine.State(), msg)
	switch action {
	case core.ActionNone:
	case core.ActionLeft, core.ActionRight:
		m.latch.Press(action)
	case core.ActionQuit:
		// Quit is applied at once rather than on the next tick
		m.inputFrame.Set(action)
		return m.handleTick()
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick runs one frame of the session.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	before := m.machine.State()
	if before == flow.StateGame {
		m.latch.Apply(&m.inputFrame)
	}

	m.layout()
	res := m.machine.Frame(m.inputFrame, m.screen)
	m.inputFrame.Clear()

	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	if res.State != before {
		m.latch.Release()
		// Layout depends on the screen, so redraw at the new size
		m.layout()
		m.machine.Render(m.screen)
	}

	return m, tickCmd(m.config.TickRate)
}

// layout sizes the screen buffer to the terminal minus the footer and, on
// the game over screen, the runs table.
func (m *Model) layout() {
	w := core.Max(m.config.ScreenW, 1)
	h := m.config.ScreenH - helpHeight - m.sessionsHeight()
	m.screen.Resize(w, core.Max(h, 1))
}

// sessionsHeight returns the lines taken by the runs table, or 0 when it is
// hidden.
func (m *Model) sessionsHeight() int {
	if m.machine.State() != flow.StateGameOver {
		return 0
	}
	n := len(m.machine.RecentSessions())
	if n == 0 {
		return 0
	}
	if m.config.ScreenH-helpHeight-(n+sessionsChrome) < core.MinScreenH {
		return 0
	}
	return n + sessionsChrome
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	parts := []string{RenderScreen(m.screen)}
	if m.sessionsHeight() > 0 {
		parts = append(parts, renderSessions(m.machine.RecentSessions(), m.config.ScreenW))
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	parts = append(parts, helpStyle.Render(m.help.View(m.keys.HelpFor(m.machine.State()))))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Machine returns the session driven by the model.
func (m Model) Machine() *flow.Machine {
	return m.machine
}

// Run starts the Bubble Tea program with the given machine.
func Run(machine *flow.Machine, cfg core.RuntimeConfig, holdFrames int) error {
	model := NewModel(machine, cfg, holdFrames)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
