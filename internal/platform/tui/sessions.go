package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// sessionsChrome is the number of lines the runs table adds around its rows:
// header, header border and the rounded frame.
const sessionsChrome = 4

// newSessionsTable creates the table of sessions played this run.
func newSessionsTable(sessions []storage.SessionEntry) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Bricks", Width: 8},
		{Title: "Time", Width: 10},
	}

	rows := make([]table.Row, len(sessions))
	for i, s := range sessions {
		rows[i] = table.Row{
			fmt.Sprintf("%d", len(sessions)-i),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.BricksDestroyed),
			s.EndedAt.Local().Format("15:04:05"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// renderSessions renders the runs table centered within width.
func renderSessions(sessions []storage.SessionEntry, width int) string {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))

	t := newSessionsTable(sessions)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, frame.Render(t.View()))
}
