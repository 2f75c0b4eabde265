package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridiron/internal/football"
	"github.com/vovakirdan/gridiron/internal/playbook"
)

// Sidebar layout constants
const (
	sidebarWidth  = 32 // Outer width including border
	minFieldWidth = 20
	minHeight     = 22
)

var sidebarStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Width(sidebarWidth-2).
	Padding(0, 1)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	scoreStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	clockStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	gameOverStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))
	statusStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	helpLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tooSmallStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// eventStyles colors the last scoring event.
var eventStyles = map[football.Event]lipgloss.Style{
	football.EventTouchdown: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	football.EventTackle:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
}

// newPlayTable creates the play-selection table from the playbook.
func newPlayTable(plays []playbook.Play) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 1},
		{Title: "Play", Width: 13},
		{Title: "Side", Width: 7},
	}

	rows := make([]table.Row, len(plays))
	for i, p := range plays {
		rows[i] = table.Row{fmt.Sprintf("%d", i+1), p.Name, p.Side.String()}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
		table.WithFocused(false),
	)
	t.SetStyles(playTableStyles(false))
	return t
}

// playTableStyles highlights the cursor row only once a play is selected.
func playTableStyles(selected bool) table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	if selected {
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
	} else {
		s.Selected = lipgloss.NewStyle()
	}
	return s
}

// renderSidebar draws the scoreboard, clock, play list and status.
func renderSidebar(snap football.Snapshot, plays table.Model, status string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("GRIDIRON"))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("HOME "))
	b.WriteString(scoreStyle.Render(fmt.Sprintf("%3d", snap.Score.Home)))
	b.WriteString(labelStyle.Render("   AWAY "))
	b.WriteString(scoreStyle.Render(fmt.Sprintf("%3d", snap.Score.Away)))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("CLOCK "))
	b.WriteString(clockStyle.Render(snap.ClockText))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("LAST  "))
	if style, ok := eventStyles[snap.LastEvent]; ok {
		b.WriteString(style.Render(snap.LastEvent.String()))
	} else {
		b.WriteString(labelStyle.Render("-"))
	}
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("PLAYS"))
	b.WriteString("\n")
	b.WriteString(plays.View())
	b.WriteString("\n")

	if snap.GameOver {
		b.WriteString("\n")
		b.WriteString(gameOverStyle.Render("GAME OVER"))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("r: new match  q: quit"))
	}
	if status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(status))
	}

	return sidebarStyle.Render(b.String())
}
