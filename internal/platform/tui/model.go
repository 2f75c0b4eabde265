package tui

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/gridiron/internal/config"
	"github.com/vovakirdan/gridiron/internal/core"
	"github.com/vovakirdan/gridiron/internal/football"
	"github.com/vovakirdan/gridiron/internal/playbook"
)

// maxFrameDelta caps the time one frame may simulate, so a stalled
// terminal does not teleport the runner.
const maxFrameDelta = 0.25

// Options configures a terminal match.
type Options struct {
	Config  config.FootballConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger // Nil discards logs

	// ScreenshotDir receives ctrl+s field dumps.
	// Empty means ~/.gridiron/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for a match.
type Model struct {
	opts     Options
	settings football.Settings
	logger   *log.Logger
	now      func() time.Time

	match     *football.Match
	matchID   string
	gen       uint64
	lastFrame time.Time
	snap      football.Snapshot

	held   *HeldKeys
	keys   KeyMap
	help   help.Model
	plays  []playbook.Play
	table  table.Model
	screen *core.Screen

	width    int
	height   int
	status   string
	quitting bool
}

// NewModel creates a model with a fresh match.
func NewModel(opts Options) Model {
	if opts.Runtime.FrameRate <= 0 {
		opts.Runtime.FrameRate = core.DefaultConfig().FrameRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	plays := playbook.List()
	m := Model{
		opts:     opts,
		settings: football.SettingsFromConfig(opts.Config),
		logger:   logger,
		now:      time.Now,
		held:     NewHeldKeys(opts.Config.HoldWindow()),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		plays:    plays,
		table:    newPlayTable(plays),
		screen:   core.NewScreen(0, 0),
		width:    opts.Runtime.ScreenW,
		height:   opts.Runtime.ScreenH,
	}
	m.help.Width = m.width
	m.newMatch()
	return m
}

// newMatch replaces the match and invalidates ticks scheduled for the old one.
func (m *Model) newMatch() {
	m.gen++
	m.match = football.NewMatch(m.settings)
	m.matchID = uuid.NewString()
	m.snap = m.match.Snapshot()
	m.lastFrame = time.Time{}
	m.held.Reset()
	m.status = ""
	m.table.SetStyles(playTableStyles(false))
	m.table.SetCursor(0)
	m.logger.Info("match started", "match", m.matchID, "duration", m.settings.ClockDuration)
}

// loops starts the frame and clock chains for the current match.
func (m Model) loops() tea.Cmd {
	return tea.Batch(
		frameCmd(m.gen, m.opts.Runtime.FrameRate),
		clockCmd(m.gen, m.opts.Config.ClockInterval()),
	)
}

// Init starts the match loops.
func (m Model) Init() tea.Cmd {
	return m.loops()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame(msg)

	case ClockMsg:
		return m.handleClock(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if d, ok := m.keys.Direction(msg); ok {
		m.held.Press(d, m.now())
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("quit", "match", m.matchID, "home", m.snap.Score.Home, "away", m.snap.Score.Away)
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.newMatch()
		return m, m.loops()

	case key.Matches(msg, m.keys.Play):
		idx, _ := m.keys.PlayIndex(msg)
		m.selectPlay(idx)
		return m, nil
	}

	return m, nil
}

func (m *Model) selectPlay(idx int) {
	if idx < 0 || idx >= len(m.plays) {
		return
	}
	p := m.plays[idx]

	err := m.match.SelectPlay(p.ID)
	switch {
	case errors.Is(err, football.ErrGameOver):
		m.status = "plays are locked"
		return
	case err != nil:
		m.status = err.Error()
		return
	}

	m.table.SetCursor(idx)
	m.table.SetStyles(playTableStyles(true))
	m.snap = m.match.Snapshot()
	m.status = fmt.Sprintf("called %s", p.Name)
	m.logger.Debug("play selected", "match", m.matchID, "play", p.ID)
}

// saveScreenshot writes the field as plain text.
func (m *Model) saveScreenshot() {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.status = "screenshot failed"
			return
		}
		dir = filepath.Join(home, ".gridiron", "screenshots")
	}

	path, err := writeScreenshot(dir, m.screen, m.snap, time.Now())
	if err != nil {
		m.status = "screenshot failed"
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.status = "saved " + filepath.Base(path)
	m.logger.Info("screenshot saved", "path", path)
}

// writeScreenshot writes the last drawn field and a score line under dir.
func writeScreenshot(dir string, s *core.Screen, snap football.Snapshot, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot dir: %w", err)
	}

	var b strings.Builder
	b.WriteString(s.String())
	fmt.Fprintf(&b, "\nHOME %d  AWAY %d  %s", snap.Score.Home, snap.Score.Away, snap.ClockText)
	if snap.GameOver {
		b.WriteString("  GAME OVER")
	}
	b.WriteString("\n")

	name := fmt.Sprintf("gridiron_%s.txt", now.Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// handleFrame runs one simulation frame.
func (m Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		return m, nil
	}

	dt := 0.0
	if !m.lastFrame.IsZero() {
		dt = math.Min(msg.Time.Sub(m.lastFrame).Seconds(), maxFrameDelta)
	}
	m.lastFrame = msg.Time

	res := m.match.Frame(m.held.State(msg.Time), dt)
	m.snap = res.Snapshot

	if res.Event != football.EventNone {
		m.logger.Info("score",
			"match", m.matchID,
			"event", res.Event,
			"home", m.snap.Score.Home,
			"away", m.snap.Score.Away,
			"clock", m.snap.ClockText,
		)
	}

	if m.snap.GameOver {
		return m, nil
	}
	return m, frameCmd(m.gen, m.opts.Runtime.FrameRate)
}

// handleClock runs one clock tick.
func (m Model) handleClock(msg ClockMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		return m, nil
	}

	ended := m.match.TickClock()
	m.snap = m.match.Snapshot()
	if ended {
		m.held.Reset()
		m.logger.Info("game over",
			"match", m.matchID,
			"home", m.snap.Score.Home,
			"away", m.snap.Score.Away,
			"play", m.snap.SelectedPlay,
		)
	}

	if m.snap.GameOver {
		return m, nil
	}
	return m, clockCmd(m.gen, m.opts.Config.ClockInterval())
}

// View renders the field, sidebar and help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := helpLineStyle.Render(m.help.View(m.keys))
	fieldW := m.width - sidebarWidth - 1
	fieldH := m.height - lipgloss.Height(helpView)
	if fieldW < minFieldWidth || m.height < minHeight {
		return tooSmallStyle.Render(fmt.Sprintf(
			"Terminal too small (%dx%d). Need at least %dx%d.",
			m.width, m.height, minFieldWidth+sidebarWidth+1, minHeight,
		))
	}

	m.screen.Resize(fieldW, fieldH)
	view := NewFieldView(core.NewRect(0, 0, fieldW, fieldH), m.opts.Config.Field)
	DrawField(m.screen, view, m.snap)

	sidebar := renderSidebar(m.snap, m.table, m.status)
	body := lipgloss.JoinHorizontal(lipgloss.Top, RenderScreen(m.screen), " ", sidebar)
	return lipgloss.JoinVertical(lipgloss.Left, body, helpView)
}

// Snapshot returns the state the model last drew from.
func (m Model) Snapshot() football.Snapshot {
	return m.snap
}

// Run starts the Bubble Tea program for one terminal session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
