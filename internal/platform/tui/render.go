package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridiron/internal/config"
	"github.com/vovakirdan/gridiron/internal/core"
	"github.com/vovakirdan/gridiron/internal/football"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightBlue:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Field glyphs
const (
	runnerGlyph   = 'R'
	defenderGlyph = 'D'
	goalGlyph     = '═'
	endZoneGlyph  = '░'
	midfieldGlyph = '┄'
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one style run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// FieldView projects field coordinates onto a screen area.
// The goal line is at the top: forward (-Z) moves up the screen.
type FieldView struct {
	Area       core.Rect // Screen area including the border
	HalfWidth  float64   // Field extent along X on each side of 0
	HalfLength float64   // Field extent along Z on each side of 0
	GoalLineZ  float64
}

// NewFieldView creates a view of the configured field inside area.
func NewFieldView(area core.Rect, f config.FootballField) FieldView {
	return FieldView{
		Area:       area,
		HalfWidth:  f.Width / 2,
		HalfLength: f.Length / 2,
		GoalLineZ:  f.GoalLineZ,
	}
}

// inner returns the area inside the border.
func (v FieldView) inner() core.Rect {
	return core.NewRect(v.Area.X+1, v.Area.Y+1, v.Area.W-2, v.Area.H-2)
}

// Project maps a field position to a screen cell inside the border.
// Positions off the field are pinned to the nearest edge.
func (v FieldView) Project(p core.Vec3) (x, y int) {
	in := v.inner()
	return in.X + scale(p.X, v.HalfWidth, in.W), in.Y + scale(p.Z, v.HalfLength, in.H)
}

func scale(val, half float64, cells int) int {
	if cells <= 1 || half <= 0 {
		return 0
	}
	t := (core.ClampF(val, -half, half) + half) / (2 * half)
	return int(math.Round(t * float64(cells-1)))
}

// DrawField draws the field, both actors, and the game over banner.
func DrawField(s *core.Screen, v FieldView, snap football.Snapshot) {
	s.Clear()
	in := v.inner()
	if in.W < 1 || in.H < 1 {
		return
	}

	s.DrawBox(v.Area, core.ColorGreen)

	_, goalRow := v.Project(core.V3(0, 0, v.GoalLineZ))
	for y := in.Y; y < goalRow; y++ {
		s.DrawHLine(in.X, y, in.W, endZoneGlyph, core.ColorGreen)
	}
	s.DrawHLine(in.X, goalRow, in.W, goalGlyph, core.ColorBrightWhite)

	_, midRow := v.Project(core.V3(0, 0, 0))
	if midRow != goalRow {
		s.DrawHLine(in.X, midRow, in.W, midfieldGlyph, core.ColorGray)
	}

	dx, dy := v.Project(snap.Defender.Position)
	s.SetColored(dx, dy, defenderGlyph, core.ColorBrightRed)
	rx, ry := v.Project(snap.Runner.Position)
	s.SetColored(rx, ry, runnerGlyph, core.ColorBrightBlue)

	if snap.GameOver {
		drawBanner(s, in, "GAME OVER", core.ColorYellow)
	}
}

func drawBanner(s *core.Screen, area core.Rect, text string, c core.Color) {
	padded := " " + text + " "
	w := len([]rune(padded))
	x := area.X + (area.W-w)/2
	y := area.Y + area.H/2
	s.DrawTextColored(max(x, area.X), y, padded, c)
}
