package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gridiron/internal/config"
	"github.com/vovakirdan/gridiron/internal/core"
	"github.com/vovakirdan/gridiron/internal/football"
)

func testView() FieldView {
	// The 51x101 interior gives one cell per field unit.
	return NewFieldView(core.NewRect(0, 0, 53, 103), config.DefaultFootballConfig().Field)
}

func TestFieldViewProject(t *testing.T) {
	v := testView()

	tests := []struct {
		name string
		p    core.Vec3
		x, y int
	}{
		{"top left", core.V3(-25, 0.5, -50), 1, 1},
		{"bottom right", core.V3(25, 0.5, 50), 51, 101},
		{"center", core.V3(0, 0.5, 0), 26, 51},
		{"off field is pinned", core.V3(-100, 0.5, 300), 1, 101},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := v.Project(tc.p)
			if x != tc.x || y != tc.y {
				t.Errorf("Project(%+v) = (%d, %d), expected (%d, %d)", tc.p, x, y, tc.x, tc.y)
			}
		})
	}
}

func TestDrawField(t *testing.T) {
	v := testView()
	s := core.NewScreen(53, 103)
	snap := football.NewMatch(football.DefaultSettings()).Snapshot()

	DrawField(s, v, snap)

	rx, ry := v.Project(snap.Runner.Position)
	if cell := s.GetCell(rx, ry); cell.Rune != runnerGlyph || cell.Color != core.ColorBrightBlue {
		t.Errorf("runner cell = %+v", cell)
	}
	dx, dy := v.Project(snap.Defender.Position)
	if s.Get(dx, dy) != defenderGlyph {
		t.Errorf("defender missing at (%d, %d)", dx, dy)
	}

	_, goalRow := v.Project(core.V3(0, 0, -45))
	if s.Get(10, goalRow) != goalGlyph {
		t.Errorf("goal line missing at row %d", goalRow)
	}
	if s.Get(10, goalRow-1) != endZoneGlyph {
		t.Error("end zone should be filled above the goal line")
	}
	if s.Get(0, 0) != '┌' {
		t.Error("field border missing")
	}
	if strings.Contains(s.String(), "GAME OVER") {
		t.Error("banner drawn during play")
	}
}

func TestDrawFieldGameOver(t *testing.T) {
	settings := football.DefaultSettings()
	settings.ClockDuration = 1
	m := football.NewMatch(settings)
	m.TickClock()

	s := core.NewScreen(40, 30)
	DrawField(s, NewFieldView(core.NewRect(0, 0, 40, 30), config.DefaultFootballConfig().Field), m.Snapshot())

	if !strings.Contains(s.String(), "GAME OVER") {
		t.Error("expected GAME OVER banner")
	}
}

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "hello")
	s.DrawText(0, 1, "world")

	if got := RenderScreen(s); got != s.String() {
		t.Errorf("RenderScreen() = %q, expected %q", got, s.String())
	}
}
