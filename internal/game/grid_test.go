package game

import (
	"testing"

	"github.com/ormakov/hexpop/internal/config"
	"github.com/ormakov/hexpop/internal/core"
	"github.com/ormakov/hexpop/internal/hex"
)

func testGrid() *Grid {
	return NewGrid(config.Default().Grid)
}

func TestFill(t *testing.T) {
	g := testGrid()
	g.Fill(5, 6, NewRNG(1))

	cfg := config.Default().Grid
	want := (cfg.MaxQ - cfg.MinQ + 1) * 5
	if g.Count() != want {
		t.Errorf("Count() = %d, want %d", g.Count(), want)
	}
	for _, c := range g.Coords() {
		if !g.InBounds(c) {
			t.Errorf("filled cell %v out of bounds", c)
		}
		if c.R >= 5 {
			t.Errorf("filled cell %v below initial rows", c)
		}
	}
}

func TestPlaceRejectsOccupied(t *testing.T) {
	g := testGrid()
	c := hex.C(0, 0)
	if !g.Place(c, Red) {
		t.Fatal("first Place failed")
	}
	if g.Place(c, Blue) {
		t.Error("Place on occupied cell succeeded")
	}
	if color, _ := g.ColorAt(c); color != Red {
		t.Errorf("ColorAt = %v, want Red", color)
	}
}

func TestClosestEmptyCellPrefersTarget(t *testing.T) {
	g := testGrid()
	g.Place(hex.C(0, 0), Red)

	target := hex.C(0, 1)
	got, ok := g.ClosestEmptyCell(target)
	if !ok || got != target {
		t.Errorf("ClosestEmptyCell(%v) = %v, %v; want target itself", target, got, ok)
	}
}

func TestClosestEmptyCellSkipsOccupied(t *testing.T) {
	g := testGrid()
	target := hex.C(0, 1)
	g.Place(target, Red)

	got, ok := g.ClosestEmptyCell(target)
	if !ok {
		t.Fatal("no cell found next to a single bubble")
	}
	if got == target || g.Occupied(got) {
		t.Errorf("ClosestEmptyCell returned occupied cell %v", got)
	}
	if target.Distance(got) != 1 {
		t.Errorf("ClosestEmptyCell = %v, want a neighbor of %v", got, target)
	}
}

func TestClosestEmptyCellRelaxedBounds(t *testing.T) {
	g := testGrid()
	cfg := config.Default().Grid
	bottom := hex.C(0, cfg.MaxR)
	g.Place(bottom, Red)

	// One row past the configured field, but touching a bubble.
	target := hex.C(0, cfg.MaxR+1)
	if g.InBounds(target) {
		t.Fatal("test target should be out of bounds")
	}
	got, ok := g.ClosestEmptyCell(target)
	if !ok || got != target {
		t.Errorf("out-of-bounds cell adjacent to a bubble rejected: %v, %v", got, ok)
	}
}

func TestClosestEmptyCellCrossesEmptyGap(t *testing.T) {
	g := testGrid()
	g.Place(hex.C(0, 0), Red)

	// The target sits in empty space above the field, several rings from
	// anything occupied. The search walks through the empty cells and
	// snaps onto the field instead of dropping the shot.
	got, ok := g.ClosestEmptyCell(hex.C(0, -3))
	if !ok {
		t.Fatal("no landing cell found across the empty gap")
	}
	if got.Distance(hex.C(0, 0)) != 1 {
		t.Errorf("ClosestEmptyCell = %v, want a cell touching the bubble at (0,0)", got)
	}
}

func TestClosestEmptyCellUnreachable(t *testing.T) {
	g := testGrid()
	// So far outside the field that the search cap trips first.
	if got, ok := g.ClosestEmptyCell(hex.C(0, 40)); ok {
		t.Errorf("expected no legal cell, got %v", got)
	}
}

func TestTopRow(t *testing.T) {
	g := testGrid()
	g.Place(hex.C(-1, 2), Red)
	g.Place(hex.C(3, 2), Green)
	g.Place(hex.C(0, 5), Blue)

	top := g.TopRow()
	if len(top) != 2 {
		t.Fatalf("TopRow len = %d, want 2", len(top))
	}
	if top[0] != hex.C(-1, 2) || top[1] != hex.C(3, 2) {
		t.Errorf("TopRow = %v", top)
	}
}

func TestDescend(t *testing.T) {
	g := testGrid()
	cfg := config.Default().Grid
	g.Fill(2, 6, NewRNG(7))
	before := g.Count()
	yBefore := g.Layout().ToPixel(hex.C(0, 0)).Y

	g.Descend(6, NewRNG(8))

	width := cfg.MaxQ - cfg.MinQ + 1
	if g.Count() != before+width {
		t.Errorf("Count after descend = %d, want %d", g.Count(), before+width)
	}
	top := g.TopRow()
	if len(top) != width || top[0].R != -1 {
		t.Errorf("top row after descend = %v, want full row at r=-1", top)
	}
	yAfter := g.Layout().ToPixel(hex.C(0, 0)).Y
	if yAfter >= yBefore {
		t.Errorf("descend did not lower the field: %f -> %f", yBefore, yAfter)
	}

	// A second descent stacks another row above.
	g.Descend(6, NewRNG(9))
	if top := g.TopRow(); top[0].R != -2 {
		t.Errorf("second descend top row r = %d, want -2", top[0].R)
	}
}

func TestColorsInPlay(t *testing.T) {
	g := testGrid()
	g.Place(hex.C(0, 0), Blue)
	g.Place(hex.C(1, 0), Red)
	g.Place(hex.C(2, 0), Blue)

	got := g.ColorsInPlay()
	if len(got) != 2 || got[0] != Red || got[1] != Blue {
		t.Errorf("ColorsInPlay = %v, want [Red Blue]", got)
	}
}

func TestNearestBubble(t *testing.T) {
	g := testGrid()
	g.Place(hex.C(0, 0), Red)
	center := g.Layout().ToPixel(hex.C(0, 0))

	if _, hit := g.NearestBubble(center.Add(core.V(0, -30)), 36); !hit {
		t.Error("bubble within range not found")
	}
	if _, hit := g.NearestBubble(center.Add(core.V(0, -100)), 36); hit {
		t.Error("bubble out of range reported as hit")
	}
}
