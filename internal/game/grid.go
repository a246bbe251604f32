package game

import (
	"sort"

	"github.com/ormakov/hexpop/internal/config"
	"github.com/ormakov/hexpop/internal/core"
	"github.com/ormakov/hexpop/internal/hex"
)

// bfsVisitCap bounds the nearest-empty-cell search. A saturated field can
// make the ring search explore far out; past this many cells the shot is
// unplaceable and gets dropped.
const bfsVisitCap = 1000

// Grid is the sparse bubble field. Cells map to bubble ids and ids map to
// bubble records; a cell holds at most one bubble. The layout origin shifts
// as the field descends, so rows above the original top get negative r.
type Grid struct {
	cfg    config.HexpopGrid
	layout hex.Layout

	cells   map[hex.Coord]BubbleID
	bubbles map[BubbleID]Bubble
	nextID  BubbleID
}

// NewGrid creates an empty grid with the given geometry.
func NewGrid(cfg config.HexpopGrid) *Grid {
	return &Grid{
		cfg:     cfg,
		layout:  hex.Layout{Size: cfg.HexSize, OriginY: cfg.OriginY},
		cells:   make(map[hex.Coord]BubbleID),
		bubbles: make(map[BubbleID]Bubble),
		nextID:  1,
	}
}

// Layout returns the current hex-to-world mapping.
func (g *Grid) Layout() hex.Layout {
	return g.layout
}

// Fill populates the top rows with random colors for a new run.
func (g *Grid) Fill(rows, colors int, rng *RNG) {
	for r := g.cfg.MinR; r < g.cfg.MinR+rows; r++ {
		for q := g.cfg.MinQ; q <= g.cfg.MaxQ; q++ {
			g.Place(hex.C(q, r), BubbleColor(rng.Intn(colors)))
		}
	}
}

// Place puts a new bubble at the cell. Returns false if the cell is taken.
func (g *Grid) Place(c hex.Coord, color BubbleColor) bool {
	if _, taken := g.cells[c]; taken {
		return false
	}
	id := g.nextID
	g.nextID++
	g.cells[c] = id
	g.bubbles[id] = Bubble{Color: color}
	return true
}

// Remove deletes the bubble at the cell, if any.
func (g *Grid) Remove(c hex.Coord) {
	if id, ok := g.cells[c]; ok {
		delete(g.bubbles, id)
		delete(g.cells, c)
	}
}

// Occupied reports whether a bubble sits at the cell.
func (g *Grid) Occupied(c hex.Coord) bool {
	_, ok := g.cells[c]
	return ok
}

// ColorAt returns the color of the bubble at the cell.
func (g *Grid) ColorAt(c hex.Coord) (BubbleColor, bool) {
	id, ok := g.cells[c]
	if !ok {
		return 0, false
	}
	b, ok := g.bubbles[id]
	if !ok {
		return 0, false
	}
	return b.Color, true
}

// Count returns the number of bubbles on the field.
func (g *Grid) Count() int {
	return len(g.cells)
}

// Empty reports whether the field has no bubbles.
func (g *Grid) Empty() bool {
	return len(g.cells) == 0
}

// InBounds reports whether the cell lies inside the configured field.
// Rows above MinR, created by descents, are handled by the adjacency
// relaxation in ClosestEmptyCell, not here.
func (g *Grid) InBounds(c hex.Coord) bool {
	return c.Q >= g.cfg.MinQ && c.Q <= g.cfg.MaxQ &&
		c.R >= g.cfg.MinR && c.R <= g.cfg.MaxR
}

// adjacentToBubble reports whether any neighbor of the cell is occupied.
func (g *Grid) adjacentToBubble(c hex.Coord) bool {
	for _, n := range c.Neighbors() {
		if g.Occupied(n) {
			return true
		}
	}
	return false
}

// legalLanding reports whether a bubble may come to rest at the cell.
// Out-of-bounds cells are allowed when they touch an existing bubble,
// which is how the field grows past its original rows after descents.
func (g *Grid) legalLanding(c hex.Coord) bool {
	if g.Occupied(c) {
		return false
	}
	return g.InBounds(c) || g.adjacentToBubble(c)
}

// ClosestEmptyCell finds the nearest legal landing cell to the target.
// The target itself wins if legal; otherwise a breadth-first ring search
// runs outward through every cell, empty ones included, so a shot that
// flew through a gap can still snap to the field a few rings away. The
// search is capped at bfsVisitCap visits; false means nothing legal is
// reachable and the caller drops the shot.
func (g *Grid) ClosestEmptyCell(target hex.Coord) (hex.Coord, bool) {
	if g.legalLanding(target) {
		return target, true
	}

	visited := map[hex.Coord]bool{target: true}
	queue := []hex.Coord{target}
	for len(queue) > 0 && len(visited) < bfsVisitCap {
		c := queue[0]
		queue = queue[1:]
		for _, n := range c.Neighbors() {
			if visited[n] {
				continue
			}
			visited[n] = true
			if g.legalLanding(n) {
				return n, true
			}
			queue = append(queue, n)
		}
	}
	return hex.Coord{}, false
}

// TopRow returns all occupied cells in the topmost occupied row. These
// anchor the field: bubbles not connected to them are floating. Rows
// created by descents can sit above MinR.
func (g *Grid) TopRow() []hex.Coord {
	if len(g.cells) == 0 {
		return nil
	}
	minR := 0
	first := true
	for c := range g.cells {
		if first || c.R < minR {
			minR = c.R
			first = false
		}
	}
	var row []hex.Coord
	for c := range g.cells {
		if c.R == minR {
			row = append(row, c)
		}
	}
	sort.Slice(row, func(i, j int) bool { return row[i].Q < row[j].Q })
	return row
}

// Descend shifts the whole field one row toward the shooter and spawns a
// fresh full-width row above the current top.
func (g *Grid) Descend(colors int, rng *RNG) {
	g.layout.OriginY -= g.cfg.HexSize * 1.5

	newR := g.cfg.MinR - 1
	if top := g.TopRow(); len(top) > 0 {
		newR = top[0].R - 1
	}
	for q := g.cfg.MinQ; q <= g.cfg.MaxQ; q++ {
		g.Place(hex.C(q, newR), BubbleColor(rng.Intn(colors)))
	}
}

// LowestBubbleY returns the world y of the lowest bubble center, or false
// when the field is empty. Used for the resting danger check.
func (g *Grid) LowestBubbleY() (float64, bool) {
	if len(g.cells) == 0 {
		return 0, false
	}
	lowest := 0.0
	first := true
	for c := range g.cells {
		y := g.layout.ToPixel(c).Y
		if first || y < lowest {
			lowest = y
			first = false
		}
	}
	return lowest, true
}

// ColorsInPlay returns the distinct colors currently on the field, sorted
// so callers drawing from it stay deterministic.
func (g *Grid) ColorsInPlay() []BubbleColor {
	seen := make(map[BubbleColor]bool)
	for _, b := range g.bubbles {
		seen[b.Color] = true
	}
	out := make([]BubbleColor, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Coords returns all occupied cells sorted by row then column.
func (g *Grid) Coords() []hex.Coord {
	out := make([]hex.Coord, 0, len(g.cells))
	for c := range g.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].R != out[j].R {
			return out[i].R < out[j].R
		}
		return out[i].Q < out[j].Q
	})
	return out
}

// NearestBubble returns the occupied cell whose center is closest to the
// point and within maxDist, for projectile collision tests.
func (g *Grid) NearestBubble(p core.Vec2, maxDist float64) (hex.Coord, bool) {
	var best hex.Coord
	bestDist := maxDist
	found := false
	for _, c := range g.Coords() {
		d := g.layout.ToPixel(c).Distance(p)
		if d < bestDist || (!found && d == bestDist) {
			best = c
			bestDist = d
			found = true
		}
	}
	return best, found
}
