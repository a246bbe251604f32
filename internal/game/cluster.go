package game

import (
	"sort"

	"github.com/ormakov/hexpop/internal/hex"
)

// FindCluster returns the connected group of bubbles matching the given
// color, flood-filled from start. The start cell is always included, even
// when empty: a just-landed bubble's color is passed in by the caller, so
// the search works the same whether or not the bubble is on the grid yet.
// Result is sorted by row then column.
func (g *Grid) FindCluster(start hex.Coord, color BubbleColor) []hex.Coord {
	visited := map[hex.Coord]bool{start: true}
	queue := []hex.Coord{start}
	cluster := []hex.Coord{start}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range c.Neighbors() {
			if visited[n] {
				continue
			}
			visited[n] = true
			nc, ok := g.ColorAt(n)
			if !ok || nc != color {
				continue
			}
			cluster = append(cluster, n)
			queue = append(queue, n)
		}
	}

	sortCoords(cluster)
	return cluster
}

// FindFloating returns all bubbles not connected to the top row through
// occupied cells. These fall when their support pops. Result is sorted by
// row then column.
func (g *Grid) FindFloating() []hex.Coord {
	anchored := make(map[hex.Coord]bool)
	queue := g.TopRow()
	for _, c := range queue {
		anchored[c] = true
	}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range c.Neighbors() {
			if anchored[n] || !g.Occupied(n) {
				continue
			}
			anchored[n] = true
			queue = append(queue, n)
		}
	}

	var floating []hex.Coord
	for _, c := range g.Coords() {
		if !anchored[c] {
			floating = append(floating, c)
		}
	}
	return floating
}

func sortCoords(cs []hex.Coord) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].R != cs[j].R {
			return cs[i].R < cs[j].R
		}
		return cs[i].Q < cs[j].Q
	})
}
