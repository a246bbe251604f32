package game

import (
	"github.com/ormakov/hexpop/internal/config"
	"github.com/ormakov/hexpop/internal/core"
)

// Projectile is the single bubble in flight. At most one exists at a time;
// the shooter stays in Reloading until it resolves.
type Projectile struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Color  BubbleColor
	Radius float64
}

// Advance moves the projectile one tick and reflects it off the side
// walls. Position is clamped to the wall on reflection so a fast shot
// cannot escape sideways. The top wall and bubble contact are checked by
// the caller after the move; sampling is per tick, so an extreme
// speed-to-tick-rate ratio can tunnel past a thin target.
func (p *Projectile) Advance(dt float64, walls config.HexpopWalls) {
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))

	if p.Pos.X-p.Radius < walls.Left {
		p.Pos.X = walls.Left + p.Radius
		p.Vel.X = -p.Vel.X
	} else if p.Pos.X+p.Radius > walls.Right {
		p.Pos.X = walls.Right - p.Radius
		p.Vel.X = -p.Vel.X
	}
}

// AtTop reports whether the projectile has reached the top wall.
func (p *Projectile) AtTop(walls config.HexpopWalls) bool {
	return p.Pos.Y+p.Radius >= walls.Top
}
