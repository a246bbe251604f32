// Package game implements the hexpop gameplay core: a hexagonal bubble
// field, a shooter, cluster popping and the level descent loop. The
// package is pure simulation; rendering and input mapping live in the
// platform layer.
package game

import (
	"time"

	"github.com/ormakov/hexpop/internal/config"
	"github.com/ormakov/hexpop/internal/core"
	"github.com/ormakov/hexpop/internal/hex"
)

type phase int

const (
	phasePlaying phase = iota
	phasePowerUpSelect
)

// Game is the hexpop simulation. It implements core.Game. All state
// transitions happen inside Step, one tick at a time, in a fixed order:
// input, projectile motion and collision, cluster pop, floating removal,
// scoring and win/lose, then reload and descent.
type Game struct {
	cfg config.HexpopConfig
	rt  core.RuntimeConfig
	dt  float64

	rng     *RNG
	grid    *Grid
	shooter Shooter
	proj    *Projectile
	level   LevelState
	powers  PowerUpSet
	offer   []PowerUp

	phase    phase
	paused   bool
	gameOver bool
	won      bool

	events []core.Event
}

// New creates a game with the given configuration. Call Reset before
// stepping.
func New(cfg config.HexpopConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the stable game identifier.
func (g *Game) ID() string { return "hexpop" }

// Title returns the display name.
func (g *Game) Title() string { return "Hex Pop" }

// Reset starts a fresh run.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}
	g.dt = 1.0 / float64(rt.TickRate)

	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = NewRNG(seed)

	g.grid = NewGrid(g.cfg.Grid)
	g.grid.Fill(g.cfg.Grid.InitialRows, g.cfg.Grid.Colors, g.rng)
	g.shooter = NewShooter(g.drawColor)
	g.proj = nil
	g.level = NewLevelState(g.cfg.Rules, g.extraShots())
	g.powers = PowerUpSet{}
	g.offer = nil
	g.phase = phasePlaying
	g.paused = false
	g.gameOver = false
	g.won = false
	g.events = nil
}

// State returns the current externally visible state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:         g.level.Score,
		Level:         g.level.Level,
		BubblesPopped: g.level.BubblesPopped,
		GameOver:      g.gameOver,
		Won:           g.won,
		Paused:        g.paused,
	}
}

// Step advances the simulation one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if input.Pressed(core.ActionRestart) {
		g.Reset(g.rt)
		return g.result()
	}
	if g.gameOver {
		return g.result()
	}

	if g.phase == phasePowerUpSelect {
		g.stepPowerUpSelect(input)
		return g.result()
	}

	if input.Pressed(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.stepInput(input)
	g.stepProjectile()
	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) emit(kind core.EventKind, value int) {
	g.events = append(g.events, core.Event{Kind: kind, Value: value})
}

func (g *Game) stepPowerUpSelect(input core.InputFrame) {
	choice := -1
	switch {
	case input.Pressed(core.ActionChoice1):
		choice = 0
	case input.Pressed(core.ActionChoice2):
		choice = 1
	case input.Pressed(core.ActionChoice3):
		choice = 2
	}
	if choice < 0 || choice >= len(g.offer) {
		return
	}
	g.powers.Unlock(g.offer[choice])
	g.offer = nil
	g.phase = phasePlaying
}

func (g *Game) stepInput(input core.InputFrame) {
	if input.Pressed(core.ActionLeft) {
		g.shooter.Aim(-g.cfg.Physics.AimStep, g.cfg.Physics.MaxAimAngle)
	}
	if input.Pressed(core.ActionRight) {
		g.shooter.Aim(g.cfg.Physics.AimStep, g.cfg.Physics.MaxAimAngle)
	}
	if input.Pressed(core.ActionFire) && g.shooter.State == ShooterReady && g.proj == nil {
		color := g.shooter.Fire()
		g.level.RecordShot()
		g.proj = &Projectile{
			Pos:    core.V(0, g.cfg.Walls.ShooterY),
			Vel:    g.shooter.Dir().Scale(g.projectileSpeed()),
			Color:  color,
			Radius: g.cfg.Grid.HexSize * g.cfg.Physics.ProjectileFactor,
		}
	}
}

// stepProjectile moves the shot and resolves whatever it ran into this
// tick. Resolution may end the run; reload and descent only happen on a
// tick where the shot resolved and the run continues.
func (g *Game) stepProjectile() {
	if g.proj == nil {
		return
	}
	p := g.proj
	p.Advance(g.dt, g.cfg.Walls)

	if _, hit := g.grid.NearestBubble(p.Pos, g.collisionDist()); hit {
		// Contact near the shooter ends the run before any snapping.
		if p.Pos.Y <= g.cfg.Walls.ShooterY+g.cfg.Rules.DangerLandingOffset {
			g.emit(core.EventDanger, 0)
			g.lose()
			return
		}
		g.land(p, false)
		return
	}
	if p.AtTop(g.cfg.Walls) {
		g.land(p, true)
	}
}

// land snaps the projectile onto the nearest legal cell and runs the
// pop, floating and progression chain. On the top-wall path the snap can
// walk far down a crowded field, so the resolved cell is checked against
// the danger line before placing; the bubble-contact path already checked
// the contact point. An unplaceable shot is discarded without effect
// beyond having consumed a turn.
func (g *Game) land(p *Projectile, fromTopWall bool) {
	g.proj = nil

	target := g.grid.Layout().FromPixel(p.Pos)
	cell, ok := g.grid.ClosestEmptyCell(target)
	if ok {
		if fromTopWall {
			y := g.grid.Layout().ToPixel(cell).Y
			if y <= g.cfg.Walls.ShooterY+g.cfg.Rules.DangerLandingOffset {
				g.emit(core.EventDanger, 0)
				g.lose()
				return
			}
		}
		g.grid.Place(cell, p.Color)
		g.emit(core.EventLanded, 1)
		g.resolvePop(cell, p.Color)
		if g.gameOver {
			return
		}
		if g.restingDanger() {
			g.emit(core.EventDanger, 0)
			g.lose()
			return
		}
	}
	g.afterShot()
}

// resolvePop pops the cluster at the landing cell if it is big enough,
// then removes bubbles left floating, scores both, and checks the win
// condition. Floating removal only runs after a pop.
func (g *Game) resolvePop(cell hex.Coord, color BubbleColor) {
	cluster := g.grid.FindCluster(cell, color)
	if len(cluster) < g.cfg.Rules.MinClusterSize {
		return
	}
	for _, c := range cluster {
		g.grid.Remove(c)
	}
	g.emit(core.EventPopped, len(cluster))

	floating := g.grid.FindFloating()
	for _, c := range floating {
		g.grid.Remove(c)
	}
	if len(floating) > 0 {
		g.emit(core.EventFloatingRemoved, len(floating))
	}

	g.level.ScorePop(len(cluster), len(floating), g.powers.Has(PowerCombo), g.cfg.Rules)

	if g.grid.Empty() && g.level.ClustersPopped > 0 {
		g.won = true
		g.gameOver = true
	}
}

// afterShot reloads the shooter and, when the round's shots are spent,
// runs the descent: the field shifts down and grows a new top row, the
// danger check runs against the lowered field, and only then does the
// level advance and a milestone offer appear.
func (g *Game) afterShot() {
	g.shooter.Reload(g.drawColor)
	if !g.level.DescentDue() {
		return
	}

	g.grid.Descend(g.cfg.Grid.Colors, g.rng)

	if g.restingDanger() {
		g.emit(core.EventDanger, 0)
		g.lose()
		return
	}

	g.level.AdvanceLevel(g.cfg.Rules, g.extraShots())
	g.emit(core.EventDescent, g.level.Level)

	if g.level.PowerUpDue(g.cfg.Rules) {
		g.offer = g.powers.Offer(g.level.Level, g.cfg.Rules.Tier2Level, g.cfg.Rules.PowerUpChoices, g.rng)
		if len(g.offer) > 0 {
			g.phase = phasePowerUpSelect
		}
	}
}

// restingDanger reports whether any settled bubble sits at or below the
// lose line. Checked whenever the grid gains a bubble, from a landing or
// a descent.
func (g *Game) restingDanger() bool {
	y, ok := g.grid.LowestBubbleY()
	return ok && y <= g.cfg.Walls.ShooterY+g.cfg.Rules.DangerRestingOffset
}

func (g *Game) lose() {
	g.proj = nil
	g.gameOver = true
}

// drawColor picks the next bubble color. With Lucky unlocked, most draws
// come from colors still on the field so dead colors stop showing up.
func (g *Game) drawColor() BubbleColor {
	if g.powers.Has(PowerLucky) && g.rng.Float64()*100 < g.cfg.Rules.LuckyBiasPercent {
		if colors := g.grid.ColorsInPlay(); len(colors) > 0 {
			return colors[g.rng.Intn(len(colors))]
		}
	}
	return BubbleColor(g.rng.Intn(g.cfg.Grid.Colors))
}

func (g *Game) projectileSpeed() float64 {
	speed := g.cfg.Physics.ProjectileSpeed
	if g.powers.Has(PowerSpeedy) {
		speed *= 1 + g.cfg.Physics.SpeedBoostPercent/100
	}
	return speed
}

func (g *Game) collisionDist() float64 {
	factor := g.cfg.Physics.CollisionFactor
	if g.powers.Has(PowerSharpshooter) {
		factor = g.cfg.Physics.SharpshooterFactor
	}
	return g.cfg.Grid.HexSize * factor
}

func (g *Game) extraShots() int {
	if g.powers.Has(PowerProcrastinate) {
		return 2
	}
	return 0
}
