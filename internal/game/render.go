package game

import (
	"fmt"

	"github.com/ormakov/hexpop/internal/core"
)

// aimLineLength is how far the aim guide extends in world units.
// Eagle Eye doubles it.
const aimLineLength = 150.0

// Render draws the playfield into the screen buffer. Pure presentation:
// nothing here mutates simulation state.
func (g *Game) Render(screen *core.Screen) {
	screen.Clear()
	if g.grid == nil {
		return
	}

	g.drawWalls(screen)
	g.drawBubbles(screen)
	g.drawAimLine(screen)
	g.drawShooter(screen)
	g.drawProjectile(screen)
	g.drawHUD(screen)

	switch {
	case g.won:
		g.drawOverlay(screen, "YOU WIN", []string{
			fmt.Sprintf("Score %d", g.level.Score),
			fmt.Sprintf("%d bubbles popped", g.level.BubblesPopped),
			"R to play again",
		})
	case g.gameOver:
		g.drawOverlay(screen, "GAME OVER", []string{
			fmt.Sprintf("Score %d", g.level.Score),
			fmt.Sprintf("Level %d", g.level.Level),
			"R to restart",
		})
	case g.phase == phasePowerUpSelect:
		lines := make([]string, 0, len(g.offer))
		for i, p := range g.offer {
			lines = append(lines, fmt.Sprintf("%d. %-13s %s", i+1, p.Title(), p.Description()))
		}
		g.drawOverlay(screen, "CHOOSE A POWER-UP", lines)
	case g.paused:
		g.drawOverlay(screen, "PAUSED", []string{"P to resume"})
	}
}

// project maps a world point to a screen cell. One HUD row is reserved at
// the top of the screen.
func (g *Game) project(screen *core.Screen, p core.Vec2) (int, int) {
	w := g.cfg.Walls
	margin := g.cfg.Grid.HexSize
	worldW := (w.Right - w.Left) + 2*margin
	worldH := (w.Top - w.ShooterY) + 2*margin

	x := (p.X - (w.Left - margin)) / worldW * float64(screen.W-1)
	y := (w.Top + margin - p.Y) / worldH * float64(screen.H-2)
	return int(x + 0.5), int(y+0.5) + 1
}

func (g *Game) drawWalls(screen *core.Screen) {
	w := g.cfg.Walls
	lx, ty := g.project(screen, core.V(w.Left, w.Top))
	rx, by := g.project(screen, core.V(w.Right, w.ShooterY))
	for y := ty; y <= by; y++ {
		screen.SetCell(lx, y, '│', core.ColorGray)
		screen.SetCell(rx, y, '│', core.ColorGray)
	}
	for x := lx; x <= rx; x++ {
		screen.SetCell(x, ty, '─', core.ColorGray)
	}
	screen.SetCell(lx, ty, '┌', core.ColorGray)
	screen.SetCell(rx, ty, '┐', core.ColorGray)
}

func (g *Game) drawBubbles(screen *core.Screen) {
	layout := g.grid.Layout()
	for _, c := range g.grid.Coords() {
		color, ok := g.grid.ColorAt(c)
		if !ok {
			continue
		}
		x, y := g.project(screen, layout.ToPixel(c))
		screen.SetCell(x, y, '●', color.Screen())
	}
}

func (g *Game) drawShooter(screen *core.Screen) {
	x, y := g.project(screen, core.V(0, g.cfg.Walls.ShooterY))
	screen.SetCell(x, y, '▲', core.ColorWhite)
	screen.SetCell(x, y+1, '●', g.shooter.Loaded.Screen())
}

func (g *Game) drawProjectile(screen *core.Screen) {
	if g.proj == nil {
		return
	}
	x, y := g.project(screen, g.proj.Pos)
	screen.SetCell(x, y, '●', g.proj.Color.Screen())
}

// drawAimLine traces the aim guide from the shooter. With Bouncy the
// trace reflects off the side walls like a real shot would.
func (g *Game) drawAimLine(screen *core.Screen) {
	if g.proj != nil || g.shooter.State != ShooterReady {
		return
	}
	length := aimLineLength
	if g.powers.Has(PowerEagleEye) {
		length *= 2
	}
	bouncy := g.powers.Has(PowerBouncy)

	pos := core.V(0, g.cfg.Walls.ShooterY)
	dir := g.shooter.Dir()
	step := g.cfg.Grid.HexSize / 2
	for t := step; t <= length; t += step {
		pos = pos.Add(dir.Scale(step))
		if bouncy {
			if pos.X < g.cfg.Walls.Left {
				pos.X = 2*g.cfg.Walls.Left - pos.X
				dir.X = -dir.X
			} else if pos.X > g.cfg.Walls.Right {
				pos.X = 2*g.cfg.Walls.Right - pos.X
				dir.X = -dir.X
			}
		} else if pos.X < g.cfg.Walls.Left || pos.X > g.cfg.Walls.Right {
			break
		}
		if pos.Y > g.cfg.Walls.Top {
			break
		}
		x, y := g.project(screen, pos)
		screen.SetCell(x, y, '·', core.ColorGray)
	}
}

func (g *Game) drawHUD(screen *core.Screen) {
	hud := fmt.Sprintf("SCORE %d  LVL %d  SHOTS %d/%d",
		g.level.Score, g.level.Level,
		core.Max(g.level.ShotsUntilDescent-g.level.ShotsThisRound, 0),
		g.level.ShotsUntilDescent)
	screen.DrawText(1, 0, hud, core.ColorWhite)

	// Next-bubble preview on the right, one by default, the whole queue
	// with Fortune.
	preview := 1
	if g.powers.Has(PowerFortune) {
		preview = len(g.shooter.Queue)
	}
	x := screen.W - 2*preview - 7
	screen.DrawText(x, 0, "NEXT ", core.ColorGray)
	for i := 0; i < preview && i < len(g.shooter.Queue); i++ {
		screen.SetCell(x+5+2*i, 0, '●', g.shooter.Queue[i].Screen())
	}
}

func (g *Game) drawOverlay(screen *core.Screen, title string, lines []string) {
	w := len(title)
	for _, l := range lines {
		if len(l) > w {
			w = len(l)
		}
	}
	w += 4
	h := len(lines) + 4
	x0 := (screen.W - w) / 2
	y0 := (screen.H - h) / 2

	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			screen.SetCell(x, y, ' ', core.ColorDefault)
		}
	}
	for x := x0; x < x0+w; x++ {
		screen.SetCell(x, y0, '─', core.ColorWhite)
		screen.SetCell(x, y0+h-1, '─', core.ColorWhite)
	}
	for y := y0; y < y0+h; y++ {
		screen.SetCell(x0, y, '│', core.ColorWhite)
		screen.SetCell(x0+w-1, y, '│', core.ColorWhite)
	}
	screen.SetCell(x0, y0, '┌', core.ColorWhite)
	screen.SetCell(x0+w-1, y0, '┐', core.ColorWhite)
	screen.SetCell(x0, y0+h-1, '└', core.ColorWhite)
	screen.SetCell(x0+w-1, y0+h-1, '┘', core.ColorWhite)

	screen.DrawText(x0+(w-len(title))/2, y0+1, title, core.ColorYellow)
	for i, l := range lines {
		screen.DrawText(x0+2, y0+3+i, l, core.ColorWhite)
	}
}
