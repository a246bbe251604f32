package game

// Snapshot is a flattened copy of the simulation state for determinism
// tests. Float quantities are scaled to integers so two runs either hash
// identically or differ for a real reason.
type Snapshot struct {
	Score         int
	Level         int
	BubblesPopped int
	Shots         int
	Phase         int
	GameOver      int
	Won           int
	ShooterAngle  int // milliradians
	Loaded        int
	Queue         []int
	ProjX         int // world position x1000, 0 when no projectile
	ProjY         int
	Bubbles       []int // q, r, color triples in row-column order
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Score:         g.level.Score,
		Level:         g.level.Level,
		BubblesPopped: g.level.BubblesPopped,
		Shots:         g.level.ShotsThisRound,
		Phase:         int(g.phase),
		ShooterAngle:  int(g.shooter.Angle * 1000),
		Loaded:        int(g.shooter.Loaded),
	}
	if g.gameOver {
		s.GameOver = 1
	}
	if g.won {
		s.Won = 1
	}
	for _, c := range g.shooter.Queue {
		s.Queue = append(s.Queue, int(c))
	}
	if g.proj != nil {
		s.ProjX = int(g.proj.Pos.X * 1000)
		s.ProjY = int(g.proj.Pos.Y * 1000)
	}
	for _, c := range g.grid.Coords() {
		color, _ := g.grid.ColorAt(c)
		s.Bubbles = append(s.Bubbles, c.Q, c.R, int(color))
	}
	return s
}

// Hash folds the snapshot into a single value for cheap comparison.
func (s Snapshot) Hash() uint64 {
	h := uint64(17)
	mix := func(v int) {
		h = h*31 + uint64(uint32(v))
	}
	mix(s.Score)
	mix(s.Level)
	mix(s.BubblesPopped)
	mix(s.Shots)
	mix(s.Phase)
	mix(s.GameOver)
	mix(s.Won)
	mix(s.ShooterAngle)
	mix(s.Loaded)
	for _, v := range s.Queue {
		mix(v)
	}
	mix(s.ProjX)
	mix(s.ProjY)
	for _, v := range s.Bubbles {
		mix(v)
	}
	return h
}
