package game

import (
	"math"

	"github.com/ormakov/hexpop/internal/core"
)

// ShooterState tracks whether the shooter can fire.
type ShooterState int

const (
	// ShooterReady means a bubble is loaded and no projectile is in flight.
	ShooterReady ShooterState = iota
	// ShooterReloading means the last shot has not resolved yet.
	ShooterReloading
)

// Shooter holds the aim angle, the loaded bubble and the lookahead queue.
// Angle is in radians from vertical, positive to the right.
type Shooter struct {
	Angle  float64
	State  ShooterState
	Loaded BubbleColor
	Queue  []BubbleColor
}

// queueLen is how many upcoming colors are kept drawn ahead. The preview
// shows one by default and all of them with the Fortune power-up.
const queueLen = 3

// NewShooter creates a ready shooter with a full lookahead queue drawn
// from the supplied color source.
func NewShooter(draw func() BubbleColor) Shooter {
	s := Shooter{State: ShooterReady, Loaded: draw()}
	for i := 0; i < queueLen; i++ {
		s.Queue = append(s.Queue, draw())
	}
	return s
}

// Aim rotates the shooter by delta radians, clamped to ±max from vertical.
func (s *Shooter) Aim(delta, max float64) {
	s.Angle = core.ClampF(s.Angle+delta, -max, max)
}

// Dir returns the unit aim direction. Zero angle points straight up.
func (s *Shooter) Dir() core.Vec2 {
	return core.Vec2{X: math.Sin(s.Angle), Y: math.Cos(s.Angle)}
}

// Fire returns the loaded color and puts the shooter into Reloading.
// Callers must check State first; firing while reloading repeats the
// loaded color without effect on the queue.
func (s *Shooter) Fire() BubbleColor {
	c := s.Loaded
	s.State = ShooterReloading
	return c
}

// Reload shifts the queue into the chamber, draws a replacement color and
// makes the shooter ready again.
func (s *Shooter) Reload(draw func() BubbleColor) {
	s.Loaded = s.Queue[0]
	copy(s.Queue, s.Queue[1:])
	s.Queue[len(s.Queue)-1] = draw()
	s.State = ShooterReady
}
