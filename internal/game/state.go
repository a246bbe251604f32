package game

import "github.com/ormakov/hexpop/internal/config"

// LevelState tracks score, level progression and the descent countdown.
type LevelState struct {
	Level             int
	Score             int
	BubblesPopped     int
	ClustersPopped    int
	ShotsThisRound    int
	ShotsUntilDescent int
}

// NewLevelState starts at level 1 with a full descent countdown.
func NewLevelState(rules config.HexpopRules, extraShots int) LevelState {
	s := LevelState{Level: 1}
	s.ShotsUntilDescent = s.shotsForLevel(rules) + extraShots
	return s
}

// shotsForLevel returns the descent countdown for the current level.
// The countdown shrinks by one every ten levels, never below the floor.
// The floor only catches the ramp; a base configured below it stays put.
func (s *LevelState) shotsForLevel(rules config.HexpopRules) int {
	shots := rules.ShotsBase
	if rules.RampEnabled {
		shots -= s.Level / 10
	}
	floor := rules.ShotsFloor
	if rules.ShotsBase < floor {
		floor = rules.ShotsBase
	}
	if shots < floor {
		shots = floor
	}
	return shots
}

// RecordShot counts a fired shot toward the descent countdown.
func (s *LevelState) RecordShot() {
	s.ShotsThisRound++
}

// DescentDue reports whether enough shots have been fired this round.
func (s *LevelState) DescentDue() bool {
	return s.ShotsThisRound >= s.ShotsUntilDescent
}

// AdvanceLevel moves to the next level and resets the shot counter.
// extraShots is the Procrastinate bonus.
func (s *LevelState) AdvanceLevel(rules config.HexpopRules, extraShots int) {
	s.Level++
	s.ShotsThisRound = 0
	s.ShotsUntilDescent = s.shotsForLevel(rules) + extraShots
}

// PowerUpDue reports whether this level is a power-up milestone.
func (s *LevelState) PowerUpDue(rules config.HexpopRules) bool {
	return rules.PowerUpInterval > 0 && s.Level%rules.PowerUpInterval == 0
}

// ScorePop awards points for a popped cluster and the bubbles it dropped.
// Dropped bubbles score double. With the Combo power-up, clusters larger
// than the minimum earn half again on the cluster portion. Returns the
// points awarded.
func (s *LevelState) ScorePop(clusterSize, floatingCount int, combo bool, rules config.HexpopRules) int {
	clusterPoints := clusterSize * rules.PointsPerBubble
	if combo && clusterSize > rules.MinClusterSize {
		clusterPoints += int(float64(clusterPoints) * rules.ComboBonusPercent / 100)
	}
	floatingPoints := floatingCount * rules.PointsPerBubble * rules.FloatingMultiplier

	total := clusterPoints + floatingPoints
	s.Score += total
	s.BubblesPopped += clusterSize + floatingCount
	s.ClustersPopped++
	return total
}
