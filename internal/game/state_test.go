package game

import (
	"testing"

	"github.com/ormakov/hexpop/internal/config"
)

func TestShotsRamp(t *testing.T) {
	rules := config.Default().Rules
	tests := []struct {
		level int
		want  int
	}{
		{1, 8},
		{9, 8},
		{10, 7},
		{25, 6},
		{30, 5},
		{100, 5}, // floor
	}
	for _, tt := range tests {
		s := LevelState{Level: tt.level}
		if got := s.shotsForLevel(rules); got != tt.want {
			t.Errorf("level %d: shots = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestShotsFloorKeepsSmallBase(t *testing.T) {
	rules := config.Default().Rules
	rules.ShotsBase = 1

	s := NewLevelState(rules, 0)
	if s.ShotsUntilDescent != 1 {
		t.Errorf("ShotsUntilDescent = %d, want the configured base of 1", s.ShotsUntilDescent)
	}

	// The ramp cannot push below the base either.
	s.Level = 40
	if got := s.shotsForLevel(rules); got != 1 {
		t.Errorf("level 40 shots = %d, want 1", got)
	}
}

func TestShotsRampDisabled(t *testing.T) {
	rules := config.Default().Rules
	rules.RampEnabled = false
	s := LevelState{Level: 50}
	if got := s.shotsForLevel(rules); got != rules.ShotsBase {
		t.Errorf("shots = %d, want %d with ramp disabled", got, rules.ShotsBase)
	}
}

func TestDescentCountdown(t *testing.T) {
	rules := config.Default().Rules
	s := NewLevelState(rules, 0)
	for i := 0; i < rules.ShotsBase-1; i++ {
		s.RecordShot()
		if s.DescentDue() {
			t.Fatalf("descent due after %d shots", i+1)
		}
	}
	s.RecordShot()
	if !s.DescentDue() {
		t.Error("descent not due after a full round of shots")
	}

	s.AdvanceLevel(rules, 0)
	if s.Level != 2 || s.ShotsThisRound != 0 {
		t.Errorf("after advance: level %d, shots %d", s.Level, s.ShotsThisRound)
	}
}

func TestExtraShots(t *testing.T) {
	rules := config.Default().Rules
	s := NewLevelState(rules, 2)
	if s.ShotsUntilDescent != rules.ShotsBase+2 {
		t.Errorf("ShotsUntilDescent = %d, want %d", s.ShotsUntilDescent, rules.ShotsBase+2)
	}
}

func TestScorePop(t *testing.T) {
	rules := config.Default().Rules
	tests := []struct {
		name     string
		cluster  int
		floating int
		combo    bool
		want     int
	}{
		{"minimum cluster", 3, 0, false, 30},
		{"cluster with drops", 3, 2, false, 70},
		{"big cluster no combo", 5, 0, false, 50},
		{"big cluster with combo", 4, 0, true, 60},
		{"minimum cluster combo inactive", 3, 0, true, 30},
		{"combo applies to cluster only", 4, 1, true, 80},
	}
	for _, tt := range tests {
		var s LevelState
		got := s.ScorePop(tt.cluster, tt.floating, tt.combo, rules)
		if got != tt.want {
			t.Errorf("%s: points = %d, want %d", tt.name, got, tt.want)
		}
		if s.Score != tt.want {
			t.Errorf("%s: score = %d, want %d", tt.name, s.Score, tt.want)
		}
		if s.BubblesPopped != tt.cluster+tt.floating {
			t.Errorf("%s: bubbles popped = %d, want %d", tt.name, s.BubblesPopped, tt.cluster+tt.floating)
		}
		if s.ClustersPopped != 1 {
			t.Errorf("%s: clusters popped = %d, want 1", tt.name, s.ClustersPopped)
		}
	}
}

func TestPowerUpDue(t *testing.T) {
	rules := config.Default().Rules
	for _, tt := range []struct {
		level int
		want  bool
	}{{1, false}, {4, false}, {5, true}, {10, true}, {12, false}, {15, true}} {
		s := LevelState{Level: tt.level}
		if got := s.PowerUpDue(rules); got != tt.want {
			t.Errorf("level %d: PowerUpDue = %v, want %v", tt.level, got, tt.want)
		}
	}
}
