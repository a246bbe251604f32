package config

import (
	_ "embed"
)

//go:embed defaults/hexpop.yaml
var defaultHexpopYAML []byte

// Default returns the default hexpop configuration.
func Default() HexpopConfig {
	return HexpopConfig{
		Physics: HexpopPhysics{
			ProjectileSpeed:    600,
			CollisionFactor:    1.8,
			SharpshooterFactor: 1.5,
			ProjectileFactor:   0.9,
			MaxAimAngle:        1.3,
			AimStep:            0.06,
			SpeedBoostPercent:  25,
		},
		Walls: HexpopWalls{
			Left:     -245,
			Right:    245,
			Top:      280,
			ShooterY: -250,
		},
		Grid: HexpopGrid{
			HexSize:     20,
			OriginY:     250,
			MinQ:        -6,
			MaxQ:        6,
			MinR:        0,
			MaxR:        13,
			InitialRows: 5,
			Colors:      6,
		},
		Rules: HexpopRules{
			MinClusterSize:      3,
			PointsPerBubble:     10,
			FloatingMultiplier:  2,
			ComboBonusPercent:   50,
			ShotsBase:           8,
			ShotsFloor:          5,
			RampEnabled:         true,
			DangerLandingOffset: 80,
			DangerRestingOffset: 40,
			PowerUpInterval:     5,
			PowerUpChoices:      3,
			Tier2Level:          15,
			LuckyBiasPercent:    70,
		},
		Difficulty: DifficultyNormal,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultHexpopYAML
}
