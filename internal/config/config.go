// Package config provides YAML-based game configuration loading and
// difficulty presets for hexpop.
package config

// HexpopConfig contains all tunable parameters for the game.
type HexpopConfig struct {
	Physics    HexpopPhysics    `yaml:"physics"`
	Walls      HexpopWalls      `yaml:"walls"`
	Grid       HexpopGrid       `yaml:"grid"`
	Rules      HexpopRules      `yaml:"rules"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// HexpopPhysics defines projectile and aiming parameters.
type HexpopPhysics struct {
	ProjectileSpeed    float64 `yaml:"projectile_speed"`     // World units per second
	CollisionFactor    float64 `yaml:"collision_factor"`     // Bubble hit distance as multiple of hex size
	SharpshooterFactor float64 `yaml:"sharpshooter_factor"`  // Tightened hit distance with the power-up
	ProjectileFactor   float64 `yaml:"projectile_factor"`    // Projectile radius as multiple of hex size
	MaxAimAngle        float64 `yaml:"max_aim_angle"`        // Radians from vertical
	AimStep            float64 `yaml:"aim_step"`             // Radians per aim input tick
	SpeedBoostPercent  float64 `yaml:"speed_boost_percent"`  // Speedy power-up bonus
}

// HexpopWalls defines the playfield boundaries in world units.
// Y increases upward; the shooter sits at the bottom.
type HexpopWalls struct {
	Left     float64 `yaml:"left"`
	Right    float64 `yaml:"right"`
	Top      float64 `yaml:"top"`
	ShooterY float64 `yaml:"shooter_y"`
}

// HexpopGrid defines grid geometry and initial fill.
type HexpopGrid struct {
	HexSize     float64 `yaml:"hex_size"`
	OriginY     float64 `yaml:"origin_y"`
	MinQ        int     `yaml:"min_q"`
	MaxQ        int     `yaml:"max_q"`
	MinR        int     `yaml:"min_r"`
	MaxR        int     `yaml:"max_r"`
	InitialRows int     `yaml:"initial_rows"`
	Colors      int     `yaml:"colors"`
}

// HexpopRules defines scoring, matching and level progression.
type HexpopRules struct {
	MinClusterSize      int     `yaml:"min_cluster_size"`
	PointsPerBubble     int     `yaml:"points_per_bubble"`
	FloatingMultiplier  int     `yaml:"floating_multiplier"`   // Bonus factor for dropped bubbles
	ComboBonusPercent   float64 `yaml:"combo_bonus_percent"`   // Combo power-up bonus on clusters > min
	ShotsBase           int     `yaml:"shots_base"`            // Shots before descent at level 1
	ShotsFloor          int     `yaml:"shots_floor"`           // Ramp never goes below this
	RampEnabled         bool    `yaml:"ramp_enabled"`          // Shots shrink as levels pass
	DangerLandingOffset float64 `yaml:"danger_landing_offset"` // Above shooter_y, checked on landing
	DangerRestingOffset float64 `yaml:"danger_resting_offset"` // Above shooter_y, checked on descent
	PowerUpInterval     int     `yaml:"powerup_interval"`      // Levels between power-up offers
	PowerUpChoices      int     `yaml:"powerup_choices"`
	Tier2Level          int     `yaml:"tier2_level"` // Tier 2 power-ups appear at this level
	LuckyBiasPercent    float64 `yaml:"lucky_bias_percent"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset adjusts gameplay parameters for a difficulty preset.
// The normal preset leaves the config as loaded.
func ApplyPreset(cfg *HexpopConfig, preset DifficultyPreset) {
	cfg.Difficulty = preset
	switch preset {
	case DifficultyEasy:
		cfg.Rules.ShotsBase = 10
		cfg.Grid.InitialRows = 4
		cfg.Grid.Colors = 5
	case DifficultyHard:
		cfg.Rules.ShotsBase = 6
		cfg.Grid.InitialRows = 6
	case DifficultyFixed:
		cfg.Rules.RampEnabled = false
	}
}
