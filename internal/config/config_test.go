package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg HexpopConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default differs from hardcoded default:\n%+v\nvs\n%+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hexpop.yaml")
	if err := os.WriteFile(path, DefaultYAML(), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Grid.HexSize != 20 || cfg.Physics.ProjectileSpeed != 600 {
		t.Errorf("unexpected config loaded: %+v", cfg)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom config path")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		shotsBase  int
		rows       int
		ramp       bool
	}{
		{DifficultyEasy, 10, 4, true},
		{DifficultyNormal, 8, 5, true},
		{DifficultyHard, 6, 6, true},
		{DifficultyFixed, 8, 5, false},
	}
	for _, tt := range tests {
		cfg := Default()
		ApplyPreset(&cfg, tt.preset)
		if cfg.Rules.ShotsBase != tt.shotsBase {
			t.Errorf("%s: ShotsBase = %d, want %d", tt.preset, cfg.Rules.ShotsBase, tt.shotsBase)
		}
		if cfg.Grid.InitialRows != tt.rows {
			t.Errorf("%s: InitialRows = %d, want %d", tt.preset, cfg.Grid.InitialRows, tt.rows)
		}
		if cfg.Rules.RampEnabled != tt.ramp {
			t.Errorf("%s: RampEnabled = %v, want %v", tt.preset, cfg.Rules.RampEnabled, tt.ramp)
		}
	}
}
