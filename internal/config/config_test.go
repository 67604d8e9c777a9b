package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML SweetsConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if fromYAML != DefaultSweetsConfig() {
		t.Errorf("embedded YAML and DefaultSweetsConfig differ:\nyaml: %+v\ncode: %+v", fromYAML, DefaultSweetsConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultSweetsConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate, got %v", err)
	}
	if got := DefaultSweetsConfig().HitDistance(); got != 33 {
		t.Errorf("HitDistance() = %f, expected 33", got)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SweetsConfig)
		field  string
	}{
		{"zero avatar radius", func(c *SweetsConfig) { c.Avatar.Radius = 0 }, "avatar.radius"},
		{"follow above one", func(c *SweetsConfig) { c.Avatar.Follow = 1.5 }, "avatar.follow"},
		{"forgiveness eats hitbox", func(c *SweetsConfig) { c.Sweets.Forgiveness = 45 }, "forgiveness"},
		{"cull inside spawn", func(c *SweetsConfig) { c.Sweets.CullMargin = 10 }, "cull_margin"},
		{"zero divisor", func(c *SweetsConfig) { c.Difficulty.Divisor = 0 }, "divisor"},
		{"zero min interval", func(c *SweetsConfig) { c.Difficulty.Spawn.MinMs = 0 }, "spawn intervals"},
		{"zero cell", func(c *SweetsConfig) { c.Field.CellWidth = 0 }, "cell size"},
		{"nan sweet radius", func(c *SweetsConfig) { c.Sweets.Radius = math.NaN() }, "sweets.radius"},
		{"nan follow", func(c *SweetsConfig) { c.Avatar.Follow = math.NaN() }, "avatar.follow"},
		{"infinite divisor", func(c *SweetsConfig) { c.Difficulty.Divisor = math.Inf(1) }, "difficulty.divisor"},
		{"nan key step", func(c *SweetsConfig) { c.Control.KeyStep = math.NaN() }, "control.key_step"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSweetsConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should mention %q", err, tc.field)
			}
		})
	}
}

func TestLoadSweetsCustomPathOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "sweets:\n  forgiveness: 5\ndifficulty:\n  divisor: 100\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSweets(path)
	if err != nil {
		t.Fatalf("LoadSweets() failed: %v", err)
	}
	if cfg.Sweets.Forgiveness != 5 {
		t.Errorf("forgiveness = %f, expected 5", cfg.Sweets.Forgiveness)
	}
	if cfg.Difficulty.Divisor != 100 {
		t.Errorf("divisor = %f, expected 100", cfg.Difficulty.Divisor)
	}
	// Untouched keys keep their defaults
	if cfg.Avatar.Radius != 25 {
		t.Errorf("avatar radius = %f, expected default 25", cfg.Avatar.Radius)
	}
}

func TestLoadSweetsCustomPathErrors(t *testing.T) {
	if _, err := LoadSweets(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("avatar:\n  radius: -3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSweets(bad); err == nil {
		t.Error("invalid custom config should fail validation")
	}

	nan := filepath.Join(t.TempDir(), "nan.yaml")
	if err := os.WriteFile(nan, []byte("sweets:\n  radius: .nan\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSweets(nan); err == nil || !strings.Contains(err.Error(), "finite") {
		t.Errorf("NaN radius should be rejected, got %v", err)
	}
}

func TestApplySweetsPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		divisor float64
		baseMs  float64
	}{
		{DifficultyEasy, true, 600, 1400},
		{DifficultyNormal, true, 400, 1200},
		{DifficultyHard, true, 250, 900},
		{DifficultyFixed, false, 400, 1200},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSweetsConfig()
			ApplySweetsPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.Divisor != tc.divisor {
				t.Errorf("Divisor = %f, expected %f", cfg.Difficulty.Divisor, tc.divisor)
			}
			if cfg.Difficulty.Spawn.BaseMs != tc.baseMs {
				t.Errorf("BaseMs = %f, expected %f", cfg.Difficulty.Spawn.BaseMs, tc.baseMs)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset config should validate: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}
