package config

import (
	"math"
	"testing"
)

func TestMultiplier(t *testing.T) {
	d := NewDifficultyManager(DefaultSweetsConfig().Difficulty)

	tests := []struct {
		score, expected float64
	}{
		{0, 1},
		{50, 1.125},
		{400, 2},
		{-10, 1}, // never below baseline
	}

	for _, tc := range tests {
		if got := d.Multiplier(tc.score); math.Abs(got-tc.expected) > 1e-12 {
			t.Errorf("Multiplier(%f) = %f, expected %f", tc.score, got, tc.expected)
		}
	}
}

func TestMultiplierMonotonic(t *testing.T) {
	d := NewDifficultyManager(DefaultSweetsConfig().Difficulty)
	prev := d.Multiplier(0)
	for score := 0.0; score < 5000; score += 7.3 {
		m := d.Multiplier(score)
		if m < prev {
			t.Fatalf("multiplier decreased at score %f: %f < %f", score, m, prev)
		}
		prev = m
	}
}

func TestSpawnInterval(t *testing.T) {
	d := NewDifficultyManager(DefaultSweetsConfig().Difficulty)

	tests := []struct {
		score, expected float64
	}{
		{0, 1200},
		{10, 1160},
		{100, 800},
		{237.5, 250},
		{1e9, 250},
	}

	for _, tc := range tests {
		if got := d.SpawnInterval(tc.score); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("SpawnInterval(%f) = %f, expected %f", tc.score, got, tc.expected)
		}
	}
}

func TestSpawnIntervalMonotonicAndBounded(t *testing.T) {
	d := NewDifficultyManager(DefaultSweetsConfig().Difficulty)
	prev := d.SpawnInterval(0)
	for score := 0.0; score < 1e6; score = score*1.5 + 1 {
		iv := d.SpawnInterval(score)
		if iv > prev {
			t.Fatalf("interval increased at score %f: %f > %f", score, iv, prev)
		}
		if iv < 250 {
			t.Fatalf("interval %f below minimum at score %f", iv, score)
		}
		prev = iv
	}
}

func TestFixedProgression(t *testing.T) {
	cfg := DefaultSweetsConfig()
	ApplySweetsPreset(&cfg, DifficultyFixed)
	d := NewDifficultyManager(cfg.Difficulty)

	if d.IsEnabled() {
		t.Error("fixed preset should disable progression")
	}
	if d.Multiplier(1000) != 1 {
		t.Errorf("fixed multiplier should stay 1, got %f", d.Multiplier(1000))
	}
	if d.SpawnInterval(1000) != 1200 {
		t.Errorf("fixed interval should stay at base, got %f", d.SpawnInterval(1000))
	}
}
