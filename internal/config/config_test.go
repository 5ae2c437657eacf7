package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultStackConfig(t *testing.T) {
	cfg := DefaultStackConfig()

	if cfg.Grid.Size != 16 {
		t.Errorf("Grid.Size = %d, expected 16", cfg.Grid.Size)
	}
	if cfg.Blocks.FallSpeed != 1 {
		t.Errorf("Blocks.FallSpeed = %d, expected 1", cfg.Blocks.FallSpeed)
	}
	if cfg.Blocks.SpawnRate != 10 {
		t.Errorf("Blocks.SpawnRate = %d, expected 10", cfg.Blocks.SpawnRate)
	}
	if cfg.Timing.RefreshRateMs != 200 {
		t.Errorf("Timing.RefreshRateMs = %d, expected 200", cfg.Timing.RefreshRateMs)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	if GetDefaultYAML("stack") == nil {
		t.Fatal("embedded default YAML missing for stack")
	}
	if GetDefaultYAML("unknown") != nil {
		t.Error("unknown game should have no default YAML")
	}

	loaded, err := LoadStack("")
	if err != nil {
		t.Fatalf("LoadStack failed: %v", err)
	}
	// A stray local or user config could legitimately differ; only check
	// that whatever loaded passes validation.
	if err := validateStack(loaded); err != nil {
		t.Errorf("loaded config invalid: %v", err)
	}
}

func TestLoadStackCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stack.yaml")
	data := []byte("grid:\n  size: 8\n  cell_size: 1\ntiming:\n  refresh_rate_ms: 100\nblocks:\n  fall_speed: 2\n  spawn_rate: 5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadStack(path)
	if err != nil {
		t.Fatalf("LoadStack(%s) failed: %v", path, err)
	}
	if cfg.Grid.Size != 8 || cfg.Blocks.FallSpeed != 2 || cfg.Blocks.SpawnRate != 5 {
		t.Errorf("loaded config = %+v, does not match file", cfg)
	}
}

func TestLoadStackMissingCustomPath(t *testing.T) {
	if _, err := LoadStack("/nonexistent/stack.yaml"); err == nil {
		t.Error("missing custom path should be an error")
	}
}

func TestLoadStackRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	data := []byte("grid:\n  size: 2\ntiming:\n  refresh_rate_ms: 100\nblocks:\n  fall_speed: 1\n  spawn_rate: 5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadStack(path); err == nil {
		t.Error("undersized grid should fail validation")
	}
}

func TestApplyStackPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		spawnRate int
		refresh   int
	}{
		{DifficultyEasy, 14, 250},
		{DifficultyNormal, 10, 200},
		{DifficultyHard, 6, 150},
	}

	for _, tc := range tests {
		cfg := DefaultStackConfig()
		ApplyStackPreset(&cfg, tc.preset)
		if cfg.Blocks.SpawnRate != tc.spawnRate {
			t.Errorf("%s: SpawnRate = %d, expected %d", tc.preset, cfg.Blocks.SpawnRate, tc.spawnRate)
		}
		if cfg.Timing.RefreshRateMs != tc.refresh {
			t.Errorf("%s: RefreshRateMs = %d, expected %d", tc.preset, cfg.Timing.RefreshRateMs, tc.refresh)
		}
	}

	// Fixed keeps whatever was loaded.
	cfg := DefaultStackConfig()
	ApplyStackPreset(&cfg, DifficultyFixed)
	if cfg != DefaultStackConfig() {
		t.Error("fixed preset should not modify the config")
	}
}

func TestValidPreset(t *testing.T) {
	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed} {
		if !ValidPreset(p) {
			t.Errorf("ValidPreset(%s) = false", p)
		}
	}
	if ValidPreset("impossible") {
		t.Error("unknown preset should be invalid")
	}
}
