package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/lander/internal/dynamo"
	"github.com/san-kum/lander/internal/physics"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Weight != 1 || cfg.Fuel != 1000 || cfg.Gravity != 0.05 {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.Physics() != physics.DefaultConfig() {
		t.Errorf("playfield defaults drifted: %+v", cfg.Physics())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	if g := cfg.GravityVector(); g.X != 0 || g.Y != 0.05 {
		t.Errorf("unexpected gravity vector %v", g)
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lander.yaml")

	cfg := DefaultConfig()
	cfg.Weight = 2.5
	cfg.Playfield.Height = 1000
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Weight != 2.5 || loaded.Playfield.Height != 1000 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	data := "gravity: 0.2\nplayfield:\n  landing_y: 600\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Gravity != 0.2 || cfg.Playfield.LandingY != 600 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Fuel != DefaultFuel || cfg.Playfield.Height != physics.DefaultWindowHeight {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestMergeOverPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	if err := os.WriteFile(path, []byte("fuel: 75\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := GetPreset("moon")
	if err := cfg.Merge(path); err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if cfg.Fuel != 75 {
		t.Errorf("expected file fuel 75, got %v", cfg.Fuel)
	}
	if cfg.Gravity != 0.001 {
		t.Errorf("expected preset gravity kept, got %v", cfg.Gravity)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("weight: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestParseStartup(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.ParseStartup([]string{"2", "500", "0.1"}); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cfg.Weight != 2 || cfg.Fuel != 500 || cfg.Gravity != 0.1 {
		t.Errorf("values not applied: %+v", cfg)
	}

	cfg = DefaultConfig()
	if err := cfg.ParseStartup(nil); err != nil {
		t.Fatalf("empty args should keep defaults: %v", err)
	}
	if cfg.Weight != DefaultWeight {
		t.Errorf("defaults changed: %+v", cfg)
	}
}

func TestParseStartupErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		param string
		want  error
	}{
		{"bad weight", []string{"heavy", "1", "1"}, "weight", dynamo.ErrInvalidParam},
		{"bad fuel", []string{"1", "lots", "1"}, "fuel", dynamo.ErrInvalidParam},
		{"bad gravity", []string{"1", "1", "0.0.5"}, "gravity", dynamo.ErrInvalidParam},
		{"infinite fuel", []string{"1", "Inf", "1"}, "fuel", dynamo.ErrInvalidParam},
		{"NaN gravity", []string{"1", "1", "NaN"}, "gravity", dynamo.ErrInvalidParam},
		{"missing gravity", []string{"1", "1"}, "gravity", dynamo.ErrMissingParam},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.ParseStartup(tt.args)

			var pe *dynamo.ParamError
			if !errors.As(err, &pe) {
				t.Fatalf("expected ParamError, got %v", err)
			}
			if pe.Name != tt.param {
				t.Errorf("expected failing param %q, got %q", tt.param, pe.Name)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v in chain, got %v", tt.want, err)
			}
			if !strings.Contains(err.Error(), tt.param) {
				t.Errorf("message %q does not name %q", err.Error(), tt.param)
			}
			if cfg.Weight != DefaultWeight {
				t.Error("partial parse must not modify config")
			}
		})
	}

	cfg := DefaultConfig()
	if err := cfg.ParseStartup([]string{"1", "2", "3", "4"}); err == nil {
		t.Error("expected error for too many arguments")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Playfield.Height = 10
	if err := cfg.Validate(); err == nil {
		t.Error("expected playfield error")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("heavy")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Weight != 3000 || cfg.Fuel != 1 {
		t.Errorf("unexpected heavy preset %+v", cfg)
	}

	cfg.Weight = 1
	if GetPreset("heavy").Weight != 3000 {
		t.Error("presets must not share state")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestLunarPresetCanHover(t *testing.T) {
	cfg := GetPreset("lunar")
	if cfg.Gravity >= cfg.Playfield.MovementForce {
		t.Errorf("gravity %v must stay below movement force %v", cfg.Gravity, cfg.Playfield.MovementForce)
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for _, name := range presets {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}
