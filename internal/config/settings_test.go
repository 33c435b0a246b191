package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name     string
		settings Settings
		ok       bool
	}{
		{"defaults", DefaultSettings(), true},
		{"zero range", Settings{Levels: 1, Range: 0, CellSize: 1}, true},
		{"zero levels", Settings{Levels: 0, Range: 1, CellSize: 1}, true},
		{"negative levels", Settings{Levels: -1, Range: 1, CellSize: 1}, false},
		{"negative range", Settings{Levels: 1, Range: -2, CellSize: 1}, false},
		{"zero cell size", Settings{Levels: 1, Range: 1, CellSize: 0}, false},
		{"negative cell size", Settings{Levels: 1, Range: 1, CellSize: -3.5}, false},
	}
	for _, c := range cases {
		err := c.settings.Validate()
		if c.ok && err != nil {
			t.Errorf("%s: unexpected error: %v", c.name, err)
		}
		if !c.ok && !errors.Is(err, ErrInvalidSetting) {
			t.Errorf("%s: expected ErrInvalidSetting, got %v", c.name, err)
		}
	}
}

func TestLoadSettingsOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"levels": 3, "range": 2, "cellSize": 10, "highlight": true}`), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if s.Levels != 3 || s.Range != 2 || s.CellSize != 10 {
		t.Fatalf("unexpected settings: %+v", s)
	}
	if !s.Highlight {
		t.Fatal("highlight flag lost")
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	if _, err := LoadSettings(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(bad); err == nil {
		t.Error("expected error for malformed file")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.json")
	if err := os.WriteFile(invalid, []byte(`{"range": -1}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(invalid); !errors.Is(err, ErrInvalidSetting) {
		t.Errorf("expected ErrInvalidSetting, got %v", err)
	}
}
