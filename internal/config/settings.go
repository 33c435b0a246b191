// internal/config/settings.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidSetting reports a construction-time parameter that is out of
// range. All validation happens up front; the core never re-checks.
var ErrInvalidSetting = errors.New("config: invalid setting")

// Settings holds the construction-time parameters of a grid instance.
// CenterX/CenterY are the free axes of the initial center; the third axis
// is derived when the controller builds the coordinate.
type Settings struct {
	Levels    int     `json:"levels"`
	Range     int     `json:"range"`
	CellSize  float64 `json:"cellSize"`
	CenterX   int     `json:"centerX"`
	CenterY   int     `json:"centerY"`
	Highlight bool    `json:"highlight"`
}

// DefaultSettings mirrors the package constants.
func DefaultSettings() Settings {
	return Settings{
		Levels:    GridLevels,
		Range:     HighlightRange,
		CellSize:  HexSize,
		CenterX:   0,
		CenterY:   0,
		Highlight: true,
	}
}

// Validate checks the parameters a grid cannot be built without.
func (s Settings) Validate() error {
	if s.Levels < 0 {
		return fmt.Errorf("%w: levels must be non-negative, got %d", ErrInvalidSetting, s.Levels)
	}
	if s.Range < 0 {
		return fmt.Errorf("%w: range must be non-negative, got %d", ErrInvalidSetting, s.Range)
	}
	if s.CellSize <= 0 {
		return fmt.Errorf("%w: cellSize must be positive, got %g", ErrInvalidSetting, s.CellSize)
	}
	return nil
}

// LoadSettings reads overrides from a JSON file on top of the defaults.
func LoadSettings(path string) (Settings, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}

	s := DefaultSettings()
	if err := json.Unmarshal(file, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
