// Package config provides YAML-based game configuration loading and
// difficulty presets for the game.
package config

// TetrisConfig contains all configuration for a game session.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// BoardConfig defines the grid dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines gravity timing.
type TimingConfig struct {
	FallIntervalMs int `yaml:"fall_interval_ms"` // Milliseconds between forced descents
}

// ScoringConfig defines how cleared rows are scored.
type ScoringConfig struct {
	LineScore int `yaml:"line_score"` // Points per cleared row
}
