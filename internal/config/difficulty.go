package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. An empty name means "keep the config".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// FallIntervalForPreset returns the gravity interval in milliseconds for a preset.
// Returns 0 for presets that do not override the configured value.
func FallIntervalForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 800
	case DifficultyNormal:
		return 500
	case DifficultyHard:
		return 250
	default:
		return 0
	}
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
// Only the fall interval changes; it stays fixed for the whole session.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if ms := FallIntervalForPreset(preset); ms > 0 {
		cfg.Timing.FallIntervalMs = ms
	}
}
