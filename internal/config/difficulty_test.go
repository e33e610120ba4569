package config

import "testing"

func TestParsePreset(t *testing.T) {
	tests := []struct {
		name    string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", "", false},
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"fixed", "", true},
		{"HARD", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.name)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.name, got, tc.want)
		}
	}
}

func TestApplyTetrisPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		want   int
	}{
		{DifficultyEasy, 800},
		{DifficultyNormal, 500},
		{DifficultyHard, 250},
		{"", 700}, // keeps the configured value
	}

	for _, tc := range tests {
		cfg := DefaultTetrisConfig()
		cfg.Timing.FallIntervalMs = 700
		ApplyTetrisPreset(&cfg, tc.preset)
		if cfg.Timing.FallIntervalMs != tc.want {
			t.Errorf("preset %q: FallIntervalMs = %d, expected %d", tc.preset, cfg.Timing.FallIntervalMs, tc.want)
		}
	}
}
