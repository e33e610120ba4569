package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultTetrisConfig() {
		t.Errorf("embedded defaults = %+v, hardcoded = %+v", cfg, DefaultTetrisConfig())
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("board:\n  width: 12\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Board.Width != 12 {
		t.Errorf("Board.Width = %d, expected 12", cfg.Board.Width)
	}
	if cfg.Board.Height != 20 {
		t.Errorf("Board.Height = %d, expected default 20", cfg.Board.Height)
	}
	if cfg.Timing.FallIntervalMs != 500 {
		t.Errorf("FallIntervalMs = %d, expected default 500", cfg.Timing.FallIntervalMs)
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) failed: %v", err)
	}
	if cfg != DefaultTetrisConfig() {
		t.Errorf("Parse(nil) = %+v, expected defaults", cfg)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	if _, err := Parse([]byte("board:\n  widht: 12\n")); err == nil {
		t.Error("expected an error for a misspelled key")
	}
}

func TestLoadTetrisCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	data := "board:\n  width: 8\n  height: 16\ntiming:\n  fall_interval_ms: 300\nscoring:\n  line_score: 40\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}

	expected := TetrisConfig{
		Board:   BoardConfig{Width: 8, Height: 16},
		Timing:  TimingConfig{FallIntervalMs: 300},
		Scoring: ScoringConfig{LineScore: 40},
	}
	if cfg != expected {
		t.Errorf("LoadTetris() = %+v, expected %+v", cfg, expected)
	}
}

func TestLoadTetrisMissingCustomPath(t *testing.T) {
	_, err := LoadTetris(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing custom config")
	}
	if !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	in := DefaultTetrisConfig()
	in.Board.Width = 14

	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "fall_interval_ms: 500") {
		t.Errorf("marshalled YAML missing timing key:\n%s", data)
	}

	out, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v, expected %+v", out, in)
	}
}
