package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// GameID is the registry identifier.
const GameID = "tetris"

// Package-level settings applied by the CLI before the game is created.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom YAML config file.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// LoadFileConfig resolves the package-level config path and preset into
// the effective YAML configuration.
func LoadFileConfig() (config.TetrisConfig, error) {
	preset, err := config.ParsePreset(difficultyPreset)
	if err != nil {
		return config.TetrisConfig{}, err
	}

	fc, err := config.LoadTetris(configPath)
	if err != nil {
		return config.TetrisConfig{}, err
	}
	config.ApplyTetrisPreset(&fc, preset)
	return fc, nil
}

// LoadConfig resolves the package-level config path and preset into
// validated session parameters.
func LoadConfig() (Config, error) {
	fc, err := LoadFileConfig()
	if err != nil {
		return Config{}, err
	}

	c := ConfigFromFile(fc)
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// ConfigFromFile converts the YAML configuration into session parameters.
func ConfigFromFile(fc config.TetrisConfig) Config {
	return Config{
		Width:        fc.Board.Width,
		Height:       fc.Board.Height,
		FallInterval: time.Duration(fc.Timing.FallIntervalMs) * time.Millisecond,
		LineScore:    fc.Scoring.LineScore,
	}
}

// Game adapts a Session to the platform's fixed-rate tick loop.
type Game struct {
	settings Config
	err      error // Config or construction failure, shown instead of the board

	session *Session
	last    Snapshot
	frame   time.Duration // Elapsed time fed to the session per platform tick

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New creates a game using the package-level config path and preset.
func New() *Game {
	settings, err := LoadConfig()
	return &Game{settings: settings, err: err}
}

// NewWithConfig creates a game with explicit session parameters.
// The seed in c is replaced by the runtime seed on Reset.
func NewWithConfig(c Config) *Game {
	return &Game{settings: c}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset discards any running session and starts a new one.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.frame = frameDuration(cfg.TickRate)
	g.paused = false
	g.session = nil
	g.last = Snapshot{}

	if g.err == nil {
		settings := g.settings
		settings.Seed = cfg.Seed
		s, err := NewSession(settings)
		if err != nil {
			g.err = err
		} else {
			g.session = s
			g.last = s.Snapshot()
		}
	}

	g.checkScreenSize()
}

// Resize follows a terminal resize without touching the session.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// frameDuration returns the wall time covered by one platform tick.
func frameDuration(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// checkScreenSize checks if the screen can hold the board and side panel.
func (g *Game) checkScreenSize() {
	w, h := g.settings.Width, g.settings.Height
	minW, minH := layoutSize(w, h)
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the session by one platform tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.last.GameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.last = g.session.Tick(g.frame, EventsFromFrame(in))
	return core.StepResult{State: g.State()}
}

// EventsFromFrame extracts the session events from an input frame, in order.
func EventsFromFrame(in core.InputFrame) []Event {
	actions := in.Actions()
	events := make([]Event, 0, len(actions))
	for _, a := range actions {
		if ev, ok := EventFromAction(a); ok {
			events = append(events, ev)
		}
	}
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.last.Score,
		GameOver: g.session == nil || g.last.GameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// Snapshot returns the most recent session snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.last
}

// Err returns the configuration error that prevented the game from starting.
func (g *Game) Err() error {
	return g.err
}
