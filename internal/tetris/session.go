package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Default session parameters.
const (
	DefaultWidth        = 10
	DefaultHeight       = 20
	DefaultFallInterval = 500 * time.Millisecond
	DefaultLineScore    = 100
)

// Config holds the fixed parameters of a session.
type Config struct {
	Width        int           // Board columns
	Height       int           // Board rows
	FallInterval time.Duration // Time between forced one-row descents
	LineScore    int           // Points per cleared row
	Seed         int64         // Seed for the shape sequence
}

// DefaultConfig returns the classic 10x20 setup.
func DefaultConfig() Config {
	return Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		FallInterval: DefaultFallInterval,
		LineScore:    DefaultLineScore,
	}
}

// Validate checks that the parameters describe a usable grid.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return &ConfigError{Field: "width", Value: c.Width, Reason: "must be positive"}
	}
	if c.Height <= 0 {
		return &ConfigError{Field: "height", Value: c.Height, Reason: "must be positive"}
	}
	if c.FallInterval <= 0 {
		return &ConfigError{Field: "fall_interval", Value: c.FallInterval, Reason: "must be positive"}
	}
	if c.LineScore < 0 {
		return &ConfigError{Field: "line_score", Value: c.LineScore, Reason: "must not be negative"}
	}
	return nil
}

// Event is a discrete player request consumed by Tick.
type Event uint8

const (
	EventMoveLeft Event = iota
	EventMoveRight
	EventSoftDrop
	EventRotate
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventMoveLeft:
		return "MoveLeft"
	case EventMoveRight:
		return "MoveRight"
	case EventSoftDrop:
		return "SoftDrop"
	case EventRotate:
		return "Rotate"
	default:
		return "Unknown"
	}
}

// EventFromAction maps a platform action to a session event.
// The second result is false for actions the session does not consume.
func EventFromAction(a core.Action) (Event, bool) {
	switch a {
	case core.ActionMoveLeft:
		return EventMoveLeft, true
	case core.ActionMoveRight:
		return EventMoveRight, true
	case core.ActionSoftDrop:
		return EventSoftDrop, true
	case core.ActionRotate:
		return EventRotate, true
	default:
		return 0, false
	}
}

// State is the session lifecycle state.
type State string

const (
	StateRunning  State = "running"
	StateGameOver State = "game_over"
)

// Session owns the board, the falling piece, the preview and the score.
// It is driven by Tick from a single goroutine and holds no locks.
type Session struct {
	cfg   Config
	rng   *rand.Rand
	board *Board

	current Piece
	next    Shape

	score  int
	lines  int
	pieces int

	fallAcc time.Duration
	tick    uint64
	state   State
}

// NewSession validates cfg and starts a game. If the very first piece does not
// fit, the session starts in StateGameOver.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		board: NewBoard(cfg.Width, cfg.Height),
		state: StateRunning,
	}
	s.current = Spawn(RandomShape(s.rng), cfg.Width)
	s.next = RandomShape(s.rng)

	if IsIllegal(s.current, s.board, 0, 0) {
		s.state = StateGameOver
	}
	return s, nil
}

// Tick advances the session: it adds elapsed to the fall accumulator, applies
// every event in order, and then performs at most one gravity step.
// Once the session is over Tick changes nothing and returns the final snapshot.
func (s *Session) Tick(elapsed time.Duration, events []Event) Snapshot {
	if s.state == StateGameOver {
		return s.Snapshot()
	}

	s.tick++
	s.fallAcc += elapsed

	for _, ev := range events {
		s.apply(ev)
	}

	if s.fallAcc >= s.cfg.FallInterval {
		s.fallAcc = 0
		s.fall()
	}

	return s.Snapshot()
}

// apply handles one player event. Illegal requests are dropped silently.
func (s *Session) apply(ev Event) {
	switch ev {
	case EventMoveLeft:
		s.tryShift(-1, 0)
	case EventMoveRight:
		s.tryShift(1, 0)
	case EventSoftDrop:
		s.tryShift(0, 1)
	case EventRotate:
		s.tryRotate()
	}
}

func (s *Session) tryShift(dx, dy int) bool {
	if IsIllegal(s.current, s.board, dx, dy) {
		return false
	}
	s.current.Translate(dx, dy)
	return true
}

// tryRotate tests the rotated matrix at the unchanged origin and commits it
// only if it fits. No wall kicks.
func (s *Session) tryRotate() bool {
	candidate := s.current.WithMatrix(s.current.Rotated())
	if IsIllegal(candidate, s.board, 0, 0) {
		return false
	}
	s.current = candidate
	return true
}

// fall moves the piece down one row or, if it cannot move, locks it.
func (s *Session) fall() {
	if s.tryShift(0, 1) {
		return
	}
	s.lockAndAdvance()
}

// lockAndAdvance settles the current piece, clears rows, scores them and
// brings in the preview piece. A preview that cannot spawn ends the game.
func (s *Session) lockAndAdvance() {
	s.board.Lock(s.current)
	s.pieces++

	cleared := s.board.ClearFullRows()
	s.lines += cleared
	s.score += cleared * s.cfg.LineScore

	s.current = Spawn(s.next, s.cfg.Width)
	s.next = RandomShape(s.rng)

	if IsIllegal(s.current, s.board, 0, 0) {
		s.state = StateGameOver
	}
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// GameOver reports whether the session has ended.
func (s *Session) GameOver() bool {
	return s.state == StateGameOver
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Config returns the parameters the session was built with.
func (s *Session) Config() Config {
	return s.cfg
}
