package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// PieceSnapshot is a read-only copy of a piece.
type PieceSnapshot struct {
	Kind   Kind
	X, Y   int
	Matrix Matrix
	Color  core.Color
}

// Cells returns the absolute coordinates of the occupied sub-cells.
func (p PieceSnapshot) Cells() []Point {
	return Piece(p).Cells()
}

func snapshotPiece(p Piece) PieceSnapshot {
	return PieceSnapshot(p.Clone())
}

// Snapshot captures the complete session state. Nothing in it aliases the
// live session, so renderers may keep it across ticks.
type Snapshot struct {
	Tick     uint64
	Board    BoardSnapshot
	Current  PieceSnapshot
	Next     PieceSnapshot // Placed at the origin it will spawn at
	Score    int
	Lines    int
	Pieces   int // Pieces locked so far
	State    State
	GameOver bool
}

// Snapshot returns a deep copy of the session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:     s.tick,
		Board:    s.board.Snapshot(),
		Current:  snapshotPiece(s.current),
		Next:     snapshotPiece(Spawn(s.next, s.cfg.Width)),
		Score:    s.score,
		Lines:    s.lines,
		Pieces:   s.pieces,
		State:    s.state,
		GameOver: s.state == StateGameOver,
	}
}
