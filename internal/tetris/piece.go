package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Point is a grid coordinate; Y grows downward.
type Point struct {
	X, Y int
}

// Piece is a shape instance placed on the grid.
// X and Y locate the top-left corner of its matrix.
type Piece struct {
	Kind   Kind
	X, Y   int
	Matrix Matrix
	Color  core.Color
}

// Spawn places a shape centered horizontally on the top row of a board
// boardWidth columns wide. The position is not validated.
func Spawn(s Shape, boardWidth int) Piece {
	return SpawnAt(s, boardWidth/2-s.Matrix.Cols()/2, 0)
}

// SpawnAt places a shape with its origin at (x, y). The position is not validated.
func SpawnAt(s Shape, x, y int) Piece {
	return Piece{
		Kind:   s.Kind,
		X:      x,
		Y:      y,
		Matrix: s.Matrix.Clone(),
		Color:  s.Color,
	}
}

// Translate moves the origin by (dx, dy). Callers check legality first.
func (p *Piece) Translate(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// Rotated returns the candidate matrix after a 90 degree turn without
// touching the piece.
func (p Piece) Rotated() Matrix {
	return p.Matrix.Rotate()
}

// Rotate replaces the matrix with its 90 degree rotation. There is no undo;
// callers that need to back out keep the previous matrix or use WithMatrix.
func (p *Piece) Rotate() {
	p.Matrix = p.Matrix.Rotate()
}

// WithMatrix returns a copy of the piece carrying a different matrix.
func (p Piece) WithMatrix(m Matrix) Piece {
	p.Matrix = m
	return p
}

// Cells returns the absolute coordinates of every occupied sub-cell.
func (p Piece) Cells() []Point {
	pts := make([]Point, 0, 4)
	for row, line := range p.Matrix {
		for col, filled := range line {
			if filled {
				pts = append(pts, Point{X: p.X + col, Y: p.Y + row})
			}
		}
	}
	return pts
}

// Clone returns a deep copy that shares no matrix storage.
func (p Piece) Clone() Piece {
	p.Matrix = p.Matrix.Clone()
	return p
}
