// Package tetris implements the falling-block puzzle simulation: the shape
// catalogue, pieces, the board, collision checks and the tick-driven session.
// Nothing in here draws, polls input or sleeps; the platform layer does that.
package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// KindCount is the number of shapes in the catalogue.
const KindCount = 7

// String returns the single-letter name of the shape.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Matrix is a rectangular occupancy grid, indexed [row][col].
type Matrix [][]bool

// Rows returns the number of rows.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

// Equal reports whether both matrices have the same dimensions and occupancy.
func (m Matrix) Equal(other Matrix) bool {
	if m.Rows() != other.Rows() || m.Cols() != other.Cols() {
		return false
	}
	for i := range m {
		for j := range m[i] {
			if m[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// Rotate returns the matrix turned by 90 degrees.
// An R x C source yields a C x R result with result[i][j] = source[R-1-j][i].
// The receiver is left untouched.
func (m Matrix) Rotate() Matrix {
	r, c := m.Rows(), m.Cols()
	out := make(Matrix, c)
	for i := range c {
		out[i] = make([]bool, r)
		for j := range r {
			out[i][j] = m[r-1-j][i]
		}
	}
	return out
}

// Count returns the number of occupied sub-cells.
func (m Matrix) Count() int {
	n := 0
	for _, row := range m {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// Shape is an immutable tetromino template.
type Shape struct {
	Kind   Kind
	Matrix Matrix
	Color  core.Color
}

// grid builds a matrix from rows of '#' (occupied) and '.' (empty).
func grid(rows ...string) Matrix {
	m := make(Matrix, len(rows))
	for i, row := range rows {
		m[i] = make([]bool, len(row))
		for j, ch := range row {
			m[i][j] = ch == '#'
		}
	}
	return m
}

var catalogue = [KindCount]Shape{
	KindI: {Kind: KindI, Matrix: grid("####"), Color: core.ColorCyan},
	KindJ: {Kind: KindJ, Matrix: grid("#..", "###"), Color: core.ColorBlue},
	KindL: {Kind: KindL, Matrix: grid("..#", "###"), Color: core.ColorOrange},
	KindO: {Kind: KindO, Matrix: grid("##", "##"), Color: core.ColorYellow},
	KindS: {Kind: KindS, Matrix: grid(".##", "##."), Color: core.ColorGreen},
	KindT: {Kind: KindT, Matrix: grid(".#.", "###"), Color: core.ColorMagenta},
	KindZ: {Kind: KindZ, Matrix: grid("##.", ".##"), Color: core.ColorRed},
}

// ShapeOf returns a copy of the template for the given kind.
// Unknown kinds fall back to the O piece.
func ShapeOf(k Kind) Shape {
	if int(k) >= KindCount {
		k = KindO
	}
	s := catalogue[k]
	s.Matrix = s.Matrix.Clone()
	return s
}

// RandomShape picks one of the seven templates uniformly.
func RandomShape(rng *rand.Rand) Shape {
	return ShapeOf(Kind(rng.Intn(KindCount)))
}

// Kinds returns every kind in catalogue order.
func Kinds() []Kind {
	return []Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}
}
