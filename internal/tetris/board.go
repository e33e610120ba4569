package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Cell is one board position: empty, or filled with a color.
type Cell struct {
	Filled bool
	Color  core.Color
}

// Board is the fixed grid of settled cells, stored as an ordered slice of
// rows from top (index 0) to bottom.
type Board struct {
	width  int
	height int
	rows   [][]Cell
}

// NewBoard creates an empty board. Dimensions are validated by the session.
func NewBoard(width, height int) *Board {
	b := &Board{
		width:  width,
		height: height,
		rows:   make([][]Cell, height),
	}
	for y := range b.rows {
		b.rows[y] = make([]Cell, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// InBounds returns true if (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the cell at (x, y), or an empty cell if out of bounds.
func (b *Board) At(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{}
	}
	return b.rows[y][x]
}

// Occupied returns true if (x, y) is on the board and filled.
func (b *Board) Occupied(x, y int) bool {
	return b.At(x, y).Filled
}

// Set fills (x, y) with a color. Out-of-bounds writes are ignored.
func (b *Board) Set(x, y int, c core.Color) {
	if b.InBounds(x, y) {
		b.rows[y][x] = Cell{Filled: true, Color: c}
	}
}

// Fill occupies every cell of row y.
func (b *Board) Fill(y int, c core.Color) {
	for x := 0; x < b.width; x++ {
		b.Set(x, y, c)
	}
}

// Lock copies the piece's occupied cells into the board.
// The piece position must already be legal.
func (b *Board) Lock(p Piece) {
	for _, pt := range p.Cells() {
		b.Set(pt.X, pt.Y, p.Color)
	}
}

// RowFull returns true if every cell of row y is filled.
func (b *Board) RowFull(y int) bool {
	for _, c := range b.rows[y] {
		if !c.Filled {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, shifting the rows above it down and
// inserting an empty row at the top, and returns how many rows went.
//
// The scan runs bottom to top and only moves up when the current row stays;
// after a removal the same index holds the row that was above it and is
// checked again.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for y := b.height - 1; y >= 0; {
		if !b.RowFull(y) {
			y--
			continue
		}
		b.removeRow(y)
		cleared++
	}
	return cleared
}

// removeRow deletes row y and pushes a fresh empty row on top.
func (b *Board) removeRow(y int) {
	rows := make([][]Cell, 0, b.height)
	rows = append(rows, make([]Cell, b.width))
	rows = append(rows, b.rows[:y]...)
	rows = append(rows, b.rows[y+1:]...)
	b.rows = rows
}

// FilledCount returns the number of filled cells.
func (b *Board) FilledCount() int {
	n := 0
	for _, row := range b.rows {
		for _, c := range row {
			if c.Filled {
				n++
			}
		}
	}
	return n
}

// BoardSnapshot is a read-only copy of the board for renderers and tests.
type BoardSnapshot struct {
	Width  int
	Height int
	Cells  [][]Cell // [row][col], top row first
}

// At returns the cell at (x, y), or an empty cell if out of bounds.
func (s BoardSnapshot) At(x, y int) Cell {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return Cell{}
	}
	return s.Cells[y][x]
}

// Snapshot returns a deep copy of the board.
func (b *Board) Snapshot() BoardSnapshot {
	cells := make([][]Cell, b.height)
	for y, row := range b.rows {
		cells[y] = append([]Cell(nil), row...)
	}
	return BoardSnapshot{Width: b.width, Height: b.height, Cells: cells}
}
