package tetris

// IsIllegal reports whether the piece, shifted by (dx, dy), would leave the
// board or overlap a filled cell. It has no side effects.
func IsIllegal(p Piece, b *Board, dx, dy int) bool {
	for row, line := range p.Matrix {
		for col, filled := range line {
			if !filled {
				continue
			}
			x := p.X + col + dx
			y := p.Y + row + dy
			if !b.InBounds(x, y) {
				return true
			}
			if b.Occupied(x, y) {
				return true
			}
		}
	}
	return false
}

// Fits is the negation of IsIllegal at the piece's current position.
func Fits(p Piece, b *Board) bool {
	return !IsIllegal(p, b, 0, 0)
}
