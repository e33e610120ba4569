package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestIsIllegal(t *testing.T) {
	blocked := NewBoard(10, 20)
	blocked.Set(6, 1, core.ColorRed)
	blocked.Set(0, 0, core.ColorRed)

	empty := NewBoard(10, 20)

	tests := []struct {
		name   string
		board  *Board
		piece  Piece
		dx, dy int
		want   bool
	}{
		{"interior", empty, SpawnAt(ShapeOf(KindO), 4, 5), 0, 0, false},
		{"left wall", empty, SpawnAt(ShapeOf(KindO), 0, 5), -1, 0, true},
		{"touching left wall", empty, SpawnAt(ShapeOf(KindO), 0, 5), 0, 0, false},
		{"right wall", empty, SpawnAt(ShapeOf(KindO), 8, 5), 1, 0, true},
		{"touching right wall", empty, SpawnAt(ShapeOf(KindO), 8, 5), 0, 0, false},
		{"floor", empty, SpawnAt(ShapeOf(KindO), 4, 18), 0, 1, true},
		{"resting on floor", empty, SpawnAt(ShapeOf(KindO), 4, 18), 0, 0, false},
		{"above top", empty, SpawnAt(ShapeOf(KindO), 4, 0), 0, -1, true},
		{"vertical I past floor", empty, SpawnAt(ShapeOf(KindI), 0, 19).WithMatrix(ShapeOf(KindI).Matrix.Rotate()), 0, 0, true},
		{"occupied neighbour", blocked, SpawnAt(ShapeOf(KindO), 4, 0), 1, 0, true},
		{"next to occupied", blocked, SpawnAt(ShapeOf(KindO), 4, 0), 0, 0, false},
		{"empty sub-cell over filled cell", blocked, SpawnAt(ShapeOf(KindT), 0, 0), 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsIllegal(tc.piece, tc.board, tc.dx, tc.dy))
		})
	}
}

func TestIsIllegalHasNoSideEffects(t *testing.T) {
	b := NewBoard(10, 20)
	p := SpawnAt(ShapeOf(KindL), 3, 3)
	before := b.Snapshot()

	IsIllegal(p, b, 2, 2)

	assert.Equal(t, before, b.Snapshot())
	assert.Equal(t, 3, p.X)
	assert.Equal(t, 3, p.Y)
}

// TestIsIllegalMatchesCellCheck compares the oracle against a direct check of
// every occupied cell, for all shapes, orientations and a sweep of offsets on
// a randomly filled board.
func TestIsIllegalMatchesCellCheck(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	b := NewBoard(8, 12)
	for y := 6; y < 12; y++ {
		for x := range 8 {
			if rng.Intn(3) == 0 {
				b.Set(x, y, core.ColorGray)
			}
		}
	}

	for _, k := range Kinds() {
		m := ShapeOf(k).Matrix
		for range 4 {
			for y := -2; y < 13; y++ {
				for x := -2; x < 9; x++ {
					p := SpawnAt(Shape{Kind: k, Matrix: m}, x, y)
					for _, d := range [][2]int{{0, 0}, {-1, 0}, {1, 0}, {0, 1}} {
						want := false
						for _, pt := range p.Cells() {
							cx, cy := pt.X+d[0], pt.Y+d[1]
							if !b.InBounds(cx, cy) || b.Occupied(cx, cy) {
								want = true
							}
						}
						if got := IsIllegal(p, b, d[0], d[1]); got != want {
							t.Fatalf("%s at (%d,%d) offset %v: IsIllegal = %v, want %v", k, x, y, d, got, want)
						}
					}
				}
			}
			m = m.Rotate()
		}
	}
}

func TestSpawnOnFullTopRowsIsIllegal(t *testing.T) {
	b := NewBoard(10, 20)
	b.Fill(0, core.ColorRed)
	b.Fill(1, core.ColorRed)

	for _, k := range Kinds() {
		assert.True(t, IsIllegal(Spawn(ShapeOf(k), 10), b, 0, 0), "kind %s", k)
		assert.False(t, Fits(Spawn(ShapeOf(k), 10), b))
	}
}
