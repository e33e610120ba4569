package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpawnCentersOnTopRow(t *testing.T) {
	tests := []struct {
		kind  Kind
		width int
		wantX int
	}{
		{KindO, 10, 4},
		{KindI, 10, 3},
		{KindT, 10, 4},
		{KindJ, 15, 6},
	}

	for _, tc := range tests {
		p := Spawn(ShapeOf(tc.kind), tc.width)
		assert.Equal(t, tc.wantX, p.X, "kind %s width %d", tc.kind, tc.width)
		assert.Equal(t, 0, p.Y)
	}
}

func TestTranslateIsUnconditional(t *testing.T) {
	p := SpawnAt(ShapeOf(KindO), 0, 0)
	p.Translate(-5, -5)
	assert.Equal(t, -5, p.X)
	assert.Equal(t, -5, p.Y)
}

func TestRotatedDoesNotMutate(t *testing.T) {
	p := SpawnAt(ShapeOf(KindS), 2, 3)
	candidate := p.Rotated()

	assert.True(t, p.Matrix.Equal(ShapeOf(KindS).Matrix))
	assert.Equal(t, 3, candidate.Rows())

	p.Rotate()
	assert.True(t, p.Matrix.Equal(candidate))
	assert.Equal(t, 2, p.X)
	assert.Equal(t, 3, p.Y)
}

func TestPieceCells(t *testing.T) {
	p := SpawnAt(ShapeOf(KindT), 3, 5)
	assert.ElementsMatch(t, []Point{{4, 5}, {3, 6}, {4, 6}, {5, 6}}, p.Cells())
}

func TestCloneSharesNoStorage(t *testing.T) {
	p := SpawnAt(ShapeOf(KindZ), 0, 0)
	c := p.Clone()
	c.Matrix[0][0] = false
	assert.True(t, p.Matrix[0][0])
}
