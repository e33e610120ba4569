package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogueShapesHaveFourCells(t *testing.T) {
	for _, k := range Kinds() {
		s := ShapeOf(k)
		assert.Equal(t, k, s.Kind)
		assert.Equal(t, 4, s.Matrix.Count(), "shape %s", k)
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			orig := ShapeOf(k).Matrix
			m := orig
			for range 4 {
				m = m.Rotate()
			}
			assert.True(t, m.Equal(orig), "shape %s after four rotations:\n%v", k, m)
		})
	}
}

func TestRotateSwapsDimensions(t *testing.T) {
	i := ShapeOf(KindI).Matrix
	r := i.Rotate()
	assert.Equal(t, 4, r.Rows())
	assert.Equal(t, 1, r.Cols())
}

func TestRotateMapping(t *testing.T) {
	// result[i][j] = source[R-1-j][i]
	j := ShapeOf(KindJ).Matrix
	assert.True(t, j.Rotate().Equal(grid("##", "#.", "#.")), "got %v", j.Rotate())

	tee := ShapeOf(KindT).Matrix
	assert.True(t, tee.Rotate().Equal(grid("#.", "##", "#.")), "got %v", tee.Rotate())
}

func TestRotateLeavesSourceUntouched(t *testing.T) {
	s := ShapeOf(KindL).Matrix
	before := s.Clone()
	_ = s.Rotate()
	assert.True(t, s.Equal(before))
}

func TestShapeOfReturnsCopy(t *testing.T) {
	s := ShapeOf(KindO)
	s.Matrix[0][0] = false

	again := ShapeOf(KindO)
	assert.True(t, again.Matrix[0][0], "template must not be mutated through a copy")
}

func TestRandomShapeUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	counts := make(map[Kind]int)

	const draws = 7000
	for range draws {
		counts[RandomShape(rng).Kind]++
	}

	require.Len(t, counts, KindCount)
	for k, n := range counts {
		assert.InDelta(t, draws/KindCount, n, 200, "kind %s drawn %d times", k, n)
	}
}

func TestKindString(t *testing.T) {
	names := ""
	for _, k := range Kinds() {
		names += k.String()
	}
	assert.Equal(t, "IJLOSTZ", names)
	assert.Equal(t, "?", Kind(42).String())
}
