package term_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finn-rudolph/binrewrite/pkg/term"
)

func TestShapesOneLeaf(t *testing.T) {
	e := term.NewEnumerator(term.NewArena())
	shapes := e.Shapes(1)
	require.Len(t, shapes, 1)
	assert.True(t, shapes[0].IsLeaf())
}

func TestShapesCatalanCounts(t *testing.T) {
	e := term.NewEnumerator(term.NewArena())
	// Catalan numbers C(n-1): 1, 1, 2, 5, 14 for n = 1..5 leaves.
	want := []int{1, 1, 2, 5, 14}
	for n, expected := range want {
		assert.Len(t, e.Shapes(n+1), expected, "n=%d", n+1)
	}
}

func TestShapesAllStructurallyDistinct(t *testing.T) {
	e := term.NewEnumerator(term.NewArena())
	shapes := e.Shapes(4)
	for i := range shapes {
		for j := range shapes {
			if i == j {
				continue
			}
			assert.False(t, term.Equal(shapes[i], shapes[j]), "shapes[%d] == shapes[%d]", i, j)
		}
	}
}

func TestAllYieldsInLeafCountOrderUpToMax(t *testing.T) {
	e := term.NewEnumerator(term.NewArena())
	var counts []int
	for tr := range e.All(3) {
		counts = append(counts, tr.LeafCount())
	}
	assert.Equal(t, []int{1, 2, 3, 3}, counts)
}

func TestAllStopsEarly(t *testing.T) {
	e := term.NewEnumerator(term.NewArena())
	n := 0
	for range e.All(4) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}
