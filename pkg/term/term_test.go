package term_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finn-rudolph/binrewrite/pkg/term"
)

func TestArenaInternsStructurallyEqualBranches(t *testing.T) {
	arena := term.NewArena()
	leaf := arena.Leaf()

	a := arena.Branch(leaf, leaf)
	b := arena.Branch(leaf, leaf)
	assert.Same(t, a, b)

	c := arena.Branch(a, leaf)
	d := arena.Branch(arena.Branch(leaf, leaf), leaf)
	assert.Same(t, c, d)
}

func TestLeafCountPropagates(t *testing.T) {
	arena := term.NewArena()
	leaf := arena.Leaf()
	branch := arena.Branch(arena.Branch(leaf, leaf), leaf)
	assert.Equal(t, 3, branch.LeafCount())
}

func TestEqualAcrossArenas(t *testing.T) {
	a1 := term.NewArena()
	a2 := term.NewArena()

	t1 := a1.Branch(a1.Branch(a1.Leaf(), a1.Leaf()), a1.Leaf())
	t2 := a2.Branch(a2.Branch(a2.Leaf(), a2.Leaf()), a2.Leaf())

	require.NotSame(t, t1, t2)
	assert.True(t, term.Equal(t1, t2))
}

func TestNotEqualDifferentShape(t *testing.T) {
	a := term.NewArena()
	left := a.Branch(a.Branch(a.Leaf(), a.Leaf()), a.Leaf())
	right := a.Branch(a.Leaf(), a.Branch(a.Leaf(), a.Leaf()))
	assert.False(t, term.Equal(left, right))
}

func TestStringRendering(t *testing.T) {
	a := term.NewArena()
	leaf := a.Leaf()
	tr := a.Branch(a.Branch(leaf, leaf), leaf)
	assert.Equal(t, "((0 * 1) * 2)", tr.String())
	assert.Equal(t, "0", leaf.String())
}

func TestWalkLeavesOrderAndIndex(t *testing.T) {
	a := term.NewArena()
	leaf := a.Leaf()
	tr := a.Branch(a.Branch(leaf, leaf), leaf)

	var indices []int
	term.WalkLeaves(tr, func(_ *term.Term, index int) {
		indices = append(indices, index)
	})
	assert.Equal(t, []int{0, 1, 2}, indices)
}

func TestCountedReplaceLeavesRebuildsWithSameShape(t *testing.T) {
	a := term.NewArena()
	leaf := a.Leaf()
	tr := a.Branch(a.Branch(leaf, leaf), leaf)

	result := term.CountedReplaceLeaves(tr, a, func(_ *term.Term, index int) *term.Term {
		// replace every leaf with a 2-leaf branch; the outer shape is kept, so the leaf count doubles
		return a.Branch(leaf, leaf)
	})
	assert.Equal(t, 6, result.LeafCount())
}

func TestReduceComputesLeafCount(t *testing.T) {
	a := term.NewArena()
	leaf := a.Leaf()
	tr := a.Branch(a.Branch(leaf, leaf), leaf)

	count := term.Reduce(tr,
		func(*term.Term) int { return 1 },
		func(_ *term.Term, l, r int) int { return l + r },
	)
	assert.Equal(t, 3, count)
}
