package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finn-rudolph/binrewrite/pkg/perm"
	"github.com/finn-rudolph/binrewrite/pkg/rewrite"
	"github.com/finn-rudolph/binrewrite/pkg/term"
	"github.com/finn-rudolph/binrewrite/pkg/termmap"
)

// commutativityMap builds the (a*b, b*a, swap) rule map: a two-leaf
// pattern and a two-leaf target related by the transposition (0 1).
func commutativityMap(arena *term.Arena) termmap.Map {
	leaf := arena.Leaf()
	pattern := arena.Branch(leaf, leaf)
	rhs := arena.Branch(leaf, leaf)
	return termmap.New(pattern, rhs, perm.New([]perm.Index{1, 0}))
}

func TestSubstituteSwapsAtRoot(t *testing.T) {
	arena := term.NewArena()
	leaf := arena.Leaf()
	x := arena.Branch(leaf, leaf) // a 2-leaf subterm, distinguishable by shape
	y := leaf                     // a 1-leaf subterm

	host := arena.Branch(x, y)
	ruleMap := commutativityMap(arena)

	result, backward := rewrite.Substitute(arena, host, host, ruleMap)

	expected := arena.Branch(y, x)
	assert.True(t, term.Equal(expected, result))
	assert.Same(t, host, backward.Source())
	assert.Same(t, result, backward.Target())
	assert.Equal(t, host.LeafCount(), result.LeafCount())
}

func TestSubstituteAtNestedSite(t *testing.T) {
	arena := term.NewArena()
	leaf := arena.Leaf()
	x := arena.Branch(leaf, leaf)
	y := leaf
	z := arena.Branch(leaf, arena.Branch(leaf, leaf))

	inner := arena.Branch(x, y)
	host := arena.Branch(inner, z)
	ruleMap := commutativityMap(arena)

	result, backward := rewrite.Substitute(arena, host, inner, ruleMap)

	expected := arena.Branch(arena.Branch(y, x), z)
	assert.True(t, term.Equal(expected, result))
	assert.Equal(t, host.LeafCount(), result.LeafCount())
	assert.Equal(t, host.LeafCount(), backward.ToPermutation().Len())
}

func TestSubstituteBackwardMapIsWellFormedPermutation(t *testing.T) {
	arena := term.NewArena()
	leaf := arena.Leaf()
	x := arena.Branch(leaf, leaf)
	y := arena.Branch(leaf, leaf)
	host := arena.Branch(x, y)
	ruleMap := commutativityMap(arena)

	_, backward := rewrite.Substitute(arena, host, host, ruleMap)

	seen := make(map[perm.Index]bool)
	n := backward.ToPermutation().Len()
	for i := 0; i < n; i++ {
		img := backward.Apply(perm.Index(i))
		require.False(t, seen[img], "backward map is not injective")
		seen[img] = true
	}
	assert.Len(t, seen, n)
}

func TestSubstituteOnIdentityRuleIsNoOp(t *testing.T) {
	arena := term.NewArena()
	leaf := arena.Leaf()
	host := arena.Branch(leaf, leaf)
	id := termmap.Identity(host)

	result, _ := rewrite.Substitute(arena, host, host, id)
	assert.True(t, term.Equal(host, result))
}

func TestSubstitutePanicsWhenPatternNotEmbedded(t *testing.T) {
	arena := term.NewArena()
	leaf := arena.Leaf()
	pattern := arena.Branch(arena.Branch(leaf, leaf), leaf) // needs depth 2 on the left
	rhs := arena.Branch(leaf, arena.Branch(leaf, leaf))
	ruleMap := termmap.New(pattern, rhs, perm.IdentityOfLen(3))

	host := arena.Branch(leaf, leaf) // too shallow
	assert.Panics(t, func() {
		rewrite.Substitute(arena, host, host, ruleMap)
	})
}
