package rewrite

import (
	"github.com/finn-rudolph/binrewrite/pkg/perm"
	"github.com/finn-rudolph/binrewrite/pkg/term"
	"github.com/finn-rudolph/binrewrite/pkg/termmap"
)

// replacement is a clone of the host subterm standing in for one leaf of
// ruleMap's source, together with the slab of fresh leaf indices [start,
// end) it occupies when all such clones are laid out end to end in
// source-leaf order.
type replacement struct {
	tree       *term.Term
	start, end int
}

// Substitute rewrites host at matchRoot by splicing ruleMap's target
// shape into the position matchRoot occupies, with ruleMap's source
// required to be structurally embedded at matchRoot (typically because
// matchRoot came out of a pattern.Index built from ruleMap.Source()).
// Each leaf of ruleMap's target is filled in by a copy of the host
// subterm that ruleMap's permutation says corresponds to it. Substitute
// returns the new term together with a Map from host to the new term:
// the i-th leaf of host corresponds to the π(i)-th leaf of the new term.
//
// Substitute panics if ruleMap.Source() is not in fact embedded at
// matchRoot; that is a programmer error, never a recoverable condition.
func Substitute(arena *term.Arena, host, matchRoot *term.Term, ruleMap termmap.Map) (*term.Term, termmap.Map) {
	var replacements []replacement
	next := 0

	term.Propagate(ruleMap.Source(), matchRoot,
		func(_ *term.Term, embeddedNode *term.Term) (*term.Term, *term.Term) {
			l, r, ok := embeddedNode.Children()
			if !ok {
				panic("rewrite.Substitute: ruleMap.Source() is not embedded at matchRoot")
			}
			return l, r
		},
		func(_ *term.Term, embeddedNode *term.Term) {
			size := embeddedNode.LeafCount()
			replacements = append(replacements, replacement{
				tree:  embeddedNode,
				start: next,
				end:   next + size,
			})
			next += size
		},
	)

	backward := ruleMap.Inverse()
	var computed []perm.Index
	resultLeafIndex := 0

	result := insertReplacements(arena, host, matchRoot, replacements, backward, &resultLeafIndex, &computed)

	resultBackward := termmap.New(result, host, perm.New(computed))
	return result, resultBackward.Inverse()
}

// insertReplacements rebuilds node (a subtree of the original host),
// replacing the occurrence of matchRoot within it by backward.Source()'s
// shape with replacements spliced in at its leaves, and leaves everything
// outside matchRoot a freshly-allocated (but otherwise identical) copy.
// leafIndex tracks how many leaves of the new tree have been emitted so
// far, which (because a rule's two sides always share the same leaf
// count) stays in lockstep with the corresponding position in the
// original host; computed accumulates, in new-tree leaf order, the host
// leaf index each new leaf is a copy of.
func insertReplacements(
	arena *term.Arena,
	node, matchRoot *term.Term,
	replacements []replacement,
	backward termmap.Map,
	leafIndex *int,
	computed *[]perm.Index,
) *term.Term {
	left, right, ok := node.Children()
	if !ok {
		*computed = append(*computed, perm.Index(*leafIndex))
		*leafIndex++
		return arena.Leaf()
	}

	if node == matchRoot {
		offset := *leafIndex
		return term.CountedReplaceLeaves(backward.Source(), arena,
			func(_ *term.Term, targetLeafIndex int) *term.Term {
				translated := int(backward.Apply(perm.Index(targetLeafIndex)))
				r := replacements[translated]
				for i := r.start; i < r.end; i++ {
					*computed = append(*computed, perm.Index(i+offset))
				}
				*leafIndex += r.end - r.start
				return r.tree
			},
		)
	}

	leftResult := insertReplacements(arena, left, matchRoot, replacements, backward, leafIndex, computed)
	rightResult := insertReplacements(arena, right, matchRoot, replacements, backward, leafIndex, computed)
	return arena.Branch(leftResult, rightResult)
}
