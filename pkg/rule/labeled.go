package rule

import "github.com/finn-rudolph/binrewrite/pkg/term"

// LabeledTerm is an intermediate parse tree that, unlike term.Term,
// still carries a letter at each leaf. It exists only to let the parser
// and MapTo reason about which leaves correspond across a rule's two
// sides before that information is thrown away into a bare term.Term
// and a permutation.
type LabeledTerm struct {
	label       string
	left, right *LabeledTerm
}

// IsLeaf reports whether lt is a leaf (carries a letter).
func (lt *LabeledTerm) IsLeaf() bool { return lt.left == nil }

// Label returns lt's letter and true if lt is a leaf, or ("", false)
// otherwise.
func (lt *LabeledTerm) Label() (string, bool) {
	if lt.IsLeaf() {
		return lt.label, true
	}
	return "", false
}

// Children returns lt's two subterms and true, or (nil, nil, false) if
// lt is a leaf.
func (lt *LabeledTerm) Children() (*LabeledTerm, *LabeledTerm, bool) {
	if lt.IsLeaf() {
		return nil, nil, false
	}
	return lt.left, lt.right, true
}

// Skeleton strips every letter, producing the bare term.Term of the
// same shape, interned in arena.
func (lt *LabeledTerm) Skeleton(arena *term.Arena) *term.Term {
	if lt.IsLeaf() {
		return arena.Leaf()
	}
	return arena.Branch(lt.left.Skeleton(arena), lt.right.Skeleton(arena))
}

// WalkLeaves visits lt's leaves' letters in left-to-right order.
func (lt *LabeledTerm) WalkLeaves(visit func(label string)) {
	if lt.IsLeaf() {
		visit(lt.label)
		return
	}
	lt.left.WalkLeaves(visit)
	lt.right.WalkLeaves(visit)
}
