// Package term implements the shared-structure binary term algebra: an
// immutable tree of unlabelled leaves and branches, deduplicated by an
// Arena so that structural equality coincides with pointer equality, plus
// the generic bottom-up/top-down traversal primitives (Reduce, Propagate,
// CountedReplaceLeaves) every other package in this module builds on, and
// the lazy enumerator of all structurally distinct binary shapes up to a
// leaf-count cap.
package term
