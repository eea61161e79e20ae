// Package rewrite implements Substitute: given a host term, a
// node within it that is the root of a structural embedding of a rule's
// left-hand shape, and the rule's leaf bijection, produce the term that
// results from replacing that subtree with the rule's right-hand shape,
// filling each of its leaves with whichever host subterm the bijection
// says belongs there.
package rewrite
