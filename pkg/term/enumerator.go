package term

import "iter"

// Enumerator produces every structurally distinct binary term with a
// given leaf count: a tree with one leaf is the leaf itself; a tree
// with k > 1 leaves is, for every split k = kl + kr (kl, kr ≥ 1), a
// branch of some kl-leaf tree and some kr-leaf tree. Shapes for each
// leaf count are computed once and cached, bottom-up, so that All's
// external laziness (a caller may stop consuming at any point) never
// costs recomputation internally; the caller sees a lazy, finite,
// single-pass sequence of terms, built underneath by ordinary
// recursive calls over the leaf-count cache.
type Enumerator struct {
	arena *Arena
	cache map[int][]*Term
}

// NewEnumerator creates an enumerator that interns every shape it
// produces into arena, so results compose directly with the pattern
// index and substitution, which rely on arena-interned terms for
// pointer-identity match-site checks.
func NewEnumerator(arena *Arena) *Enumerator {
	return &Enumerator{arena: arena, cache: make(map[int][]*Term)}
}

// Shapes returns every structurally distinct term with exactly n leaves,
// in a deterministic (cached, first-computed) order.
func (e *Enumerator) Shapes(n int) []*Term {
	if n <= 0 {
		return nil
	}
	if cached, ok := e.cache[n]; ok {
		return cached
	}
	var result []*Term
	if n == 1 {
		result = []*Term{e.arena.Leaf()}
	} else {
		for kl := 1; kl < n; kl++ {
			kr := n - kl
			lefts := e.Shapes(kl)
			rights := e.Shapes(kr)
			for _, l := range lefts {
				for _, r := range rights {
					result = append(result, e.arena.Branch(l, r))
				}
			}
		}
	}
	e.cache[n] = result
	return result
}

// All returns a lazy, single-pass sequence of every term with leaf count
// in [1, maxLeaves], grouped in increasing leaf-count order. The
// sequence is a standard iter.Seq: a consuming range loop may stop early
// without the remainder ever being produced.
func (e *Enumerator) All(maxLeaves int) iter.Seq[*Term] {
	return func(yield func(*Term) bool) {
		for k := 1; k <= maxLeaves; k++ {
			for _, t := range e.Shapes(k) {
				if !yield(t) {
					return
				}
			}
		}
	}
}
