package pattern

import "github.com/finn-rudolph/binrewrite/pkg/term"

// Index is the bottom-up fingerprint of a pattern term. Building one
// assigns every distinct (leftLabel, rightLabel) pair it encounters while
// folding the pattern a fresh label, label 0 being reserved for leaves;
// the pattern's own root ends up carrying some label k. Matches against a
// host term then re-runs the identical fold over the host, but carrying a
// *set* of labels at each node instead of a single one — a host node
// belongs to the pattern's match sites exactly when label k is in its set.
type Index struct {
	pattern   *term.Term
	table     map[labelPair]int
	rootLabel int
}

type labelPair struct {
	left, right int
}

// New builds an Index for pattern.
func New(pattern *term.Term) *Index {
	table := make(map[labelPair]int)
	root := term.Reduce(pattern,
		func(*term.Term) int { return 0 },
		func(_ *term.Term, left, right int) int {
			key := labelPair{left, right}
			if label, ok := table[key]; ok {
				return label
			}
			label := len(table) + 1
			table[key] = label
			return label
		},
	)
	return &Index{pattern: pattern, table: table, rootLabel: root}
}

// Pattern returns the term this Index was built from.
func (idx *Index) Pattern() *term.Term { return idx.pattern }

// Cardinality returns the number of distinct labels assigned while
// building the index, not counting the reserved leaf label 0.
func (idx *Index) Cardinality() int { return len(idx.table) }

// MatchSites returns every node of host that is the root of a structural
// embedding of idx's pattern, in post-order. A leaf of host can only be a
// match site if the pattern itself is a bare leaf.
func (idx *Index) MatchSites(host *term.Term) []*term.Term {
	var sites []*term.Term
	k := idx.rootLabel

	term.Reduce(host,
		func(leaf *term.Term) bitset {
			s := newBitset(k + 1)
			s.set(0)
			if k == 0 {
				sites = append(sites, leaf)
			}
			return s
		},
		func(node *term.Term, left, right bitset) bitset {
			result := newBitset(k + 1)
			result.set(0)
			for pair, label := range idx.table {
				if left.test(pair.left) && right.test(pair.right) {
					result.set(label)
					if label == k {
						sites = append(sites, node)
					}
				}
			}
			return result
		},
	)
	return sites
}
