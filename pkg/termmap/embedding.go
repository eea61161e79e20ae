package termmap

import "github.com/finn-rudolph/binrewrite/pkg/term"

// Embedding records, for a pattern overlaid structurally onto a host
// subtree, which host subterm corresponds to each leaf of the pattern:
// images[i] is the host subterm standing in for the pattern's i-th leaf.
// This is the correspondence substitution needs in order to know what to
// copy out of the host before splicing in a rewrite's right-hand side.
type Embedding struct {
	pattern *term.Term
	images  []*term.Term
}

// FromEmbedding walks pattern and host in lockstep: every branch of
// pattern must coincide with a branch of host at the same position.
// Reaching a pattern leaf records the host subterm occupying that
// position. FromEmbedding panics if host's structure runs out before
// pattern's does — i.e. if pattern is not in fact embedded in host at
// this position — since that is a programmer error, not a recoverable
// runtime condition.
func FromEmbedding(pattern, host *term.Term) Embedding {
	var images []*term.Term
	term.Propagate(pattern, host,
		func(_ *term.Term, hostNode *term.Term) (*term.Term, *term.Term) {
			hl, hr, ok := hostNode.Children()
			if !ok {
				panic("termmap.FromEmbedding: pattern not embedded at this location")
			}
			return hl, hr
		},
		func(_ *term.Term, hostSub *term.Term) {
			images = append(images, hostSub)
		},
	)
	return Embedding{pattern: pattern, images: images}
}

// At returns the host subterm corresponding to the pattern's leafIndex-th
// leaf.
func (e Embedding) At(leafIndex int) *term.Term { return e.images[leafIndex] }

// Pattern returns the pattern term this embedding was built from.
func (e Embedding) Pattern() *term.Term { return e.pattern }

// Len returns the number of leaves in the pattern (equivalently, the
// number of recorded images).
func (e Embedding) Len() int { return len(e.images) }
