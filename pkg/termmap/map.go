package termmap

import (
	"fmt"

	"github.com/finn-rudolph/binrewrite/pkg/perm"
	"github.com/finn-rudolph/binrewrite/pkg/term"
)

// Map is the triple (source term, target term, π): π is a
// permutation of [0, n) where n is the shared leaf count of source and
// target, read as "the i-th leaf of source corresponds to the π(i)-th
// leaf of target". Every Map constructed by this package is, by
// construction, a bijection on leaves.
type Map struct {
	source, target *term.Term
	perm           perm.Permutation
}

// New builds a Map directly from its three components. The caller is
// responsible for source.LeafCount() == target.LeafCount() and for p
// being a genuine permutation of that leaf count; New does not validate
// either.
func New(source, target *term.Term, p perm.Permutation) Map {
	return Map{source: source, target: target, perm: p}
}

// Identity returns the identity map (t, t, id) over t's leaves.
func Identity(t *term.Term) Map {
	return Map{source: t, target: t, perm: perm.IdentityOfLen(t.LeafCount())}
}

// Source returns the map's source term.
func (m Map) Source() *term.Term { return m.source }

// Target returns the map's target term.
func (m Map) Target() *term.Term { return m.target }

// Apply returns the target-leaf index corresponding to source-leaf index i.
func (m Map) Apply(i perm.Index) perm.Index { return m.perm.Apply(i) }

// ToPermutation discards the source/target labels and returns the
// underlying permutation.
func (m Map) ToPermutation() perm.Permutation { return m.perm }

// Compose returns self · other = (self.source, other.target, π₂∘π₁).
// It is defined only when self.target and other.source are structurally
// equal; otherwise it returns an error.
func (m Map) Compose(other Map) (Map, error) {
	if !term.Equal(m.target, other.source) {
		return Map{}, fmt.Errorf("Map.Compose: target of self does not match source of other")
	}
	return Map{
		source: m.source,
		target: other.target,
		perm:   m.perm.Compose(other.perm),
	}, nil
}

// Inverse returns (target, source, π⁻¹).
func (m Map) Inverse() Map {
	return Map{source: m.target, target: m.source, perm: m.perm.Inverse()}
}

// Bijection pairs a Map with its cached inverse. Every Map in this
// engine is semantically a bijection already; Bijection exists purely
// so the inverse need not be recomputed on every use (composing around
// a union-find path, for instance, repeatedly needs both directions).
type Bijection struct {
	forward Map
	inverse Map
}

// NewBijection wraps m, computing and caching its inverse.
func NewBijection(m Map) Bijection {
	return Bijection{forward: m, inverse: m.Inverse()}
}

// Forward returns the wrapped Map.
func (b Bijection) Forward() Map { return b.forward }

// Backward returns the cached inverse Map.
func (b Bijection) Backward() Map { return b.inverse }

// Source returns the forward map's source term.
func (b Bijection) Source() *term.Term { return b.forward.source }

// Target returns the forward map's target term.
func (b Bijection) Target() *term.Term { return b.forward.target }

// Invert swaps forward and backward, returning a new Bijection over the
// same pair of terms read in the opposite direction.
func (b Bijection) Invert() Bijection {
	return Bijection{forward: b.inverse, inverse: b.forward}
}

// Compose composes the forward maps of self and other, requiring
// self.Target() and other.Source() to match structurally (see
// Map.Compose).
func (b Bijection) Compose(other Bijection) (Bijection, error) {
	composed, err := b.forward.Compose(other.forward)
	if err != nil {
		return Bijection{}, err
	}
	return NewBijection(composed), nil
}

// ToPermutation discards source/target labels and returns the
// forward map's underlying permutation. This is how an automorphism
// generator is extracted from a cycle-closing map whose source and
// target happen to be the same term.
func (b Bijection) ToPermutation() perm.Permutation { return b.forward.perm }
