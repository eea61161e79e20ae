package perm

import (
	"fmt"
	"strings"
)

// Index is a leaf position. The intended leaf counts for this engine are
// small enough that 16 bits suffice.
type Index uint16

// Permutation is a finite permutation of [0, Len()), implicitly extended
// to the identity for any index beyond Len(). The zero value is the
// identity permutation of length 0.
type Permutation struct {
	images []Index
}

// Identity returns the empty permutation, which acts as the identity at
// every index.
func Identity() Permutation {
	return Permutation{}
}

// IdentityOfLen returns the identity permutation with an explicit image
// array of length n (images[i] == i), as opposed to Identity's implicit
// zero-length representation. Both behave identically under Apply;
// IdentityOfLen exists so callers that need Len() to reflect a specific
// leaf count (e.g. an identity TermMap over an n-leaf term) can get it.
func IdentityOfLen(n int) Permutation {
	images := make([]Index, n)
	for i := range images {
		images[i] = Index(i)
	}
	return Permutation{images: images}
}

// New builds a permutation directly from its image array: images[i] is
// where i is sent. The caller must ensure images is a bijection on
// [0, len(images)); New does not validate this.
func New(images []Index) Permutation {
	cp := make([]Index, len(images))
	copy(cp, images)
	return Permutation{images: cp}
}

// Len returns the length of the explicit image array. Indices at or
// beyond Len are fixed points.
func (p Permutation) Len() int {
	return len(p.images)
}

// Apply returns π(i).
func (p Permutation) Apply(i Index) Index {
	if int(i) >= len(p.images) {
		return i
	}
	return p.images[i]
}

// Images returns the underlying image array. The returned slice must not
// be mutated by the caller.
func (p Permutation) Images() []Index {
	return p.images
}

// Inverse returns π⁻¹, running in O(n).
func (p Permutation) Inverse() Permutation {
	inv := make([]Index, len(p.images))
	for i, v := range p.images {
		inv[v] = Index(i)
	}
	return Permutation{images: inv}
}

// Compose returns π∘σ, defined by (π∘σ)(i) = σ(π(i)). The result's length
// is max(π.Len(), σ.Len()); entries beyond an operand's own length are
// materialized as the identity on that operand before composing.
func (p Permutation) Compose(sigma Permutation) Permutation {
	n := len(p.images)
	if len(sigma.images) > n {
		n = len(sigma.images)
	}
	if n == 0 {
		return Identity()
	}
	images := make([]Index, n)
	for i := 0; i < n; i++ {
		images[i] = sigma.Apply(p.Apply(Index(i)))
	}
	return Permutation{images: images}
}

// NonFixedPoint returns the first i with π(i) ≠ i, and false if π is the
// identity.
func (p Permutation) NonFixedPoint() (Index, bool) {
	for i, v := range p.images {
		if Index(i) != v {
			return Index(i), true
		}
	}
	return 0, false
}

// IsIdentity reports whether π fixes every index.
func (p Permutation) IsIdentity() bool {
	_, ok := p.NonFixedPoint()
	return !ok
}

// Equal reports whether p and other define the same permutation, treating
// trailing fixed points as insignificant.
func (p Permutation) Equal(other Permutation) bool {
	n := p.Len()
	if other.Len() > n {
		n = other.Len()
	}
	for i := 0; i < n; i++ {
		if p.Apply(Index(i)) != other.Apply(Index(i)) {
			return false
		}
	}
	return true
}

// String renders p in cycle notation, e.g. "(0 2 1)(3 4)", or "()" for the
// identity.
func (p Permutation) String() string {
	if len(p.images) == 0 {
		return "()"
	}
	visited := make([]bool, len(p.images))
	var sb strings.Builder
	identity := true
	for start := range p.images {
		if visited[start] {
			continue
		}
		visited[start] = true
		next := p.images[start]
		if int(next) == start {
			continue
		}
		identity = false
		sb.WriteString(fmt.Sprintf("(%d", start))
		for int(next) != start {
			visited[next] = true
			sb.WriteString(fmt.Sprintf(" %d", next))
			next = p.Apply(next)
		}
		sb.WriteString(")")
	}
	if identity {
		return "()"
	}
	return sb.String()
}
