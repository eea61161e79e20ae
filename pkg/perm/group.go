package perm

// Group is a node in a Schreier-Sims base/stabiliser chain: it represents
// a subgroup G ≤ S_n via a base point, the generators discovered so far
// at this level, a transversal (stored as the inverse of each coset
// representative, for fast membership checks), and a lazily-built
// stabiliser subgroup for the next base point.
//
// See https://en.wikipedia.org/wiki/Schreier%E2%80%93Sims_algorithm.
type Group struct {
	stabPoint      Index
	stabSubgroup   *Group
	generators     []Permutation
	transversalInv map[Index]Permutation
	orbit          []Index
}

// NewGroup creates an empty group stabilising stabPoint, i.e. the group
// containing only the identity, with stabPoint as its (only, so far)
// orbit element.
func NewGroup(stabPoint Index) *Group {
	return &Group{
		stabPoint:      stabPoint,
		transversalInv: map[Index]Permutation{stabPoint: Identity()},
		orbit:          []Index{stabPoint},
	}
}

// FromGenerators builds a group from an initial generator set. It returns
// nil if every generator is the identity (there is then no non-trivial
// group to represent). The base point is the first non-fixed index found
// across the generators, in order.
func FromGenerators(generators []Permutation) *Group {
	var base Index
	found := false
	for _, g := range generators {
		if idx, ok := g.NonFixedPoint(); ok {
			base = idx
			found = true
			break
		}
	}
	if !found {
		return nil
	}
	g := NewGroup(base)
	for _, gen := range generators {
		g.Extend(gen)
	}
	return g
}

// invCosetRepr returns t⁻¹ for the transversal representative t of orbit,
// or false if orbit is not (yet) known to be in the orbit of stabPoint.
func (g *Group) invCosetRepr(orbit Index) (Permutation, bool) {
	p, ok := g.transversalInv[orbit]
	return p, ok
}

// Contains answers a membership query by sifting perm down the base
// chain: at each level, multiply by the inverse of the coset
// representative for perm's image of the base point, then recurse into
// the stabiliser. At the deepest level, perm is a member iff the sifted
// remainder is the identity.
func (g *Group) Contains(p Permutation) bool {
	orbit := p.Apply(g.stabPoint)
	invRepr, ok := g.invCosetRepr(orbit)
	if !ok {
		return false
	}
	reduced := p.Compose(invRepr)
	if g.stabSubgroup != nil {
		return g.stabSubgroup.Contains(reduced)
	}
	return reduced.IsIdentity()
}

// Extend folds a new generator into the group. If the generator is
// already a member (or is the identity), it is a no-op. Otherwise it is
// appended to this level's generators and the orbit is extended:
// existing orbit elements are re-propagated under the new generator, and
// every newly-discovered orbit element is propagated under every
// generator of this level. An image that is already in the orbit yields
// a Schreier generator fixing stabPoint, which is pushed into the
// stabiliser subgroup (created lazily, based at the generator's first
// non-fixed point).
func (g *Group) Extend(generator Permutation) {
	if generator.IsIdentity() {
		return
	}
	if g.Contains(generator) {
		return
	}

	g.generators = append(g.generators, generator)

	var generatorInv *Permutation
	invOf := func() Permutation {
		if generatorInv == nil {
			inv := generator.Inverse()
			generatorInv = &inv
		}
		return *generatorInv
	}

	var queue []Index

	processOrbit := func(orbit Index, gen, genInv Permutation) {
		invCosetRepr, ok := g.invCosetRepr(orbit)
		if !ok {
			return
		}
		newOrbit := gen.Apply(orbit)

		if newInvCosetRepr, ok := g.invCosetRepr(newOrbit); ok {
			subgroupGenerator := invCosetRepr.Inverse().Compose(gen).Compose(newInvCosetRepr)
			if nonFix, ok := subgroupGenerator.NonFixedPoint(); ok {
				if g.stabSubgroup == nil {
					g.stabSubgroup = NewGroup(nonFix)
				}
				g.stabSubgroup.Extend(subgroupGenerator)
			}
			return
		}

		translated := genInv.Compose(invCosetRepr)
		g.transversalInv[newOrbit] = translated
		g.orbit = append(g.orbit, newOrbit)
		queue = append(queue, newOrbit)
	}

	initialLen := len(g.orbit)
	for i := 0; i < initialLen; i++ {
		processOrbit(g.orbit[i], generator, invOf())
	}
	for len(queue) > 0 {
		orbit := queue[0]
		queue = queue[1:]
		for _, gen := range g.generators {
			processOrbit(orbit, gen, gen.Inverse())
		}
	}
}

// Order returns |G|, computed as the product of orbit sizes down the
// base chain (the classic Schreier-Sims order formula).
func (g *Group) Order() uint64 {
	if g == nil {
		return 1
	}
	return uint64(len(g.orbit)) * g.stabSubgroup.Order()
}

// StrongGeneratingSet returns every generator stored anywhere in the base
// chain. The result is a strong generating set for the group but is not
// guaranteed to be minimal.
func (g *Group) StrongGeneratingSet() []Permutation {
	if g == nil {
		return nil
	}
	out := append([]Permutation(nil), g.generators...)
	out = append(out, g.stabSubgroup.StrongGeneratingSet()...)
	return out
}

// BasePoint returns the base point this level of the chain stabilises.
func (g *Group) BasePoint() Index {
	return g.stabPoint
}

// IsTrivial reports whether g represents the trivial group (no non-identity
// generator has ever been extended into it). A nil *Group is trivial.
func (g *Group) IsTrivial() bool {
	return g == nil || len(g.generators) == 0
}
