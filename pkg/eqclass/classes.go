package eqclass

import (
	"github.com/finn-rudolph/binrewrite/pkg/perm"
	"github.com/finn-rudolph/binrewrite/pkg/term"
	"github.com/finn-rudolph/binrewrite/pkg/termmap"
)

// entry is one term shape's node in the union-find forest. A root entry
// (parent == nil) carries the accumulated automorphism generators for
// its whole class; a child entry carries the map from its own term to
// its parent's term.
type entry struct {
	term *term.Term

	rank          int
	automorphisms []perm.Permutation

	parent    *entry
	parentMap termmap.Map
}

// Classes tracks equivalence classes of term shapes, identified by the
// Map bijections relating them. Terms are compared by pointer, so
// Classes only gives correct results across terms from the same Arena.
type Classes struct {
	byShape map[*term.Term]*entry
}

// New returns an empty Classes.
func New() *Classes {
	return &Classes{byShape: make(map[*term.Term]*entry)}
}

func (c *Classes) entryFor(t *term.Term) *entry {
	if e, ok := c.byShape[t]; ok {
		return e
	}
	e := &entry{term: t}
	c.byShape[t] = e
	return e
}

// find walks e up to its class root, path-halving every child edge it
// passes over along the way. If tracking is non-nil, *tracking is
// extended by composing it with every edge map traversed, so that on
// return *tracking carries all the way from its original source to the
// root's term.
func (c *Classes) find(e *entry, tracking *termmap.Map) *entry {
	for {
		parent := e.parent
		if parent == nil {
			return e
		}
		if grandparent := parent.parent; grandparent != nil {
			composed, err := e.parentMap.Compose(parent.parentMap)
			if err != nil {
				panic("eqclass: find: " + err.Error())
			}
			e.parentMap = composed
			e.parent = grandparent
		}
		if tracking != nil {
			composed, err := tracking.Compose(e.parentMap)
			if err != nil {
				panic("eqclass: find: " + err.Error())
			}
			*tracking = composed
		}
		e = e.parent
	}
}

// Representative returns the canonical representative term of t's class
// (t itself if it has not been unioned with anything yet).
func (c *Classes) Representative(t *term.Term) *term.Term {
	return c.find(c.entryFor(t), nil).term
}

// SameClass reports whether a and b are currently known to be equivalent.
func (c *Classes) SameClass(a, b *term.Term) bool {
	return c.find(c.entryFor(a), nil) == c.find(c.entryFor(b), nil)
}

// Automorphisms returns the automorphism generators accumulated so far
// for t's class, expressed over t's class representative (not
// necessarily t itself).
func (c *Classes) Automorphisms(t *term.Term) []perm.Permutation {
	root := c.find(c.entryFor(t), nil)
	out := make([]perm.Permutation, len(root.automorphisms))
	copy(out, root.automorphisms)
	return out
}

// AutomorphismGroup builds a perm.Group from t's class's accumulated
// automorphism generators via Schreier-Sims.
func (c *Classes) AutomorphismGroup(t *term.Term) *perm.Group {
	return perm.FromGenerators(c.Automorphisms(t))
}

// AddEquiv records that m.Source() and m.Target() denote the same term,
// via the leaf correspondence m. If they are already known to be
// equivalent, m instead yields a new automorphism generator for their
// shared class. Otherwise their two classes are unioned by rank, with
// the smaller-rank root's previously captured automorphisms conjugated
// through m so they remain valid generators of the merged class.
func (c *Classes) AddEquiv(m termmap.Map) {
	targetEntry := c.entryFor(m.Target())
	sourceEntry := c.entryFor(m.Source())

	sourceToTargetRoot := m
	targetRoot := c.find(targetEntry, &sourceToTargetRoot)

	targetRootToSourceRoot := sourceToTargetRoot.Inverse()
	sourceRoot := c.find(sourceEntry, &targetRootToSourceRoot)

	if targetRoot == sourceRoot {
		targetRoot.automorphisms = append(targetRoot.automorphisms, targetRootToSourceRoot.ToPermutation())
		return
	}

	if sourceRoot.rank < targetRoot.rank {
		sourceRoot, targetRoot = targetRoot, sourceRoot
		targetRootToSourceRoot = targetRootToSourceRoot.Inverse()
	} else if sourceRoot.rank == targetRoot.rank {
		sourceRoot.rank++
	}

	migrated := migrateAutomorphisms(targetRoot.term, targetRoot.automorphisms, targetRootToSourceRoot)
	sourceRoot.automorphisms = append(sourceRoot.automorphisms, migrated...)
	targetRoot.automorphisms = nil

	targetRoot.parent = sourceRoot
	targetRoot.parentMap = targetRootToSourceRoot
}

// migrateAutomorphisms re-expresses automorphisms of oldRoot (each a
// permutation of oldRoot's own leaves) as automorphisms of the merged
// class's new root, by conjugating through toNewRoot: new = toNewRoot⁻¹
// ∘ old ∘ toNewRoot. This keeps generators captured before a merge from
// being silently lost once their class stops being a root.
func migrateAutomorphisms(oldRoot *term.Term, automorphisms []perm.Permutation, toNewRoot termmap.Map) []perm.Permutation {
	if len(automorphisms) == 0 {
		return nil
	}
	toOldRoot := toNewRoot.Inverse()
	migrated := make([]perm.Permutation, 0, len(automorphisms))
	for _, aut := range automorphisms {
		oldAutMap := termmap.New(oldRoot, oldRoot, aut)
		step, err := toOldRoot.Compose(oldAutMap)
		if err != nil {
			panic("eqclass: migrateAutomorphisms: " + err.Error())
		}
		step, err = step.Compose(toNewRoot)
		if err != nil {
			panic("eqclass: migrateAutomorphisms: " + err.Error())
		}
		migrated = append(migrated, step.ToPermutation())
	}
	return migrated
}
