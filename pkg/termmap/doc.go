// Package termmap implements Map and Bijection: a source term, a
// target term, and a permutation of their shared leaf count,
// read as "the i-th leaf of source corresponds to the π(i)-th leaf of
// target". It also implements Embedding, the pattern-leaf-to-host-
// subterm correspondence substitution needs to locate what to copy out
// of a host when rewriting at a match site.
package termmap
