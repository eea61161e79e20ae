// Package perm implements finite permutations of leaf indices and, on top
// of them, the Schreier-Sims algorithm for maintaining a compact
// representation of a permutation group from a growing set of generators.
package perm
