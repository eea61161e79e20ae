// Package eqclass implements Classes: a weighted union-find over term
// shapes whose edges are labelled by termmap.Map bijections
// rather than plain parent pointers. Merging two terms that are already
// in the same class, instead of doing nothing, yields an automorphism of
// their shared representative; Classes accumulates these as it goes,
// giving each class a growing set of generators for its automorphism
// group.
package eqclass
