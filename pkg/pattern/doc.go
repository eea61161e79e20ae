// Package pattern implements Index: a one-time, bottom-up fingerprinting
// of a pattern term into a table of "what children produce what parent
// label", and a matcher that runs the same fingerprinting recurrence
// over a host term's label *sets* to find every node that is the root
// of a structural embedding of the pattern.
package pattern
