// Package rule parses the equivalence's textual syntax — two
// letter-and-'*' expressions separated by '=' — into a Rule: a pair of
// term shapes and the leaf bijection their shared letters establish
// between them.
package rule
