package main

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finn-rudolph/binrewrite/pkg/rule"
)

func silentLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

// Associativity collapses the two 3-leaf shapes into a single class,
// leaving the 1- and 2-leaf shapes untouched.
func TestRunAssociativityCollapsesThreeLeafShapes(t *testing.T) {
	r, err := rule.Parse("(a * b) * c = a * (b * c)")
	require.NoError(t, err)

	cfg := RunConfig{Equivalence: "(a * b) * c = a * (b * c)", Leaves: 3, Direction: "both"}
	report := run(r, cfg, silentLogger())

	assert.Equal(t, 4, report.TermsEnumerated) // 1 (1-leaf) + 1 (2-leaf) + 2 (3-leaf)
	assert.Equal(t, 3, len(report.Classes))     // 1-leaf, 2-leaf, {leftHeavy,rightHeavy}
}

// Commutativity on a 2-leaf term is a self-equivalence: it produces an
// automorphism group of order 2 for that shape's class, and leaves the
// bare leaf's class trivial.
func TestRunCommutativityCapturesAutomorphism(t *testing.T) {
	r, err := rule.Parse("a * b = b * a")
	require.NoError(t, err)

	cfg := RunConfig{Equivalence: "a * b = b * a", Leaves: 2, Direction: "both"}
	report := run(r, cfg, silentLogger())

	require.Len(t, report.Classes, 2)
	var sawOrderTwo bool
	for _, c := range report.Classes {
		if c.AutomorphismGroupOrder == 2 {
			sawOrderTwo = true
		}
	}
	assert.True(t, sawOrderTwo)
}

// Commutativity lets any node swap its two operands, including the
// root of a 3-leaf host — so a 3-leaf tree can rotate into the other
// 3-leaf shape as well as swap locally, merging both shapes into one
// class whose automorphism group is the full symmetric group on 3
// leaves. The 1- and 2-leaf classes are untouched and self-contained.
func TestRunCommutativityGeneratesSymmetricGroupAtThreeLeaves(t *testing.T) {
	r, err := rule.Parse("a * b = b * a")
	require.NoError(t, err)

	cfg := RunConfig{Equivalence: "a * b = b * a", Leaves: 3, Direction: "both"}
	report := run(r, cfg, silentLogger())

	require.Len(t, report.Classes, 3) // one per leaf count: 1, 2, 3
	var sawOrderSix bool
	for _, c := range report.Classes {
		if c.AutomorphismGroupOrder == 6 {
			sawOrderSix = true
		}
	}
	assert.True(t, sawOrderSix)
}

// Associativity's rewrite at a node is exactly a tree rotation; the
// rotation graph over all parenthesizations of a fixed leaf count is
// connected, so every one of the 5 Catalan shapes with 4 leaves
// collapses into a single class through a chain of rewrites, the same
// way the two 3-leaf shapes do.
func TestRunAssociativityCollapsesAllFourLeafShapes(t *testing.T) {
	r, err := rule.Parse("(a * b) * c = a * (b * c)")
	require.NoError(t, err)

	cfg := RunConfig{Equivalence: "(a * b) * c = a * (b * c)", Leaves: 4, Direction: "both"}
	report := run(r, cfg, silentLogger())

	assert.Equal(t, 9, report.TermsEnumerated) // 1 + 1 + 2 + 5
	assert.Equal(t, 4, len(report.Classes))     // 1-leaf, 2-leaf, 3-leaf, 4-leaf
}

func TestRunForwardOnlyDirection(t *testing.T) {
	r, err := rule.Parse("(a * b) * c = a * (b * c)")
	require.NoError(t, err)

	cfg := RunConfig{Equivalence: "(a * b) * c = a * (b * c)", Leaves: 3, Direction: "forward"}
	report := run(r, cfg, silentLogger())

	assert.Equal(t, 1, report.EquivalencesRecorded)
}
