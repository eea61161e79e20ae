package rule

import (
	"fmt"
	"strings"

	"github.com/finn-rudolph/binrewrite/pkg/perm"
	"github.com/finn-rudolph/binrewrite/pkg/term"
	"github.com/finn-rudolph/binrewrite/pkg/termmap"
)

// arena backs every Rule's Left/Right skeletons. A rule's shapes never
// need to share an Arena with any particular host term: pattern.Index
// and rewrite.Substitute both work across Arenas, since matching only
// ever compares pointer identity within the host's own Arena.
var arena = term.NewArena()

// Rule is one parsed equivalence: two term shapes and the leaf
// bijection their shared letters establish between them.
type Rule struct {
	Left, Right *term.Term
	Bijection   termmap.Bijection
}

// Parse parses text of the form "L = R", where L and R are expr's per
// the grammar expr := atom ('*' expr)?, atom := letter | '(' expr ')'.
// Both sides must use exactly the same set of letters, each exactly
// once; Parse returns a *RuleShapeError otherwise, or a *ParseError if
// either side is not well-formed.
func Parse(text string) (Rule, error) {
	parts := strings.SplitN(text, "=", 2)
	if len(parts) != 2 {
		return Rule{}, &ParseError{Pos: 0, Msg: `expected a rule of the form "L = R"`}
	}

	left, err := parseSide(parts[0])
	if err != nil {
		return Rule{}, err
	}
	right, err := parseSide(parts[1])
	if err != nil {
		return Rule{}, err
	}

	m, err := MapTo(left, right)
	if err != nil {
		return Rule{}, err
	}

	return Rule{Left: m.Source(), Right: m.Target(), Bijection: termmap.NewBijection(m)}, nil
}

// MapTo builds the Map carrying source's leaves onto target's leaves by
// matching letters: the i-th leaf of source is sent to whichever leaf of
// target carries the same letter. It is a *RuleShapeError for a letter
// to repeat within either side, or for the two sides' letter sets to
// differ.
func MapTo(source, target *LabeledTerm) (termmap.Map, error) {
	var targetLabels []string
	target.WalkLeaves(func(label string) { targetLabels = append(targetLabels, label) })

	targetIndex := make(map[string]int, len(targetLabels))
	for i, label := range targetLabels {
		if _, dup := targetIndex[label]; dup {
			return termmap.Map{}, &RuleShapeError{
				Msg: fmt.Sprintf("letter %q appears more than once on the right-hand side", label),
			}
		}
		targetIndex[label] = i
	}

	var sourceLabels []string
	source.WalkLeaves(func(label string) { sourceLabels = append(sourceLabels, label) })

	seenSource := make(map[string]bool, len(sourceLabels))
	images := make([]perm.Index, len(sourceLabels))
	for i, label := range sourceLabels {
		if seenSource[label] {
			return termmap.Map{}, &RuleShapeError{
				Msg: fmt.Sprintf("letter %q appears more than once on the left-hand side", label),
			}
		}
		seenSource[label] = true

		targetPos, ok := targetIndex[label]
		if !ok {
			return termmap.Map{}, &RuleShapeError{
				Msg: fmt.Sprintf("letter %q appears on the left-hand side but not the right", label),
			}
		}
		images[i] = perm.Index(targetPos)
	}

	if len(sourceLabels) != len(targetLabels) {
		return termmap.Map{}, &RuleShapeError{
			Msg: "left- and right-hand sides do not use the same set of letters",
		}
	}

	return termmap.New(source.Skeleton(arena), target.Skeleton(arena), perm.New(images)), nil
}
