// Command rewriter drives the term-rewriting engine over every term
// shape up to a leaf cap: given one equivalence "L = R", it enumerates
// terms, finds every site where L or R structurally embeds, rewrites
// there, and folds the resulting equivalences into a union-find over
// term shapes, reporting the distinct classes (and any automorphisms
// uncovered) at the end.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/finn-rudolph/binrewrite/internal/panics"
	"github.com/finn-rudolph/binrewrite/pkg/eqclass"
	"github.com/finn-rudolph/binrewrite/pkg/pattern"
	"github.com/finn-rudolph/binrewrite/pkg/rewrite"
	"github.com/finn-rudolph/binrewrite/pkg/rule"
	"github.com/finn-rudolph/binrewrite/pkg/term"
)

func main() {
	equivalence := flag.String("equivalence", "", `the rule to explore, e.g. "a * b = b * a"`)
	leaves := flag.Int("leaves", 0, "enumerate every term shape with up to this many leaves")
	direction := flag.String("direction", "both", "which rewrite direction(s) to apply: both, forward, or backward")
	logLevel := flag.String("log-level", "info", "debug, info, warn, or error")
	configPath := flag.String("config", "", "optional config file supplying values for the flags above that are not given on the command line")
	format := flag.String("format", "text", "text or json")
	flag.Parse()

	explicitFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "equivalence":
			explicitFlags["equivalence"] = true
		case "leaves":
			explicitFlags["leaves"] = true
		case "direction":
			explicitFlags["direction"] = true
		case "log-level":
			explicitFlags["log_level"] = true
		case "format":
			explicitFlags["format"] = true
		}
	})

	cfg, err := loadConfig(*configPath, RunConfig{
		Equivalence: *equivalence,
		Leaves:      *leaves,
		Direction:   *direction,
		LogLevel:    *logLevel,
		Format:      *format,
	}, explicitFlags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "main: invalid --log-level %q\n", cfg.LogLevel)
		os.Exit(1)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()

	defer panics.Recover(&logger)()

	if cfg.Equivalence == "" {
		logger.Error().Msg("main: --equivalence is required")
		os.Exit(1)
	}
	if cfg.Leaves < 1 {
		logger.Error().Int("leaves", cfg.Leaves).Msg("main: --leaves must be >= 1")
		os.Exit(1)
	}
	switch cfg.Direction {
	case "both", "forward", "backward":
	default:
		logger.Error().Str("direction", cfg.Direction).Msg("main: --direction must be both, forward, or backward")
		os.Exit(1)
	}

	parsedRule, err := rule.Parse(cfg.Equivalence)
	if err != nil {
		logger.Error().Err(err).Msg("main: failed to parse equivalence")
		os.Exit(1)
	}

	report := run(parsedRule, cfg, &logger)

	if err := renderReport(os.Stdout, cfg.Format, report); err != nil {
		logger.Error().Err(err).Msg("main: failed to render report")
		os.Exit(1)
	}
}

// run enumerates every term shape up to cfg.Leaves leaves, applies the
// rule's pattern(s) per cfg.Direction at every site found, and folds
// every resulting rewrite into a shared eqclass.Classes.
func run(r rule.Rule, cfg RunConfig, logger *zerolog.Logger) Report {
	arena := term.NewArena()
	enumerator := term.NewEnumerator(arena)
	classes := eqclass.New()

	var forwardIndex, backwardIndex *pattern.Index
	if cfg.Direction == "both" || cfg.Direction == "forward" {
		forwardIndex = pattern.New(r.Left)
	}
	if cfg.Direction == "both" || cfg.Direction == "backward" {
		backwardIndex = pattern.New(r.Right)
	}

	termsEnumerated := 0
	equivalencesRecorded := 0
	var hosts []*term.Term

	for host := range enumerator.All(cfg.Leaves) {
		termsEnumerated++
		hosts = append(hosts, host)

		if forwardIndex != nil {
			for _, site := range forwardIndex.MatchSites(host) {
				_, backward := rewrite.Substitute(arena, host, site, r.Bijection.Forward())
				classes.AddEquiv(backward)
				equivalencesRecorded++
				logger.Debug().Str("host", host.String()).Str("site", site.String()).Msg("forward rewrite site")
			}
		}
		if backwardIndex != nil {
			for _, site := range backwardIndex.MatchSites(host) {
				_, backward := rewrite.Substitute(arena, host, site, r.Bijection.Backward())
				classes.AddEquiv(backward)
				equivalencesRecorded++
				logger.Debug().Str("host", host.String()).Str("site", site.String()).Msg("backward rewrite site")
			}
		}
	}

	seen := make(map[*term.Term]bool)
	var summaries []ClassSummary
	for _, host := range hosts {
		rep := classes.Representative(host)
		if seen[rep] {
			continue
		}
		seen[rep] = true
		summaries = append(summaries, ClassSummary{
			Representative:         rep.String(),
			AutomorphismGroupOrder: classes.AutomorphismGroup(rep).Order(),
		})
	}

	return Report{
		LeavesCap:            cfg.Leaves,
		TermsEnumerated:      termsEnumerated,
		EquivalencesRecorded: equivalencesRecorded,
		Classes:              summaries,
	}
}
