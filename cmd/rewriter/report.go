package main

import (
	"encoding/json"
	"fmt"
	"io"
)

// ClassSummary describes one equivalence class discovered among the
// enumerated terms: its representative's rendering and the order of the
// automorphism group captured for it so far.
type ClassSummary struct {
	Representative         string `json:"representative"`
	AutomorphismGroupOrder uint64 `json:"automorphism_group_order"`
}

// Report summarizes one run of the engine over the enumerated terms.
type Report struct {
	LeavesCap            int            `json:"leaves_cap"`
	TermsEnumerated      int            `json:"terms_enumerated"`
	EquivalencesRecorded int            `json:"equivalences_recorded"`
	Classes              []ClassSummary `json:"classes"`
}

// renderReport writes r to w in the given format ("text" or "json").
func renderReport(w io.Writer, format string, r Report) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "text", "":
		return renderText(w, r)
	default:
		return fmt.Errorf("renderReport: unknown format %q", format)
	}
}

func renderText(w io.Writer, r Report) error {
	if _, err := fmt.Fprintf(w, "enumerated %d term(s) up to %d leaves, recorded %d equivalence(s)\n",
		r.TermsEnumerated, r.LeavesCap, r.EquivalencesRecorded); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%d distinct class(es):\n", len(r.Classes)); err != nil {
		return err
	}
	for _, c := range r.Classes {
		if _, err := fmt.Fprintf(w, "  %s  (automorphism group order %d)\n",
			c.Representative, c.AutomorphismGroupOrder); err != nil {
			return err
		}
	}
	return nil
}
