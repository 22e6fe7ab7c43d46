// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"

	"pephom/internal/align"
	"pephom/internal/records"
	"pephom/internal/residue"
)

// Config controls the scan.
type Config struct {
	Threshold float64 // fraction in [0,1]; windows scoring >= Threshold are kept
	Mode      residue.Mode

	// Progress is called before a protein is scanned (may be nil).
	Progress func(records.Protein)
	// AfterProtein is called once all peptides were tested against a protein (may be nil).
	AfterProtein func(records.Protein) error
}

// Hit joins one window match with the records it came from.
type Hit struct {
	Protein records.Protein
	Peptide records.Peptide
	Match   align.Match
}

// Stats counts what a scan did.
type Stats struct {
	Proteins int
	Peptides int
	Pairs    int
	Hits     int
}

// ForEachHit tests every (protein, peptide) pair and calls visit once per match.
// It returns the first error from the matcher, visit, AfterProtein, or ctx.
// The context is only checked between proteins.
func ForEachHit(
	ctx context.Context,
	cfg Config,
	proteins []records.Protein,
	peptides []records.Peptide,
	visit func(Hit) error,
) (Stats, error) {
	st := Stats{Peptides: len(peptides)}
	for _, prot := range proteins {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		if cfg.Progress != nil {
			cfg.Progress(prot)
		}
		for _, pep := range peptides {
			matches, err := align.FindMatches(pep.Sequence, prot.Sequence, cfg.Threshold, cfg.Mode)
			if err != nil {
				return st, fmt.Errorf("peptide %s vs protein %s: %w", pep.Name, prot.Name, err)
			}
			st.Pairs++
			for _, m := range matches {
				if err := visit(Hit{Protein: prot, Peptide: pep, Match: m}); err != nil {
					return st, err
				}
				st.Hits++
			}
		}
		st.Proteins++
		if cfg.AfterProtein != nil {
			if err := cfg.AfterProtein(prot); err != nil {
				return st, err
			}
		}
	}
	return st, nil
}
