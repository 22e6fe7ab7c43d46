// Package records loads the protein and peptide tables.
//
// Both inputs are plain text with exactly four tab-separated fields per line.
// Every line is reduced to ASCII (see textnorm) and trimmed before splitting;
// any line that does not yield four fields aborts the load.
package records

import (
	"errors"
	"fmt"
)

// FieldCount is the number of tab-separated columns in both input tables.
const FieldCount = 4

var (
	ErrFieldCount    = errors.New("line does not have 4 tab-separated columns")
	ErrEmptySequence = errors.New("empty sequence")
)

// Protein is one row of the proteins file:
// protein name, species, sequence, uniprot id.
type Protein struct {
	Name      string
	Species   string
	Sequence  string
	UniprotID string
}

// Peptide is one row of the peptides file:
// peptide name, sequence, function, species.
type Peptide struct {
	Name     string
	Sequence string
	Function string
	Species  string
}

// ParseError reports a malformed input line.
type ParseError struct {
	Path   string
	Line   int
	Fields int
	Raw    string
	Err    error
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrFieldCount) {
		return fmt.Sprintf("%s:%d: %v, got %d (often caused by oddities in export from Excel): %q",
			e.Path, e.Line, e.Err, e.Fields, e.Raw)
	}
	return fmt.Sprintf("%s:%d: %v: %q", e.Path, e.Line, e.Err, e.Raw)
}

func (e *ParseError) Unwrap() error { return e.Err }
