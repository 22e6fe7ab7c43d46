// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"pephom/internal/pipeline"
)

// FormatPident renders a fraction with up to 12 significant digits and at
// least one decimal place: 1 -> "1.0", 0.8 -> "0.8", 2/3 -> "0.666666666667".
func FormatPident(v float64) string {
	s := strconv.FormatFloat(v, 'g', 12, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// WriteHeader prints the TSV header line.
func WriteHeader(w io.Writer) error {
	_, err := io.WriteString(w, TSVHeader+"\n")
	return err
}

// WriteRow prints one hit as a TSV line in TSVHeader column order.
func WriteRow(w io.Writer, h pipeline.Hit) error {
	_, err := fmt.Fprintf(w,
		"%s\t%s\t%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
		h.Protein.Name, h.Protein.Species,
		h.Match.Start, h.Match.End,
		h.Peptide.Sequence, h.Match.Seq,
		h.Peptide.Name, h.Peptide.Species, h.Peptide.Function,
		FormatPident(h.Match.PIdent),
	)
	return err
}

// WriteText prints the header (optional) and one line per hit.
func WriteText(w io.Writer, list []pipeline.Hit, header bool) error {
	if header {
		if err := WriteHeader(w); err != nil {
			return err
		}
	}
	for _, h := range list {
		if err := WriteRow(w, h); err != nil {
			return err
		}
	}
	return nil
}
