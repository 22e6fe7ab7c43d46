// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"pephom/internal/pipeline"
	"pephom/pkg/api"
)

// ToAPIMatch converts a hit to the stable wire schema (v1).
func ToAPIMatch(h pipeline.Hit) api.MatchV1 {
	return api.MatchV1{
		ProtName:      h.Protein.Name,
		ProtSpecies:   h.Protein.Species,
		ProtUniprotID: h.Protein.UniprotID,
		MatchStart:    h.Match.Start,
		MatchEnd:      h.Match.End,
		PepSequence:   h.Peptide.Sequence,
		MatchSeq:      h.Match.Seq,
		PepName:       h.Peptide.Name,
		PepSpecies:    h.Peptide.Species,
		PepFunction:   h.Peptide.Function,
		MatchPident:   h.Match.PIdent,
	}
}

// WriteJSON writes a single JSON array of v1 matches (pretty-indented).
func WriteJSON(w io.Writer, list []pipeline.Hit) error {
	out := make([]api.MatchV1, 0, len(list))
	for _, h := range list {
		out = append(out, ToAPIMatch(h))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
