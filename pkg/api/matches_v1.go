// pkg/api/matches_v1.go
package api

// MatchV1 is the stable JSON/JSONL schema for one peptide-to-protein window match.
// Field names follow the TSV header. Keep fields, names, and types stable.
// Add new fields only with ",omitempty".
type MatchV1 struct {
	ProtName      string  `json:"prot_name"`
	ProtSpecies   string  `json:"prot_species"`
	ProtUniprotID string  `json:"prot_uniprot_id,omitempty"`
	MatchStart    int     `json:"match_start"`
	MatchEnd      int     `json:"match_end"`
	PepSequence   string  `json:"pep_sequence"`
	MatchSeq      string  `json:"match_seq"`
	PepName       string  `json:"pep_name"`
	PepSpecies    string  `json:"pep_species"`
	PepFunction   string  `json:"pep_function"`
	MatchPident   float64 `json:"match_pident"`
}
