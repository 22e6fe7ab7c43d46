package output

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "prot_name\tprot_species\tmatch_start\tmatch_end\tpep_sequence\tmatch_seq\tpep_name\tpep_species\tpep_function\tmatch_pident"

// Columns lists the header fields in order.
var Columns = []string{
	"prot_name", "prot_species", "match_start", "match_end", "pep_sequence",
	"match_seq", "pep_name", "pep_species", "pep_function", "match_pident",
}
