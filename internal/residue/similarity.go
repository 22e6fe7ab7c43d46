// internal/residue/similarity.go
package residue

// Mode selects how two residues are compared.
type Mode int

const (
	Similar   Mode = iota // identical or chemically equivalent
	Identical             // identical only
)

func (m Mode) String() string {
	if m == Identical {
		return "identical"
	}
	return "similar"
}

// ParseMode maps the --use_identical switch onto a Mode.
func ParseMode(useIdentical bool) Mode {
	if useIdentical {
		return Identical
	}
	return Similar
}

// Pair is one chemical equivalence between two residues.
type Pair struct{ A, B byte }

/* ------------------------ equivalence lookup table ----------------------- */

// D=E, I=L=V, Q=N and S=T
var pairs = []Pair{
	{'D', 'E'},
	{'I', 'L'},
	{'I', 'V'},
	{'L', 'V'},
	{'Q', 'N'},
	{'S', 'T'},
}

var equivalent [256][256]bool

func init() {
	for _, p := range pairs {
		equivalent[p.A][p.B] = true
		equivalent[p.B][p.A] = true
	}
}

// Pairs returns a copy of the configured equivalence pairs.
func Pairs() []Pair {
	return append([]Pair(nil), pairs...)
}

/* ------------------------------- scoring --------------------------------- */

// Equivalent reports whether a and b are identical or listed as chemically similar.
func Equivalent(a, b byte) bool {
	return a == b || equivalent[a][b]
}

// Score returns 1 if a and b match under mode, otherwise 0.
func Score(a, b byte, mode Mode) int {
	if a == b || (mode == Similar && Equivalent(a, b)) {
		return 1
	}
	return 0
}
