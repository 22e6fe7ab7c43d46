// internal/align/match.go
package align

import (
	"errors"
	"fmt"

	"pephom/internal/residue"
)

var (
	ErrLengthMismatch = errors.New("sequence length mismatch")
	ErrEmpty          = errors.New("empty sequence")
)

/* ----------------------- types --------------------- */

// Match is one window of the long sequence scoring at or above threshold.
// Start and End are 1-based and inclusive.
type Match struct {
	Start  int
	End    int
	Seq    string
	PIdent float64 // fraction in [0,1]
}

/* ----------------------- scoring ------------------- */

// Score returns the fraction of positions where short and candidate match under mode.
// Both sequences must have the same, non-zero length.
func Score(short, candidate string, mode residue.Mode) (float64, error) {
	if len(short) != len(candidate) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(short), len(candidate))
	}
	if len(short) == 0 {
		return 0, ErrEmpty
	}
	return float64(hits(short, candidate, mode)) / float64(len(short)), nil
}

func hits(a, b string, mode residue.Mode) int {
	n := 0
	for i := 0; i < len(a); i++ {
		n += residue.Score(a[i], b[i], mode)
	}
	return n
}

/* ---------------------------- FindMatches ------------------------------- */

// FindMatches slides short along long one residue at a time and returns every
// window whose score is >= threshold, in ascending position order.
// Overlapping windows are all kept.
func FindMatches(short, long string, threshold float64, mode residue.Mode) ([]Match, error) {
	sl := len(short)
	if sl == 0 {
		return nil, ErrEmpty
	}
	if len(long) < sl {
		return nil, nil
	}

	var out []Match
	for i := 0; i <= len(long)-sl; i++ {
		window := long[i : i+sl]
		score, err := Score(short, window, mode)
		if err != nil {
			return out, err
		}
		if score >= threshold {
			out = append(out, Match{Start: i + 1, End: i + sl, Seq: window, PIdent: score})
		}
	}
	return out, nil
}
