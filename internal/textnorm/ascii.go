// Package textnorm reduces input text to plain ASCII before parsing.
//
// Policy: decompose (NFKD) so accented letters split into base + combining
// mark, then drop every rune above U+007F and every invalid UTF-8 byte.
package textnorm

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonASCII = runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })

func newFolder() transform.Transformer {
	return transform.Chain(norm.NFKD, runes.Remove(nonASCII))
}

// ASCII returns s decomposed and stripped to ASCII.
func ASCII(s string) string {
	if isASCII(s) {
		return s
	}
	out, _, err := transform.String(newFolder(), s)
	if err != nil {
		// transform only fails on short buffers; fall back to a byte filter.
		return dropNonASCII(s)
	}
	return out
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}
	return true
}

func dropNonASCII(s string) string {
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] <= unicode.MaxASCII {
			b = append(b, s[i])
		}
	}
	return string(b)
}
