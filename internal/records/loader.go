// internal/records/loader.go
package records

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"pephom/internal/textnorm"
)

const maxLine = 16 << 20

// LoadProteins reads the proteins table from path.
func LoadProteins(path string) ([]Protein, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return ReadProteins(fh, path)
}

// LoadPeptides reads the peptides table from path.
func LoadPeptides(path string) ([]Peptide, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return ReadPeptides(fh, path)
}

// ReadProteins parses proteins from r; name is used in error messages.
func ReadProteins(r io.Reader, name string) ([]Protein, error) {
	var list []Protein
	err := scanTable(r, name, -1, func(f []string) {
		list = append(list, Protein{Name: f[0], Species: f[1], Sequence: f[2], UniprotID: f[3]})
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ReadPeptides parses peptides from r; name is used in error messages.
func ReadPeptides(r io.Reader, name string) ([]Peptide, error) {
	var list []Peptide
	err := scanTable(r, name, 1, func(f []string) {
		list = append(list, Peptide{Name: f[0], Sequence: f[1], Function: f[2], Species: f[3]})
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// scanTable splits every line into FieldCount fields and hands them to add.
// When seqCol is not negative that column must not be empty. A protein with
// no sequence is kept; it simply has no window to match.
func scanTable(r io.Reader, name string, seqCol int, add func([]string)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLine)
	sc.Split(scanAnyLines)
	ln := 0
	for sc.Scan() {
		ln++
		raw := sc.Text()
		f := strings.Split(strings.TrimSpace(textnorm.ASCII(raw)), "\t")
		if len(f) != FieldCount {
			return &ParseError{Path: name, Line: ln, Fields: len(f), Raw: raw, Err: ErrFieldCount}
		}
		if seqCol >= 0 && f[seqCol] == "" {
			return &ParseError{Path: name, Line: ln, Fields: len(f), Raw: raw, Err: ErrEmptySequence}
		}
		add(f)
	}
	return sc.Err()
}

// scanAnyLines is bufio.ScanLines that also ends a line at a lone '\r',
// as written by spreadsheet exports with old Mac line endings.
func scanAnyLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// '\r' is the last byte seen; wait for the next one to tell CR from CRLF.
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
