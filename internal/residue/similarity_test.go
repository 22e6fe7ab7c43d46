package residue

import "testing"

const aminoAcids = "ACDEFGHIKLMNPQRSTVWY"

func TestScoreIdentical(t *testing.T) {
	for i := 0; i < len(aminoAcids); i++ {
		for j := 0; j < len(aminoAcids); j++ {
			a, b := aminoAcids[i], aminoAcids[j]
			want := 0
			if a == b {
				want = 1
			}
			if got := Score(a, b, Identical); got != want {
				t.Errorf("Score(%c,%c,identical)=%d, want %d", a, b, got, want)
			}
		}
	}
}

func TestScoreSimilarSymmetric(t *testing.T) {
	for _, p := range Pairs() {
		if Score(p.A, p.B, Similar) != 1 || Score(p.B, p.A, Similar) != 1 {
			t.Errorf("pair %c/%c not symmetric", p.A, p.B)
		}
		if Score(p.A, p.B, Identical) != 0 {
			t.Errorf("pair %c/%c must not match in identical mode", p.A, p.B)
		}
	}
	for i := 0; i < len(aminoAcids); i++ {
		for j := 0; j < len(aminoAcids); j++ {
			a, b := aminoAcids[i], aminoAcids[j]
			if Score(a, b, Similar) != Score(b, a, Similar) {
				t.Errorf("Score(%c,%c) != Score(%c,%c)", a, b, b, a)
			}
		}
	}
}

func TestScoreSimilarTable(t *testing.T) {
	tests := []struct {
		a, b byte
		want int
	}{
		{'D', 'E', 1},
		{'I', 'L', 1},
		{'L', 'V', 1},
		{'V', 'I', 1},
		{'Q', 'N', 1},
		{'T', 'S', 1},
		{'C', 'V', 0},
		{'D', 'N', 0},
		{'E', 'Q', 0},
		{'A', 'A', 1},
		{'d', 'e', 0}, // table is upper-case only
		{'x', 'x', 1},
	}
	for _, tc := range tests {
		if got := Score(tc.a, tc.b, Similar); got != tc.want {
			t.Errorf("Score(%c,%c,similar)=%d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestPairsIsCopy(t *testing.T) {
	p := Pairs()
	p[0] = Pair{'A', 'W'}
	if Equivalent('A', 'W') {
		t.Fatal("mutating Pairs() result changed the table")
	}
	if Pairs()[0] == (Pair{'A', 'W'}) {
		t.Fatal("Pairs() returned shared storage")
	}
}

func TestParseMode(t *testing.T) {
	if ParseMode(true) != Identical || ParseMode(false) != Similar {
		t.Fatal("ParseMode mapping wrong")
	}
	if Identical.String() != "identical" || Similar.String() != "similar" {
		t.Fatal("Mode.String wrong")
	}
}
