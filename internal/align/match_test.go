package align

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pephom/internal/residue"
)

func TestScoreConcrete(t *testing.T) {
	got, err := Score("ARNDC", "ARQDV", residue.Similar)
	require.NoError(t, err)
	assert.Equal(t, 0.8, got)

	got, err = Score("ARNDC", "ARQDV", residue.Identical)
	require.NoError(t, err)
	assert.Equal(t, 0.6, got)
}

func TestScoreSelfMatch(t *testing.T) {
	for _, s := range []string{"A", "ARNDC", "MKVLAAGIVSTDEQN", "xyz"} {
		for _, m := range []residue.Mode{residue.Similar, residue.Identical} {
			got, err := Score(s, s, m)
			require.NoError(t, err)
			assert.Equal(t, 1.0, got, "%s/%s", s, m)
		}
	}
}

func TestScoreLengthMismatch(t *testing.T) {
	_, err := Score("ARND", "ARN", residue.Similar)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLengthMismatch))

	_, err = Score("", "", residue.Identical)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestFindMatches(t *testing.T) {
	tests := []struct {
		name      string
		short     string
		long      string
		threshold float64
		mode      residue.Mode
		want      []Match
	}{
		{
			name:      "two perfect windows",
			short:     "ARNDC",
			long:      "ARNDCARNDC",
			threshold: 0.8,
			mode:      residue.Similar,
			want: []Match{
				{Start: 1, End: 5, Seq: "ARNDC", PIdent: 1.0},
				{Start: 6, End: 10, Seq: "ARNDC", PIdent: 1.0},
			},
		},
		{
			name:      "similar residues count",
			short:     "DIQS",
			long:      "GGELNTGG",
			threshold: 1.0,
			mode:      residue.Similar,
			want:      []Match{{Start: 3, End: 6, Seq: "ELNT", PIdent: 1.0}},
		},
		{
			name:      "similar residues rejected in identical mode",
			short:     "DIQS",
			long:      "GGELNTGG",
			threshold: 0.25,
			mode:      residue.Identical,
			want:      nil,
		},
		{
			name:      "overlapping windows kept",
			short:     "AA",
			long:      "AAAA",
			threshold: 1.0,
			mode:      residue.Identical,
			want: []Match{
				{Start: 1, End: 2, Seq: "AA", PIdent: 1.0},
				{Start: 2, End: 3, Seq: "AA", PIdent: 1.0},
				{Start: 3, End: 4, Seq: "AA", PIdent: 1.0},
			},
		},
		{
			name:      "short longer than long",
			short:     "ARNDC",
			long:      "ARND",
			threshold: 0,
			mode:      residue.Similar,
			want:      nil,
		},
		{
			name:      "threshold above one",
			short:     "AR",
			long:      "ARAR",
			threshold: 1.01,
			mode:      residue.Similar,
			want:      nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FindMatches(tc.short, tc.long, tc.threshold, tc.mode)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFindMatchesZeroThresholdEveryWindow(t *testing.T) {
	long := "MKVLAAGIVSTDEQN"
	for _, short := range []string{"W", "WWW", "MKVLA", long} {
		got, err := FindMatches(short, long, 0, residue.Identical)
		require.NoError(t, err)
		require.Len(t, got, len(long)-len(short)+1, short)
		for i, m := range got {
			assert.Equal(t, i+1, m.Start)
			assert.Equal(t, i+len(short), m.End)
			assert.Len(t, m.Seq, len(short))
			assert.Equal(t, long[m.Start-1:m.End], m.Seq)
		}
	}
}

func TestFindMatchesThresholdBoundary(t *testing.T) {
	// ARNDC vs ARQDV scores exactly 0.6 in identical mode.
	got, err := FindMatches("ARNDC", "ARQDV", 60.0/100.0, residue.Identical)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 0.6, got[0].PIdent)

	got, err = FindMatches("ARNDC", "ARQDV", 0.6000001, residue.Identical)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindMatchesEmptyShort(t *testing.T) {
	_, err := FindMatches("", "ARND", 0.5, residue.Similar)
	assert.ErrorIs(t, err, ErrEmpty)
}
