// Package stats summarizes the identity scores of a run.
package stats

import (
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Recorder accumulates match identities.
type Recorder struct {
	values []float64
}

func (r *Recorder) Add(pident float64) { r.values = append(r.values, pident) }

// Summary describes the distribution of match identities.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Median float64
	Max    float64
}

// Summary computes the distribution; all fields are zero when nothing was recorded.
func (r *Recorder) Summary() Summary {
	n := len(r.values)
	if n == 0 {
		return Summary{}
	}
	x := append([]float64(nil), r.values...)
	sort.Float64s(x)

	s := Summary{
		Count:  n,
		Min:    floats.Min(x),
		Max:    floats.Max(x),
		Median: stat.Quantile(0.5, stat.Empirical, x, nil),
	}
	if n == 1 {
		s.Mean = x[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(x, nil)
	return s
}

// Write prints s as "key: value" lines.
func (s Summary) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"matches: %d\npident mean: %.4f\npident sd: %.4f\npident min: %.4f\npident median: %.4f\npident max: %.4f\n",
		s.Count, s.Mean, s.StdDev, s.Min, s.Median, s.Max)
	return err
}
