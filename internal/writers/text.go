package writers

import (
	"bufio"
	"context"
	"io"

	"pephom/internal/output"
	"pephom/internal/pipeline"
)

func init() {
	Register("text", func(_ context.Context, out io.Writer, o Options) (MatchWriter, error) {
		return NewTextWriter(out, o.Header)
	})
}

// TextWriter streams TSV rows.
type TextWriter struct {
	bw *bufio.Writer
}

// NewTextWriter writes the header immediately when header is true.
func NewTextWriter(out io.Writer, header bool) (*TextWriter, error) {
	w := &TextWriter{bw: bufio.NewWriter(out)}
	if header {
		if err := output.WriteHeader(w.bw); err != nil {
			return nil, err
		}
	}
	return w, nil
}

func (w *TextWriter) Write(h pipeline.Hit) error { return output.WriteRow(w.bw, h) }
func (w *TextWriter) Flush() error               { return w.bw.Flush() }
func (w *TextWriter) Close() error               { return w.bw.Flush() }
