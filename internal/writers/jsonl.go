// internal/writers/jsonl.go
package writers

import (
	"bufio"
	"context"
	"encoding/json"
	"io"

	"pephom/internal/output"
	"pephom/internal/pipeline"
)

func init() {
	Register("jsonl", func(_ context.Context, out io.Writer, _ Options) (MatchWriter, error) {
		return NewJSONLWriter(out), nil
	})
	Register("json", func(_ context.Context, out io.Writer, _ Options) (MatchWriter, error) {
		return &JSONWriter{out: out}, nil
	})
}

// JSONLWriter streams each hit as one JSON line (v1).
type JSONLWriter struct {
	bw  *bufio.Writer
	enc *json.Encoder
}

func NewJSONLWriter(out io.Writer) *JSONLWriter {
	bw := bufio.NewWriterSize(out, 64<<10)
	return &JSONLWriter{bw: bw, enc: json.NewEncoder(bw)}
}

func (w *JSONLWriter) Write(h pipeline.Hit) error { return w.enc.Encode(output.ToAPIMatch(h)) }
func (w *JSONLWriter) Flush() error               { return w.bw.Flush() }
func (w *JSONLWriter) Close() error               { return w.bw.Flush() }

// JSONWriter buffers every hit and writes one JSON array on Close.
type JSONWriter struct {
	out io.Writer
	buf []pipeline.Hit
}

func (w *JSONWriter) Write(h pipeline.Hit) error {
	w.buf = append(w.buf, h)
	return nil
}

func (w *JSONWriter) Flush() error { return nil }

func (w *JSONWriter) Close() error { return output.WriteJSON(w.out, w.buf) }
