// internal/writers/registry.go
package writers

import (
	"context"
	"fmt"
	"io"
	"sort"

	"pephom/internal/pipeline"
)

// MatchWriter receives hits one at a time.
// Flush is called after every protein; Close once at the end of the run.
type MatchWriter interface {
	Write(pipeline.Hit) error
	Flush() error
	Close() error
}

// Options configure a writer.
type Options struct {
	Header bool   // text: print the TSV header line
	DBPath string // sqlite: database file
}

// Factory builds a MatchWriter for one output format.
type Factory func(ctx context.Context, out io.Writer, o Options) (MatchWriter, error)

// Writer registry (format → factory). Register in init() blocks of the format files.
var factories = map[string]Factory{}

// Register adds or replaces (last wins) the factory for format.
func Register(format string, f Factory) { factories[format] = f }

// Formats returns the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(factories))
	for k := range factories {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// New dispatches to the factory registered for format.
func New(ctx context.Context, format string, out io.Writer, o Options) (MatchWriter, error) {
	f, ok := factories[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return f(ctx, out, o)
}
