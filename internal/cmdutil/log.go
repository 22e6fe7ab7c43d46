// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Progressf writes a plain progress line to dst (the diagnostic stream).
func Progressf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, format+"\n", a...)
}
