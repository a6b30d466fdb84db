// Package output writes finished or running matches as PGN and JSON.
package output

import (
	"fmt"
	"io"
)

// DefaultLineLength is the PGN movetext width.
const DefaultLineLength = 80

// lineWriter writes space separated tokens, wrapping before a token that
// would overflow the line.
type lineWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

func newLineWriter(w io.Writer, maxLineLength int) *lineWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &lineWriter{w: w, maxLineLength: maxLineLength}
}

// token writes s, preceded by a space or a line break as needed.
func (o *lineWriter) token(s string) {
	if s == "" {
		return
	}
	if o.needsSpace {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
		} else {
			o.print(" ")
			o.lineLength++
		}
	}
	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// newLine ends the current line.
func (o *lineWriter) newLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// print keeps the first write error and drops later writes.
func (o *lineWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = fmt.Fprint(o.w, s)
}
