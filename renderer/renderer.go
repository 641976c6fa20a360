// Package renderer turns the book's derived views into markdown strings.
package renderer

import (
	"fmt"
	"strings"
)

// mdRenderer formats the output into a markdown string.
type mdRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *mdRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

func newRenderer() *mdRenderer {
	return &mdRenderer{Builder: &strings.Builder{}}
}
