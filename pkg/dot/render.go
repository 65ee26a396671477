package dot

import (
	"bytes"
	"strings"
)

const indentUnit = "  "

// writer carries the graph-wide render context. directed is fixed by the
// root graph and read by every edge regardless of nesting depth.
type writer struct {
	buf      bytes.Buffer
	directed bool
	depth    int
}

func (w *writer) indent() {
	w.buf.WriteString(strings.Repeat(indentUnit, w.depth))
}

func (w *writer) edgeOp() string {
	if w.directed {
		return " -> "
	}
	return " -- "
}

// block writes header, the opening brace, one line per statement and the
// closing brace at the current depth. The closing brace is not followed by
// a newline.
func (w *writer) block(header string, body []Statement) {
	w.buf.WriteString(header)
	w.buf.WriteString("{\n")
	w.depth++
	for _, s := range body {
		w.indent()
		s.render(w)
		w.buf.WriteByte('\n')
	}
	w.depth--
	w.indent()
	w.buf.WriteByte('}')
}
