package dot

import "strings"

// Quote returns id in a form that is safe to emit as a DOT identifier.
//
// Identifiers made only of ASCII letters and digits are returned bare,
// unless they start with a digit but are not a plain number, or spell one of
// the DOT keywords in any case. Anything else is wrapped in double quotes
// with embedded quotes escaped. A quote that is already escaped by a
// preceding backslash is left alone.
func Quote(id string) string {
	if isBare(id) {
		return id
	}
	return quoteString(id)
}

// keywords are reserved by the DOT grammar, case-insensitively.
var keywords = []string{"node", "edge", "graph", "digraph", "subgraph", "strict"}

func isBare(id string) bool {
	if id == "" {
		return false
	}
	letters := false
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
			letters = true
		case '0' <= c && c <= '9':
		default:
			return false
		}
	}
	if letters && '0' <= id[0] && id[0] <= '9' {
		return false
	}
	for _, kw := range keywords {
		if strings.EqualFold(id, kw) {
			return false
		}
	}
	return true
}

// quoteString always wraps s in double quotes.
func quoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	backslashes := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			backslashes++
			b.WriteByte(c)
			continue
		case '"':
			if backslashes%2 == 0 {
				b.WriteByte('\\')
			}
		}
		backslashes = 0
		b.WriteByte(c)
	}
	// A trailing odd backslash would escape the closing quote.
	if backslashes%2 == 1 {
		b.WriteByte('\\')
	}
	b.WriteByte('"')
	return b.String()
}
