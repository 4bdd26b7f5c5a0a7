package reminders

import "strings"

// EscapeScriptString makes s safe to embed inside a double-quoted
// AppleScript string literal. Backslashes and quotes are escaped,
// newlines and tabs fold to spaces, and remaining control characters are
// dropped, so the result always stays a single literal string.
func EscapeScriptString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n', '\r', '\t':
			b.WriteByte(' ')
		default:
			if r < 0x20 || r == 0x7f {
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}
