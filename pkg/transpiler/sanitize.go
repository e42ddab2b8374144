package transpiler

import "strings"

// SanitizeIdentifier maps a Figma node ID to an identifier that is safe to use
// as a markup class and stylesheet selector. Every character outside
// [A-Za-z0-9_-] is replaced with a hyphen. The mapping is deterministic and
// idempotent: re-sanitizing an already sanitized identifier is a no-op.
func SanitizeIdentifier(id string) string {
	var b strings.Builder
	b.Grow(len(id))
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

// EscapeText escapes text content for embedding in markup and converts line
// breaks to <br/> markers. The ampersand replacement must run first: escaping
// it after < and > would double-encode the entities those replacements produce.
func EscapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\n", "<br/>")
	return s
}
