package templates

import "strings"

const (
	openDelim  = "{{"
	closeDelim = "}}"
)

// Result is the outcome of rendering one template.
type Result struct {
	// Text is the rendered output.
	Text string

	// Missing lists placeholder keys that had no value in the context, in
	// order of first appearance. Their placeholders are left verbatim.
	Missing []string
}

// Render substitutes every {{key}} placeholder in text with its value from ctx.
//
// Rendering is a single left-to-right pass: substituted values are copied as
// literal text and never scanned for placeholders. Whitespace just inside the
// delimiters is ignored when matching keys. A placeholder runs from the last
// opening delimiter before a closing one. Placeholders with unknown keys and
// unterminated delimiters are copied through unchanged.
func Render(text string, ctx Context) Result {
	var b strings.Builder
	b.Grow(len(text))

	var missing []string
	seen := make(map[string]bool)

	rest := text
	for {
		start := strings.Index(rest, openDelim)
		if start < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.Index(rest[start+len(openDelim):], closeDelim)
		if end < 0 {
			b.WriteString(rest)
			break
		}
		end += start + len(openDelim)
		// The placeholder opens at the last delimiter before the close, so
		// "{{ {{alias}}" keeps "{{ " and renders the inner key.
		start = strings.LastIndex(rest[:end], openDelim)

		b.WriteString(rest[:start])
		placeholder := rest[start : end+len(closeDelim)]
		key := strings.TrimSpace(rest[start+len(openDelim) : end])

		if value, ok := ctx.Lookup(key); ok && key != "" {
			b.WriteString(value)
		} else {
			b.WriteString(placeholder)
			if key != "" && !seen[key] {
				seen[key] = true
				missing = append(missing, key)
			}
		}
		rest = rest[end+len(closeDelim):]
	}

	return Result{Text: b.String(), Missing: missing}
}
