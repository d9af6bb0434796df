// Package participants turns free-form name lists into the ordered,
// deduplicated competitor lists the bracket generators expect.
package participants

import "strings"

// Parse splits text on newlines and commas and normalizes the names.
func Parse(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r' || r == ','
	})
	return Normalize(fields)
}

// Normalize trims every name, drops blanks and keeps the first occurrence of
// each name.
func Normalize(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
