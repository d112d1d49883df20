package editor

import "strings"

// SplitComma parses a comma-delimited input field into an ordered list,
// trimming whitespace and dropping empty segments. Used for skills and
// coursework.
func SplitComma(s string) []string {
	return splitList(s, ",")
}

// SplitLines parses a newline-delimited input field, one segment per
// logical bullet. Used for narrative details.
func SplitLines(s string) []string {
	return splitList(s, "\n")
}

func splitList(s, sep string) []string {
	parts := strings.Split(s, sep)

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}

	return out
}
