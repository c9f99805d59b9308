package utils

import (
	"strings"
)

// NormalizeString trims whitespace and normalizes string input
func NormalizeString(s string) string {
	return strings.TrimSpace(s)
}

// SplitList splits a comma separated value, dropping empty entries.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = NormalizeString(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
