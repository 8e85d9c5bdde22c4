// Package envsubst expands environment references in configuration and
// draft files before they are decoded.
package envsubst

import (
	"os"
	"regexp"
	"strings"
)

var pattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Expand replaces ${VAR} with the value of VAR and ${VAR:-default} with the
// value of VAR, or default when VAR is unset or empty. A bare $VAR is left
// untouched.
func Expand(data []byte) []byte {
	return ExpandFunc(data, os.Getenv)
}

// ExpandFunc is Expand with a caller supplied lookup.
func ExpandFunc(data []byte, lookup func(string) string) []byte {
	return pattern.ReplaceAllFunc(data, func(match []byte) []byte {
		content := string(match[2 : len(match)-1])

		if name, fallback, ok := strings.Cut(content, ":-"); ok {
			if val := lookup(name); val != "" {
				return []byte(val)
			}
			return []byte(fallback)
		}

		return []byte(lookup(content))
	})
}
