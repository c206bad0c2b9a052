// Package naming converts CamelCase identifiers to their snake_case form.
package naming

import (
	"regexp"
	"strings"
)

// wordRun matches one maximal CamelCase word: an uppercase letter followed by
// one or more lowercase letters.
var wordRun = regexp.MustCompile(`[A-Z][a-z]+`)

// SnakeCase extracts every word run from token, lower-cases each run and
// joins them with underscores, preserving input order.
//
// Tokens without a single run (all-lowercase names, digits, acronyms such as
// "HTTP") yield the empty string. The fallback for such tokens lives with
// the callers, see FileBase.
func SnakeCase(token string) string {
	runs := wordRun.FindAllString(token, -1)
	if len(runs) == 0 {
		return ""
	}

	for i, run := range runs {
		runs[i] = strings.ToLower(run)
	}

	return strings.Join(runs, "_")
}

// FileBase is the policy applied to file base names and include targets:
// SnakeCase when the token splits into word runs, otherwise the whole token
// lower-cased unmodified.
func FileBase(token string) string {
	if s := SnakeCase(token); s != "" {
		return s
	}

	return strings.ToLower(token)
}
