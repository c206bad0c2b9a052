// Package rewrite applies the line-level substitutions that migrate C++
// source text to the snake_case naming convention.
//
// The rules are regular expressions, not a C++ parser. Multi-line
// declarations, commented-out code and string literals that happen to look
// like the patterns get rewritten too; that is an accepted limitation for a
// one-shot migration over trees the operator can review.
package rewrite

import (
	"regexp"
	"strings"

	"snakeshift.dev/pkg/snakeshift/internal/naming"
)

// Rule is one independently applicable line substitution.
type Rule struct {
	Name    string
	pattern *regexp.Regexp
	replace func(groups []string) string
}

// Apply rewrites every match of the rule in line. Lines the pattern does not
// match are returned unchanged.
func (r Rule) Apply(line string) string {
	return r.pattern.ReplaceAllStringFunc(line, func(match string) string {
		return r.replace(r.pattern.FindStringSubmatch(match))
	})
}

var (
	// includeDirective captures `#include "<word/>*<Name>.h` with the quoted
	// path prefix in group 1 and the bare header name in group 2.
	includeDirective = regexp.MustCompile(`(#\s*include\s+"(?:\w+/)*)(\w+)\.h`)

	// namespaceDecl captures a namespace declaration at line start, leading
	// whitespace included in group 1 and the identifier in group 2.
	namespaceDecl = regexp.MustCompile(`^(\s*namespace\s+)(\w+)`)

	// usingNamespace is the using-directive counterpart of namespaceDecl.
	usingNamespace = regexp.MustCompile(`^(\s*using namespace\s+)(\w+)`)
)

// Rules returns the three migration rules in application order. Header names
// go through the word-splitting transform; namespace identifiers are only
// lower-cased as a whole, never underscore-split.
func Rules() []Rule {
	return []Rule{
		{
			Name:    "include",
			pattern: includeDirective,
			replace: func(groups []string) string {
				return groups[1] + naming.FileBase(groups[2]) + ".h"
			},
		},
		{
			Name:    "namespace",
			pattern: namespaceDecl,
			replace: lowerIdentifier,
		},
		{
			Name:    "using-namespace",
			pattern: usingNamespace,
			replace: lowerIdentifier,
		},
	}
}

func lowerIdentifier(groups []string) string {
	return groups[1] + strings.ToLower(groups[2])
}

var rules = Rules()

// Line runs every rule over a single line. The patterns are structurally
// disjoint, so at most one rule fires per line.
func Line(line string) string {
	for _, rule := range rules {
		line = rule.Apply(line)
	}

	return line
}

// Content rewrites full file content one line at a time, preserving line
// terminators exactly. Content applied to its own output is a no-op.
func Content(src []byte) []byte {
	lines := strings.SplitAfter(string(src), "\n")

	var out strings.Builder

	out.Grow(len(src))

	for _, line := range lines {
		out.WriteString(Line(line))
	}

	return []byte(out.String())
}
