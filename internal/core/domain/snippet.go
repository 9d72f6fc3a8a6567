// Package domain contains the pure snippet transformation logic: dependency
// extraction, literate-marker stripping, and entry-point wrapping.
package domain

import (
	"regexp"
	"strings"
)

// Dependency is a single extern crate declaration found in a snippet,
// together with the optional specifier taken from a trailing comment.
type Dependency struct {
	Name      string
	Specifier string
}

var (
	dependencyRe = regexp.MustCompile(`extern\s+crate\s+([a-z0-9_]+)\s*;(\s*//(.+))?`)
	crateLineRe  = regexp.MustCompile(`(extern\s+crate\s+[a-z0-9_]+\s*;)`)
	literateRe   = regexp.MustCompile(`(?m)^# `)
	entryPointRe = regexp.MustCompile(`(?m)^\s*fn +main *\( *\)`)
)

// ExtractDependencies scans raw snippet text for extern crate declarations.
// Order of appearance is preserved and duplicates are not collapsed; every
// match yields one entry.
func ExtractDependencies(input string) []Dependency {
	matches := dependencyRe.FindAllStringSubmatch(input, -1)
	deps := make([]Dependency, 0, len(matches))
	for _, m := range matches {
		deps = append(deps, Dependency{
			Name:      m[1],
			Specifier: strings.TrimSpace(m[3]),
		})
	}
	return deps
}

// StripLiterateMarkers removes the leading "# " marker that literate doctest
// snippets use to hide lines. Idempotent on already-stripped text.
func StripLiterateMarkers(input string) string {
	return literateRe.ReplaceAllString(input, "")
}

// HasEntryPoint reports whether the text contains a line that looks like a
// main function signature. Matching is textual, so an entry-point-like
// string inside a comment or string literal also counts.
func HasEntryPoint(input string) bool {
	return entryPointRe.MatchString(input)
}

// Wrap turns a snippet into a complete program. If the snippet already
// defines an entry point it is returned unchanged after marker stripping;
// otherwise extern crate lines are hoisted to the top and the remaining body
// is placed inside a synthesized main function. With printResult set, the
// body becomes a block expression whose value is debug-printed.
func Wrap(input string, printResult bool) string {
	input = StripLiterateMarkers(input)
	if HasEntryPoint(input) {
		return input
	}

	var crates strings.Builder
	for _, line := range crateLineRe.FindAllString(input, -1) {
		crates.WriteString(line)
		crates.WriteString("\n")
	}

	body := crateLineRe.ReplaceAllString(input, "")
	if printResult {
		body = `println!("{:?}", { ` + body + ` });`
	}

	return "\n" + crates.String() + "\nfn main() {\n" + body + "\n}"
}
