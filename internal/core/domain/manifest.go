package domain

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// PackageName is the name of the ephemeral cargo package. Cargo also uses it
// as the file name of the produced executable.
const PackageName = "evalrs_temp"

// ManifestLine renders the dependency as a single Cargo.toml dependency
// line. A specifier containing "=" is an inline override and is emitted
// verbatim; an already-quoted specifier is used as the version constraint as
// written; a bare specifier is quoted; no specifier means any version.
func (d Dependency) ManifestLine() string {
	switch {
	case strings.Contains(d.Specifier, "="):
		return d.Specifier
	case strings.HasPrefix(d.Specifier, `"`):
		return fmt.Sprintf("%s = %s", d.Name, d.Specifier)
	case d.Specifier != "":
		return fmt.Sprintf("%s = %q", d.Name, d.Specifier)
	default:
		return fmt.Sprintf(`%s = "*"`, d.Name)
	}
}

// RenderManifest produces the Cargo.toml for a generated project with the
// given dependencies, one line per declaration in input order.
func RenderManifest(deps []Dependency) string {
	var b strings.Builder
	for _, d := range deps {
		b.WriteString(d.ManifestLine())
		b.WriteString("\n")
	}
	return fmt.Sprintf(`
[package]
name = %q
version = "0.0.0"

[dependencies]
%s`, PackageName, b.String())
}

// CacheKey derives the content-addressed key under which build artifacts for
// this dependency set are cached. Snippets sharing a dependency set share a
// cache slot; everything else stays apart.
func CacheKey(deps []Dependency) string {
	h := xxhash.New()
	for _, d := range deps {
		_, _ = h.WriteString(d.ManifestLine())
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
