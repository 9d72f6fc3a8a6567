package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/evalrs/internal/core/domain"
)

func TestManifestLine(t *testing.T) {
	tests := []struct {
		name string
		dep  domain.Dependency
		want string
	}{
		{"wildcard", domain.Dependency{Name: "foo"}, `foo = "*"`},
		{"inline override", domain.Dependency{Name: "foo", Specifier: `foo = "1.2"`}, `foo = "1.2"`},
		{"quoted specifier", domain.Dependency{Name: "foo", Specifier: `"0.9"`}, `foo = "0.9"`},
		{"bare specifier", domain.Dependency{Name: "foo", Specifier: "0.9"}, `foo = "0.9"`},
		{"path override", domain.Dependency{Name: "foo", Specifier: `foo = { path = "/x" }`}, `foo = { path = "/x" }`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dep.ManifestLine())
		})
	}
}

func TestRenderManifest_Empty(t *testing.T) {
	got := domain.RenderManifest(nil)

	assert.Contains(t, got, `name = "evalrs_temp"`)
	assert.Contains(t, got, `version = "0.0.0"`)
	assert.Contains(t, got, "[dependencies]")
}

func TestRenderManifest_OneLinePerDeclaration(t *testing.T) {
	deps := domain.ExtractDependencies("extern crate foo;\nextern crate bar;\nextern crate foo;")
	got := domain.RenderManifest(deps)

	assert.Equal(t, 2, strings.Count(got, `foo = "*"`))
	assert.Equal(t, 1, strings.Count(got, `bar = "*"`))

	// Declaration order carries into the manifest.
	assert.Less(t, strings.Index(got, "foo"), strings.Index(got, "bar"))
}

func TestRenderManifest_SpecifierExample(t *testing.T) {
	deps := domain.ExtractDependencies(`extern crate foo; // foo = "1.2"`)
	got := domain.RenderManifest(deps)

	assert.Contains(t, got, "foo = \"1.2\"\n")
}

func TestCacheKey_Deterministic(t *testing.T) {
	deps := domain.ExtractDependencies("extern crate foo;\nextern crate bar;")

	assert.Equal(t, domain.CacheKey(deps), domain.CacheKey(deps))
}

func TestCacheKey_DistinguishesDependencySets(t *testing.T) {
	a := domain.CacheKey(domain.ExtractDependencies("extern crate foo;"))
	b := domain.CacheKey(domain.ExtractDependencies("extern crate bar;"))
	empty := domain.CacheKey(nil)

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, empty)
	require.Len(t, a, 16)
}

func TestProjectPaths(t *testing.T) {
	p := &domain.Project{Root: "/tmp/evalrs_temp123"}

	assert.Equal(t, "/tmp/evalrs_temp123/target", p.TargetDir())
	assert.Equal(t, "/tmp/evalrs_temp123/target/debug/evalrs_temp", p.BinaryPath(false))
	assert.Equal(t, "/tmp/evalrs_temp123/target/release/evalrs_temp", p.BinaryPath(true))
}
