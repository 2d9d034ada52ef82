package index_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/splice/internal/core/domain"
	"go.trai.ch/splice/internal/engine/index"
)

func jar(name string) domain.PublishedArtifact {
	return domain.PublishedArtifact{Name: name, Type: "jar", Extension: "jar"}
}

func newUnit(t *testing.T, path, group string, policy *domain.ExportPolicy, groups map[string][]domain.PublishedArtifact) *domain.BuildUnit {
	t.Helper()
	u := domain.NewBuildUnit(path, "", nil)
	u.SetGroup(group)
	u.SetExportPolicy(policy)
	for name, artifacts := range groups {
		require.NoError(t, u.AddOutputGroup(domain.NewOutputGroup(path, name, artifacts)))
	}
	return u
}

func TestBuild_PolicySelectsGroups(t *testing.T) {
	core := newUnit(t, "/core", "acme", domain.NewExportPolicy(), map[string][]domain.PublishedArtifact{
		"runtime":     {jar("utils")},
		"testRuntime": {jar("utils-tests")},
		"compileOnly": {jar("annotations")},
	})

	ix := index.Build([]*domain.BuildUnit{core})

	assert.Equal(t, 2, ix.Len())
	assert.Equal(t,
		[]domain.ExportingEntry{domain.NewExportingEntry("/core", "runtime")},
		ix.Lookup(domain.ArtifactKey{Group: "acme", Name: "utils", Type: "jar", Extension: "jar"}),
	)
	assert.Empty(t, ix.Lookup(domain.ArtifactKey{Group: "acme", Name: "annotations", Type: "jar", Extension: "jar"}))
}

func TestBuild_NoPolicyFallsBackToDefault(t *testing.T) {
	legacy := newUnit(t, "/legacy", "acme", nil, map[string][]domain.PublishedArtifact{
		"default": {jar("legacy")},
		"runtime": {jar("legacy-runtime")},
	})

	ix := index.Build([]*domain.BuildUnit{legacy})

	require.Equal(t, 1, ix.Len())
	assert.Equal(t, "acme:legacy:jar:jar", ix.Keys()[0].String())
	assert.Equal(t, []string{"default"}, index.ExportedGroupNames(legacy))
}

func TestBuild_CustomPolicy(t *testing.T) {
	policy := domain.NewExportPolicy()
	policy.SetExportedConfigurations("api")
	u := newUnit(t, "/lib", "acme", policy, map[string][]domain.PublishedArtifact{
		"api":     {jar("lib-api")},
		"runtime": {jar("lib")},
	})

	ix := index.Build([]*domain.BuildUnit{u})

	assert.Equal(t, []string{"api"}, index.ExportedGroupNames(u))
	require.Equal(t, 1, ix.Len())
	assert.Equal(t, "lib-api", ix.Keys()[0].Name)
}

func TestBuild_OrderIndependent(t *testing.T) {
	a := newUnit(t, "/a", "acme", domain.NewExportPolicy(), map[string][]domain.PublishedArtifact{
		"runtime": {jar("shared")},
	})
	b := newUnit(t, "/b", "acme", domain.NewExportPolicy(), map[string][]domain.PublishedArtifact{
		"runtime":     {jar("shared")},
		"testRuntime": {jar("shared")},
	})

	forward := index.Build([]*domain.BuildUnit{a, b})
	backward := index.Build([]*domain.BuildUnit{b, a})

	key := domain.ArtifactKey{Group: "acme", Name: "shared", Type: "jar", Extension: "jar"}
	want := []domain.ExportingEntry{
		domain.NewExportingEntry("/a", "runtime"),
		domain.NewExportingEntry("/b", "runtime"),
		domain.NewExportingEntry("/b", "testRuntime"),
	}
	assert.Equal(t, want, forward.Lookup(key))
	assert.Equal(t, want, backward.Lookup(key))
	assert.Equal(t, forward.Fingerprint(), backward.Fingerprint())
}

func TestBuild_DuplicateInsertIsNoop(t *testing.T) {
	u := newUnit(t, "/a", "acme", domain.NewExportPolicy(), map[string][]domain.PublishedArtifact{
		"runtime": {jar("x"), jar("x"), {Name: "x", Type: "jar", Extension: "jar", Classifier: ""}},
	})

	ix := index.Build([]*domain.BuildUnit{u})

	assert.Len(t, ix.Lookup(domain.ArtifactKey{Group: "acme", Name: "x", Type: "jar", Extension: "jar"}), 1)
}

func TestBuild_UnevaluatedUnitsExportNothing(t *testing.T) {
	pending := domain.NewBuildUnit("/pending", "pending", &domain.UnitDeclaration{Group: "acme"})

	ix := index.Build([]*domain.BuildUnit{pending})

	assert.Zero(t, ix.Len())
	assert.Empty(t, ix.Keys())
}

func TestIndex_LookupUnknownKey(t *testing.T) {
	ix := index.Build(nil)

	res := ix.Lookup(domain.ArtifactKey{Group: "nope"})

	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestIndex_LookupReturnsCopy(t *testing.T) {
	u := newUnit(t, "/a", "acme", domain.NewExportPolicy(), map[string][]domain.PublishedArtifact{
		"runtime": {jar("x")},
	})
	ix := index.Build([]*domain.BuildUnit{u})
	key := domain.ArtifactKey{Group: "acme", Name: "x", Type: "jar", Extension: "jar"}

	got := ix.Lookup(key)
	got[0] = domain.NewExportingEntry("/z", "z")

	assert.Equal(t, "/a(runtime)", ix.Lookup(key)[0].String())
}

func TestIndex_Snapshot(t *testing.T) {
	a := newUnit(t, "/a", "acme", domain.NewExportPolicy(), map[string][]domain.PublishedArtifact{
		"runtime": {jar("b-lib"), {Name: "a-lib", Type: "jar", Extension: "jar", Classifier: "sources"}, jar("a-lib")},
	})
	ix := index.Build([]*domain.BuildUnit{a})

	snap := ix.Snapshot()

	require.Len(t, snap.Entries, 3)
	assert.Equal(t, "acme:a-lib:jar:jar", snap.Entries[0].Key.String())
	assert.Equal(t, "acme:a-lib:jar:jar:sources", snap.Entries[1].Key.String())
	assert.Equal(t, "acme:b-lib:jar:jar", snap.Entries[2].Key.String())
	assert.Equal(t, ix.Fingerprint(), snap.Fingerprint)
	assert.Len(t, snap.Fingerprint, 16)
}

func TestIndex_FingerprintChangesWithContent(t *testing.T) {
	a := newUnit(t, "/a", "acme", domain.NewExportPolicy(), map[string][]domain.PublishedArtifact{
		"runtime": {jar("x")},
	})
	b := newUnit(t, "/b", "acme", domain.NewExportPolicy(), map[string][]domain.PublishedArtifact{
		"runtime": {jar("x")},
	})

	assert.NotEqual(t,
		index.Build([]*domain.BuildUnit{a}).Fingerprint(),
		index.Build([]*domain.BuildUnit{a, b}).Fingerprint(),
	)
}
