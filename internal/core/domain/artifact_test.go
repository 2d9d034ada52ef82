package domain_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/splice/internal/core/domain"
)

func TestKeyForPublished_ClassifierNormalization(t *testing.T) {
	withEmpty := domain.KeyForPublished("acme", domain.PublishedArtifact{
		Name: "utils", Type: "jar", Extension: "jar", Classifier: "",
	})
	withAbsent := domain.KeyForPublished("acme", domain.PublishedArtifact{
		Name: "utils", Type: "jar", Extension: "jar",
	})
	withBlank := domain.KeyForPublished("acme", domain.PublishedArtifact{
		Name: "utils", Type: "jar", Extension: "jar", Classifier: "  ",
	})

	assert.Equal(t, withAbsent, withEmpty)
	assert.Equal(t, withAbsent, withBlank)
	assert.Zero(t, withEmpty.Compare(withAbsent))
	assert.False(t, withEmpty.HasClassifier())
}

func TestKeyForDefaultArtifact(t *testing.T) {
	dep := &domain.ExternalDependency{Group: "g", Name: "lib", Version: "1.0"}

	key := domain.KeyForDefaultArtifact(dep)

	assert.Equal(t, domain.ArtifactKey{Group: "g", Name: "lib", Type: "jar", Extension: "jar"}, key)
	assert.Equal(t, "g:lib:jar:jar", key.String())
}

func TestKeyForSelector(t *testing.T) {
	dep := &domain.ExternalDependency{Group: "g", Name: "lib"}
	sel := domain.ArtifactSelector{Name: "lib-api", Type: "jar", Extension: "jar", Classifier: "sources"}

	key := domain.KeyForSelector(dep, sel)

	assert.Equal(t, "g:lib-api:jar:jar:sources", key.String())
	assert.True(t, key.HasClassifier())
}

func TestArtifactKey_Compare(t *testing.T) {
	base := domain.ArtifactKey{Group: "g", Name: "n", Type: "jar", Extension: "jar"}

	tests := []struct {
		name  string
		other domain.ArtifactKey
		want  int
	}{
		{"equal", base, 0},
		{"group first", domain.ArtifactKey{Group: "h", Name: "a", Type: "a", Extension: "a"}, -1},
		{"name after group", domain.ArtifactKey{Group: "g", Name: "m", Type: "zip", Extension: "zip"}, 1},
		{"type after name", domain.ArtifactKey{Group: "g", Name: "n", Type: "war", Extension: "a"}, -1},
		{"extension after type", domain.ArtifactKey{Group: "g", Name: "n", Type: "jar", Extension: "aar"}, 1},
		{"absent classifier sorts first", domain.ArtifactKey{
			Group: "g", Name: "n", Type: "jar", Extension: "jar", Classifier: "sources",
		}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Compare(tt.other))
			assert.Equal(t, -tt.want, tt.other.Compare(base))
		})
	}
}

func TestExternalDependency_Keys(t *testing.T) {
	t.Run("no selectors requests the default jar", func(t *testing.T) {
		dep := &domain.ExternalDependency{Group: "acme", Name: "utils"}
		assert.Equal(t, []domain.ArtifactKey{domain.KeyForDefaultArtifact(dep)}, dep.Keys())
	})

	t.Run("selectors keep declaration order", func(t *testing.T) {
		dep := &domain.ExternalDependency{
			Group: "acme",
			Name:  "utils",
			Artifacts: []domain.ArtifactSelector{
				{Name: "b", Type: "jar", Extension: "jar"},
				{Name: "a", Type: "jar", Extension: "jar"},
			},
		}
		keys := dep.Keys()
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.Name
		}
		assert.Equal(t, []string{"b", "a"}, names)
		assert.False(t, slices.IsSortedFunc(keys, domain.ArtifactKey.Compare))
	})
}

func TestDependency_String(t *testing.T) {
	ext := &domain.ExternalDependency{
		Group:     "acme",
		Name:      "utils",
		Version:   "1.2",
		Artifacts: []domain.ArtifactSelector{{Name: "utils", Type: "jar", Extension: "jar", Classifier: "tests"}},
	}
	assert.Equal(t, "acme:utils:1.2 [acme:utils:jar:jar:tests]", ext.String())

	local := &domain.LocalReference{
		Unit:   domain.NewInternedString("/core"),
		Output: domain.NewInternedString("runtime"),
	}
	assert.Equal(t, "/core(runtime)", local.String())
}

func TestKeyForPublished_ClassifierKeptVerbatim(t *testing.T) {
	padded := domain.KeyForPublished("acme", domain.PublishedArtifact{
		Name: "utils", Type: "jar", Extension: "jar", Classifier: " sources",
	})
	plain := domain.KeyForPublished("acme", domain.PublishedArtifact{
		Name: "utils", Type: "jar", Extension: "jar", Classifier: "sources",
	})

	assert.Equal(t, " sources", padded.Classifier)
	assert.True(t, padded.HasClassifier())
	assert.NotEqual(t, plain, padded)

	sel := domain.KeyForSelector(
		&domain.ExternalDependency{Group: "acme", Name: "utils"},
		domain.ArtifactSelector{Name: "utils", Type: "jar", Extension: "jar", Classifier: "\t"},
	)
	assert.False(t, sel.HasClassifier())
}
