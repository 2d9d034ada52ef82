// Package domain contains the core domain models for workspace artifact substitution.
package domain

import (
	"cmp"
	"strings"
)

const (
	// DefaultArtifactType is the type assumed for a dependency that names no artifacts.
	DefaultArtifactType = "jar"
	// DefaultArtifactExtension is the extension assumed for a dependency that names no artifacts.
	DefaultArtifactExtension = "jar"
)

// PublishedArtifact is a concrete output an output group claims to produce.
type PublishedArtifact struct {
	Name       string `json:"name" yaml:"name"`
	Type       string `json:"type" yaml:"type"`
	Extension  string `json:"extension" yaml:"extension"`
	Classifier string `json:"classifier,omitempty" yaml:"classifier,omitempty"`
}

// ArtifactSelector narrows an external dependency to one specific artifact.
type ArtifactSelector struct {
	Name       string `json:"name" yaml:"name"`
	Type       string `json:"type" yaml:"type"`
	Extension  string `json:"extension" yaml:"extension"`
	Classifier string `json:"classifier,omitempty" yaml:"classifier,omitempty"`
}

// ArtifactKey is the canonical identity used to match requested coordinates against
// published artifacts. An empty Classifier means "no classifier".
type ArtifactKey struct {
	Group      string
	Name       string
	Type       string
	Extension  string
	Classifier string
}

// KeyForPublished derives the key of an artifact published by a unit in the given group.
func KeyForPublished(group string, a PublishedArtifact) ArtifactKey {
	return ArtifactKey{
		Group:      group,
		Name:       a.Name,
		Type:       a.Type,
		Extension:  a.Extension,
		Classifier: normalizeClassifier(a.Classifier),
	}
}

// KeyForSelector derives the key requested by one selector of an external dependency.
func KeyForSelector(d *ExternalDependency, s ArtifactSelector) ArtifactKey {
	return ArtifactKey{
		Group:      d.Group,
		Name:       s.Name,
		Type:       s.Type,
		Extension:  s.Extension,
		Classifier: normalizeClassifier(s.Classifier),
	}
}

// KeyForDefaultArtifact derives the key of the implicit single jar requested by a
// dependency without selectors.
func KeyForDefaultArtifact(d *ExternalDependency) ArtifactKey {
	return ArtifactKey{
		Group:     d.Group,
		Name:      d.Name,
		Type:      DefaultArtifactType,
		Extension: DefaultArtifactExtension,
	}
}

// Compare orders keys field by field. An absent classifier sorts before any classifier.
func (k ArtifactKey) Compare(other ArtifactKey) int {
	return cmp.Or(
		cmp.Compare(k.Group, other.Group),
		cmp.Compare(k.Name, other.Name),
		cmp.Compare(k.Type, other.Type),
		cmp.Compare(k.Extension, other.Extension),
		cmp.Compare(k.Classifier, other.Classifier),
	)
}

// HasClassifier reports whether the key carries a classifier.
func (k ArtifactKey) HasClassifier() bool {
	return k.Classifier != ""
}

// String returns the colon-joined form group:name:type:extension[:classifier].
func (k ArtifactKey) String() string {
	parts := []string{k.Group, k.Name, k.Type, k.Extension}
	if k.HasClassifier() {
		parts = append(parts, k.Classifier)
	}
	return strings.Join(parts, ":")
}

// normalizeClassifier maps a blank classifier to absent. Any other value is kept verbatim.
func normalizeClassifier(c string) string {
	if strings.TrimSpace(c) == "" {
		return ""
	}
	return c
}
