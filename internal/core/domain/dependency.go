package domain

import (
	"fmt"
	"strings"
)

// Dependency is a requirement recorded on an output group.
// It is either an *ExternalDependency or a *LocalReference.
type Dependency interface {
	fmt.Stringer
	dependency()
}

// ExternalDependency requests a pre-built artifact by coordinates.
// An empty Artifacts list means a single default jar named after the dependency.
type ExternalDependency struct {
	Group     string
	Name      string
	Version   string
	Artifacts []ArtifactSelector
}

func (*ExternalDependency) dependency() {}

// String returns group:name[:version], followed by the selected artifacts if any.
func (d *ExternalDependency) String() string {
	var b strings.Builder
	b.WriteString(d.Group)
	b.WriteString(":")
	b.WriteString(d.Name)
	if d.Version != "" {
		b.WriteString(":")
		b.WriteString(d.Version)
	}
	if len(d.Artifacts) > 0 {
		names := make([]string, len(d.Artifacts))
		for i, a := range d.Artifacts {
			names[i] = KeyForSelector(d, a).String()
		}
		b.WriteString(" [")
		b.WriteString(strings.Join(names, ", "))
		b.WriteString("]")
	}
	return b.String()
}

// Keys returns the artifact keys this dependency requests, in declaration order.
func (d *ExternalDependency) Keys() []ArtifactKey {
	if len(d.Artifacts) == 0 {
		return []ArtifactKey{KeyForDefaultArtifact(d)}
	}
	keys := make([]ArtifactKey, len(d.Artifacts))
	for i, a := range d.Artifacts {
		keys[i] = KeyForSelector(d, a)
	}
	return keys
}

// LocalReference points at an output group of a sibling unit in the workspace.
// Instances are produced by a ports.LocalReferenceFactory.
type LocalReference struct {
	Unit   InternedString
	Output InternedString
}

func (*LocalReference) dependency() {}

// String returns unit(output), e.g. "/core(runtime)".
func (r *LocalReference) String() string {
	return fmt.Sprintf("%s(%s)", r.Unit.String(), r.Output.String())
}
