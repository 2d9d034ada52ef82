package domain

import "slices"

// OutputGroup is a named bundle of dependencies to consume and artifacts to publish
// within a build unit (e.g. "runtime", "testRuntime").
//
// Dependencies are kept in insertion order. Published artifacts are fixed at construction.
type OutputGroup struct {
	name         InternedString
	unit         InternedString
	dependencies []Dependency
	artifacts    []PublishedArtifact
}

// NewOutputGroup creates an output group owned by the unit at unitPath.
func NewOutputGroup(unitPath, name string, artifacts []PublishedArtifact) *OutputGroup {
	return &OutputGroup{
		name:      NewInternedString(name),
		unit:      NewInternedString(unitPath),
		artifacts: slices.Clone(artifacts),
	}
}

// Name returns the output group name.
func (g *OutputGroup) Name() string {
	return g.name.String()
}

// UnitPath returns the path of the owning build unit.
func (g *OutputGroup) UnitPath() string {
	return g.unit.String()
}

// Artifacts returns a copy of the published artifacts.
func (g *OutputGroup) Artifacts() []PublishedArtifact {
	return slices.Clone(g.artifacts)
}

// Dependencies returns a snapshot of the declared dependencies in insertion order.
func (g *OutputGroup) Dependencies() []Dependency {
	return slices.Clone(g.dependencies)
}

// ExternalDependencies returns the external dependencies in insertion order.
func (g *OutputGroup) ExternalDependencies() []*ExternalDependency {
	var res []*ExternalDependency
	for _, d := range g.dependencies {
		if ext, ok := d.(*ExternalDependency); ok {
			res = append(res, ext)
		}
	}
	return res
}

// AddDependency appends a dependency.
func (g *OutputGroup) AddDependency(d Dependency) {
	g.dependencies = append(g.dependencies, d)
}

// Replace removes every dependency in remove (by instance identity) and then appends add,
// as one edit: the dependency list is swapped in a single assignment.
func (g *OutputGroup) Replace(remove, add []Dependency) {
	if len(remove) == 0 && len(add) == 0 {
		return
	}

	next := make([]Dependency, 0, len(g.dependencies)+len(add))
	for _, d := range g.dependencies {
		if !slices.Contains(remove, d) {
			next = append(next, d)
		}
	}
	next = append(next, add...)
	g.dependencies = next
}
