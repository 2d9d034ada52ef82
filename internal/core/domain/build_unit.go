package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// BuildUnit is one module of the workspace. Output groups and the export policy only exist
// once the unit has been evaluated.
type BuildUnit struct {
	path        InternedString
	group       string
	dir         string
	declaration *UnitDeclaration
	outputs     map[InternedString]*OutputGroup
	policy      *ExportPolicy
	evaluated   bool
}

// NewBuildUnit creates an unevaluated unit at path. The declaration describes what the unit
// will contain once evaluated; it may be nil for units built programmatically.
func NewBuildUnit(path, dir string, declaration *UnitDeclaration) *BuildUnit {
	u := &BuildUnit{
		path:        NewInternedString(path),
		dir:         dir,
		declaration: declaration,
		outputs:     make(map[InternedString]*OutputGroup),
	}
	if declaration != nil {
		u.group = declaration.Group
	}
	return u
}

// Path returns the unit's path identifier, e.g. "/libs/core".
func (u *BuildUnit) Path() string {
	return u.path.String()
}

// InternedPath returns the interned path identifier.
func (u *BuildUnit) InternedPath() InternedString {
	return u.path
}

// Group returns the namespace the unit publishes under.
func (u *BuildUnit) Group() string {
	return u.group
}

// SetGroup sets the namespace the unit publishes under.
func (u *BuildUnit) SetGroup(group string) {
	u.group = group
}

// Dir returns the unit's directory on disk, if any.
func (u *BuildUnit) Dir() string {
	return u.dir
}

// Declaration returns the declared content of the unit, or nil.
func (u *BuildUnit) Declaration() *UnitDeclaration {
	return u.declaration
}

// AddOutputGroup attaches an output group to the unit.
func (u *BuildUnit) AddOutputGroup(g *OutputGroup) error {
	if _, exists := u.outputs[g.name]; exists {
		err := zerr.With(ErrDuplicateOutputGroup, "unit", u.Path())
		return zerr.With(err, "output", g.Name())
	}
	u.outputs[g.name] = g
	return nil
}

// OutputGroup returns the output group with the given name.
func (u *BuildUnit) OutputGroup(name string) (*OutputGroup, bool) {
	g, ok := u.outputs[NewInternedString(name)]
	return g, ok
}

// OutputGroups returns all output groups sorted by name.
func (u *BuildUnit) OutputGroups() []*OutputGroup {
	groups := make([]*OutputGroup, 0, len(u.outputs))
	for _, g := range u.outputs {
		groups = append(groups, g)
	}
	slices.SortFunc(groups, func(a, b *OutputGroup) int {
		return a.name.Compare(b.name)
	})
	return groups
}

// ExportPolicy returns the unit's export policy, if one is attached.
func (u *BuildUnit) ExportPolicy() (*ExportPolicy, bool) {
	return u.policy, u.policy != nil
}

// SetExportPolicy attaches an export policy. A nil policy detaches it.
func (u *BuildUnit) SetExportPolicy(p *ExportPolicy) {
	u.policy = p
}

// Evaluated reports whether the unit finished evaluating.
func (u *BuildUnit) Evaluated() bool {
	return u.evaluated
}

// MarkEvaluated records that the unit finished evaluating.
func (u *BuildUnit) MarkEvaluated() error {
	if u.evaluated {
		return zerr.With(ErrUnitAlreadyEvaluated, "unit", u.Path())
	}
	u.evaluated = true
	return nil
}
