package workspace

import (
	"go.trai.ch/splice/internal/core/domain"
	"go.trai.ch/splice/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LocalReferenceFactory = (*ReferenceFactory)(nil)

// ReferenceFactory builds local references to output groups of one workspace.
type ReferenceFactory struct {
	ws *domain.Workspace
}

// NewReferenceFactory creates a ReferenceFactory bound to ws.
func NewReferenceFactory(ws *domain.Workspace) *ReferenceFactory {
	return &ReferenceFactory{ws: ws}
}

// MakeLocalReference returns a reference to the output group named output of the unit at
// unitPath. Both must exist in the workspace.
func (f *ReferenceFactory) MakeLocalReference(unitPath, output string) (domain.Dependency, error) {
	unit, ok := f.ws.Unit(unitPath)
	if !ok {
		return nil, zerr.With(domain.ErrUnitNotFound, "unit", unitPath)
	}
	if _, ok := unit.OutputGroup(output); !ok {
		err := zerr.With(domain.ErrOutputGroupNotFound, "unit", unitPath)
		return nil, zerr.With(err, "output", output)
	}
	return &domain.LocalReference{
		Unit:   unit.InternedPath(),
		Output: domain.NewInternedString(output),
	}, nil
}
