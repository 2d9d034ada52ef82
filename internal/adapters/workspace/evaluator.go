// Package workspace implements the unit evaluation and local reference ports over the
// in-memory workspace graph.
package workspace

import (
	"context"
	"slices"

	"go.trai.ch/splice/internal/core/domain"
	"go.trai.ch/splice/internal/core/ports"
)

var _ ports.UnitEvaluator = (*Evaluator)(nil)

// Evaluator materializes a unit's declaration: its export policy, output groups, published
// artifacts and declared dependencies.
type Evaluator struct{}

// NewEvaluator creates a new Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate configures unit from its declaration and marks it evaluated.
// A unit without a declaration evaluates to nothing.
func (e *Evaluator) Evaluate(ctx context.Context, unit *domain.BuildUnit) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if unit.Evaluated() {
		return unit.MarkEvaluated()
	}

	if decl := unit.Declaration(); decl != nil {
		if decl.Policy != nil {
			unit.SetExportPolicy(newPolicy(decl.Policy))
		}
		for _, out := range decl.Outputs {
			group := domain.NewOutputGroup(unit.Path(), out.Name, out.Artifacts)
			for _, dep := range out.Dependencies {
				group.AddDependency(cloneDependency(dep))
			}
			if err := unit.AddOutputGroup(group); err != nil {
				return err
			}
		}
	}

	return unit.MarkEvaluated()
}

func newPolicy(decl *domain.PolicyDeclaration) *domain.ExportPolicy {
	p := domain.NewExportPolicy()
	if decl.ExportedConfigurations != nil {
		p.SetExportedConfigurations(decl.ExportedConfigurations...)
	}
	return p
}

// cloneDependency copies a declared dependency so every evaluation owns its instances.
func cloneDependency(d *domain.ExternalDependency) *domain.ExternalDependency {
	c := *d
	c.Artifacts = slices.Clone(d.Artifacts)
	return &c
}
