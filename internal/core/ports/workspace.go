package ports

import (
	"context"

	"go.trai.ch/splice/internal/core/domain"
)

// UnitEvaluator runs a build unit's own configuration step.
//
// Evaluation materializes the unit's output groups, published artifacts, declared
// dependencies and export policy. Until then the unit exposes none of them.
//
//go:generate mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type UnitEvaluator interface {
	// Evaluate configures unit. It fails if the unit was already evaluated.
	Evaluate(ctx context.Context, unit *domain.BuildUnit) error
}

// LocalReferenceFactory constructs dependencies that point at a sibling unit's output group.
type LocalReferenceFactory interface {
	// MakeLocalReference returns a dependency on the output group named output of the unit at
	// unitPath. It fails if the unit or the output group does not exist.
	MakeLocalReference(unitPath, output string) (domain.Dependency, error)
}
