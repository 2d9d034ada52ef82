package workspace

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/splice/internal/core/ports"
)

// EvaluatorNodeID is the unique identifier for the unit evaluator Graft node.
const EvaluatorNodeID graft.ID = "adapter.workspace.evaluator"

func init() {
	graft.Register(graft.Node[ports.UnitEvaluator]{
		ID:        EvaluatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.UnitEvaluator, error) {
			return NewEvaluator(), nil
		},
	})
}
