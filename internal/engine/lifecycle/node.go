package lifecycle

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/splice/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/splice/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/splice/internal/adapters/workspace" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/splice/internal/core/domain"
	"go.trai.ch/splice/internal/core/ports"
)

// NodeID is the unique identifier for the lifecycle driver Graft node.
const NodeID graft.ID = "engine.lifecycle"

func init() {
	graft.Register(graft.Node[*Driver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			workspace.EvaluatorNodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Driver, error) {
			evaluator, err := graft.Dep[ports.UnitEvaluator](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewDriver(evaluator, newReferenceFactory, tracer, log), nil
		},
	})
}

func newReferenceFactory(ws *domain.Workspace) ports.LocalReferenceFactory {
	return workspace.NewReferenceFactory(ws)
}
