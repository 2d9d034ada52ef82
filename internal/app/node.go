package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/splice/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/splice/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/splice/internal/adapters/report"  //nolint:depguard // Wired in app layer
	"go.trai.ch/splice/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/splice/internal/core/ports"
	"go.trai.ch/splice/internal/engine/lifecycle"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			lifecycle.NodeID,
			report.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	driver, err := graft.Dep[*lifecycle.Driver](ctx)
	if err != nil {
		return nil, err
	}

	renderers, err := graft.Dep[ports.RendererFactory](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, driver, renderers, w, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log), nil
}
