// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/splice/internal/adapters/config"
	_ "go.trai.ch/splice/internal/adapters/logger"
	_ "go.trai.ch/splice/internal/adapters/report"
	_ "go.trai.ch/splice/internal/adapters/telemetry"
	_ "go.trai.ch/splice/internal/adapters/watcher"
	_ "go.trai.ch/splice/internal/adapters/workspace"
	// Register app and engine nodes.
	_ "go.trai.ch/splice/internal/app"
	_ "go.trai.ch/splice/internal/engine/lifecycle"
)
