// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/handler/internal/adapters/config"
	_ "go.trai.ch/handler/internal/adapters/emitter"
	_ "go.trai.ch/handler/internal/adapters/fs"
	_ "go.trai.ch/handler/internal/adapters/idgen"
	_ "go.trai.ch/handler/internal/adapters/kv"
	_ "go.trai.ch/handler/internal/adapters/logger"
	_ "go.trai.ch/handler/internal/adapters/watcher"
	_ "go.trai.ch/handler/internal/adapters/yaegi"
	// Register app nodes.
	_ "go.trai.ch/handler/internal/app"
)
