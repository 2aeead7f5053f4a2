package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/handler/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/handler/internal/adapters/emitter" //nolint:depguard // Wired in app layer
	"go.trai.ch/handler/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/handler/internal/adapters/idgen"   //nolint:depguard // Wired in app layer
	"go.trai.ch/handler/internal/adapters/kv"      //nolint:depguard // Wired in app layer
	"go.trai.ch/handler/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/handler/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/handler/internal/adapters/yaegi"   //nolint:depguard // Wired in app layer
	"go.trai.ch/handler/internal/core/ports"
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
			logger.NodeID,
			emitter.NodeID,
			yaegi.NodeID,
			fs.HasherNodeID,
			idgen.NodeID,
			kv.NodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	em, err := graft.Dep[ports.Emitter](ctx)
	if err != nil {
		return nil, err
	}
	modules, err := graft.Dep[ports.ModuleLoader](ctx)
	if err != nil {
		return nil, err
	}
	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}
	ids, err := graft.Dep[ports.IDGenerator](ctx)
	if err != nil {
		return nil, err
	}
	stores, err := graft.Dep[ports.KeyValueOpener](ctx)
	if err != nil {
		return nil, err
	}
	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, em, modules, hasher, ids, stores, w), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:          a,
		Logger:       log,
		ConfigLoader: loader,
	}, nil
}
