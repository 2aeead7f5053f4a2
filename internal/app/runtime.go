package app

import (
	"context"
	"slices"
	"sync"

	"go.trai.ch/handler/internal/adapters/yaegi"
	"go.trai.ch/handler/internal/core/domain"
	"go.trai.ch/handler/internal/core/ports"
	"go.trai.ch/handler/internal/engine/construct"
	"go.trai.ch/handler/internal/engine/listener"
	"go.trai.ch/handler/internal/engine/loader"
	"go.trai.ch/handler/internal/engine/sorter"
	"go.trai.ch/zerr"
)

// ListenerTag is the type tag listener blocks are dispatched under.
const ListenerTag = "listener"

// Runtime holds the constructs built from one manifest.
type Runtime struct {
	Manifest  *domain.Manifest
	Resolver  *loader.Resolver
	Sorter    *sorter.Sorter
	Listeners *listener.Construct
	Index     *construct.Module

	logger ports.Logger
	ids    ports.IDGenerator

	mu sync.Mutex
	// listenerIDs keeps generated ids stable across reloads, one per
	// manifest listener.
	listenerIDs []any
}

func newRuntime(
	m *domain.Manifest,
	emitter ports.Emitter,
	modules ports.ModuleLoader,
	hasher ports.Hasher,
	ids ports.IDGenerator,
	logger ports.Logger,
) (*Runtime, error) {
	index := construct.NewModule(nil)
	listeners, err := listener.NewWithOptions(listener.Options{
		Emitter:              emitter,
		UseOnceByDefault:     m.Emitter.UseOnceByDefault,
		BindThis:             m.Emitter.BindThis,
		BindEmitterParameter: m.Emitter.BindEmitterParameter,
		Inner:                index,
	})
	if err != nil {
		return nil, err
	}

	s := sorter.New().
		RegisterType(ListenerTag, listeners).
		RegisterClass(ListenerTag, sorter.TypeOf[*listener.Block](), listeners)

	rt := &Runtime{
		Manifest:    m,
		Resolver:    loader.NewResolver(loader.NewQueryResolver(modules, hasher), m.Base),
		Sorter:      s,
		Listeners:   listeners,
		Index:       index,
		logger:      logger,
		ids:         ids,
		listenerIDs: make([]any, len(m.Listeners)),
	}
	for i, spec := range m.Listeners {
		if spec.ID != "" {
			rt.listenerIDs[i] = spec.ID
			continue
		}
		rt.listenerIDs[i] = ids.NewID()
	}
	return rt, nil
}

// LoadAll loads every listener in the manifest.
func (rt *Runtime) LoadAll(ctx context.Context) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	for i := range rt.Manifest.Listeners {
		if err := rt.loadListener(ctx, i); err != nil {
			return err
		}
	}
	rt.logger.Info(plural(rt.Listeners.Len(), "listener") + " loaded from " +
		plural(len(rt.Index.Specifiers()), "module"))
	return nil
}

// Reload unloads every record loaded from specifiers and loads the manifest
// listeners pointing at them again.
func (rt *Runtime) Reload(ctx context.Context, specifiers []string) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	for _, spec := range specifiers {
		rt.Sorter.Unload(rt.Index.RecordsFrom(spec)...)
	}

	var errs []error
	for i, l := range rt.Manifest.Listeners {
		resolved, err := rt.Resolver.Resolve(l.Module, loader.Inherit)
		if err != nil || !slices.Contains(specifiers, resolved) {
			continue
		}
		if err := rt.loadListener(ctx, i); err != nil {
			errs = append(errs, err)
			continue
		}
		rt.logger.Info("reloaded " + l.Event + " from " + l.Module)
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// Close unloads every listener from the emitter.
func (rt *Runtime) Close() {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	rt.Sorter.Unload(rt.Listeners.Records()...)
}

func (rt *Runtime) loadListener(ctx context.Context, i int) error {
	spec := rt.Manifest.Listeners[i]

	resolved, err := rt.Resolver.Resolve(spec.Module, loader.Inherit)
	if err != nil {
		return listenerError(err, i, spec)
	}
	ns, err := rt.Resolver.LoadModule(ctx, spec.Module, nil, loader.Inherit)
	if err != nil {
		return listenerError(err, i, spec)
	}
	fn, err := yaegi.Listener(ns, spec.Symbol)
	if err != nil {
		return listenerError(err, i, spec)
	}

	block, err := listener.NewBlockFromData(listener.Data{
		ID:                   rt.listenerIDs[i],
		Event:                spec.Event,
		Listener:             fn,
		Module:               resolved,
		Type:                 ListenerTag,
		Once:                 spec.Once,
		BindThis:             spec.BindThis,
		BindEmitterParameter: spec.BindEmitterParameter,
	}, rt.ids.NewID)
	if err != nil {
		return listenerError(err, i, spec)
	}

	rt.Sorter.Load(block)
	return nil
}

func listenerError(err error, i int, spec domain.ListenerSpec) error {
	err = zerr.With(zerr.Wrap(err, "failed to load listener"), "listener", i)
	return zerr.With(err, "module", spec.Module)
}
