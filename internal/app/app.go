// Package app implements the application layer for handler.
package app

import (
	"context"
	"strconv"
	"time"

	"go.trai.ch/handler/internal/adapters/watcher"
	"go.trai.ch/handler/internal/core/domain"
	"go.trai.ch/handler/internal/core/ports"
	"go.trai.ch/handler/internal/engine/reloader"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	emitter      ports.Emitter
	modules      ports.ModuleLoader
	hasher       ports.Hasher
	ids          ports.IDGenerator
	stores       ports.KeyValueOpener
	watcher      ports.Watcher
	debounce     time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	logger ports.Logger,
	emitter ports.Emitter,
	modules ports.ModuleLoader,
	hasher ports.Hasher,
	ids ports.IDGenerator,
	stores ports.KeyValueOpener,
	w ports.Watcher,
) *App {
	return &App{
		configLoader: loader,
		logger:       logger,
		emitter:      emitter,
		modules:      modules,
		hasher:       hasher,
		ids:          ids,
		stores:       stores,
		watcher:      w,
		debounce:     watcher.DefaultDebounceWindow,
	}
}

// WithDebounce sets the window used to coalesce module changes in watch mode.
func (a *App) WithDebounce(d time.Duration) *App {
	a.debounce = d
	return a
}

// Emission is one event to emit after listeners are loaded.
type Emission struct {
	Event string
	Args  []any
}

// RunOptions configures Run.
type RunOptions struct {
	// Config is the manifest path or a directory to search from.
	Config string
	Emits  []Emission
	// Watch keeps the process running and reloads changed modules.
	Watch bool
}

// Load reads the manifest and loads every listener it declares.
func (a *App) Load(ctx context.Context, config string) (*Runtime, error) {
	m, err := a.configLoader.Load(config)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	rt, err := newRuntime(m, a.emitter, a.modules, a.hasher, a.ids, a.logger)
	if err != nil {
		return nil, err
	}
	if err := rt.LoadAll(ctx); err != nil {
		rt.Close()
		return nil, err
	}
	return rt, nil
}

// Run loads the manifest, emits the requested events and, in watch mode,
// reloads modules until ctx is cancelled.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	rt, err := a.Load(ctx, opts.Config)
	if err != nil {
		return err
	}
	defer rt.Close()

	if !opts.Watch {
		a.emitAll(opts.Emits)
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rel := reloader.New(a.watcher, rt.Index, rt.Reload, func(cb func([]string)) reloader.Batcher {
			return watcher.NewDebouncer(a.debounce, cb)
		}).OnError(a.logger.Error)

		a.logger.Info("watching " + rt.Manifest.Dir)
		if err := rel.Run(gctx, rt.Manifest.Dir); err != nil {
			return zerr.Wrap(err, "file watcher failed")
		}
		return nil
	})

	g.Go(func() error {
		a.emitAll(opts.Emits)
		return nil
	})

	return g.Wait()
}

// Emit emits event with args, reporting whether any listener ran.
func (a *App) Emit(event string, args ...any) bool {
	return a.emitter.Emit(event, args...)
}

func (a *App) emitAll(emits []Emission) {
	for _, e := range emits {
		if !a.Emit(e.Event, e.Args...) {
			a.logger.Warn(domain.ErrUnknownEvent.Error() + " " + strconv.Quote(e.Event))
		}
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
