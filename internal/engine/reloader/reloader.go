// Package reloader reloads modules whose source files change on disk.
package reloader

import (
	"context"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/handler/internal/core/domain"
	"go.trai.ch/handler/internal/core/ports"
)

// Index reports the module specifiers records are currently loaded from.
type Index interface {
	Specifiers() []string
}

// Batcher coalesces paths and passes each batch to the callback it was
// built with.
type Batcher interface {
	Add(path string)
	Stop()
}

// BatcherFunc builds a Batcher delivering batches to callback.
type BatcherFunc func(callback func(paths []string)) Batcher

// ReloadFunc reloads every record loaded from the given specifiers.
type ReloadFunc func(ctx context.Context, specifiers []string) error

// Reloader turns watcher events into module reloads.
type Reloader struct {
	watcher ports.Watcher
	index   Index
	reload  ReloadFunc
	batch   BatcherFunc
	onError func(error)

	mu sync.Mutex
}

// New creates a reloader. A nil batch delivers every path on its own.
func New(w ports.Watcher, index Index, reload ReloadFunc, batch BatcherFunc) *Reloader {
	if batch == nil {
		batch = immediate
	}
	return &Reloader{
		watcher: w,
		index:   index,
		reload:  reload,
		batch:   batch,
	}
}

// OnError sets the function receiving reload failures.
func (r *Reloader) OnError(fn func(error)) *Reloader {
	r.onError = fn
	return r
}

// Run watches root until ctx is cancelled.
func (r *Reloader) Run(ctx context.Context, root string) error {
	if err := r.watcher.Start(ctx, root); err != nil {
		return err
	}

	batcher := r.batch(func(paths []string) {
		r.handle(ctx, paths)
	})

	for event := range r.watcher.Events() {
		if event.Operation == ports.OpRemove {
			continue
		}
		batcher.Add(event.Path)
		if ctx.Err() != nil {
			break
		}
	}

	batcher.Stop()
	return r.watcher.Stop()
}

func (r *Reloader) handle(ctx context.Context, paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ctx.Err() != nil {
		return
	}
	specifiers := Affected(r.index, paths)
	if len(specifiers) == 0 {
		return
	}
	if err := r.reload(ctx, specifiers); err != nil && r.onError != nil {
		r.onError(err)
	}
}

// Affected returns the sorted specifiers in index whose local file is one of
// paths.
func Affected(index Index, paths []string) []string {
	changed := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		changed[filepath.Clean(p)] = struct{}{}
	}

	var out []string
	for _, spec := range index.Specifiers() {
		path, ok := domain.FilePath(spec)
		if !ok {
			continue
		}
		if _, hit := changed[filepath.Clean(path)]; hit {
			out = append(out, spec)
		}
	}
	slices.Sort(out)
	return out
}

type immediateBatcher struct {
	callback func([]string)
}

func immediate(callback func([]string)) Batcher {
	return immediateBatcher{callback: callback}
}

func (b immediateBatcher) Add(path string) {
	b.callback([]string{path})
}

func (immediateBatcher) Stop() {}
