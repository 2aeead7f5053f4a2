package app

import (
	"context"
	"io"
	"maps"
	"slices"

	"go.trai.ch/handler/internal/core/domain"
	"go.trai.ch/handler/internal/engine/flatdata"
	"go.trai.ch/zerr"
)

const ephemeralSettingsWarning = "settings driver is memory; changes are discarded when handler exits"

// Setting is one resolved key of a settings entry.
type Setting struct {
	Key   string
	Value any
	// Default reports whether the value came from the manifest defaults.
	Default bool
}

// withSettings opens the settings store named by the manifest at config and
// runs fn against it. Writes to the memory driver only live as long as the
// process, so they are warned about.
func (a *App) withSettings(ctx context.Context, config string, write bool, fn func(*flatdata.AsyncStore) error) error {
	m, err := a.configLoader.Load(config)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if write && (m.Settings.Driver == "" || m.Settings.Driver == domain.DriverMemory) {
		a.logger.Warn(ephemeralSettingsWarning)
	}

	adapter, err := a.stores.Open(ctx, m.Settings)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open settings"), "driver", m.Settings.Driver)
	}
	if c, ok := adapter.(io.Closer); ok {
		defer func() { _ = c.Close() }()
	}

	store, err := flatdata.NewAsyncStore(adapter, m.Settings.Defaults)
	if err != nil {
		return err
	}
	return fn(store)
}

// SettingsGet returns the entry at key overlaid on the defaults, sorted by key.
func (a *App) SettingsGet(ctx context.Context, config, key string) ([]Setting, error) {
	var out []Setting
	err := a.withSettings(ctx, config, false, func(s *flatdata.AsyncStore) error {
		w, err := s.Get(ctx, key)
		if err != nil {
			return err
		}
		data := w.FlatData()
		view := w.View()

		keys := slices.Collect(maps.Keys(data))
		for k := range w.Defaults() {
			if _, ok := data[k]; !ok {
				keys = append(keys, k)
			}
		}
		slices.Sort(keys)

		for _, k := range keys {
			v, _ := view.Get(k)
			_, stored := data[k]
			out = append(out, Setting{Key: k, Value: v, Default: !stored})
		}
		return nil
	})
	return out, err
}

// SettingsSet replaces the entry at key.
func (a *App) SettingsSet(ctx context.Context, config, key string, values map[string]any) error {
	return a.withSettings(ctx, config, true, func(s *flatdata.AsyncStore) error {
		if err := s.Set(ctx, key, flatdata.Data(values)); err != nil {
			return err
		}
		a.logger.Info("set " + key)
		return nil
	})
}

// SettingsPatch merges values into the entry at key.
func (a *App) SettingsPatch(ctx context.Context, config, key string, values map[string]any) error {
	return a.withSettings(ctx, config, true, func(s *flatdata.AsyncStore) error {
		if err := s.Patch(ctx, key, flatdata.Data(values)); err != nil {
			return err
		}
		a.logger.Info("patched " + key)
		return nil
	})
}

// SettingsDelete removes the entry at key, reporting whether it existed.
func (a *App) SettingsDelete(ctx context.Context, config, key string) (bool, error) {
	var existed bool
	err := a.withSettings(ctx, config, true, func(s *flatdata.AsyncStore) error {
		var err error
		existed, err = s.Delete(ctx, key)
		return err
	})
	return existed, err
}

// SettingsClear removes every entry.
func (a *App) SettingsClear(ctx context.Context, config string) error {
	return a.withSettings(ctx, config, true, func(s *flatdata.AsyncStore) error {
		if err := s.Clear(ctx); err != nil {
			return err
		}
		a.logger.Info("cleared settings")
		return nil
	})
}
