// Package config provides the manifest loader for handler.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/handler/internal/core/domain"
	"go.trai.ch/handler/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the manifest at path. When path is a directory the nearest
// handler.yaml in it or one of its parents is used.
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if info, statErr := os.Stat(abs); statErr == nil && info.IsDir() {
		abs, err = find(abs)
		if err != nil {
			return nil, err
		}
	}

	var dto Manifest
	if err := readAndUnmarshalYAML(abs, &dto); err != nil {
		return nil, err
	}

	m, err := toDomain(abs, &dto)
	if err != nil {
		return nil, zerr.With(err, "config", abs)
	}

	if l.Logger != nil {
		l.Logger.Info("loaded " + abs)
	}
	return m, nil
}

func find(dir string) (string, error) {
	current := dir
	for {
		candidate := filepath.Join(current, domain.ManifestFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "no manifest"), "cwd", dir)
		}
		current = parent
	}
}

func readAndUnmarshalYAML[T any](path string, target *T) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}

func toDomain(path string, dto *Manifest) (*domain.Manifest, error) {
	dir := filepath.Dir(path)

	base := dto.Base
	if base == "" {
		base = domain.FileURL(dir + string(filepath.Separator))
	}

	settings, err := toSettings(dir, dto.Settings)
	if err != nil {
		return nil, err
	}

	m := &domain.Manifest{
		Path: path,
		Dir:  dir,
		Base: base,
		Emitter: domain.EmitterDefaults{
			UseOnceByDefault:     dto.Emitter.UseOnceByDefault,
			BindThis:             dto.Emitter.BindThis,
			BindEmitterParameter: dto.Emitter.BindEmitterParameter,
		},
		Settings:  settings,
		Listeners: make([]domain.ListenerSpec, 0, len(dto.Listeners)),
	}

	for i, l := range dto.Listeners {
		spec, err := toListener(l)
		if err != nil {
			return nil, zerr.With(err, "listener", i)
		}
		m.Listeners = append(m.Listeners, spec)
	}
	return m, nil
}

func toListener(dto ListenerDTO) (domain.ListenerSpec, error) {
	if strings.TrimSpace(dto.Event) == "" {
		return domain.ListenerSpec{}, zerr.With(zerr.Wrap(domain.ErrInvalidManifest, "listener without event"), "field", "event")
	}
	if strings.TrimSpace(dto.Module) == "" {
		return domain.ListenerSpec{}, zerr.With(zerr.Wrap(domain.ErrInvalidManifest, "listener without module"), "field", "module")
	}

	symbol := dto.Symbol
	if symbol == "" {
		symbol = domain.DefaultListenerSymbol
	}

	return domain.ListenerSpec{
		ID:                   dto.ID,
		Event:                dto.Event,
		Module:               dto.Module,
		Symbol:               symbol,
		Once:                 domain.TriFromPtr(dto.Once),
		BindThis:             domain.TriFromPtr(dto.BindThis),
		BindEmitterParameter: domain.TriFromPtr(dto.BindEmitterParameter),
	}, nil
}

func toSettings(dir string, dto SettingsDTO) (domain.SettingsSpec, error) {
	driver := dto.Driver
	if driver == "" {
		driver = domain.DriverMemory
	}

	switch driver {
	case domain.DriverMemory:
	case domain.DriverFile, domain.DriverSQLite:
		if dto.Path == "" {
			return domain.SettingsSpec{}, zerr.With(
				zerr.With(zerr.Wrap(domain.ErrInvalidManifest, "settings driver requires a path"), "field", "settings.path"),
				"driver", driver)
		}
	default:
		return domain.SettingsSpec{}, zerr.With(zerr.Wrap(domain.ErrUnknownDriver, "invalid settings"), "driver", driver)
	}

	path := dto.Path
	if path != "" && !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}

	return domain.SettingsSpec{
		Driver:   driver,
		Path:     path,
		Defaults: dto.Defaults,
	}, nil
}
