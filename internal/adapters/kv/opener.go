package kv

import (
	"context"

	"go.trai.ch/handler/internal/core/domain"
	"go.trai.ch/handler/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.KeyValueOpener = (*Opener)(nil)

// Opener selects an adapter by settings driver.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open returns the adapter for spec.Driver. An empty driver selects memory.
func (o *Opener) Open(ctx context.Context, spec domain.SettingsSpec) (ports.AsyncKeyValueAdapter, error) {
	switch spec.Driver {
	case "", domain.DriverMemory:
		return Async(NewMemory()), nil
	case domain.DriverFile:
		f, err := NewFile(spec.Path)
		if err != nil {
			return nil, err
		}
		return Async(f), nil
	case domain.DriverSQLite:
		return OpenSQLite(ctx, spec.Path)
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownDriver, "cannot open settings"), "driver", spec.Driver)
	}
}
