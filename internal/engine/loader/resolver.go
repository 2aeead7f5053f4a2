// Package loader resolves module specifiers against a base and loads them
// through a module-loading primitive.
package loader

import (
	"context"
	"net/url"
	"path/filepath"

	"go.trai.ch/handler/internal/core/domain"
	"go.trai.ch/handler/internal/core/ports"
	"go.trai.ch/zerr"
)

type overrideKind uint8

const (
	inherit overrideKind = iota
	absolute
	relative
	relativeTo
)

// Override adjusts how a single LoadModule call treats its specifier.
type Override struct {
	kind overrideKind
	base string
}

var (
	// Inherit resolves relative specifiers against the resolver base when it
	// has one. Absolute paths and URLs are loaded as they are.
	Inherit = Override{}
	// Absolute loads the specifier as it is.
	Absolute = Override{kind: absolute}
	// Relative resolves the specifier against the resolver base, if any.
	Relative = Override{kind: relative}
)

// RelativeTo resolves the specifier against base. An empty base falls back
// to the resolver base.
func RelativeTo(base string) Override {
	return Override{kind: relativeTo, base: base}
}

// Resolver resolves module specifiers and loads them.
type Resolver struct {
	base   string
	loader ports.ModuleLoader
}

// NewResolver creates a resolver over loader. base may be empty.
func NewResolver(loader ports.ModuleLoader, base string) *Resolver {
	return &Resolver{base: base, loader: loader}
}

// Base returns the resolver's base.
func (r *Resolver) Base() string {
	return r.base
}

// LoadModule resolves specifier and loads it. target is passed through for
// callers that register what the module produces; the resolver ignores it.
func (r *Resolver) LoadModule(ctx context.Context, specifier string, _ any, o Override) (domain.Namespace, error) {
	resolved, err := r.Resolve(specifier, o)
	if err != nil {
		return nil, err
	}
	return r.loader.Load(ctx, resolved)
}

// LoadRelative resolves specifier against base, or the resolver base when
// base is empty, and loads it.
func (r *Resolver) LoadRelative(ctx context.Context, specifier string, _ any, base string) (domain.Namespace, error) {
	if specifier == "" {
		return nil, domain.ErrMissingSpecifier
	}
	resolved, err := r.resolveRelative(specifier, base)
	if err != nil {
		return nil, err
	}
	return r.loader.Load(ctx, resolved)
}

// Resolve returns the fully resolved specifier without loading it.
func (r *Resolver) Resolve(specifier string, o Override) (string, error) {
	if specifier == "" {
		return "", domain.ErrMissingSpecifier
	}
	if r.isRelative(specifier, o) {
		return r.resolveRelative(specifier, o.base)
	}
	return specifier, nil
}

func (r *Resolver) isRelative(specifier string, o Override) bool {
	switch o.kind {
	case relative:
		return r.base != ""
	case relativeTo:
		return true
	case absolute:
		return false
	default:
		return r.base != "" && !filepath.IsAbs(specifier) && !IsURL(specifier)
	}
}

func (r *Resolver) resolveRelative(specifier, base string) (string, error) {
	if base == "" {
		base = r.base
	}
	if base == "" {
		return "", zerr.With(zerr.Wrap(domain.ErrMissingBase, "cannot resolve module"), "specifier", specifier)
	}

	b, err := url.Parse(base)
	if err != nil || !b.IsAbs() {
		return "", zerr.With(zerr.Wrap(domain.ErrInvalidBase, "cannot resolve module"), "base", base)
	}
	ref, err := url.Parse(specifier)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "invalid module specifier"), "specifier", specifier)
	}
	return b.ResolveReference(ref).String(), nil
}
