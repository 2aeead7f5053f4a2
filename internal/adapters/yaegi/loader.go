// Package yaegi implements the module-loading primitive with the yaegi Go
// interpreter. A module is a single Go source file; its exported top-level
// functions, variables and constants form the namespace.
package yaegi

import (
	"context"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"os"
	"sync"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
	"go.trai.ch/handler/internal/core/domain"
	"go.trai.ch/handler/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ModuleLoader = (*Loader)(nil)

// Loader interprets Go source modules. Namespaces are cached by the full
// specifier, query included, and never evicted.
type Loader struct {
	stdout io.Writer
	stderr io.Writer

	mu    sync.Mutex
	cache map[string]domain.Namespace
}

// New creates a loader whose modules write to stdout and stderr.
func New(stdout, stderr io.Writer) *Loader {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Loader{
		stdout: stdout,
		stderr: stderr,
		cache:  make(map[string]domain.Namespace),
	}
}

// Load interprets the module at specifier, which must be an absolute path
// or a file:// URL.
func (l *Loader) Load(ctx context.Context, specifier string) (domain.Namespace, error) {
	l.mu.Lock()
	if ns, ok := l.cache[specifier]; ok {
		l.mu.Unlock()
		return ns, nil
	}
	l.mu.Unlock()

	path, ok := domain.FilePath(specifier)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedScheme, "cannot load module"), "specifier", specifier)
	}

	//nolint:gosec // Path comes from the manifest
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, loadError(err, specifier)
	}

	ns, err := l.interpret(ctx, path, string(src))
	if err != nil {
		return nil, loadError(err, specifier)
	}

	l.mu.Lock()
	l.cache[specifier] = ns
	l.mu.Unlock()
	return ns, nil
}

func (l *Loader) interpret(ctx context.Context, path, src string) (domain.Namespace, error) {
	pkg, names, err := exports(path, src)
	if err != nil {
		return nil, err
	}

	i := interp.New(interp.Options{Stdout: l.stdout, Stderr: l.stderr})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, err
	}
	if _, err := i.EvalWithContext(ctx, src); err != nil {
		return nil, err
	}

	ns := make(domain.Namespace, len(names))
	for _, name := range names {
		v, err := i.EvalWithContext(ctx, pkg+"."+name)
		if err != nil {
			return nil, err
		}
		if v.IsValid() && v.CanInterface() {
			ns[name] = v.Interface()
		}
	}
	return ns, nil
}

// exports returns the package name and exported top-level value names of src.
func exports(path, src string) (string, []string, error) {
	f, err := parser.ParseFile(token.NewFileSet(), path, src, parser.SkipObjectResolution)
	if err != nil {
		return "", nil, err
	}

	var names []string
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil && d.Name.IsExported() {
				names = append(names, d.Name.Name)
			}
		case *ast.GenDecl:
			if d.Tok != token.VAR && d.Tok != token.CONST {
				continue
			}
			for _, spec := range d.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}
				for _, n := range vs.Names {
					if n.IsExported() {
						names = append(names, n.Name)
					}
				}
			}
		}
	}
	return f.Name.Name, names, nil
}

func loadError(err error, specifier string) error {
	return zerr.With(zerr.Wrap(domain.ErrModuleLoad, err.Error()), "specifier", specifier)
}

// Listener looks up symbol in ns and converts it to a listener function.
// Functions taking no receiver, func(args ...any), are accepted too.
func Listener(ns domain.Namespace, symbol string) (domain.ListenerFunc, error) {
	v, ok := ns.Lookup(symbol)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrSymbolNotFound, "cannot load listener"), "symbol", symbol)
	}
	switch fn := v.(type) {
	case func(any, ...any):
		return fn, nil
	case domain.ListenerFunc:
		return fn, nil
	case func(...any):
		return func(_ any, args ...any) { fn(args...) }, nil
	case func():
		return func(any, ...any) { fn() }, nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrSymbolType, "cannot load listener"), "symbol", symbol)
	}
}
