package loader

import (
	"context"
	"strconv"
	"strings"

	"go.trai.ch/handler/internal/core/domain"
	"go.trai.ch/handler/internal/core/ports"
)

var _ ports.ModuleLoader = (*QueryResolver)(nil)

// QueryResolver tags local module specifiers with a content hash before
// handing them to a caching primitive, so an edited file is loaded again
// while an unchanged one is served from the primitive's cache.
// Modules imported by the loaded module are not re-tagged.
type QueryResolver struct {
	inner  ports.ModuleLoader
	hasher ports.Hasher
}

// NewQueryResolver wraps inner.
func NewQueryResolver(inner ports.ModuleLoader, hasher ports.Hasher) *QueryResolver {
	return &QueryResolver{inner: inner, hasher: hasher}
}

// Load appends v=<hash> to file specifiers and loads the result.
// Specifiers that do not name a local file are loaded unchanged.
func (q *QueryResolver) Load(ctx context.Context, specifier string) (domain.Namespace, error) {
	tagged, err := q.Tag(specifier)
	if err != nil {
		return nil, err
	}
	return q.inner.Load(ctx, tagged)
}

// Tag returns specifier with its content hash query.
func (q *QueryResolver) Tag(specifier string) (string, error) {
	path, ok := domain.FilePath(specifier)
	if !ok {
		return specifier, nil
	}
	sum, err := q.hasher.ComputeFileHash(path)
	if err != nil {
		return "", err
	}

	sep := "?"
	if strings.Contains(specifier, "?") {
		sep = "&"
	}
	return specifier + sep + "v=" + strconv.FormatUint(sum, 16), nil
}
