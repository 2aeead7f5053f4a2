package ports

import (
	"context"

	"go.trai.ch/handler/internal/core/domain"
)

// ModuleLoader is the primitive that turns a fully resolved specifier into a
// loaded module namespace.
//
//go:generate go run go.uber.org/mock/mockgen -source=module_loader.go -destination=mocks/mock_module_loader.go -package=mocks
type ModuleLoader interface {
	Load(ctx context.Context, specifier string) (domain.Namespace, error)
}
