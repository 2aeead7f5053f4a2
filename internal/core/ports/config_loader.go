package ports

import "go.trai.ch/handler/internal/core/domain"

// ConfigLoader defines the interface for loading the handler manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the manifest at path. Relative paths inside the manifest are
	// resolved against the manifest's directory.
	Load(path string) (*domain.Manifest, error)
}
