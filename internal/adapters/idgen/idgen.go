// Package idgen provides identifier generators for blocks created without an id.
package idgen

import (
	"github.com/google/uuid"
	"go.trai.ch/handler/internal/core/ports"
)

var _ ports.IDGenerator = (*UUID)(nil)

// UUID generates random version 4 UUID strings.
type UUID struct{}

// NewUUID creates a UUID generator.
func NewUUID() *UUID {
	return &UUID{}
}

// NewID returns a fresh UUID string.
func (*UUID) NewID() any {
	return uuid.NewString()
}
