// Package idgen provides identifier generators.
package idgen

import (
	"github.com/google/uuid"

	"github.com/runoshun/willflow/internal/domain"
)

// UUID generates random (version 4) UUID strings.
type UUID struct{}

// NewID returns a new random UUID.
func (UUID) NewID() string {
	return uuid.NewString()
}

var _ domain.IDGenerator = UUID{}
