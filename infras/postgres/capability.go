package postgres

import (
	"tzfield/field"
)

// Capability is the storage capability probe for PostgreSQL, which has a
// native timezone-aware datetime type (timestamptz). Both aware and naive
// instants are representable.
type Capability struct{}

var _ field.StorageCapability = Capability{}

func (Capability) Accepts(field.Instant) bool {
	return true
}
