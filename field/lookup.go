package field

//go:generate go run go.uber.org/mock/mockgen -source=./lookup.go -destination=./mocks/lookup_mock.go -package=mocks

import (
	"context"
)

// ZoneLookup fetches the current value of a record's sibling timezone column
// by primary key. Implementations live in the persistence layer; a missing
// row or NULL value returns an empty name, not an error.
type ZoneLookup interface {
	ZoneName(ctx context.Context, table, pkColumn string, pk any, column string) (string, error)
}

// StorageCapability is the persistence adapter's capability probe. Accepts
// reports whether the adapter can represent the prepared value; it answers a
// question instead of failing, so conversion can pick a degraded path.
type StorageCapability interface {
	Accepts(in Instant) bool
}

// CapabilityFunc adapts a plain function to StorageCapability.
type CapabilityFunc func(Instant) bool

func (f CapabilityFunc) Accepts(in Instant) bool {
	return f(in)
}
