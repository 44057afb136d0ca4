package field

import (
	"context"
	"time"
	"tzfield/zones"
)

type policyKind int

const (
	policyStatic policyKind = iota + 1
	policyDynamic
	policyRelation
)

// ZonePolicy decides which display zone a localized datetime field uses for
// a given record. Exactly one variant is active per field definition, chosen
// explicitly at construction instead of by runtime type inspection.
type ZonePolicy struct {
	kind     policyKind
	loc      *time.Location
	fn       func(context.Context) (*time.Location, error)
	relation string
}

// StaticZone fixes the display zone to a named identifier, resolved once at
// definition time. An unknown name leaves the policy unresolved; resolution
// then falls back to the process default zone.
func StaticZone(name string) ZonePolicy {
	loc, _ := zones.Load(name)

	return ZonePolicy{kind: policyStatic, loc: loc}
}

// StaticLocation fixes the display zone to an already resolved location.
func StaticLocation(loc *time.Location) ZonePolicy {
	return ZonePolicy{kind: policyStatic, loc: loc}
}

// DynamicZone derives the display zone from a callable returning an
// identifier, invoked on every access.
func DynamicZone(fn func(ctx context.Context) (string, error)) ZonePolicy {
	return ZonePolicy{
		kind: policyDynamic,
		fn: func(ctx context.Context) (*time.Location, error) {
			name, err := fn(ctx)
			if err != nil {
				return nil, err
			}

			loc, ok := zones.Load(name)
			if !ok {
				return nil, errUnknownZone
			}

			return loc, nil
		},
	}
}

// DynamicLocation derives the display zone from a callable returning a
// resolved location, invoked on every access.
func DynamicLocation(fn func(ctx context.Context) (*time.Location, error)) ZonePolicy {
	return ZonePolicy{kind: policyDynamic, fn: fn}
}

// RelationZone derives the display zone from a sibling column on the same
// table, fetched by the record's primary key on every access.
func RelationZone(column string) ZonePolicy {
	return ZonePolicy{kind: policyRelation, relation: column}
}

// IsRelation reports whether the policy needs a ZoneLookup.
func (p ZonePolicy) IsRelation() bool {
	return p.kind == policyRelation
}

// Relation returns the sibling column name for relation policies.
func (p ZonePolicy) Relation() string {
	return p.relation
}
