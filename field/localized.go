package field

import (
	"context"
	"errors"
	"time"
	"tzfield/shared/failure"
	"tzfield/shared/timezone"
	"tzfield/zones"

	"github.com/rs/zerolog/log"
)

var (
	errUnknownZone     = errors.New("unknown timezone identifier")
	errAdapterRejected = errors.New("storage adapter rejected datetime value")
)

// Record is the minimal view of a model instance the localized field needs:
// its primary key, for relation-policy lookups.
type Record interface {
	PrimaryKey() any
}

// ReadCacher is implemented by records that memoize localized reads. Models
// get it by embedding ReadCache.
type ReadCacher interface {
	LocalizedReads() *ReadCache
}

// ReadCache memoizes OnRead results per record instance, keyed by field
// name. Not synchronized; a record instance belongs to one goroutine.
type ReadCache struct {
	values map[string]time.Time
}

// LocalizedReads implements ReadCacher for embedding models. The accessor is
// deliberately not named after the type: an embedded field named ReadCache
// would shadow a promoted method of the same name.
func (c *ReadCache) LocalizedReads() *ReadCache {
	return c
}

func (c *ReadCache) lookup(name string) (time.Time, bool) {
	t, ok := c.values[name]

	return t, ok
}

func (c *ReadCache) store(name string, t time.Time) {
	if c.values == nil {
		c.values = map[string]time.Time{}
	}

	c.values[name] = t
}

// Invalidate drops a memoized read, e.g. after the record was mutated.
func (c *ReadCache) Invalidate(name string) {
	delete(c.values, name)
}

// LocalizedDateTimeField defines a datetime column persisted in the process
// default zone and exposed in a per-record display zone. Definitions are
// immutable after construction.
type LocalizedDateTimeField struct {
	name       string
	table      string
	pkColumn   string
	policy     ZonePolicy
	lookup     ZoneLookup
	storageLoc *time.Location
}

type LocalizedOption func(*LocalizedDateTimeField)

// WithLookup supplies the persistence-layer lookup required by relation
// policies.
func WithLookup(lookup ZoneLookup) LocalizedOption {
	return func(f *LocalizedDateTimeField) {
		f.lookup = lookup
	}
}

// WithPrimaryKeyColumn overrides the primary key column used for relation
// lookups (default "id").
func WithPrimaryKeyColumn(column string) LocalizedOption {
	return func(f *LocalizedDateTimeField) {
		f.pkColumn = column
	}
}

// NewLocalizedDateTimeField constructs a definition for the named column on
// the given table. Relation policies must be paired with a ZoneLookup; that
// mismatch is a configuration failure raised here, before any record is
// processed. The storage zone is captured from the process default at
// definition time.
func NewLocalizedDateTimeField(name, table string, policy ZonePolicy, opts ...LocalizedOption) (*LocalizedDateTimeField, error) {
	if policy.kind == 0 {
		return nil, failure.Config("localized datetime field %s.%s: no zone policy", table, name)
	}

	f := &LocalizedDateTimeField{
		name:       name,
		table:      table,
		pkColumn:   "id",
		policy:     policy,
		storageLoc: timezone.Default(),
	}

	for _, opt := range opts {
		opt(f)
	}

	if policy.IsRelation() {
		if f.lookup == nil {
			return nil, failure.Config("localized datetime field %s.%s: relation policy %q requires a zone lookup", table, name, policy.Relation())
		}

		if !validRelationColumn(policy.Relation()) {
			return nil, failure.Config("localized datetime field %s.%s: invalid relation column %q", table, name, policy.Relation())
		}
	}

	return f, nil
}

func validRelationColumn(column string) bool {
	if column == "" {
		return false
	}

	for _, c := range column {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '_':
		default:
			return false
		}
	}

	return true
}

// Name returns the field's column name.
func (f *LocalizedDateTimeField) Name() string {
	return f.name
}

// StorageZone returns the canonical zone persisted values are normalized to.
func (f *LocalizedDateTimeField) StorageZone() *time.Location {
	return f.storageLoc
}

// ToStorage prepares an instant for persistence: naive input is interpreted
// as a storage-zone wall clock, then the aware value is normalized to the
// storage zone. When the adapter's capability probe rejects the aware form,
// the value is degraded once to a naive storage-zone wall clock; if the
// adapter rejects that too, a storage failure is returned.
//
// Storage therefore only ever holds an aware instant in the storage zone, or
// a naive instant whose implicit zone is the storage zone.
func (f *LocalizedDateTimeField) ToStorage(in Instant, capability StorageCapability) (Instant, error) {
	if in.IsZero() {
		return in, nil
	}

	aware := in.In(f.storageLoc)

	if capability == nil || capability.Accepts(aware) {
		return aware, nil
	}

	naive := Instant{Time: aware.Time, Naive: true}
	if capability.Accepts(naive) {
		return naive, nil
	}

	return Instant{}, failure.Storage(errAdapterRejected)
}

// ToStorageForLookup prepares a query filter value: same normalization as
// ToStorage but without the capability fallback, since filter values never
// reach the adapter's storage representation.
func (f *LocalizedDateTimeField) ToStorageForLookup(in Instant) Instant {
	return in.In(f.storageLoc)
}

// ResolveDisplayZone resolves the record's display zone under the field's
// policy. Resolution is re-run on every access and never fails: any of the
// enumerated resolution failures (unknown name, callable error or panic,
// missing row, NULL relation value) falls back to the process default zone.
func (f *LocalizedDateTimeField) ResolveDisplayZone(ctx context.Context, rec Record) *time.Location {
	switch f.policy.kind {
	case policyStatic:
		if f.policy.loc != nil {
			return f.policy.loc
		}

		return timezone.Default()
	case policyDynamic:
		return f.resolveDynamic(ctx)
	case policyRelation:
		return f.resolveRelation(ctx, rec)
	default:
		return timezone.Default()
	}
}

func (f *LocalizedDateTimeField) resolveDynamic(ctx context.Context) *time.Location {
	loc, err := f.invokeCallable(ctx)
	if err != nil {
		log.Warn().
			Err(err).
			Str("field", f.name).
			Str("table", f.table).
			Msg("Dynamic zone resolution failed, falling back to default timezone")

		return timezone.Default()
	}

	if loc == nil {
		return timezone.Default()
	}

	return loc
}

// invokeCallable shields the resolver from a panicking callable; a panic is
// one of the recovered resolution failures, not a crash.
func (f *LocalizedDateTimeField) invokeCallable(ctx context.Context) (loc *time.Location, err error) {
	defer func() {
		if r := recover(); r != nil {
			loc = nil
			err = errors.New("zone callable panicked")
		}
	}()

	return f.policy.fn(ctx)
}

func (f *LocalizedDateTimeField) resolveRelation(ctx context.Context, rec Record) *time.Location {
	if rec == nil || rec.PrimaryKey() == nil {
		return timezone.Default()
	}

	name, err := f.lookup.ZoneName(ctx, f.table, f.pkColumn, rec.PrimaryKey(), f.policy.Relation())
	if err != nil {
		log.Warn().
			Err(err).
			Str("field", f.name).
			Str("table", f.table).
			Str("relation", f.policy.Relation()).
			Msg("Relation zone lookup failed, falling back to default timezone")

		return timezone.Default()
	}

	if name == "" {
		return timezone.Default()
	}

	loc, ok := zones.Load(name)
	if !ok {
		log.Warn().
			Str("field", f.name).
			Str("table", f.table).
			Str("timezone", name).
			Msg("Relation zone value is not a known identifier, falling back to default timezone")

		return timezone.Default()
	}

	return loc
}

// OnRead localizes a stored instant for the caller: naive stored values are
// interpreted as storage-zone wall clocks, then converted to the record's
// display zone. The result is memoized per record instance (keyed by field
// name) when the record embeds ReadCache.
func (f *LocalizedDateTimeField) OnRead(ctx context.Context, stored Instant, rec Record) time.Time {
	cacher, cached := rec.(ReadCacher)
	if cached {
		if t, ok := cacher.LocalizedReads().lookup(f.name); ok {
			return t
		}
	}

	aware := stored.In(f.storageLoc)
	display := aware.Time.In(f.ResolveDisplayZone(ctx, rec))

	if cached {
		cacher.LocalizedReads().store(f.name, display)
	}

	return display
}
