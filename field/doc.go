// Package field provides persistence-layer field types for record models: a
// timezone-name field validated against the IANA zone database, and a
// localized datetime field that converts stored instants between the
// process-wide storage zone and a per-record display zone.
//
// Usage:
//
//  1. A timezone column:
//     tzField, err := field.NewTimeZoneField()
//     tz := tzField.Coerce("Asia/Jakarta")
//     err = tzField.Validate(tz)
//
//  2. A localized datetime column with a static display zone:
//     dtField, err := field.NewLocalizedDateTimeField("starts_at", "events",
//         field.StaticZone("America/New_York"))
//     stored, err := dtField.ToStorage(field.Naive(input), capability)
//     display := dtField.OnRead(ctx, stored, record)
//
//  3. A display zone read from a sibling column of the same record:
//     dtField, err := field.NewLocalizedDateTimeField("starts_at", "events",
//         field.RelationZone("timezone"),
//         field.WithLookup(lookup))
//
// Field definitions are immutable after construction and safe for concurrent
// use. The per-record read cache is not synchronized; records shared across
// goroutines need caller-side locking.
package field
