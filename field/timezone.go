package field

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
	"tzfield/zones"
)

// TimeZone is a stored IANA timezone identifier. The zero value represents
// absence (a NULL column). A TimeZone may hold a name outside the known
// identifier set; such values round-trip through coercion and storage
// untouched and are rejected only by the explicit validation step.
type TimeZone string

func (tz TimeZone) String() string {
	return string(tz)
}

// IsZero reports whether the value represents absence.
func (tz TimeZone) IsZero() bool {
	return tz == ""
}

// Known reports whether the identifier is in the known IANA set.
func (tz TimeZone) Known() bool {
	return zones.Has(string(tz))
}

// Location resolves the identifier through the zone database. Unknown or
// empty identifiers return ok=false.
func (tz TimeZone) Location() (*time.Location, bool) {
	if tz.IsZero() {
		return nil, false
	}

	return zones.Load(string(tz))
}

// Value implements driver.Valuer. Storage always receives the canonical
// string identifier, never a resolved location.
func (tz TimeZone) Value() (driver.Value, error) {
	if tz.IsZero() {
		return nil, nil
	}

	return string(tz), nil
}

// Scan implements sql.Scanner.
func (tz *TimeZone) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*tz = ""
	case string:
		*tz = TimeZone(v)
	case []byte:
		*tz = TimeZone(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeZone", src)
	}

	return nil
}

func (tz TimeZone) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(tz)) //nolint:wrapcheck
}

func (tz *TimeZone) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err //nolint:wrapcheck
	}

	*tz = TimeZone(name)

	return nil
}

// Coerce normalizes a caller-supplied value into a TimeZone. It never fails:
// nil and empty values become the zero TimeZone, locations are reduced to
// their canonical name, and unknown name strings are kept verbatim for the
// validation step to reject. Coercing an already-coerced value is a no-op.
func Coerce(value any) TimeZone {
	switch v := value.(type) {
	case nil:
		return ""
	case TimeZone:
		return v
	case *time.Location:
		if v == nil {
			return ""
		}

		return TimeZone(v.String())
	case string:
		return TimeZone(v)
	case fmt.Stringer:
		return TimeZone(v.String())
	default:
		return TimeZone(fmt.Sprint(value))
	}
}
