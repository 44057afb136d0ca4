package field

import (
	"database/sql/driver"
	"fmt"
	"tzfield/config"
	"tzfield/shared/failure"
	"tzfield/shared/timezone"
	"tzfield/zones"
)

// TimeZoneField defines a timezone-name column: a bounded string validated
// against the known IANA identifier set, defaulting to the process default
// zone. Definitions are immutable once constructed.
type TimeZoneField struct {
	maxLength  int
	def        TimeZone
	allowEmpty bool
}

type TimeZoneOption func(*TimeZoneField)

// WithMaxLength overrides the configured column width.
func WithMaxLength(n int) TimeZoneOption {
	return func(f *TimeZoneField) {
		f.maxLength = n
	}
}

// WithDefault overrides the default identifier (normally the process default
// zone).
func WithDefault(name string) TimeZoneOption {
	return func(f *TimeZoneField) {
		f.def = TimeZone(name)
	}
}

// AllowEmpty permits absence: the zero TimeZone passes validation and is
// persisted as NULL.
func AllowEmpty() TimeZoneOption {
	return func(f *TimeZoneField) {
		f.allowEmpty = true
	}
}

// NewTimeZoneField constructs a definition and runs the construction-time
// sanity check: the column width must fit every known identifier. A failing
// check is a configuration failure and must abort startup, before any record
// is processed.
func NewTimeZoneField(opts ...TimeZoneOption) (*TimeZoneField, error) {
	f := &TimeZoneField{
		maxLength: config.Get().App.MaxTimezoneLength,
		def:       TimeZone(timezone.Default().String()),
	}

	for _, opt := range opts {
		opt(f)
	}

	if err := ValidateMaxLength(f.maxLength, zones.Names()); err != nil {
		return nil, err
	}

	return f, nil
}

// ValidateMaxLength checks that maxLength fits the longest of the known
// identifiers. Runs once per field definition.
func ValidateMaxLength(maxLength int, knownIdentifiers []string) error {
	for _, name := range knownIdentifiers {
		if len(name) > maxLength {
			return failure.Config("timezone identifier %q exceeds max length %d", name, maxLength)
		}
	}

	return nil
}

// Coerce normalizes caller input for this field. See the package-level
// Coerce; the field variant only adds the absence rule.
func (f *TimeZoneField) Coerce(value any) TimeZone {
	return Coerce(value)
}

// Validate rejects identifiers outside the known set and over-length values.
// Coercion never fails; this is the single place where an unknown name
// surfaces as an error.
func (f *TimeZoneField) Validate(tz TimeZone) error {
	if tz.IsZero() {
		if f.allowEmpty {
			return nil
		}

		return failure.Validation("timezone is required")
	}

	if len(tz) > f.maxLength {
		return failure.Validation(fmt.Sprintf("timezone %q exceeds max length %d", tz, f.maxLength))
	}

	if !tz.Known() {
		return failure.UnknownTimezone(string(tz))
	}

	return nil
}

// StorageValue prepares the value for the persistence layer: the canonical
// string identifier, or NULL for absence.
func (f *TimeZoneField) StorageValue(tz TimeZone) driver.Value {
	if tz.IsZero() {
		return nil
	}

	return string(tz)
}

// Default returns the definition's default identifier.
func (f *TimeZoneField) Default() TimeZone {
	return f.def
}

// MaxLength returns the effective column width, for the schema collaborator
// to serialize.
func (f *TimeZoneField) MaxLength() int {
	return f.maxLength
}

// Choices returns the presentation pairs for the form-layer collaborator.
func (f *TimeZoneField) Choices() []zones.Choice {
	return zones.PrettyChoices()
}
