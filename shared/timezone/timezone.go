package timezone

import (
	"sync"
	"time"
	"tzfield/config"
	"tzfield/zones"

	"github.com/rs/zerolog/log"
)

var (
	defaultOnce     sync.Once
	defaultLocation *time.Location
)

// Default returns the process-wide default zone, resolved once from
// APP_TIMEZONE and immutable afterwards. Unresolvable configuration falls
// back to UTC.
func Default() *time.Location {
	defaultOnce.Do(func() {
		cfg := config.Get()

		name := cfg.App.Timezone
		if name == "" {
			log.Warn().Msg("No timezone configured, using UTC as default")
			name = "UTC"
		}

		loc, err := time.LoadLocation(name)
		if err != nil {
			log.Error().
				Err(err).
				Str("timezone", name).
				Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Jakarta', 'UTC', 'America/New_York'")
			defaultLocation = time.UTC

			return
		}

		defaultLocation = loc
		log.Info().
			Str("timezone", name).
			Str("location", loc.String()).
			Msg("Default timezone initialized")
	})

	return defaultLocation
}

// ResolveOrDefault resolves a known identifier to its location, falling back
// to the default zone when the name is empty, unknown, or unloadable.
func ResolveOrDefault(name string) *time.Location {
	if name == "" {
		return Default()
	}

	if loc, ok := zones.Load(name); ok {
		return loc
	}

	return Default()
}

// Now returns the current time in the default zone.
func Now() time.Time {
	return time.Now().In(Default())
}

// ToDefault converts a time to the default zone. Naive values cannot exist
// in Go; callers interpreting external naive readings should use Localize.
func ToDefault(t time.Time) time.Time {
	return t.In(Default())
}

// Localize reinterprets the wall-clock fields of t as a reading in the
// default zone, the way a database datetime without zone information is
// understood.
func Localize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), Default())
}

// Parse parses a time string in the default zone.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, Default())
}

// Format formats a time in the default zone.
func Format(t time.Time, layout string) string {
	return ToDefault(t).Format(layout)
}
