package field

import (
	"time"
)

// Instant is a point in time that is either aware (zone attached, an
// unambiguous instant) or naive (a bare wall-clock reading whose zone is
// implied by context). Database adapters without timezone support hand back
// naive readings; everything else in this package works with aware values.
type Instant struct {
	Time  time.Time
	Naive bool
}

// Aware wraps an already zone-attached time.
func Aware(t time.Time) Instant {
	return Instant{Time: t}
}

// Naive wraps a wall-clock reading that carries no zone information. The
// location already attached to t is ignored.
func Naive(t time.Time) Instant {
	return Instant{Time: t, Naive: true}
}

// In converts the instant to loc. A naive instant is interpreted as a
// wall-clock reading in loc and becomes aware; an aware instant is converted
// preserving the absolute point in time.
func (in Instant) In(loc *time.Location) Instant {
	if in.Naive {
		t := in.Time

		return Instant{Time: time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)}
	}

	return Instant{Time: in.Time.In(loc)}
}

// IsZero reports whether the instant holds the zero time.
func (in Instant) IsZero() bool {
	return in.Time.IsZero()
}

// Equal reports whether two instants describe the same point in time. Naive
// instants compare by wall clock.
func (in Instant) Equal(other Instant) bool {
	if in.Naive != other.Naive {
		return false
	}

	if in.Naive {
		return in.Time.Format(time.DateTime) == other.Time.Format(time.DateTime)
	}

	return in.Time.Equal(other.Time)
}
