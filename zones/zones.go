// Package zones holds the table of known IANA timezone identifiers along
// with presentation helpers. The identifier list is generated from the zone
// database at build time and treated as read-only; the tzdata embed below
// guarantees that every listed name resolves regardless of the host's
// zoneinfo installation.
package zones

import (
	"fmt"
	"sort"
	"time"

	_ "time/tzdata"
)

//go:generate go run ./gen -output list.go

var (
	nameSet       map[string]struct{}
	locations     map[string]*time.Location
	maxNameLength int
)

func init() {
	nameSet = make(map[string]struct{}, len(allNames))
	locations = make(map[string]*time.Location, len(allNames))

	for _, name := range allNames {
		nameSet[name] = struct{}{}

		if len(name) > maxNameLength {
			maxNameLength = len(name)
		}

		// Resolve once up front; Load then serves the shared immutable
		// locations without re-reading zone data.
		if loc, err := time.LoadLocation(name); err == nil {
			locations[name] = loc
		}
	}
}

// Has reports whether name is a known IANA timezone identifier.
func Has(name string) bool {
	_, ok := nameSet[name]

	return ok
}

// Names returns all known identifiers in lexical order. The returned slice
// is shared; callers must not modify it.
func Names() []string {
	return allNames
}

// MaxNameLength returns the length of the longest known identifier.
func MaxNameLength() int {
	return maxNameLength
}

// Load resolves a known identifier to its location. Unknown names return
// ok=false instead of an error so callers can decide their own fallback.
func Load(name string) (*time.Location, bool) {
	loc, ok := locations[name]

	return loc, ok
}

// Choice pairs a storable identifier with a human-readable label for the
// presentation layer.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Choices returns one Choice per known identifier with the identifier itself
// as label.
func Choices() []Choice {
	choices := make([]Choice, 0, len(allNames))

	for _, name := range allNames {
		choices = append(choices, Choice{Value: name, Label: name})
	}

	return choices
}

// PrettyChoices returns choices labeled with the zone's standard-time UTC
// offset, e.g. "(GMT+09:00) Asia/Tokyo", sorted by offset and then name.
// Offsets are taken at a fixed mid-January instant so DST does not shuffle
// the ordering between invocations in different seasons.
func PrettyChoices() []Choice {
	ref := time.Date(time.Now().Year(), time.January, 15, 12, 0, 0, 0, time.UTC)

	type offsetChoice struct {
		offset int
		choice Choice
	}

	pretty := make([]offsetChoice, 0, len(allNames))

	for _, name := range allNames {
		loc, ok := Load(name)
		if !ok {
			continue
		}

		_, offset := ref.In(loc).Zone()

		pretty = append(pretty, offsetChoice{
			offset: offset,
			choice: Choice{Value: name, Label: fmt.Sprintf("(GMT%s) %s", formatOffset(offset), name)},
		})
	}

	sort.Slice(pretty, func(i, j int) bool {
		if pretty[i].offset != pretty[j].offset {
			return pretty[i].offset < pretty[j].offset
		}

		return pretty[i].choice.Value < pretty[j].choice.Value
	})

	choices := make([]Choice, 0, len(pretty))
	for _, p := range pretty {
		choices = append(choices, p.choice)
	}

	return choices
}

func formatOffset(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}

	return fmt.Sprintf("%s%02d:%02d", sign, seconds/3600, (seconds%3600)/60)
}
