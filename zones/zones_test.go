package zones_test

import (
	"regexp"
	"sort"
	"testing"

	"tzfield/zones"
)

func TestHas(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "utc is known",
			input:    "UTC",
			expected: true,
		},
		{
			name:     "region zone is known",
			input:    "Asia/Tokyo",
			expected: true,
		},
		{
			name:     "nested region zone is known",
			input:    "America/Argentina/Buenos_Aires",
			expected: true,
		},
		{
			name:     "unknown name",
			input:    "Mars/Olympus_Mons",
			expected: false,
		},
		{
			name:     "empty string",
			input:    "",
			expected: false,
		},
		{
			name:     "lowercase variant is unknown",
			input:    "asia/tokyo",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := zones.Has(tt.input); got != tt.expected {
				t.Errorf("Has(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNames(t *testing.T) {
	names := zones.Names()

	if len(names) == 0 {
		t.Fatal("expected a non-empty identifier list")
	}

	if !sort.StringsAreSorted(names) {
		t.Error("expected identifiers in lexical order")
	}

	for _, name := range names {
		if !zones.Has(name) {
			t.Errorf("listed identifier %q not reported by Has", name)
		}
	}
}

func TestMaxNameLength(t *testing.T) {
	max := zones.MaxNameLength()

	for _, name := range zones.Names() {
		if len(name) > max {
			t.Errorf("identifier %q exceeds reported max length %d", name, max)
		}
	}

	longest := "America/Argentina/Buenos_Aires"
	if max < len(longest) {
		t.Errorf("expected max length >= %d, got %d", len(longest), max)
	}
}

func TestLoad(t *testing.T) {
	loc, ok := zones.Load("America/New_York")
	if !ok {
		t.Fatal("expected America/New_York to load")
	}
	if loc.String() != "America/New_York" {
		t.Errorf("expected location America/New_York, got %s", loc)
	}

	if _, ok := zones.Load("Not/A_Zone"); ok {
		t.Error("expected unknown identifier to fail to load")
	}
}

func TestLoad_ReturnsSharedLocation(t *testing.T) {
	first, ok := zones.Load("Asia/Tokyo")
	if !ok {
		t.Fatal("expected Asia/Tokyo to load")
	}

	second, ok := zones.Load("Asia/Tokyo")
	if !ok {
		t.Fatal("expected Asia/Tokyo to load")
	}

	if first != second {
		t.Error("expected repeated loads to return the same location")
	}
}

func TestChoices(t *testing.T) {
	choices := zones.Choices()

	if len(choices) != len(zones.Names()) {
		t.Fatalf("expected %d choices, got %d", len(zones.Names()), len(choices))
	}

	for _, c := range choices {
		if c.Value != c.Label {
			t.Errorf("expected plain choice label to equal value, got %q / %q", c.Value, c.Label)
		}
	}
}

func TestPrettyChoices(t *testing.T) {
	labelPattern := regexp.MustCompile(`^\(GMT[+-]\d{2}:\d{2}\) .+$`)

	choices := zones.PrettyChoices()
	if len(choices) == 0 {
		t.Fatal("expected pretty choices")
	}

	for _, c := range choices {
		if !labelPattern.MatchString(c.Label) {
			t.Errorf("label %q does not match the (GMT±HH:MM) Name format", c.Label)
		}
		if !zones.Has(c.Value) {
			t.Errorf("choice value %q is not a known identifier", c.Value)
		}
	}
}
