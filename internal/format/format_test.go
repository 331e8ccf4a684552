package format

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/101shaan/BlitzForge/internal/errors"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected string
	}{
		{0, "0.0ms"},
		{0.001, "1.0ms"},
		{0.999, "999.0ms"},
		{1.0, "1.0s"},
		{59.9, "59.9s"},
		{60, "1.0m"},
		{3599.4, "60.0m"},
		{3600, "1.0h"},
		{86399, "24.0h"},
		{86400, "1.0d"},
		{31535999, "365.0d"},
		{31536000, "1.0y"},
		{31536000 * 999.4, "999.4y"},
		{31536000 * 1e3, "1.0K years"},
		{31536000 * 1e6, "1.0M years"},
		{31536000 * 1e9, "1.0B years"},
		{31536000 * 2.5e9, "2.5B years"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			got, err := Duration(tt.seconds)
			if err != nil {
				t.Fatalf("Duration(%v) error: %v", tt.seconds, err)
			}
			if got != tt.expected {
				t.Errorf("Duration(%v) = %q, want %q", tt.seconds, got, tt.expected)
			}
		})
	}
}

func TestDurationBracketBoundaries(t *testing.T) {
	// Each boundary is exclusive on the lower bracket
	tests := []struct {
		seconds float64
		suffix  string
	}{
		{0.999, "ms"},
		{1.0, "s"},
		{3599.999, "m"},
		{3600.0, "h"},
		{31536000.0, "y"},
	}

	for _, tt := range tests {
		got, err := Duration(tt.seconds)
		if err != nil {
			t.Fatalf("Duration(%v) error: %v", tt.seconds, err)
		}
		if !strings.HasSuffix(got, tt.suffix) {
			t.Errorf("Duration(%v) = %q, want suffix %q", tt.seconds, got, tt.suffix)
		}
		// "1.0s" must not be mistaken for "ms"
		if tt.suffix == "s" && strings.HasSuffix(got, "ms") {
			t.Errorf("Duration(%v) = %q, should not be milliseconds", tt.seconds, got)
		}
		// "1.0y" must not be days
		if tt.suffix == "y" && strings.HasSuffix(got, "d") {
			t.Errorf("Duration(%v) = %q, should not be days", tt.seconds, got)
		}
	}
}

func TestDurationTwelveCharSweepValue(t *testing.T) {
	// 36^12 / 5e9 lands in the years bracket
	got, err := Duration(947676267.6643233)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(got, "y") {
		t.Errorf("Duration(36^12/5e9) = %q, want years suffix", got)
	}
	if got != "30.1y" {
		t.Errorf("Duration(36^12/5e9) = %q, want %q", got, "30.1y")
	}
}

func TestDurationNegative(t *testing.T) {
	if _, err := Duration(-1); !errors.IsInvalidArgument(err) {
		t.Errorf("Duration(-1) error = %v, want InvalidArgument", err)
	}
}

func TestRate(t *testing.T) {
	tests := []struct {
		rate     float64
		expected string
	}{
		{5e9, "5.0 GH/s"},
		{2.5e9, "2.5 GH/s"},
		{1e9, "1.0 GH/s"},
		{750e6, "750 MH/s"},
		{1e6, "1 MH/s"},
		{999999, "999999 H/s"},
		{10, "10 H/s"},
	}

	for _, tt := range tests {
		if got := Rate(tt.rate); got != tt.expected {
			t.Errorf("Rate(%v) = %q, want %q", tt.rate, got, tt.expected)
		}
	}
}

func TestDuration_SuffixLadder_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300

	properties := gopter.NewProperties(parameters)

	suffixes := []string{"ms", "s", "m", "h", "d", "y", "K years", "M years", "B years"}

	properties.Property("every non-negative duration formats with a known suffix", prop.ForAll(
		func(seconds float64) bool {
			got, err := Duration(seconds)
			if err != nil {
				return false
			}
			for _, suffix := range suffixes {
				if strings.HasSuffix(got, suffix) {
					return true
				}
			}
			return false
		},
		gen.Float64Range(0, 1e40),
	))

	properties.TestingRun(t)
}
