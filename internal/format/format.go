// Package format converts crack-time durations and hash rates into the
// human-readable labels drawn onto the charts.
package format

import (
	"fmt"
	"math"

	"github.com/101shaan/BlitzForge/internal/errors"
)

// SecondsPerYear is the modeling year of exactly 365 days
// (365 * 86400 seconds). Not calendar-accurate; kept exact so chart
// labels are reproducible run to run.
const SecondsPerYear = 31536000.0

// Duration converts seconds to a magnitude-appropriate string with one
// decimal: "413.0ms", "5.1s", "2.3m", "14.0h", "3.5d", "12.1y",
// "4.7K years", "8.2M years", "1.5B years".
// Each bracket is inclusive on its lower bound and exclusive above.
func Duration(seconds float64) (string, error) {
	if seconds < 0 || math.IsNaN(seconds) {
		return "", errors.NewInvalidArgument("seconds", "must be non-negative")
	}

	switch {
	case seconds < 1:
		return fmt.Sprintf("%.1fms", seconds*1000), nil
	case seconds < 60:
		return fmt.Sprintf("%.1fs", seconds), nil
	case seconds < 3600:
		return fmt.Sprintf("%.1fm", seconds/60), nil
	case seconds < 86400:
		return fmt.Sprintf("%.1fh", seconds/3600), nil
	case seconds < SecondsPerYear:
		return fmt.Sprintf("%.1fd", seconds/86400), nil
	}

	years := seconds / SecondsPerYear
	switch {
	case years < 1e3:
		return fmt.Sprintf("%.1fy", years), nil
	case years < 1e6:
		return fmt.Sprintf("%.1fK years", years/1e3), nil
	case years < 1e9:
		return fmt.Sprintf("%.1fM years", years/1e6), nil
	default:
		return fmt.Sprintf("%.1fB years", years/1e9), nil
	}
}

// Rate converts hashes per second to a label: "5.0 GH/s", "750 MH/s",
// "10 H/s".
func Rate(hashesPerSecond float64) string {
	switch {
	case hashesPerSecond >= 1e9:
		return fmt.Sprintf("%.1f GH/s", hashesPerSecond/1e9)
	case hashesPerSecond >= 1e6:
		return fmt.Sprintf("%.0f MH/s", hashesPerSecond/1e6)
	default:
		return fmt.Sprintf("%.0f H/s", hashesPerSecond)
	}
}
