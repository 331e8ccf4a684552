package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/101shaan/BlitzForge/internal/errors"
)

// DefaultHashRateGH is the assumed attack rate in billions of hashes
// per second when no argument is given or the argument fails to parse.
const DefaultHashRateGH = 5.0

// ParseHashRate parses a positive decimal GH/s argument and returns
// the rate in hashes per second. The caller decides what to do on
// failure; no default is substituted here.
func ParseHashRate(arg string) (float64, error) {
	gh, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil {
		return 0, errors.NewInvalidArgument("hashRate", fmt.Sprintf("%q is not a number", arg))
	}
	if gh <= 0 || math.IsNaN(gh) || math.IsInf(gh, 0) {
		return 0, errors.NewInvalidArgument("hashRate", "must be a positive finite number")
	}
	return gh * 1e9, nil
}
