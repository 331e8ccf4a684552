// Package keyspace implements the brute-force crack-time model.
//
// The keyspace of a password class is alphabetSize^length. For the
// alphabet sizes and lengths charted here (up to 95^16) that exceeds
// what a float64 mantissa can hold exactly, so the exponentiation is
// done on big integers and only the final division by the hash rate
// converts to floating point.
package keyspace

import (
	"math"
	"math/big"

	"github.com/101shaan/BlitzForge/internal/errors"
)

// Point is one entry of a length sweep: the crack time for a password
// of the given length.
type Point struct {
	Length  int
	Seconds float64
}

// Keyspace returns alphabetSize^length exactly.
func Keyspace(alphabetSize, length int) (*big.Int, error) {
	if alphabetSize <= 0 {
		return nil, errors.NewInvalidArgument("alphabetSize", "must be positive")
	}
	if length < 0 {
		return nil, errors.NewInvalidArgument("length", "must be non-negative")
	}
	return new(big.Int).Exp(big.NewInt(int64(alphabetSize)), big.NewInt(int64(length)), nil), nil
}

// CrackSeconds returns the time in seconds to exhaust the keyspace of
// alphabetSize^length at hashRate guesses per second. Pure and
// deterministic; the only failure mode is a domain violation.
func CrackSeconds(alphabetSize, length int, hashRate float64) (float64, error) {
	if hashRate <= 0 || math.IsNaN(hashRate) {
		return 0, errors.NewInvalidArgument("hashRate", "must be positive")
	}

	space, err := Keyspace(alphabetSize, length)
	if err != nil {
		return 0, err
	}

	quotient := new(big.Float).Quo(new(big.Float).SetInt(space), big.NewFloat(hashRate))
	seconds, _ := quotient.Float64()
	return seconds, nil
}

// CrackSeries evaluates CrackSeconds for each length in order,
// preserving the input order of lengths.
func CrackSeries(alphabetSize int, lengths []int, hashRate float64) ([]Point, error) {
	series := make([]Point, 0, len(lengths))
	for _, length := range lengths {
		seconds, err := CrackSeconds(alphabetSize, length, hashRate)
		if err != nil {
			return nil, errors.Wrap(err, "crack series")
		}
		series = append(series, Point{Length: length, Seconds: seconds})
	}
	return series, nil
}

// LengthRange returns the inclusive integer range [from, to], the
// shape every length-sweep chart consumes.
func LengthRange(from, to int) []int {
	if to < from {
		return nil
	}
	lengths := make([]int, 0, to-from+1)
	for l := from; l <= to; l++ {
		lengths = append(lengths, l)
	}
	return lengths
}
