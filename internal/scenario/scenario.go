// Package scenario holds the fixed catalog of crack scenarios behind
// each chart: dictionary-attack constants, brute-force presets, the
// algorithm speed model, and the keyspace growth curves.
package scenario

import (
	"github.com/101shaan/BlitzForge/internal/errors"
	"github.com/101shaan/BlitzForge/internal/keyspace"
)

// Alphabet sizes per character class.
const (
	AlphabetLower       = 26 // a-z
	AlphabetLowerDigits = 36 // a-z 0-9
	AlphabetAlnum       = 62 // a-z A-Z 0-9
	AlphabetPrintable   = 95 // printable ASCII
)

// CrackScenario is an immutable named entry in the catalog. It is
// either a brute-force entry (AlphabetSize and Length set, crack time
// resolved through the keyspace model at the run's hash rate) or a
// dictionary-style entry carrying a fixed illustrative guess time.
type CrackScenario struct {
	Name         string
	AlphabetSize int
	Length       int
	FixedSeconds float64
	IsFixed      bool
}

// BruteForce creates a scenario whose crack time is computed from its
// keyspace at resolution time.
func BruteForce(name string, alphabetSize, length int) CrackScenario {
	return CrackScenario{Name: name, AlphabetSize: alphabetSize, Length: length}
}

// Fixed creates a dictionary-style scenario with a published constant
// guess time that ignores the run's hash rate.
func Fixed(name string, seconds float64) CrackScenario {
	return CrackScenario{Name: name, FixedSeconds: seconds, IsFixed: true}
}

// CrackEstimate pairs a scenario with its resolved crack time.
// Derived, never mutated after computation.
type CrackEstimate struct {
	Scenario CrackScenario
	Seconds  float64
}

// Resolve produces the crack estimate for this scenario. Fixed entries
// pass their constant through untouched and cannot fail; brute-force
// entries run through the keyspace model and surface InvalidArgument
// on a bad hash rate.
func (s CrackScenario) Resolve(hashRate float64) (CrackEstimate, error) {
	if s.IsFixed {
		return CrackEstimate{Scenario: s, Seconds: s.FixedSeconds}, nil
	}
	seconds, err := keyspace.CrackSeconds(s.AlphabetSize, s.Length, hashRate)
	if err != nil {
		return CrackEstimate{}, errors.Wrap(err, "resolve "+s.Name)
	}
	return CrackEstimate{Scenario: s, Seconds: seconds}, nil
}

// ResolveAll resolves every scenario in order, stopping at the first
// error.
func ResolveAll(scenarios []CrackScenario, hashRate float64) ([]CrackEstimate, error) {
	estimates := make([]CrackEstimate, 0, len(scenarios))
	for _, s := range scenarios {
		estimate, err := s.Resolve(hashRate)
		if err != nil {
			return nil, err
		}
		estimates = append(estimates, estimate)
	}
	return estimates, nil
}
