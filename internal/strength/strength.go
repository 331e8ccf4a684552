// Package strength assesses a single password: which character
// classes it draws from, the resulting keyspace and entropy, and how
// long a brute-force attack would take at a given hash rate. The
// password itself is never hashed or stored.
package strength

import (
	"math"
	"math/big"
	"unicode"

	"github.com/Picocrypt/zxcvbn-go"

	"github.com/101shaan/BlitzForge/internal/errors"
	"github.com/101shaan/BlitzForge/internal/keyspace"
)

// symbolPoolSize counts the common printable symbols when any
// non-alphanumeric rune is present.
const symbolPoolSize = 33

// Assessment is the derived strength report for one password.
type Assessment struct {
	Length       int
	PoolSize     int
	EntropyBits  float64
	Score        int // zxcvbn score, 0 (worst) to 4 (best)
	Keyspace     *big.Int
	CrackSeconds float64
}

// Assess computes the strength report at hashRate guesses per second.
func Assess(password string, hashRate float64) (Assessment, error) {
	if password == "" {
		return Assessment{}, errors.NewInvalidArgument("password", "must not be empty")
	}

	runes := []rune(password)
	pool := poolSize(runes)

	space, err := keyspace.Keyspace(pool, len(runes))
	if err != nil {
		return Assessment{}, err
	}
	seconds, err := keyspace.CrackSeconds(pool, len(runes), hashRate)
	if err != nil {
		return Assessment{}, err
	}

	return Assessment{
		Length:       len(runes),
		PoolSize:     pool,
		EntropyBits:  float64(len(runes)) * math.Log2(float64(pool)),
		Score:        zxcvbn.PasswordStrength(password, nil).Score,
		Keyspace:     space,
		CrackSeconds: seconds,
	}, nil
}

// poolSize sums the sizes of the character classes actually present.
func poolSize(runes []rune) int {
	hasLower := false
	hasUpper := false
	hasDigit := false
	hasSymbol := false

	for _, r := range runes {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	pool := 0
	if hasLower {
		pool += 26
	}
	if hasUpper {
		pool += 26
	}
	if hasDigit {
		pool += 10
	}
	if hasSymbol {
		pool += symbolPoolSize
	}
	return pool
}
