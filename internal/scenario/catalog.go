package scenario

// The tables below are the published BlitzForge presentation dataset.
// Dictionary guess times and algorithm speed ratios are illustrative
// domain constants, not measurements; changing any value changes the
// rendered charts, so they are pinned here rather than inlined in
// chart code.

// WeakPasswords returns the dictionary-attack entries: passwords from
// the top of common wordlists with their illustrative guess times in
// seconds.
func WeakPasswords() []CrackScenario {
	return []CrackScenario{
		Fixed("password", 0.001),
		Fixed("123456", 0.001),
		Fixed("qwerty", 0.002),
		Fixed("admin", 0.001),
		Fixed("letmein", 0.003),
		Fixed("password123", 0.005),
	}
}

// StrongPresets returns the random-password entries over the
// lowercase+digits alphabet used by the weak-vs-strong chart.
func StrongPresets() []CrackScenario {
	return []CrackScenario{
		BruteForce("8 char random", AlphabetLowerDigits, 8),
		BruteForce("10 char random", AlphabetLowerDigits, 10),
		BruteForce("12 char random", AlphabetLowerDigits, 12),
		BruteForce("14 char random", AlphabetLowerDigits, 14),
		BruteForce("16 char random", AlphabetLowerDigits, 16),
	}
}

// RealWorld returns the mixed dictionary/brute-force entries for the
// real-world cracking times chart, ordered weakest to strongest.
func RealWorld() []CrackScenario {
	return []CrackScenario{
		Fixed("common word (dictionary)", 0.001),
		Fixed(`common + numbers ("password123")`, 0.005),
		BruteForce("8 char lowercase (weak)", AlphabetLowerDigits, 8),
		BruteForce("8 char mixed (okay)", AlphabetAlnum, 8),
		BruteForce("10 char mixed (good)", AlphabetAlnum, 10),
		BruteForce("12 char mixed (strong)", AlphabetAlnum, 12),
		BruteForce("14 char mixed (excellent)", AlphabetAlnum, 14),
		BruteForce("16 char mixed (fortress)", AlphabetAlnum, 16),
	}
}

// AlgorithmRate models one hashing algorithm's attack speed: either a
// fixed multiplier of the run's primary hash rate, or an absolute rate
// that ignores it (memory-hard algorithms).
type AlgorithmRate struct {
	Name       string
	Multiplier float64 // fraction of the primary rate; ignored when Absolute > 0
	Absolute   float64 // pinned rate in H/s, for rate-independent algorithms
}

// RateAt returns the modeled hashes per second at the given primary
// hash rate.
func (a AlgorithmRate) RateAt(hashRate float64) float64 {
	if a.Absolute > 0 {
		return a.Absolute
	}
	return hashRate * a.Multiplier
}

// Algorithms returns the fixed ratio model for the algorithm speed
// comparison chart. Argon2 is pinned at 10 H/s regardless of the
// primary rate to illustrate memory-hard slowdown.
func Algorithms() []AlgorithmRate {
	return []AlgorithmRate{
		{Name: "BlitzHash (custom)", Multiplier: 1.0},
		{Name: "MD5", Multiplier: 0.5},
		{Name: "SHA1", Multiplier: 0.3},
		{Name: "SHA256", Multiplier: 0.15},
		{Name: "Argon2 (real security)", Absolute: 10},
	}
}

// KeyspaceCurve names one line of the keyspace growth chart.
type KeyspaceCurve struct {
	Name         string
	AlphabetSize int
}

// KeyspaceCurves returns the four alphabet growth curves plotted over
// lengths 1-16.
func KeyspaceCurves() []KeyspaceCurve {
	return []KeyspaceCurve{
		{Name: "Lowercase only (26)", AlphabetSize: AlphabetLower},
		{Name: "Lowercase + digits (36)", AlphabetSize: AlphabetLowerDigits},
		{Name: "Alphanumeric (62)", AlphabetSize: AlphabetAlnum},
		{Name: "+ Special chars (95)", AlphabetSize: AlphabetPrintable},
	}
}
