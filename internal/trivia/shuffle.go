package trivia

import "math/rand"

// Rand is the randomness the generators consume. Satisfied by *math/rand.Rand,
// which tests seed for reproducible runs.
type Rand interface {
	Intn(n int) int
}

// globalRand adapts the package-level math/rand source. It is safe for
// concurrent use, so concurrent requests never serialize on it.
type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

// shuffleStrings permutes opts in place with a Fisher-Yates walk.
func shuffleStrings(opts []string, rng Rand) {
	for i := len(opts) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		opts[i], opts[j] = opts[j], opts[i]
	}
}
