package trivia

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShufflePreservesElements(t *testing.T) {
	rng := testRand(42)
	for _, size := range []int{0, 1, 2, 3, 5, 8} {
		in := make([]string, size)
		for i := range in {
			in[i] = fmt.Sprintf("opt-%d", i)
		}
		got := append([]string(nil), in...)
		shuffleStrings(got, rng)
		assert.ElementsMatch(t, in, got, "size %d", size)
	}
}

func TestShuffleReachesEveryPermutation(t *testing.T) {
	rng := testRand(7)
	perms := map[string]int{}
	for i := 0; i < 600; i++ {
		opts := []string{"a", "b", "c"}
		shuffleStrings(opts, rng)
		perms[strings.Join(opts, "")]++
	}

	assert.Len(t, perms, 6, "all 6 permutations of 3 elements should occur")
	for perm, count := range perms {
		assert.Greater(t, count, 50, "permutation %s is suspiciously rare", perm)
	}
}
