package trivia

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var scorePattern = regexp.MustCompile(`^\d+ - \d+$`)

func TestScoreCorrectAnswer(t *testing.T) {
	pool := []Match{testMatch(1, "Brazil", "Serbia", 2, 1)}

	for seed := int64(0); seed < 20; seed++ {
		q := scoreGenerator{}.Generate(pool, testRand(seed))

		assert.Equal(t, "2 - 1", q.CorrectAnswer, "seed %d", seed)
		assert.Len(t, q.Options, OptionCount)
		assert.NoError(t, validateQuestion(q))

		distractors := 0
		for _, opt := range q.Options {
			if opt != q.CorrectAnswer {
				distractors++
				assert.NotEqual(t, "2 - 1", opt)
			}
		}
		assert.Equal(t, distractorCount, distractors)
	}
}

func TestScoreNeverProducesNegativeScores(t *testing.T) {
	pool := []Match{testMatch(1, "England", "USA", 0, 0)}

	for seed := int64(0); seed < 20; seed++ {
		q := scoreGenerator{}.Generate(pool, testRand(seed))
		for _, opt := range q.Options {
			assert.Regexp(t, scorePattern, opt, "seed %d", seed)
		}
		assert.NoError(t, validateQuestion(q))
	}
}

func TestScoreHighScoringMatch(t *testing.T) {
	// Outside the common-scoreline and random ranges entirely; near-miss
	// variants must still produce two valid distinct distractors.
	pool := []Match{testMatch(1, "Australia", "American Samoa", 31, 0)}

	q := scoreGenerator{}.Generate(pool, testRand(4))

	assert.Equal(t, "31 - 0", q.CorrectAnswer)
	assert.NoError(t, validateQuestion(q))
}
