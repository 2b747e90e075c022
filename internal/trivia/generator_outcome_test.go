package trivia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeHomeWin(t *testing.T) {
	pool := []Match{
		testMatch(1, "Brazil", "Serbia", 2, 0),
		testMatch(2, "Spain", "Germany", 1, 1),
		testMatch(3, "Japan", "Croatia", 1, 3),
	}

	q := matchOutcomeGenerator{}.Generate(pool, nil, testRand(1))

	assert.Equal(t, int64(1), q.ID)
	assert.Equal(t, "Brazil", q.CorrectAnswer)
	assert.Contains(t, q.Question, "Brazil vs Serbia")
	assert.Len(t, q.Options, OptionCount)
	assert.NoError(t, validateQuestion(q))

	// Distractors never name the teams in the question.
	for _, opt := range q.Options {
		assert.NotEqual(t, "Serbia", opt)
	}
}

func TestOutcomeDrawAppearsExactlyOnce(t *testing.T) {
	// A draw with no other teams in reach: the draw-fallback distractor must
	// not duplicate the correct answer.
	pool := []Match{testMatch(1, "Argentina", "France", 3, 3)}

	for seed := int64(0); seed < 20; seed++ {
		q := matchOutcomeGenerator{}.Generate(pool, nil, testRand(seed))

		assert.Equal(t, answerDraw, q.CorrectAnswer)
		occurrences := 0
		for _, opt := range q.Options {
			if opt == answerDraw {
				occurrences++
			}
		}
		assert.Equal(t, 1, occurrences, "seed %d", seed)
		assert.NoError(t, validateQuestion(q))
	}
}

func TestOutcomeDrawFallbackDistractor(t *testing.T) {
	// One candidate team short of two distractors and a decided result:
	// the draw answer fills the gap before any placeholder does.
	pool := []Match{
		testMatch(1, "Brazil", "Serbia", 2, 0),
		testMatch(2, "Brazil", "Switzerland", 1, 0),
	}

	q := matchOutcomeGenerator{}.Generate(pool, nil, testRand(3))

	assert.Equal(t, "Brazil", q.CorrectAnswer)
	assert.Contains(t, q.Options, "Switzerland")
	assert.Contains(t, q.Options, answerDraw)
	assert.NoError(t, validateQuestion(q))
}

func TestOutcomePlaceholderFillers(t *testing.T) {
	// Drawn single-match pool with no roster: nothing real is left, so the
	// numbered fillers keep the option set full and duplicate free.
	pool := []Match{testMatch(1, "Argentina", "France", 0, 0)}

	q := matchOutcomeGenerator{}.Generate(pool, nil, testRand(5))

	assert.Contains(t, q.Options, "Other Team 1")
	assert.Contains(t, q.Options, "Other Team 2")
	assert.NoError(t, validateQuestion(q))
}

func TestOutcomeRosterWidensDistractors(t *testing.T) {
	// Every pool entry repeats the question teams; distractors must come
	// from the competition roster.
	pool := []Match{
		testMatch(1, "Argentina", "France", 1, 0),
		testMatch(2, "France", "Argentina", 2, 2),
	}
	roster := []string{"Argentina", "France", "Morocco", "Croatia"}

	q := matchOutcomeGenerator{}.Generate(pool, roster, testRand(9))

	assert.Equal(t, "Argentina", q.CorrectAnswer)
	assert.ElementsMatch(t, []string{"Argentina", "Morocco", "Croatia"}, q.Options)
	assert.NoError(t, validateQuestion(q))
}
