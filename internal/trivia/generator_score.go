package trivia

import "fmt"

// scoreGenerator asks for the final score of the pool's question match.
type scoreGenerator struct{}

// scoreAttemptCap bounds the random-score rejection loop. With a 4x4 score
// space and at most two values excluded, 32 attempts cannot realistically
// exhaust, but the counter fallback below keeps even that case terminating.
const scoreAttemptCap = 32

// commonScorelines are plausible low-scoring football results used when the
// near-miss variants run out.
var commonScorelines = []string{
	"0 - 0", "1 - 0", "1 - 1", "2 - 0", "2 - 1", "3 - 0",
	"0 - 1", "0 - 2", "1 - 2",
}

func formatScore(home, away int) string {
	return fmt.Sprintf("%d - %d", home, away)
}

// Generate builds the score question for pool[0]. Distractors are drawn in
// priority order: near-miss variations of the true score, then common
// scorelines, then bounded random scores, then an incrementing fallback.
func (scoreGenerator) Generate(pool []Match, rng Rand) Question {
	m := pool[0]
	correct := formatScore(m.HomeScore, m.AwayScore)

	seen := map[string]bool{correct: true}
	distractors := make([]string, 0, distractorCount)
	add := func(s string) {
		if !seen[s] && len(distractors) < distractorCount {
			seen[s] = true
			distractors = append(distractors, s)
		}
	}

	h, a := m.HomeScore, m.AwayScore
	near := []string{
		formatScore(h+1, a),
		formatScore(h, a+1),
		formatScore(max(h-1, 0), a),
		formatScore(h, max(a-1, 0)),
		formatScore(h+1, a+1),
		formatScore(max(h-1, 0), max(a-1, 0)),
	}
	shuffleStrings(near, rng)
	for _, s := range near {
		add(s)
	}

	if len(distractors) < distractorCount {
		common := append([]string(nil), commonScorelines...)
		shuffleStrings(common, rng)
		for _, s := range common {
			add(s)
		}
	}

	for attempts := 0; len(distractors) < distractorCount && attempts < scoreAttemptCap; attempts++ {
		add(formatScore(rng.Intn(4), rng.Intn(4)))
	}
	for i := 1; len(distractors) < distractorCount; i++ {
		// Differing per-side offsets can never reproduce the true score.
		add(formatScore(h+i, a+i+1))
	}

	options := make([]string, 0, OptionCount)
	options = append(options, correct)
	options = append(options, distractors...)
	shuffleStrings(options, rng)

	return Question{
		ID:            m.ID,
		Question:      fmt.Sprintf("What was the final score of the match between %s and %s %s?", m.HomeTeam, m.AwayTeam, matchDescriptor(m)),
		Options:       options,
		CorrectAnswer: correct,
	}
}
