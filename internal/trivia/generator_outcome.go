package trivia

import "fmt"

// matchOutcomeGenerator asks who won the pool's question match. It is the
// guaranteed-safe archetype: it always produces a full option set, so the
// supervisor uses it to recover from any other generator's failure.
type matchOutcomeGenerator struct{}

// Generate builds the outcome question for pool[0]. Distractors come from the
// rest of the pool first, then from the competition roster, then from the
// draw answer, then from numbered fillers. roster may be nil.
func (matchOutcomeGenerator) Generate(pool []Match, roster []string, rng Rand) Question {
	m := pool[0]

	correct := answerDraw
	switch {
	case m.HomeScore > m.AwayScore:
		correct = m.HomeTeam
	case m.AwayScore > m.HomeScore:
		correct = m.AwayTeam
	}

	// Exclude the correct answer and both named teams from the candidate set.
	used := map[string]bool{
		correct:    true,
		m.HomeTeam: true,
		m.AwayTeam: true,
	}

	var candidates []string
	for _, other := range pool[1:] {
		for _, name := range [2]string{other.HomeTeam, other.AwayTeam} {
			if name != "" && !used[name] {
				used[name] = true
				candidates = append(candidates, name)
			}
		}
	}
	for _, name := range roster {
		if name != "" && !used[name] {
			used[name] = true
			candidates = append(candidates, name)
		}
	}

	shuffleStrings(candidates, rng)
	distractors := candidates
	if len(distractors) > distractorCount {
		distractors = distractors[:distractorCount]
	}

	if len(distractors) < distractorCount && correct != answerDraw {
		distractors = append(distractors, answerDraw)
	}
	for i := 1; len(distractors) < distractorCount; i++ {
		distractors = append(distractors, fmt.Sprintf("Other Team %d", i))
	}

	options := make([]string, 0, OptionCount)
	options = append(options, correct)
	options = append(options, distractors...)
	shuffleStrings(options, rng)

	return Question{
		ID:            m.ID,
		Question:      fmt.Sprintf("Who won the match between %s vs %s %s?", m.HomeTeam, m.AwayTeam, matchDescriptor(m)),
		Options:       options,
		CorrectAnswer: correct,
	}
}
