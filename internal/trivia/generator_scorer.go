package trivia

import "fmt"

// goalScorerGenerator asks who scored the first goal of the pool's question
// match. It needs the match's event log; when no goal with a named player
// exists it reports ok=false and the supervisor serves a match outcome
// question for the same fixture instead.
type goalScorerGenerator struct{}

// firstGoalScorer returns the player on the earliest goal event. events must
// already be ordered by (minute, second) ascending, which is the store's
// contract for event fetches.
func firstGoalScorer(events []MatchEvent) (string, bool) {
	for _, ev := range events {
		if ev.Type == EventTypeGoal && ev.Player != "" {
			return ev.Player, true
		}
	}
	return "", false
}

// Generate builds the first-goal-scorer question for pool[0]. Distractors are
// drawn from the starting lineups recorded for the match, excluding the
// scorer, topped up with numbered fillers when the lineups run short.
func (goalScorerGenerator) Generate(pool []Match, events []MatchEvent, rng Rand) (Question, bool) {
	m := pool[0]

	scorer, ok := firstGoalScorer(events)
	if !ok {
		return Question{}, false
	}

	seen := map[string]bool{scorer: true}
	var candidates []string
	for _, ev := range events {
		if ev.Type != EventTypeStartingXI {
			continue
		}
		for _, player := range ev.Lineup {
			if player != "" && !seen[player] {
				seen[player] = true
				candidates = append(candidates, player)
			}
		}
	}

	shuffleStrings(candidates, rng)
	if len(candidates) > distractorCount {
		candidates = candidates[:distractorCount]
	}
	for i := 1; len(candidates) < distractorCount; i++ {
		candidates = append(candidates, fmt.Sprintf("Random Player %d", i))
	}

	options := make([]string, 0, OptionCount)
	options = append(options, scorer)
	options = append(options, candidates...)
	shuffleStrings(options, rng)

	return Question{
		ID:            m.ID,
		Question:      fmt.Sprintf("Who scored the first goal in the match between %s and %s %s?", m.HomeTeam, m.AwayTeam, matchDescriptor(m)),
		Options:       options,
		CorrectAnswer: scorer,
	}, true
}
