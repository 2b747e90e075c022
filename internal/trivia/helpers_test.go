package trivia

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// fakeStore is an in-memory Store. SampleMatches returns matches in slice
// order, which is fine for tests that pin pool[0].
type fakeStore struct {
	matches []Match
	events  map[int64][]MatchEvent
	teams   []string

	sampleErr error
	eventsErr error
	teamsErr  error
}

func (f *fakeStore) SampleMatches(_ context.Context, n int) ([]Match, error) {
	if f.sampleErr != nil {
		return nil, f.sampleErr
	}
	if n > len(f.matches) {
		n = len(f.matches)
	}
	return append([]Match(nil), f.matches[:n]...), nil
}

func (f *fakeStore) MatchEvents(_ context.Context, matchID int64) ([]MatchEvent, error) {
	if f.eventsErr != nil {
		return nil, f.eventsErr
	}
	return f.events[matchID], nil
}

func (f *fakeStore) CompetitionTeams(_ context.Context, _, _ int) ([]string, error) {
	if f.teamsErr != nil {
		return nil, f.teamsErr
	}
	return f.teams, nil
}

// memoryRosterCache is a map-backed RosterCache, safe for the worker test's
// concurrent access.
type memoryRosterCache struct {
	mu    sync.Mutex
	store map[[2]int][]string
}

func newMemoryRosterCache() *memoryRosterCache {
	return &memoryRosterCache{store: map[[2]int][]string{}}
}

func (c *memoryRosterCache) Get(_ context.Context, competitionID, seasonID int) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store[[2]int{competitionID, seasonID}], nil
}

func (c *memoryRosterCache) Set(_ context.Context, competitionID, seasonID int, teams []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[[2]int{competitionID, seasonID}] = teams
	return nil
}

func testMatch(id int64, home, away string, homeScore, awayScore int) Match {
	return Match{
		ID:        id,
		HomeTeam:  home,
		AwayTeam:  away,
		HomeScore: homeScore,
		AwayScore: awayScore,
		MatchDate: time.Date(2022, 12, 18, 0, 0, 0, 0, time.UTC),
		Competition: CompetitionRef{
			ID:      43,
			Name:    "FIFA World Cup",
			Country: "International",
		},
		Season:         SeasonRef{ID: 106, Name: "2022"},
		Stage:          "Group Stage",
		StadiumCountry: "Qatar",
	}
}

func testRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
