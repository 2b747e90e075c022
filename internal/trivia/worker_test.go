package trivia

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRosterWarmWorkerWarmsCache(t *testing.T) {
	store := twoCompetitionStore()
	cache := newMemoryRosterCache()
	worker := NewRosterWarmWorker(store, cache, time.Hour, zerolog.New(io.Discard))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- worker.Run(ctx)
	}()

	// The worker warms once on startup before waiting for the ticker; the
	// second edition is written last, so its presence means warm finished.
	assert.Eventually(t, func() bool {
		teams, _ := cache.Get(context.Background(), 2, 44)
		return len(teams) > 0
	}, time.Second, 10*time.Millisecond)

	teams, err := cache.Get(context.Background(), 43, 106)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Team X", "Team Y", "Team Z"}, teams,
		"both sampled editions get their roster cached")

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
