package trivia

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// RosterWarmWorker periodically refreshes the roster cache for competitions
// currently present in the dataset, so the outcome generator's widened
// distractor path is usually a cache hit.
type RosterWarmWorker struct {
	store    Store
	cache    RosterCache
	interval time.Duration
	logger   zerolog.Logger
}

func NewRosterWarmWorker(store Store, cache RosterCache, interval time.Duration, logger zerolog.Logger) *RosterWarmWorker {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &RosterWarmWorker{
		store:    store,
		cache:    cache,
		interval: interval,
		logger:   logger.With().Str("component", "roster_warm_worker").Logger(),
	}
}

// Run warms once immediately, then on every tick until ctx is canceled.
func (w *RosterWarmWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.warm(ctx)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("roster warm worker stopping")
			return ctx.Err()
		case <-ticker.C:
			w.warm(ctx)
		}
	}
}

// warm samples the dataset and refreshes the roster of every competition
// edition seen in the sample. Failures are logged and skipped; the cache is
// an optimization, not a correctness dependency.
func (w *RosterWarmWorker) warm(ctx context.Context) {
	pool, err := w.store.SampleMatches(ctx, defaultPoolSize)
	if err != nil {
		w.logger.Warn().Err(err).Msg("roster warm sample failed")
		return
	}

	type edition struct{ competitionID, seasonID int }
	seen := make(map[edition]bool)
	for _, m := range pool {
		ed := edition{m.Competition.ID, m.Season.ID}
		if seen[ed] {
			continue
		}
		seen[ed] = true

		teams, err := w.store.CompetitionTeams(ctx, ed.competitionID, ed.seasonID)
		if err != nil {
			w.logger.Warn().Err(err).Int("competition_id", ed.competitionID).Msg("roster fetch failed")
			continue
		}
		if err := w.cache.Set(ctx, ed.competitionID, ed.seasonID, teams); err != nil {
			w.logger.Warn().Err(err).Int("competition_id", ed.competitionID).Msg("roster cache write failed")
		}
	}
}
