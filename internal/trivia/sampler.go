package trivia

import "context"

const (
	defaultPoolSize = 10
	minPoolSize     = 4
)

// Sampler draws the per-request match pool: up to size random matches, drawn
// without replacement by the store. Pools are independent across requests.
type Sampler struct {
	store Store
	size  int
}

func NewSampler(store Store, size int) *Sampler {
	if size <= 0 {
		size = defaultPoolSize
	}
	return &Sampler{store: store, size: size}
}

// Pool fetches a fresh random pool. Returns InsufficientDataError when the
// store holds fewer than the minimum viable number of matches.
func (s *Sampler) Pool(ctx context.Context) ([]Match, error) {
	pool, err := s.store.SampleMatches(ctx, s.size)
	if err != nil {
		return nil, &StoreAccessError{Op: "sample matches", Err: err}
	}
	if len(pool) < minPoolSize {
		return nil, &InsufficientDataError{Have: len(pool), Need: minPoolSize}
	}
	return pool, nil
}
