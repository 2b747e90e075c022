package trivia

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// Store provides the read-only dataset queries question generation needs.
// Implemented by the Postgres store; tests inject in-memory fakes.
type Store interface {
	// SampleMatches returns up to n matches drawn uniformly at random
	// without replacement.
	SampleMatches(ctx context.Context, n int) ([]Match, error)
	// MatchEvents returns a match's event log ordered by (minute, second).
	MatchEvents(ctx context.Context, matchID int64) ([]MatchEvent, error)
	// CompetitionTeams returns every team name in a competition edition.
	CompetitionTeams(ctx context.Context, competitionID, seasonID int) ([]string, error)
}

// RosterCache fronts the roster query (implemented by the Redis-backed Cache).
// A nil cache or a cache miss falls through to the store.
type RosterCache interface {
	Get(ctx context.Context, competitionID, seasonID int) ([]string, error)
	Set(ctx context.Context, competitionID, seasonID int, teams []string) error
}

// Service generates one trivia question per call: sample a pool, pick an
// archetype, dispatch to its generator, validate the result, recover through
// the match outcome generator on any malformation.
type Service struct {
	store   Store
	roster  RosterCache
	sampler *Sampler
	rng     Rand
	logger  zerolog.Logger
}

type ServiceOptions struct {
	PoolSize int  // sample pool size, default 10
	Rand     Rand // defaults to the process-global source
}

func NewService(store Store, roster RosterCache, opts ServiceOptions, logger zerolog.Logger) *Service {
	rng := opts.Rand
	if rng == nil {
		rng = globalRand{}
	}
	return &Service{
		store:   store,
		roster:  roster,
		sampler: NewSampler(store, opts.PoolSize),
		rng:     rng,
		logger:  logger.With().Str("component", "trivia_service").Logger(),
	}
}

// NextQuestion generates one question from a fresh random pool. Errors are
// InsufficientDataError or StoreAccessError; a generator malformation is
// recovered internally and never surfaces.
func (s *Service) NextQuestion(ctx context.Context) (Question, error) {
	pool, err := s.sampler.Pool(ctx)
	if err != nil {
		return Question{}, err
	}

	q, served, err := s.generate(ctx, pickArchetype(s.rng), pool)
	if err != nil {
		return Question{}, err
	}

	if vErr := validateQuestion(q); vErr != nil {
		s.logger.Warn().Err(vErr).Str("archetype", served).
			Int64("match_id", pool[0].ID).
			Msg("question failed contract validation, regenerating as match outcome")
		fallbacksTotal.WithLabelValues(served).Inc()
		q = s.generateOutcome(ctx, pool)
		served = ArchetypeMatchOutcome
		if vErr := validateQuestion(q); vErr != nil {
			return Question{}, vErr
		}
	}

	questionsTotal.WithLabelValues(served).Inc()
	return q, nil
}

// generate dispatches to the selected archetype's generator. The served
// archetype may differ from the selected one: the goal scorer delegates to
// match outcome when the match recorded no goal with a named player.
func (s *Service) generate(ctx context.Context, archetype string, pool []Match) (Question, string, error) {
	switch archetype {
	case ArchetypeScore:
		return scoreGenerator{}.Generate(pool, s.rng), ArchetypeScore, nil

	case ArchetypeGoalScorer:
		events, err := s.store.MatchEvents(ctx, pool[0].ID)
		if err != nil {
			return Question{}, "", &StoreAccessError{Op: "fetch match events", Err: err}
		}
		if q, ok := (goalScorerGenerator{}).Generate(pool, events, s.rng); ok {
			return q, ArchetypeGoalScorer, nil
		}
		return s.generateOutcome(ctx, pool), ArchetypeMatchOutcome, nil

	default:
		return s.generateOutcome(ctx, pool), ArchetypeMatchOutcome, nil
	}
}

func (s *Service) generateOutcome(ctx context.Context, pool []Match) Question {
	return matchOutcomeGenerator{}.Generate(pool, s.competitionRoster(ctx, pool[0]), s.rng)
}

// competitionRoster resolves the edition's team names, cache first. Roster
// widening is best effort: on failure the generator falls back to sample-only
// distractors rather than failing the request.
func (s *Service) competitionRoster(ctx context.Context, m Match) []string {
	if s.roster != nil {
		if teams, err := s.roster.Get(ctx, m.Competition.ID, m.Season.ID); err == nil && teams != nil {
			return teams
		}
	}
	teams, err := s.store.CompetitionTeams(ctx, m.Competition.ID, m.Season.ID)
	if err != nil {
		s.logger.Warn().Err(err).
			Int("competition_id", m.Competition.ID).
			Int("season_id", m.Season.ID).
			Msg("roster lookup failed, using sample-only distractors")
		return nil
	}
	if s.roster != nil {
		if err := s.roster.Set(ctx, m.Competition.ID, m.Season.ID, teams); err != nil {
			s.logger.Warn().Err(err).Msg("roster cache write failed")
		}
	}
	return teams
}

// validateQuestion enforces the output contract: non-empty text, exactly
// OptionCount distinct options, correct answer present exactly once.
func validateQuestion(q Question) error {
	if strings.TrimSpace(q.Question) == "" {
		return &MalformedQuestionError{Reason: "empty question text"}
	}
	if len(q.Options) != OptionCount {
		return &MalformedQuestionError{Reason: "wrong option count"}
	}
	seen := make(map[string]bool, OptionCount)
	correct := 0
	for _, opt := range q.Options {
		if seen[opt] {
			return &MalformedQuestionError{Reason: "duplicate option"}
		}
		seen[opt] = true
		if opt == q.CorrectAnswer {
			correct++
		}
	}
	if correct != 1 {
		return &MalformedQuestionError{Reason: "correct answer missing from options"}
	}
	return nil
}
