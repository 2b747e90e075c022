package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dcortis/matchday-trivia/internal/trivia"
)

// Postgres implements the read-only dataset contracts on a pgx pool. The
// dataset is loaded out of band; this service never writes to it.
type Postgres struct {
	pool *pgxpool.Pool
}

var _ trivia.Store = (*Postgres)(nil)

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// SampleMatches returns up to n matches drawn uniformly at random without
// replacement. The matches table is small enough that ORDER BY random() is
// a single cheap round trip.
func (s *Postgres) SampleMatches(ctx context.Context, n int) ([]trivia.Match, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT match_id, home_team, away_team, home_score, away_score, match_date,
		       competition_id, competition_name, country_name,
		       season_id, season_name,
		       competition_stage, match_week, stadium_country
		FROM matches
		ORDER BY random()
		LIMIT $1`, n)
	if err != nil {
		return nil, fmt.Errorf("sample matches: %w", err)
	}
	defer rows.Close()

	var matches []trivia.Match
	for rows.Next() {
		var m trivia.Match
		if err := rows.Scan(
			&m.ID, &m.HomeTeam, &m.AwayTeam, &m.HomeScore, &m.AwayScore, &m.MatchDate,
			&m.Competition.ID, &m.Competition.Name, &m.Competition.Country,
			&m.Season.ID, &m.Season.Name,
			&m.Stage, &m.MatchWeek, &m.StadiumCountry,
		); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sample matches: %w", err)
	}
	return matches, nil
}

// MatchEvents returns a match's event log ordered by minute then second.
func (s *Postgres) MatchEvents(ctx context.Context, matchID int64) ([]trivia.MatchEvent, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT match_id, event_type, minute, second, player_name, lineup
		FROM match_events
		WHERE match_id = $1
		ORDER BY minute, second`, matchID)
	if err != nil {
		return nil, fmt.Errorf("fetch events for match %d: %w", matchID, err)
	}
	defer rows.Close()

	var events []trivia.MatchEvent
	for rows.Next() {
		var ev trivia.MatchEvent
		if err := rows.Scan(&ev.MatchID, &ev.Type, &ev.Minute, &ev.Second, &ev.Player, &ev.Lineup); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch events for match %d: %w", matchID, err)
	}
	return events, nil
}

// Competition looks up one competition edition.
func (s *Postgres) Competition(ctx context.Context, competitionID, seasonID int) (trivia.Competition, error) {
	var c trivia.Competition
	err := s.pool.QueryRow(ctx, `
		SELECT competition_id, season_id, competition_name, country_name, teams
		FROM competitions
		WHERE competition_id = $1 AND season_id = $2`,
		competitionID, seasonID,
	).Scan(&c.ID, &c.SeasonID, &c.Name, &c.Country, &c.Teams)
	if err != nil {
		return trivia.Competition{}, fmt.Errorf("fetch competition %d/%d: %w", competitionID, seasonID, err)
	}
	return c, nil
}

// CompetitionTeams returns every team name in a competition edition. The
// curated roster wins when present; otherwise the roster is derived from the
// edition's fixtures, the way the upstream dataset implies it.
func (s *Postgres) CompetitionTeams(ctx context.Context, competitionID, seasonID int) ([]string, error) {
	comp, err := s.Competition(ctx, competitionID, seasonID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if len(comp.Teams) > 0 {
		return comp.Teams, nil
	}

	rows, err := s.pool.Query(ctx, `
		SELECT DISTINCT name FROM (
			SELECT home_team AS name FROM matches WHERE competition_id = $1 AND season_id = $2
			UNION
			SELECT away_team AS name FROM matches WHERE competition_id = $1 AND season_id = $2
		) teams
		ORDER BY name`, competitionID, seasonID)
	if err != nil {
		return nil, fmt.Errorf("derive roster for competition %d/%d: %w", competitionID, seasonID, err)
	}
	defer rows.Close()

	var teams []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan team name: %w", err)
		}
		teams = append(teams, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("derive roster for competition %d/%d: %w", competitionID, seasonID, err)
	}
	return teams, nil
}
