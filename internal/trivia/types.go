package trivia

import "time"

// Event type tags as they appear in the match dataset.
const (
	EventTypeGoal       = "Goal"
	EventTypeStartingXI = "Starting XI"
)

// OptionCount is the fixed size of a question's option list: one correct
// answer plus distractorCount incorrect ones.
const (
	OptionCount     = 3
	distractorCount = OptionCount - 1
)

// answerDraw is the literal outcome answer for drawn matches.
const answerDraw = "It was a draw"

// CompetitionRef locates the edition a match belongs to.
type CompetitionRef struct {
	ID      int
	Name    string
	Country string
}

// SeasonRef identifies a season within a competition.
type SeasonRef struct {
	ID   int
	Name string
}

// Match is one historical fixture as ingested from the open dataset.
// Read-only within this service; rows are created by an external loader.
type Match struct {
	ID             int64
	HomeTeam       string
	AwayTeam       string
	HomeScore      int
	AwayScore      int
	MatchDate      time.Time
	Competition    CompetitionRef
	Season         SeasonRef
	Stage          string // competition stage name, empty when unset
	MatchWeek      int    // 0 when the fixture has no match week
	StadiumCountry string
}

// MatchEvent is one timestamped action within a match. Lineup is populated
// only for lineup-type events; Player is empty for team-level events.
type MatchEvent struct {
	MatchID int64
	Type    string
	Minute  int
	Second  int
	Player  string
	Lineup  []string
}

// Competition is a tournament/league edition. Teams may be empty, in which
// case the roster is derived from the edition's fixtures.
type Competition struct {
	ID       int
	SeasonID int
	Name     string
	Country  string
	Teams    []string
}

// Question is the payload delivered to clients. CorrectAnswer always appears
// verbatim, exactly once, in Options.
type Question struct {
	ID            int64    `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}
