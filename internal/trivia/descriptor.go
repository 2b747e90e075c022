package trivia

import (
	"fmt"
	"strings"
)

// Stage names that carry no information beyond the match week.
const (
	stageRegularSeason = "Regular Season"
	stageDomesticCup   = "Domestic Cup"
)

// matchDescriptor renders the contextual suffix appended to question text,
// e.g. "at Qatar FIFA World Cup 2022 (Final)". Country preference: stadium
// country, then competition country, then none. A named non-default stage
// wins over the match week.
func matchDescriptor(m Match) string {
	country := m.StadiumCountry
	if country == "" {
		country = m.Competition.Country
	}

	var b strings.Builder
	b.WriteString("at ")
	if country != "" {
		b.WriteString(country)
		b.WriteByte(' ')
	}
	b.WriteString(m.Competition.Name)
	b.WriteByte(' ')
	b.WriteString(m.Season.Name)

	switch {
	case m.Stage != "" && m.Stage != stageRegularSeason && m.Stage != stageDomesticCup:
		fmt.Fprintf(&b, " (%s)", m.Stage)
	case m.MatchWeek > 0:
		fmt.Fprintf(&b, " Week %d", m.MatchWeek)
	}
	return b.String()
}
