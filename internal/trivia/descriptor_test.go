package trivia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchDescriptorNamedStage(t *testing.T) {
	m := testMatch(1, "Argentina", "France", 3, 3)
	m.Stage = "Final"

	assert.Equal(t, "at Qatar FIFA World Cup 2022 (Final)", matchDescriptor(m))
}

func TestMatchDescriptorDefaultStageFallsBackToWeek(t *testing.T) {
	m := testMatch(2, "Arsenal", "Chelsea", 1, 0)
	m.Stage = "Regular Season"
	m.MatchWeek = 12
	m.StadiumCountry = "England"
	m.Competition = CompetitionRef{ID: 2, Name: "Premier League", Country: "England"}
	m.Season = SeasonRef{ID: 44, Name: "2015/2016"}

	assert.Equal(t, "at England Premier League 2015/2016 Week 12", matchDescriptor(m))
}

func TestMatchDescriptorCountryPreference(t *testing.T) {
	m := testMatch(3, "Barcelona", "Real Madrid", 2, 2)
	m.Stage = ""
	m.StadiumCountry = ""
	m.Competition.Country = "Spain"
	m.Competition.Name = "La Liga"
	m.Season.Name = "2019/2020"

	assert.Equal(t, "at Spain La Liga 2019/2020", matchDescriptor(m))

	m.Competition.Country = ""
	assert.Equal(t, "at La Liga 2019/2020", matchDescriptor(m))
}
