package testutil

import (
	"time"

	"github.com/nazarDA/Nba-PlayerAnalytics/internal/dataset"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain/games"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain/players"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain/teams"
)

// Date builds a UTC midnight timestamp for fixtures.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Tables builds a small derived table set: player 1 spans 2015-2018,
// player 2 spans 2019-2021, matching the career-span scenarios the resolver
// tests lean on.
func Tables() *dataset.Tables {
	t := &dataset.Tables{
		Players: []players.Player{
			{ID: 1, FirstName: "Ava", LastName: "Stone"},
			{ID: 2, FirstName: "Noah", LastName: "Pierce"},
		},
		PlayerStatistics: []players.StatLine{
			{PlayerID: 1, GameID: "g1", GameDate: Date(2015, time.March, 1), Points: 10, ReboundsTotal: 4, Assists: 2},
			{PlayerID: 1, GameID: "g2", GameDate: Date(2018, time.April, 2), Points: 20, ReboundsTotal: 6, Assists: 5},
			{PlayerID: 2, GameID: "g3", GameDate: Date(2019, time.May, 3), Points: 15, ReboundsTotal: 8, Assists: 1},
			{PlayerID: 2, GameID: "g4", GameDate: Date(2021, time.June, 4), Points: 25, ReboundsTotal: 3, Assists: 7},
		},
		TeamStatistics: []teams.StatLine{
			{TeamName: "Celtics", GameID: "g1", GameDate: Date(2015, time.March, 1), Points: 100, PointsInPaint: 40, PointsSecondChance: 12, FastBreakPoints: 10},
			{TeamName: "Lakers", GameID: "g3", GameDate: Date(2019, time.May, 3), Points: 96, PointsInPaint: 38, PointsSecondChance: 9, FastBreakPoints: 14},
		},
		Games: []games.Game{{ID: "g1"}, {ID: "g2"}, {ID: "g3"}, {ID: "g4"}},
	}
	dataset.Derive(t)
	return t
}
