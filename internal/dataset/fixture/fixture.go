package fixture

import (
	"context"
	"time"

	"github.com/nazarDA/Nba-PlayerAnalytics/internal/dataset"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain/games"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain/players"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain/teams"
)

// Loader returns a small deterministic dataset useful for local
// bootstrapping and tests: two players with disjoint careers, two teams, and
// a handful of games across three seasons.
type Loader struct{}

// New creates a fixture loader.
func New() *Loader {
	return &Loader{}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Load builds the fixture tables. The output is fully derived and identical
// on every call.
func (l *Loader) Load(ctx context.Context) (*dataset.Tables, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tables := &dataset.Tables{
		Players: []players.Player{
			{ID: 1, FirstName: "Alton", LastName: "Reed"},
			{ID: 2, FirstName: "Marcus", LastName: "Bell"},
			{ID: 3, FirstName: "Devin", LastName: "Cole"},
		},
		PlayerStatistics: []players.StatLine{
			{PlayerID: 1, GameID: "g-2015-01", GameDate: date(2015, time.November, 3), Points: 22, ReboundsTotal: 7, Assists: 4, Steals: 1, Blocks: 1, FieldGoalsMade: 9, ThreePointersMade: 2, FreeThrowsMade: 2, FieldGoalsPercentage: 0.5, ThreePointersPercentage: 0.4, FreeThrowsPercentage: 0.8},
			{PlayerID: 1, GameID: "g-2016-01", GameDate: date(2016, time.January, 12), Points: 31, ReboundsTotal: 9, Assists: 6, Steals: 2, Blocks: 0, FieldGoalsMade: 12, ThreePointersMade: 3, FreeThrowsMade: 4, FieldGoalsPercentage: 0.55, ThreePointersPercentage: 0.38, FreeThrowsPercentage: 0.9},
			{PlayerID: 1, GameID: "g-2016-02", GameDate: date(2016, time.February, 20), Points: 14, ReboundsTotal: 5, Assists: 8, Steals: 1, Blocks: 2, FieldGoalsMade: 6, ThreePointersMade: 1, FreeThrowsMade: 1, FieldGoalsPercentage: 0.42, ThreePointersPercentage: 0.25, FreeThrowsPercentage: 0.5},
			{PlayerID: 2, GameID: "g-2016-01", GameDate: date(2016, time.January, 12), Points: 18, ReboundsTotal: 11, Assists: 2, Steals: 0, Blocks: 3, FieldGoalsMade: 8, ThreePointersMade: 0, FreeThrowsMade: 2, FieldGoalsPercentage: 0.47, ThreePointersPercentage: 0, FreeThrowsPercentage: 0.67},
			{PlayerID: 2, GameID: "g-2017-01", GameDate: date(2017, time.March, 5), Points: 26, ReboundsTotal: 13, Assists: 3, Steals: 1, Blocks: 2, FieldGoalsMade: 11, ThreePointersMade: 1, FreeThrowsMade: 3, FieldGoalsPercentage: 0.52, ThreePointersPercentage: 0.33, FreeThrowsPercentage: 0.75},
			{PlayerID: 3, GameID: "g-2017-01", GameDate: date(2017, time.March, 5), Points: 9, ReboundsTotal: 2, Assists: 10, Steals: 3, Blocks: 0, FieldGoalsMade: 4, ThreePointersMade: 1, FreeThrowsMade: 0, FieldGoalsPercentage: 0.36, ThreePointersPercentage: 0.2, FreeThrowsPercentage: 0},
		},
		TeamStatistics: []teams.StatLine{
			{TeamName: "Celtics", GameID: "g-2015-01", GameDate: date(2015, time.November, 3), Points: 104, PointsInPaint: 44, PointsSecondChance: 12, FastBreakPoints: 15},
			{TeamName: "Celtics", GameID: "g-2016-01", GameDate: date(2016, time.January, 12), Points: 98, PointsInPaint: 40, PointsSecondChance: 10, FastBreakPoints: 11},
			{TeamName: "Lakers", GameID: "g-2016-01", GameDate: date(2016, time.January, 12), Points: 95, PointsInPaint: 38, PointsSecondChance: 14, FastBreakPoints: 9},
			{TeamName: "Lakers", GameID: "g-2017-01", GameDate: date(2017, time.March, 5), Points: 110, PointsInPaint: 50, PointsSecondChance: 16, FastBreakPoints: 18},
		},
		Games: []games.Game{
			{ID: "g-2015-01"},
			{ID: "g-2016-01"},
			{ID: "g-2016-02"},
			{ID: "g-2017-01"},
		},
	}

	dataset.Derive(tables)
	return tables, nil
}
