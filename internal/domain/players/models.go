package players

import (
	"time"

	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain"
)

// Player represents one biographical record. FullName is derived at load
// time and is the sole display/lookup key for the UI layer; collisions are a
// known data-quality gap the resolver reports rather than hides.
type Player struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
}

// StatLine is one player's box score for one game. Season and FullName are
// derived columns: Season is the calendar year of GameDate (0 when the date
// failed to parse) and FullName is left-joined from Players (empty when the
// player ID is unresolved).
type StatLine struct {
	PlayerID int       `json:"playerId"`
	GameID   string    `json:"gameId"`
	FullName string    `json:"fullName"`
	GameDate time.Time `json:"gameDate"`
	Season   int       `json:"season"`

	Points                  float64 `json:"points"`
	ReboundsTotal           float64 `json:"reboundsTotal"`
	Assists                 float64 `json:"assists"`
	Blocks                  float64 `json:"blocks"`
	Steals                  float64 `json:"steals"`
	FieldGoalsMade          float64 `json:"fieldGoalsMade"`
	ThreePointersMade       float64 `json:"threePointersMade"`
	FreeThrowsMade          float64 `json:"freeThrowsMade"`
	FieldGoalsPercentage    float64 `json:"fieldGoalsPercentage"`
	ThreePointersPercentage float64 `json:"threePointersPercentage"`
	FreeThrowsPercentage    float64 `json:"freeThrowsPercentage"`
}

// HasSeason reports whether the row carries a derived season. Rows without
// one are excluded from season-filtered views and season-grouped aggregates.
func (l StatLine) HasSeason() bool {
	return l.Season != 0
}

// Metric returns the value of the given metric column.
func (l StatLine) Metric(m domain.Metric) float64 {
	switch m {
	case domain.MetricPoints:
		return l.Points
	case domain.MetricReboundsTotal:
		return l.ReboundsTotal
	case domain.MetricAssists:
		return l.Assists
	case domain.MetricBlocks:
		return l.Blocks
	case domain.MetricSteals:
		return l.Steals
	case domain.MetricFieldGoalsMade:
		return l.FieldGoalsMade
	case domain.MetricThreePointersMade:
		return l.ThreePointersMade
	case domain.MetricFreeThrowsMade:
		return l.FreeThrowsMade
	case domain.MetricFieldGoalsPercentage:
		return l.FieldGoalsPercentage
	case domain.MetricThreePointersPercentage:
		return l.ThreePointersPercentage
	case domain.MetricFreeThrowsPercentage:
		return l.FreeThrowsPercentage
	}
	return 0
}

// SeasonSpan is a player's inclusive range of seasons with recorded
// statistics. A player is active for season Y iff Debut <= Y <= Final.
type SeasonSpan struct {
	Debut int `json:"debut"`
	Final int `json:"final"`
}

// Contains reports whether the span covers the given season.
func (s SeasonSpan) Contains(season int) bool {
	return s.Debut <= season && season <= s.Final
}
