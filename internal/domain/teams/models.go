package teams

import "time"

// StatLine is one team's box score for one game. The team name doubles as
// the identifier; the source data carries no separate numeric team ID.
type StatLine struct {
	TeamName string    `json:"teamName"`
	GameID   string    `json:"gameId"`
	GameDate time.Time `json:"gameDate"`
	Season   int       `json:"season"`

	Points             float64 `json:"points"`
	PointsInPaint      float64 `json:"pointsInPaint"`
	PointsSecondChance float64 `json:"pointsSecondChance"`
	FastBreakPoints    float64 `json:"fastBreakPoints"`
}

// HasSeason reports whether the row carries a derived season.
func (l StatLine) HasSeason() bool {
	return l.Season != 0
}
