package domain

// AllSeasons is the season value meaning "no season filter". The zero season
// is reserved for rows whose game date could not be parsed, so the two cases
// stay distinguishable.
const AllSeasons = -1

// Selection captures the interactive choices driving a single view
// computation: a season scope, up to two player names, a team name, and a
// metric. Each view reads the fields it needs.
type Selection struct {
	Season  int      `json:"season"`
	Players []string `json:"players,omitempty"`
	Team    string   `json:"team,omitempty"`
	Metric  Metric   `json:"metric,omitempty"`
	Limit   int      `json:"limit,omitempty"`
}

// SeasonFiltered reports whether the selection narrows to a single season.
func (s Selection) SeasonFiltered() bool {
	return s.Season != AllSeasons
}
