package dataset

import (
	"strings"

	"github.com/nazarDA/Nba-PlayerAnalytics/internal/timeutil"
)

// FullName joins first and last name into the display/lookup key. Missing
// parts are treated as empty strings; the joined value is trimmed, so a
// player with only one known part still gets a usable name and a player with
// neither gets the empty string.
func FullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

// Derive computes all derived columns in place: player full names, per-row
// seasons, and the full-name join from players into player statistics. It is
// a pure function of the loaded data, deterministic and idempotent, so
// re-running it on an already derived table set is a no-op.
func Derive(t *Tables) {
	for i := range t.Players {
		p := &t.Players[i]
		p.FullName = FullName(p.FirstName, p.LastName)
	}

	names := make(map[int]string, len(t.Players))
	for _, p := range t.Players {
		names[p.ID] = p.FullName
	}

	for i := range t.PlayerStatistics {
		l := &t.PlayerStatistics[i]
		l.FullName = names[l.PlayerID]
		l.Season = timeutil.SeasonOf(l.GameDate)
	}

	for i := range t.TeamStatistics {
		l := &t.TeamStatistics[i]
		l.Season = timeutil.SeasonOf(l.GameDate)
	}
}
