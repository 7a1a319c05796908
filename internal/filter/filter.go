// Package filter narrows statistic row sets for a view. Every function
// preserves the original row order, and filters on independent predicates
// commute: applying a season filter then an entity filter yields the same
// rows as the reverse order. Call sites rely on both properties.
package filter

import (
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain/players"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain/teams"
)

// IDSet builds a membership set from player IDs.
func IDSet(ids ...int) map[int]struct{} {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// PlayerRowsBySeason keeps rows from the given season. domain.AllSeasons is
// the identity; otherwise rows without a known season are excluded along
// with rows from other seasons.
func PlayerRowsBySeason(rows []players.StatLine, season int) []players.StatLine {
	if season == domain.AllSeasons {
		return rows
	}
	var out []players.StatLine
	for _, row := range rows {
		if row.Season == season {
			out = append(out, row)
		}
	}
	return out
}

// PlayerRowsByIDs keeps rows whose player ID is in the set.
func PlayerRowsByIDs(rows []players.StatLine, ids map[int]struct{}) []players.StatLine {
	var out []players.StatLine
	for _, row := range rows {
		if _, ok := ids[row.PlayerID]; ok {
			out = append(out, row)
		}
	}
	return out
}

// TeamRowsBySeason keeps team rows from the given season, with the same
// semantics as PlayerRowsBySeason.
func TeamRowsBySeason(rows []teams.StatLine, season int) []teams.StatLine {
	if season == domain.AllSeasons {
		return rows
	}
	var out []teams.StatLine
	for _, row := range rows {
		if row.Season == season {
			out = append(out, row)
		}
	}
	return out
}

// TeamRowsByName keeps rows matching the team name exactly.
func TeamRowsByName(rows []teams.StatLine, name string) []teams.StatLine {
	var out []teams.StatLine
	for _, row := range rows {
		if row.TeamName == name {
			out = append(out, row)
		}
	}
	return out
}
