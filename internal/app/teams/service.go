package teams

import (
	"sort"

	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain"
	domainteams "github.com/nazarDA/Nba-PlayerAnalytics/internal/domain/teams"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/filter"
)

// Store defines the read contract for team data.
type Store interface {
	ListTeamStats() []domainteams.StatLine
}

// Service answers team-level queries against the loaded dataset.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Names returns the sorted distinct team names.
func (s *Service) Names() []string {
	seen := make(map[string]struct{})
	for _, line := range s.store.ListTeamStats() {
		seen[line.TeamName] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GameLog returns the team's statistic rows scoped to the season, in the
// order they appear in the source data. An unknown team name is an error; a
// known team with no rows in the season yields an empty log.
func (s *Service) GameLog(team string, season int) ([]domainteams.StatLine, error) {
	rows := filter.TeamRowsByName(s.store.ListTeamStats(), team)
	if len(rows) == 0 {
		return nil, domain.ErrTeamNotFound
	}
	return filter.TeamRowsBySeason(rows, season), nil
}
