package views

import (
	"sort"
	"time"

	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain"
)

// Meta carries the selector data the page chrome needs: the observed
// seasons, the selectable player names for the season scope, the team names,
// and the metric list.
type Meta struct {
	Seasons []int    `json:"seasons"`
	Players []string `json:"players"`
	Teams   []string `json:"teams"`
	Metrics []string `json:"metrics"`
}

// Meta builds the selector payload. The player list honors the season scope
// the same way the sidebar does: only players active in that season appear.
func (s *Service) Meta(season int) (Meta, error) {
	start := time.Now()
	view, err := s.buildMeta(season)
	s.observe(ViewMeta, start, err)
	return view, err
}

func (s *Service) buildMeta(season int) (Meta, error) {
	seasonSet := make(map[int]struct{})
	for _, row := range s.store.ListPlayerStats() {
		if row.HasSeason() {
			seasonSet[row.Season] = struct{}{}
		}
	}
	seasons := make([]int, 0, len(seasonSet))
	for season := range seasonSet {
		seasons = append(seasons, season)
	}
	sort.Ints(seasons)

	metrics := make([]string, 0, len(domain.SelectableMetrics()))
	for _, m := range domain.SelectableMetrics() {
		metrics = append(metrics, string(m))
	}

	return Meta{
		Seasons: seasons,
		Players: s.players.SelectableNames(season),
		Teams:   s.teams.Names(),
		Metrics: metrics,
	}, nil
}
