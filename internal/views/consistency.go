package views

import (
	"math"
	"sort"
	"time"

	"github.com/nazarDA/Nba-PlayerAnalytics/internal/charts"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/stats"
)

const (
	consistencyMaxPlayers     = 10
	consistencyDefaultPlayers = 5
)

// Consistency is the heatmap page: per-player per-season standard deviation
// of points per game.
type Consistency struct {
	Heatmap charts.Heatmap `json:"heatmap"`
}

// Consistency builds the stddev heatmap for the requested player names. An
// empty request falls back to the first few selectable names; more than ten
// names are truncated for visibility, matching the page's selection cap.
func (s *Service) Consistency(sel domain.Selection) (Consistency, error) {
	start := time.Now()
	view, err := s.buildConsistency(sel)
	s.observe(ViewConsistency, start, err)
	return view, err
}

func (s *Service) buildConsistency(sel domain.Selection) (Consistency, error) {
	names := sel.Players
	if len(names) == 0 {
		all := s.players.SelectableNames(domain.AllSeasons)
		if len(all) > consistencyDefaultPlayers {
			all = all[:consistencyDefaultPlayers]
		}
		names = all
	}
	if len(names) > consistencyMaxPlayers {
		names = names[:consistencyMaxPlayers]
	}

	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name != "" {
			wanted[name] = struct{}{}
		}
	}

	groups := stats.StdDevByGroup(s.store.ListPlayerStats(), domain.MetricPoints)

	seasonSet := make(map[int]struct{})
	var cells []charts.HeatmapCell
	for key, sd := range groups {
		if _, ok := wanted[key.FullName]; !ok {
			continue
		}
		seasonSet[key.Season] = struct{}{}

		cell := charts.HeatmapCell{Season: key.Season, Player: key.FullName}
		if !math.IsNaN(sd) {
			v := sd
			cell.Value = &v
		}
		cells = append(cells, cell)
	}

	seasons := make([]int, 0, len(seasonSet))
	for season := range seasonSet {
		seasons = append(seasons, season)
	}
	sort.Ints(seasons)

	players := make([]string, 0, len(wanted))
	for name := range wanted {
		players = append(players, name)
	}
	sort.Strings(players)

	// Deterministic cell order: by player, then season.
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Player != cells[j].Player {
			return cells[i].Player < cells[j].Player
		}
		return cells[i].Season < cells[j].Season
	})

	return Consistency{
		Heatmap: charts.Heatmap{
			Title:   "Std Dev of Points per Game",
			Seasons: seasons,
			Players: players,
			Cells:   cells,
		},
	}, nil
}
