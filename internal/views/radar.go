package views

import (
	"fmt"
	"time"

	"github.com/nazarDA/Nba-PlayerAnalytics/internal/charts"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/filter"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/stats"
)

const radarMaxPlayers = 2

// Radar is the profile page: one or two players' per-game means across the
// radar metrics, min-max normalized per axis.
type Radar struct {
	Season int          `json:"season"`
	Chart  charts.Radar `json:"chart"`
}

// Radar builds the normalized profile for one or two players. Degenerate
// axes, where every selected player has the same mean, sit at the 0.5
// midpoint so the chart stays centered.
func (s *Service) Radar(sel domain.Selection) (Radar, error) {
	start := time.Now()
	view, err := s.buildRadar(sel)
	s.observe(ViewRadar, start, err)
	return view, err
}

func (s *Service) buildRadar(sel domain.Selection) (Radar, error) {
	if len(sel.Players) == 0 || len(sel.Players) > radarMaxPlayers {
		return Radar{}, fmt.Errorf("%w: radar needs one or two players", ErrBadSelection)
	}

	ids := make([]int, len(sel.Players))
	for i, name := range sel.Players {
		id, err := s.players.NameToID(name)
		if err != nil {
			return Radar{}, err
		}
		ids[i] = id
	}

	scoped := filter.PlayerRowsBySeason(s.store.ListPlayerStats(), sel.Season)
	rows := filter.PlayerRowsByIDs(scoped, filter.IDSet(ids...))

	axes := domain.RadarMetrics()
	means := stats.MeanByPlayer(rows, axes)

	// Normalize each axis across the selected players.
	normalized := make(map[string][]float64, len(sel.Players))
	for _, name := range sel.Players {
		normalized[name] = make([]float64, len(axes))
	}
	for i := range axes {
		column := make([]float64, len(sel.Players))
		for j, name := range sel.Players {
			if m, ok := means[name]; ok {
				column[j] = m[i]
			}
		}
		for j, v := range stats.MinMaxNormalize(column) {
			normalized[sel.Players[j]][i] = v
		}
	}

	chart := charts.Radar{Title: "Player Radar Profile"}
	for _, m := range axes {
		chart.Axes = append(chart.Axes, m.Label())
	}
	for _, name := range sel.Players {
		chart.Series = append(chart.Series, charts.RadarSeries{
			Name:   name,
			Values: normalized[name],
		})
	}

	return Radar{Season: sel.Season, Chart: chart}, nil
}
