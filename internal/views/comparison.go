package views

import (
	"fmt"
	"time"

	"github.com/nazarDA/Nba-PlayerAnalytics/internal/charts"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain"
	domainplayers "github.com/nazarDA/Nba-PlayerAnalytics/internal/domain/players"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/filter"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/stats"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/timeutil"
)

// Comparison is the head-to-head page: metric totals for two players plus
// their per-game trend within the selected season scope.
type Comparison struct {
	Season int         `json:"season"`
	Metric string      `json:"metric"`
	Totals charts.Bar  `json:"totals"`
	Trend  charts.Line `json:"trend"`
}

// Comparison builds the head-to-head view for exactly two distinct players.
// Name resolution failures (unknown or ambiguous names) propagate to the
// caller untouched.
func (s *Service) Comparison(sel domain.Selection) (Comparison, error) {
	start := time.Now()
	view, err := s.buildComparison(sel)
	s.observe(ViewComparison, start, err)
	return view, err
}

func (s *Service) buildComparison(sel domain.Selection) (Comparison, error) {
	if len(sel.Players) != 2 || sel.Players[0] == sel.Players[1] {
		return Comparison{}, fmt.Errorf("%w: comparison needs two distinct players", ErrBadSelection)
	}

	ids := make([]int, 2)
	for i, name := range sel.Players {
		id, err := s.players.NameToID(name)
		if err != nil {
			return Comparison{}, err
		}
		ids[i] = id
	}

	scoped := filter.PlayerRowsBySeason(s.store.ListPlayerStats(), sel.Season)

	totals := charts.Bar{
		Title:  fmt.Sprintf("Total %s: %s vs %s", sel.Metric.Label(), sel.Players[0], sel.Players[1]),
		YLabel: "Total " + string(sel.Metric),
	}
	trend := charts.Line{
		Title:  "Per-Game Trend",
		YLabel: string(sel.Metric),
	}
	for i, id := range ids {
		rows := filter.PlayerRowsByIDs(scoped, filter.IDSet(id))
		totals.Data = append(totals.Data, charts.BarDatum{
			Label: sel.Players[i],
			Value: stats.Total(rows, sel.Metric),
		})
		trend.Series = append(trend.Series, charts.Series{
			Name:   sel.Players[i],
			Points: gamePoints(rows, sel.Metric),
		})
	}

	return Comparison{
		Season: sel.Season,
		Metric: string(sel.Metric),
		Totals: totals,
		Trend:  trend,
	}, nil
}

// gamePoints maps rows to dated points in source order. Rows whose game date
// never parsed have nothing to plot on a time axis and are skipped.
func gamePoints(rows []domainplayers.StatLine, metric domain.Metric) []charts.LinePoint {
	var points []charts.LinePoint
	for _, row := range rows {
		if row.GameDate.IsZero() {
			continue
		}
		points = append(points, charts.LinePoint{
			Date:  timeutil.FormatDate(row.GameDate),
			Value: row.Metric(metric),
		})
	}
	return points
}
