package views

import (
	"fmt"
	"time"

	"github.com/nazarDA/Nba-PlayerAnalytics/internal/charts"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/stats"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/timeutil"
)

const defaultHighlightCount = 5

// Highlights is the top-performances page: the best single-game rows for a
// metric, as a ranked table and a bar chart.
type Highlights struct {
	Table charts.Table `json:"table"`
	Chart charts.Bar   `json:"chart"`
}

// Highlights builds the top single-game performances for the selected
// metric. Limit defaults to five; ties keep their source order.
func (s *Service) Highlights(sel domain.Selection) (Highlights, error) {
	start := time.Now()
	view, err := s.buildHighlights(sel)
	s.observe(ViewHighlights, start, err)
	return view, err
}

func (s *Service) buildHighlights(sel domain.Selection) (Highlights, error) {
	limit := sel.Limit
	if limit <= 0 {
		limit = defaultHighlightCount
	}

	top := stats.TopK(s.store.ListPlayerStats(), sel.Metric, limit)

	table := charts.Table{
		Title:  fmt.Sprintf("Top %d Single-Game %s", limit, sel.Metric.Label()),
		Metric: string(sel.Metric),
	}
	chart := charts.Bar{
		Title:  table.Title,
		XLabel: sel.Metric.Label(),
	}

	for i, row := range top {
		date := ""
		if !row.GameDate.IsZero() {
			date = timeutil.FormatDate(row.GameDate)
		}
		table.Rows = append(table.Rows, charts.TableRow{
			Rank:   i + 1,
			Player: row.FullName,
			Date:   date,
			Value:  row.Metric(sel.Metric),
		})
		chart.Data = append(chart.Data, charts.BarDatum{
			Label: row.FullName,
			Value: row.Metric(sel.Metric),
		})
	}

	return Highlights{Table: table, Chart: chart}, nil
}
