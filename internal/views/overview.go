package views

import (
	"sort"
	"time"

	"github.com/nazarDA/Nba-PlayerAnalytics/internal/charts"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain"
	domainplayers "github.com/nazarDA/Nba-PlayerAnalytics/internal/domain/players"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/stats"
)

const topScorerCount = 5

// Overview is the league summary page: headline KPIs, the all-time top
// scorers, and the per-season scoring trend.
type Overview struct {
	TotalGames   int               `json:"totalGames"`
	LeagueAvgPPG float64           `json:"leagueAvgPpg"`
	TopScorers   charts.Bar        `json:"topScorers"`
	PPGTrend     charts.SeasonLine `json:"ppgTrend"`
}

// Overview builds the league summary. The league average divides total
// points by the distinct game count from the games table; an empty games
// table surfaces ErrNoGamesInScope instead of a misleading zero.
func (s *Service) Overview() (Overview, error) {
	start := time.Now()
	view, err := s.buildOverview()
	s.observe(ViewOverview, start, err)
	return view, err
}

func (s *Service) buildOverview() (Overview, error) {
	rows := s.store.ListPlayerStats()
	totalGames := s.games.Count()

	avg, err := stats.LeagueAverage(rows, domain.MetricPoints, totalGames)
	if err != nil {
		return Overview{}, err
	}

	return Overview{
		TotalGames:   totalGames,
		LeagueAvgPPG: avg,
		TopScorers:   s.topScorers(rows),
		PPGTrend: charts.SeasonLine{
			Title:  "Average PPG per Season",
			YLabel: "avg_ppg",
			Points: toSeasonPoints(stats.PerSeasonRatio(rows, domain.MetricPoints)),
		},
	}, nil
}

// topScorers ranks players by career point total. Players whose ID resolves
// to no record or to an empty name never make the list, the same way the
// source data's name join drops them from display.
func (s *Service) topScorers(rows []domainplayers.StatLine) charts.Bar {
	totals := make(map[int]float64)
	for _, row := range rows {
		totals[row.PlayerID] += row.Points
	}

	names := make(map[int]string)
	for _, p := range s.players.Players() {
		names[p.ID] = p.FullName
	}

	type scorer struct {
		id    int
		total float64
	}
	ranked := make([]scorer, 0, len(totals))
	for id, total := range totals {
		if names[id] == "" {
			continue
		}
		ranked = append(ranked, scorer{id: id, total: total})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].total != ranked[j].total {
			return ranked[i].total > ranked[j].total
		}
		return ranked[i].id < ranked[j].id
	})

	if len(ranked) > topScorerCount {
		ranked = ranked[:topScorerCount]
	}

	bar := charts.Bar{
		Title:  "Top 5 All-Time Scorers",
		XLabel: "Total Points",
	}
	for _, sc := range ranked {
		bar.Data = append(bar.Data, charts.BarDatum{Label: names[sc.id], Value: sc.total})
	}
	return bar
}

func toSeasonPoints(values []stats.SeasonValue) []charts.SeasonPoint {
	points := make([]charts.SeasonPoint, 0, len(values))
	for _, v := range values {
		points = append(points, charts.SeasonPoint{Season: v.Season, Value: v.Value})
	}
	return points
}
