package views

import (
	"errors"
	"testing"

	appgames "github.com/nazarDA/Nba-PlayerAnalytics/internal/app/games"
	appplayers "github.com/nazarDA/Nba-PlayerAnalytics/internal/app/players"
	appteams "github.com/nazarDA/Nba-PlayerAnalytics/internal/app/teams"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/dataset"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/metrics"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/store"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/testutil"
)

func newTestService(t *testing.T, tables *dataset.Tables) *Service {
	t.Helper()
	st := store.New()
	st.SetTables(tables)
	logger, _ := testutil.NewBufferLogger()
	return NewService(
		st,
		appplayers.NewService(st),
		appteams.NewService(st),
		appgames.NewService(st),
		logger,
		metrics.NewRecorder(),
	)
}

func TestOverview(t *testing.T) {
	svc := newTestService(t, testutil.Tables())

	view, err := svc.Overview()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if view.TotalGames != 4 {
		t.Fatalf("expected 4 games, got %d", view.TotalGames)
	}
	// 70 points across 4 games.
	if view.LeagueAvgPPG != 17.5 {
		t.Fatalf("expected league average 17.5, got %v", view.LeagueAvgPPG)
	}

	if len(view.TopScorers.Data) != 2 {
		t.Fatalf("expected 2 scorers, got %+v", view.TopScorers.Data)
	}
	if view.TopScorers.Data[0].Label != "Noah Pierce" || view.TopScorers.Data[0].Value != 40 {
		t.Fatalf("unexpected top scorer: %+v", view.TopScorers.Data[0])
	}
	if view.TopScorers.Data[1].Label != "Ava Stone" || view.TopScorers.Data[1].Value != 30 {
		t.Fatalf("unexpected second scorer: %+v", view.TopScorers.Data[1])
	}

	if len(view.PPGTrend.Points) != 4 {
		t.Fatalf("expected 4 trend points, got %+v", view.PPGTrend.Points)
	}
	if view.PPGTrend.Points[0].Season != 2015 || view.PPGTrend.Points[0].Value != 10 {
		t.Fatalf("unexpected first trend point: %+v", view.PPGTrend.Points[0])
	}
}

func TestOverviewNoGames(t *testing.T) {
	tables := testutil.Tables()
	tables.Games = nil
	svc := newTestService(t, tables)

	if _, err := svc.Overview(); !errors.Is(err, domain.ErrNoGamesInScope) {
		t.Fatalf("expected ErrNoGamesInScope, got %v", err)
	}
}

func TestComparison(t *testing.T) {
	svc := newTestService(t, testutil.Tables())

	view, err := svc.Comparison(domain.Selection{
		Season:  domain.AllSeasons,
		Players: []string{"Ava Stone", "Noah Pierce"},
		Metric:  domain.MetricPoints,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(view.Totals.Data) != 2 {
		t.Fatalf("expected 2 totals, got %+v", view.Totals.Data)
	}
	if view.Totals.Data[0].Label != "Ava Stone" || view.Totals.Data[0].Value != 30 {
		t.Fatalf("unexpected first total: %+v", view.Totals.Data[0])
	}
	if view.Totals.Data[1].Label != "Noah Pierce" || view.Totals.Data[1].Value != 40 {
		t.Fatalf("unexpected second total: %+v", view.Totals.Data[1])
	}
	if len(view.Trend.Series) != 2 || len(view.Trend.Series[0].Points) != 2 {
		t.Fatalf("unexpected trend: %+v", view.Trend)
	}
	if view.Trend.Series[0].Points[0].Date != "2015-03-01" {
		t.Fatalf("unexpected first trend date: %+v", view.Trend.Series[0].Points[0])
	}
}

func TestComparisonSeasonScope(t *testing.T) {
	svc := newTestService(t, testutil.Tables())

	view, err := svc.Comparison(domain.Selection{
		Season:  2015,
		Players: []string{"Ava Stone", "Noah Pierce"},
		Metric:  domain.MetricPoints,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if view.Totals.Data[0].Value != 10 {
		t.Fatalf("expected 10 points for Ava Stone in 2015, got %v", view.Totals.Data[0].Value)
	}
	if view.Totals.Data[1].Value != 0 {
		t.Fatalf("expected 0 points for Noah Pierce in 2015, got %v", view.Totals.Data[1].Value)
	}
}

func TestComparisonNeedsTwoDistinctPlayers(t *testing.T) {
	svc := newTestService(t, testutil.Tables())

	cases := [][]string{
		nil,
		{"Ava Stone"},
		{"Ava Stone", "Ava Stone"},
		{"Ava Stone", "Noah Pierce", "Ava Stone"},
	}
	for _, players := range cases {
		_, err := svc.Comparison(domain.Selection{Players: players, Metric: domain.MetricPoints})
		if !errors.Is(err, ErrBadSelection) {
			t.Fatalf("players %v: expected ErrBadSelection, got %v", players, err)
		}
	}
}

func TestComparisonUnknownPlayer(t *testing.T) {
	svc := newTestService(t, testutil.Tables())

	_, err := svc.Comparison(domain.Selection{
		Players: []string{"Ava Stone", "Nobody Here"},
		Metric:  domain.MetricPoints,
	})
	if !errors.Is(err, domain.ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}

func TestComparisonAmbiguousName(t *testing.T) {
	tables := testutil.Tables()
	tables.Players = append(tables.Players, tables.Players[0])
	tables.Players[len(tables.Players)-1].ID = 9
	dataset.Derive(tables)
	svc := newTestService(t, tables)

	_, err := svc.Comparison(domain.Selection{
		Players: []string{"Ava Stone", "Noah Pierce"},
		Metric:  domain.MetricPoints,
	})
	var ambiguous *domain.AmbiguousNameError
	if !errors.As(err, &ambiguous) {
		t.Fatalf("expected AmbiguousNameError, got %v", err)
	}
	if len(ambiguous.IDs) != 2 {
		t.Fatalf("expected 2 candidate ids, got %+v", ambiguous.IDs)
	}
}

func TestConsistency(t *testing.T) {
	svc := newTestService(t, testutil.Tables())

	view, err := svc.Consistency(domain.Selection{Players: []string{"Ava Stone"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	heatmap := view.Heatmap
	if len(heatmap.Players) != 1 || heatmap.Players[0] != "Ava Stone" {
		t.Fatalf("unexpected players: %+v", heatmap.Players)
	}
	// One row per season means every cell is a NaN marker, rendered as null.
	if len(heatmap.Cells) != 2 {
		t.Fatalf("expected 2 cells, got %+v", heatmap.Cells)
	}
	for _, cell := range heatmap.Cells {
		if cell.Value != nil {
			t.Fatalf("single-game seasons should have no value, got %+v", cell)
		}
	}
	if heatmap.Cells[0].Season != 2015 || heatmap.Cells[1].Season != 2018 {
		t.Fatalf("cells out of order: %+v", heatmap.Cells)
	}
}

func TestConsistencyDefaultsToSelectableNames(t *testing.T) {
	svc := newTestService(t, testutil.Tables())

	view, err := svc.Consistency(domain.Selection{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(view.Heatmap.Players) != 2 {
		t.Fatalf("expected both players by default, got %+v", view.Heatmap.Players)
	}
}

func TestHighlights(t *testing.T) {
	svc := newTestService(t, testutil.Tables())

	view, err := svc.Highlights(domain.Selection{Metric: domain.MetricPoints, Limit: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := view.Table.Rows
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %+v", rows)
	}
	if rows[0].Rank != 1 || rows[0].Player != "Noah Pierce" || rows[0].Value != 25 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[0].Date != "2021-06-04" {
		t.Fatalf("unexpected date: %+v", rows[0])
	}
	if rows[1].Player != "Ava Stone" || rows[1].Value != 20 {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
	if len(view.Chart.Data) != 2 {
		t.Fatalf("chart should mirror table, got %+v", view.Chart.Data)
	}
}

func TestHighlightsDefaultLimit(t *testing.T) {
	svc := newTestService(t, testutil.Tables())

	view, err := svc.Highlights(domain.Selection{Metric: domain.MetricPoints})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Only 4 rows exist, fewer than the default of 5.
	if len(view.Table.Rows) != 4 {
		t.Fatalf("expected all 4 rows, got %d", len(view.Table.Rows))
	}
}

func TestRadarTwoPlayers(t *testing.T) {
	svc := newTestService(t, testutil.Tables())

	view, err := svc.Radar(domain.Selection{
		Season:  domain.AllSeasons,
		Players: []string{"Ava Stone", "Noah Pierce"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	chart := view.Chart
	if len(chart.Axes) != 8 || chart.Axes[0] != "Pts" {
		t.Fatalf("unexpected axes: %+v", chart.Axes)
	}
	if len(chart.Series) != 2 {
		t.Fatalf("expected 2 series, got %+v", chart.Series)
	}

	// Ava averages 15 ppg, Noah 20, so the points axis normalizes to 0 and 1.
	if chart.Series[0].Values[0] != 0 || chart.Series[1].Values[0] != 1 {
		t.Fatalf("unexpected points axis: %v vs %v", chart.Series[0].Values[0], chart.Series[1].Values[0])
	}

	// Neither player records percentages, so those axes sit at the midpoint.
	last := len(chart.Axes) - 1
	if chart.Series[0].Values[last] != 0.5 || chart.Series[1].Values[last] != 0.5 {
		t.Fatalf("degenerate axis should be 0.5: %+v", chart.Series)
	}
}

func TestRadarSinglePlayerSitsAtMidpoint(t *testing.T) {
	svc := newTestService(t, testutil.Tables())

	view, err := svc.Radar(domain.Selection{
		Season:  domain.AllSeasons,
		Players: []string{"Ava Stone"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, v := range view.Chart.Series[0].Values {
		if v != 0.5 {
			t.Fatalf("single-player axes should all be 0.5, got %+v", view.Chart.Series[0].Values)
		}
	}
}

func TestRadarSelectionBounds(t *testing.T) {
	svc := newTestService(t, testutil.Tables())

	for _, players := range [][]string{nil, {"A", "B", "C"}} {
		_, err := svc.Radar(domain.Selection{Players: players})
		if !errors.Is(err, ErrBadSelection) {
			t.Fatalf("players %v: expected ErrBadSelection, got %v", players, err)
		}
	}
}

func TestTeamStats(t *testing.T) {
	svc := newTestService(t, testutil.Tables())

	view, err := svc.TeamStats(domain.Selection{Team: "Celtics", Season: 2015})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	points := view.PointsPerGame.Series[0].Points
	if len(points) != 1 || points[0].Value != 100 || points[0].Date != "2015-03-01" {
		t.Fatalf("unexpected points line: %+v", points)
	}
	if len(view.Performance.Series) != 3 {
		t.Fatalf("expected 3 performance series, got %+v", view.Performance.Series)
	}
	if view.Performance.Series[0].Name != "pointsInPaint" || view.Performance.Series[0].Points[0].Value != 40 {
		t.Fatalf("unexpected paint series: %+v", view.Performance.Series[0])
	}
}

func TestTeamStatsUnknownTeam(t *testing.T) {
	svc := newTestService(t, testutil.Tables())

	_, err := svc.TeamStats(domain.Selection{Team: "Bulls", Season: domain.AllSeasons})
	if !errors.Is(err, domain.ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}

func TestTeamStatsEmptySeason(t *testing.T) {
	svc := newTestService(t, testutil.Tables())

	view, err := svc.TeamStats(domain.Selection{Team: "Celtics", Season: 2019})
	if err != nil {
		t.Fatalf("known team with no rows in season should not error: %v", err)
	}
	if len(view.PointsPerGame.Series[0].Points) != 0 {
		t.Fatalf("expected empty chart, got %+v", view.PointsPerGame.Series[0].Points)
	}
}

func TestMeta(t *testing.T) {
	svc := newTestService(t, testutil.Tables())

	view, err := svc.Meta(domain.AllSeasons)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantSeasons := []int{2015, 2018, 2019, 2021}
	if len(view.Seasons) != len(wantSeasons) {
		t.Fatalf("unexpected seasons: %+v", view.Seasons)
	}
	for i, s := range wantSeasons {
		if view.Seasons[i] != s {
			t.Fatalf("unexpected seasons: %+v", view.Seasons)
		}
	}
	if len(view.Players) != 2 || view.Players[0] != "Ava Stone" {
		t.Fatalf("unexpected players: %+v", view.Players)
	}
	if len(view.Teams) != 2 || view.Teams[0] != "Celtics" {
		t.Fatalf("unexpected teams: %+v", view.Teams)
	}
	if len(view.Metrics) != 8 || view.Metrics[0] != "points" {
		t.Fatalf("unexpected metrics: %+v", view.Metrics)
	}
}

func TestMetaSeasonScopedPlayers(t *testing.T) {
	svc := newTestService(t, testutil.Tables())

	view, err := svc.Meta(2019)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Players) != 1 || view.Players[0] != "Noah Pierce" {
		t.Fatalf("expected only Noah Pierce for 2019, got %+v", view.Players)
	}
}
