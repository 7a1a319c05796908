package views

import (
	"time"

	"github.com/nazarDA/Nba-PlayerAnalytics/internal/charts"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain"
	domainteams "github.com/nazarDA/Nba-PlayerAnalytics/internal/domain/teams"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/timeutil"
)

// TeamStats is the team page: a points-per-game line and an area overview of
// the scoring-type breakdown.
type TeamStats struct {
	Team          string      `json:"team"`
	Season        int         `json:"season"`
	PointsPerGame charts.Line `json:"pointsPerGame"`
	Performance   charts.Area `json:"performance"`
}

// TeamStats builds the team view. An unknown team surfaces ErrTeamNotFound;
// a known team with no rows in the season yields empty charts.
func (s *Service) TeamStats(sel domain.Selection) (TeamStats, error) {
	start := time.Now()
	view, err := s.buildTeamStats(sel)
	s.observe(ViewTeam, start, err)
	return view, err
}

func (s *Service) buildTeamStats(sel domain.Selection) (TeamStats, error) {
	log, err := s.teams.GameLog(sel.Team, sel.Season)
	if err != nil {
		return TeamStats{}, err
	}

	return TeamStats{
		Team:   sel.Team,
		Season: sel.Season,
		PointsPerGame: charts.Line{
			Title:  "Points per Game",
			YLabel: "points",
			Series: []charts.Series{{
				Name:   sel.Team,
				Points: teamPoints(log, func(l domainteams.StatLine) float64 { return l.Points }),
			}},
		},
		Performance: charts.Area{
			Title: "Overview Performance",
			Series: []charts.Series{
				{Name: "pointsInPaint", Points: teamPoints(log, func(l domainteams.StatLine) float64 { return l.PointsInPaint })},
				{Name: "pointsSecondChance", Points: teamPoints(log, func(l domainteams.StatLine) float64 { return l.PointsSecondChance })},
				{Name: "fastBreakPoints", Points: teamPoints(log, func(l domainteams.StatLine) float64 { return l.FastBreakPoints })},
			},
		},
	}, nil
}

func teamPoints(rows []domainteams.StatLine, value func(domainteams.StatLine) float64) []charts.LinePoint {
	var points []charts.LinePoint
	for _, row := range rows {
		if row.GameDate.IsZero() {
			continue
		}
		points = append(points, charts.LinePoint{
			Date:  timeutil.FormatDate(row.GameDate),
			Value: value(row),
		})
	}
	return points
}
