package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain"
)

const (
	playersCSV = "personId,firstName,lastName\n1,Ava,Stone\n2,Noah,Pierce\n"

	playerStatsHeader = "personId,gameId,gameDate,points,reboundsTotal,assists,blocks,steals," +
		"fieldGoalsMade,threePointersMade,freeThrowsMade," +
		"fieldGoalsPercentage,threePointersPercentage,freeThrowsPercentage\n"

	teamStatsCSV = "teamName,gameId,gameDate,points,pointsInPaint,pointsSecondChance,fastBreakPoints\n" +
		"Celtics,g1,2016-01-12,98,40,10,11\n"

	gamesCSV = "gameId\ng1\ng2\n"
)

func writeDataDir(t *testing.T, playerStats string) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		FilePlayers:          playersCSV,
		FilePlayerStatistics: playerStats,
		FileTeamStatistics:   teamStatsCSV,
		FileGames:            gamesCSV,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return dir
}

func TestCSVLoaderLoadsAndDerives(t *testing.T) {
	stats := playerStatsHeader +
		"1,g1,2016-01-12,31,9,6,0,2,12,3,4,0.55,0.38,0.9\n" +
		"2,g1,2016-01-12,18,11,2,3,0,8,0,2,0.47,0,0.67\n"
	dir := writeDataDir(t, stats)

	tables, err := NewCSVLoader(dir, nil, nil).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tables.Players) != 2 || len(tables.PlayerStatistics) != 2 {
		t.Fatalf("unexpected table sizes %d/%d", len(tables.Players), len(tables.PlayerStatistics))
	}
	row := tables.PlayerStatistics[0]
	if row.FullName != "Ava Stone" || row.Season != 2016 || row.Points != 31 {
		t.Fatalf("unexpected derived row %+v", row)
	}
	if len(tables.TeamStatistics) != 1 || tables.TeamStatistics[0].Season != 2016 {
		t.Fatalf("unexpected team rows %+v", tables.TeamStatistics)
	}
	if len(tables.Games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(tables.Games))
	}
}

func TestCSVLoaderMissingFile(t *testing.T) {
	dir := writeDataDir(t, playerStatsHeader)
	if err := os.Remove(filepath.Join(dir, FileGames)); err != nil {
		t.Fatalf("removing file: %v", err)
	}

	_, err := NewCSVLoader(dir, nil, nil).Load(context.Background())
	if err == nil {
		t.Fatalf("expected load to fail")
	}
	if _, ok := domain.AsDataUnavailable(err); !ok {
		t.Fatalf("expected DataUnavailableError, got %v", err)
	}
}

func TestCSVLoaderMissingColumn(t *testing.T) {
	dir := writeDataDir(t, playerStatsHeader)
	// Drop the points column from the player statistics schema.
	broken := "personId,gameId,gameDate\n1,g1,2016-01-12\n"
	if err := os.WriteFile(filepath.Join(dir, FilePlayerStatistics), []byte(broken), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	_, err := NewCSVLoader(dir, nil, nil).Load(context.Background())
	duErr, ok := domain.AsDataUnavailable(err)
	if !ok {
		t.Fatalf("expected DataUnavailableError, got %v", err)
	}
	if duErr.File != FilePlayerStatistics {
		t.Fatalf("expected failure on %s, got %s", FilePlayerStatistics, duErr.File)
	}
}

func TestCSVLoaderDropsMalformedRows(t *testing.T) {
	stats := playerStatsHeader +
		"1,g1,2016-01-12,31,9,6,0,2,12,3,4,0.55,0.38,0.9\n" +
		"not-a-number,g2,2016-01-13,10,1,1,0,0,4,0,2,0.4,0,1\n" +
		"2,g3,2016-01-14,abc,1,1,0,0,4,0,2,0.4,0,1\n"
	dir := writeDataDir(t, stats)

	tables, err := NewCSVLoader(dir, nil, nil).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tables.PlayerStatistics) != 1 {
		t.Fatalf("expected malformed rows dropped, got %d rows", len(tables.PlayerStatistics))
	}
}

func TestCSVLoaderKeepsRowsWithBadDates(t *testing.T) {
	stats := playerStatsHeader +
		"1,g1,garbage,31,9,6,0,2,12,3,4,0.55,0.38,0.9\n"
	dir := writeDataDir(t, stats)

	tables, err := NewCSVLoader(dir, nil, nil).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tables.PlayerStatistics) != 1 {
		t.Fatalf("expected row retained, got %d rows", len(tables.PlayerStatistics))
	}
	if tables.PlayerStatistics[0].HasSeason() {
		t.Fatalf("expected no season for unparseable date")
	}
}

func TestCSVLoaderEmptyMetricCellsReadAsZero(t *testing.T) {
	stats := playerStatsHeader +
		"1,g1,2016-01-12,31,9,6,0,2,12,3,4,,,\n"
	dir := writeDataDir(t, stats)

	tables, err := NewCSVLoader(dir, nil, nil).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row := tables.PlayerStatistics[0]
	if row.FieldGoalsPercentage != 0 || row.FreeThrowsPercentage != 0 {
		t.Fatalf("expected empty cells to read as zero, got %+v", row)
	}
}
