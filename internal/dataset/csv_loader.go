package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain/games"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain/players"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain/teams"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/logging"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/metrics"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/timeutil"
)

// Source file names, fixed by the dataset.
const (
	FilePlayers          = "Players.csv"
	FilePlayerStatistics = "PlayerStatistics.csv"
	FileTeamStatistics   = "TeamStatistics.csv"
	FileGames            = "Games.csv"
)

// CSVLoader reads the four source files from a base directory. A missing
// file or missing required column is a hard DataUnavailableError; malformed
// rows are soft failures, counted and dropped.
type CSVLoader struct {
	baseDir  string
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// NewCSVLoader constructs a loader rooted at baseDir.
func NewCSVLoader(baseDir string, logger *slog.Logger, recorder *metrics.Recorder) *CSVLoader {
	return &CSVLoader{baseDir: baseDir, logger: logger, recorder: recorder}
}

// Load reads and derives all four tables.
func (l *CSVLoader) Load(ctx context.Context) (*Tables, error) {
	tables := &Tables{}

	if err := l.loadTable(ctx, FilePlayers, playerColumns, func(row *rowReader) {
		id, ok := row.intCol(colPersonID)
		if !ok {
			row.drop()
			return
		}
		tables.Players = append(tables.Players, players.Player{
			ID:        id,
			FirstName: row.strCol(colFirstName),
			LastName:  row.strCol(colLastName),
		})
	}); err != nil {
		return nil, err
	}

	if err := l.loadTable(ctx, FilePlayerStatistics, playerStatColumns, func(row *rowReader) {
		id, ok := row.intCol(colPersonID)
		if !ok {
			row.drop()
			return
		}
		line := players.StatLine{
			PlayerID:                id,
			GameID:                  row.strCol(colGameID),
			Points:                  row.floatCol(colPoints),
			ReboundsTotal:           row.floatCol(colReboundsTotal),
			Assists:                 row.floatCol(colAssists),
			Blocks:                  row.floatCol(colBlocks),
			Steals:                  row.floatCol(colSteals),
			FieldGoalsMade:          row.floatCol(colFieldGoalsMade),
			ThreePointersMade:       row.floatCol(colThreePointersMade),
			FreeThrowsMade:          row.floatCol(colFreeThrowsMade),
			FieldGoalsPercentage:    row.floatCol(colFieldGoalsPct),
			ThreePointersPercentage: row.floatCol(colThreePointersPct),
			FreeThrowsPercentage:    row.floatCol(colFreeThrowsPct),
		}
		if row.bad {
			row.drop()
			return
		}
		// Unparseable dates are a soft failure: the row stays, without a
		// season, and season-dependent views skip it.
		if t, ok := timeutil.ParseGameDate(row.strCol(colGameDate)); ok {
			line.GameDate = t
		}
		tables.PlayerStatistics = append(tables.PlayerStatistics, line)
	}); err != nil {
		return nil, err
	}

	if err := l.loadTable(ctx, FileTeamStatistics, teamStatColumns, func(row *rowReader) {
		line := teams.StatLine{
			TeamName:           row.strCol(colTeamName),
			GameID:             row.strCol(colGameID),
			Points:             row.floatCol(colPoints),
			PointsInPaint:      row.floatCol(colPointsInPaint),
			PointsSecondChance: row.floatCol(colPointsSecondChance),
			FastBreakPoints:    row.floatCol(colFastBreakPoints),
		}
		if row.bad || line.TeamName == "" {
			row.drop()
			return
		}
		if t, ok := timeutil.ParseGameDate(row.strCol(colGameDate)); ok {
			line.GameDate = t
		}
		tables.TeamStatistics = append(tables.TeamStatistics, line)
	}); err != nil {
		return nil, err
	}

	if err := l.loadTable(ctx, FileGames, gameColumns, func(row *rowReader) {
		id := row.strCol(colGameID)
		if id == "" {
			row.drop()
			return
		}
		tables.Games = append(tables.Games, games.Game{ID: id})
	}); err != nil {
		return nil, err
	}

	Derive(tables)
	return tables, nil
}

// Column names per table. Every listed column must be present in the file
// header; absence is a schema mismatch and fails the load.
const (
	colPersonID           = "personId"
	colFirstName          = "firstName"
	colLastName           = "lastName"
	colGameID             = "gameId"
	colGameDate           = "gameDate"
	colTeamName           = "teamName"
	colPoints             = "points"
	colReboundsTotal      = "reboundsTotal"
	colAssists            = "assists"
	colBlocks             = "blocks"
	colSteals             = "steals"
	colFieldGoalsMade     = "fieldGoalsMade"
	colThreePointersMade  = "threePointersMade"
	colFreeThrowsMade     = "freeThrowsMade"
	colFieldGoalsPct      = "fieldGoalsPercentage"
	colThreePointersPct   = "threePointersPercentage"
	colFreeThrowsPct      = "freeThrowsPercentage"
	colPointsInPaint      = "pointsInPaint"
	colPointsSecondChance = "pointsSecondChance"
	colFastBreakPoints    = "fastBreakPoints"
)

var (
	playerColumns = []string{colPersonID, colFirstName, colLastName}
	playerStatColumns = []string{
		colPersonID, colGameID, colGameDate,
		colPoints, colReboundsTotal, colAssists, colBlocks, colSteals,
		colFieldGoalsMade, colThreePointersMade, colFreeThrowsMade,
		colFieldGoalsPct, colThreePointersPct, colFreeThrowsPct,
	}
	teamStatColumns = []string{
		colTeamName, colGameID, colGameDate,
		colPoints, colPointsInPaint, colPointsSecondChance, colFastBreakPoints,
	}
	gameColumns = []string{colGameID}
)

func (l *CSVLoader) loadTable(ctx context.Context, file string, required []string, decode func(*rowReader)) error {
	start := time.Now()
	rows, dropped, err := l.readFile(ctx, file, required, decode)
	if l.recorder != nil {
		l.recorder.RecordTableLoad(file, rows, dropped, time.Since(start), err)
	}
	if err != nil {
		logging.Error(l.logger, "table load failed", err, logging.FieldTable, file)
		return err
	}
	logging.Info(l.logger, "table loaded",
		logging.FieldTable, file,
		logging.FieldRows, rows,
		logging.FieldDropped, dropped,
	)
	return nil
}

func (l *CSVLoader) readFile(ctx context.Context, file string, required []string, decode func(*rowReader)) (rows, dropped int, err error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}

	path := filepath.Join(l.baseDir, file)
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, &domain.DataUnavailableError{File: file, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return 0, 0, &domain.DataUnavailableError{File: file, Err: fmt.Errorf("reading header: %w", err)}
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, name := range required {
		if _, ok := index[name]; !ok {
			return 0, 0, &domain.DataUnavailableError{File: file, Err: fmt.Errorf("missing column %q", name)}
		}
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Structurally broken record (bare quote etc.); soft drop.
			dropped++
			continue
		}

		row := &rowReader{record: record, index: index}
		decode(row)
		if row.dropped {
			dropped++
			continue
		}
		rows++
	}

	return rows, dropped, nil
}

// rowReader resolves named columns against one CSV record and tracks
// numeric-parse failures so the caller can drop the row as a unit.
type rowReader struct {
	record  []string
	index   map[string]int
	bad     bool
	dropped bool
}

func (r *rowReader) drop() { r.dropped = true }

func (r *rowReader) strCol(name string) string {
	i, ok := r.index[name]
	if !ok || i >= len(r.record) {
		return ""
	}
	return r.record[i]
}

func (r *rowReader) intCol(name string) (int, bool) {
	raw := r.strCol(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

// floatCol parses a numeric cell. Empty cells read as 0 (the dataset leaves
// many percentage cells blank); a non-empty cell that fails to parse marks
// the whole row bad.
func (r *rowReader) floatCol(name string) float64 {
	raw := r.strCol(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		r.bad = true
		return 0
	}
	return v
}
