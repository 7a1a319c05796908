package dataset

import (
	"context"

	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain/games"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain/players"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain/teams"
)

// Tables holds the four source tables after derivation. Instances are
// immutable once loaded: the server stores exactly one per process and every
// computation reads from it without copying.
type Tables struct {
	Players          []players.Player
	PlayerStatistics []players.StatLine
	TeamStatistics   []teams.StatLine
	Games            []games.Game
}

// Loader produces a fully derived table set. Load is called exactly once per
// session; a failure is terminal and must be surfaced, never retried
// silently.
type Loader interface {
	Load(ctx context.Context) (*Tables, error)
}
