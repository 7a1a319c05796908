// Package views turns the loaded dataset plus a user selection into chart
// and table specifications, one builder per dashboard page. Builders are
// pure functions of the store contents and the selection; every interaction
// recomputes its view from scratch.
package views

import (
	"errors"
	"log/slog"
	"time"

	appgames "github.com/nazarDA/Nba-PlayerAnalytics/internal/app/games"
	appplayers "github.com/nazarDA/Nba-PlayerAnalytics/internal/app/players"
	appteams "github.com/nazarDA/Nba-PlayerAnalytics/internal/app/teams"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain/players"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/metrics"
)

// View names, used for logging and metric attributes.
const (
	ViewOverview    = "overview"
	ViewComparison  = "comparison"
	ViewConsistency = "consistency"
	ViewHighlights  = "highlights"
	ViewRadar       = "radar"
	ViewTeam        = "team"
	ViewMeta        = "meta"
)

// ErrBadSelection indicates a selection that cannot drive the requested
// view, such as a comparison with fewer than two players.
var ErrBadSelection = errors.New("invalid selection for view")

// Store supplies the raw statistic rows the builders aggregate over.
type Store interface {
	ListPlayerStats() []players.StatLine
}

// Service builds view payloads from the loaded dataset.
type Service struct {
	store    Store
	players  *appplayers.Service
	teams    *appteams.Service
	games    *appgames.Service
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// NewService constructs a view Service over the app-layer services.
func NewService(store Store, playerSvc *appplayers.Service, teamSvc *appteams.Service, gameSvc *appgames.Service, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		store:    store,
		players:  playerSvc,
		teams:    teamSvc,
		games:    gameSvc,
		logger:   logger,
		recorder: recorder,
	}
}

func (s *Service) observe(view string, start time.Time, err error) {
	if s.recorder != nil {
		s.recorder.RecordViewComputation(view, time.Since(start), err)
	}
}
