package server

import (
	"context"
	"log/slog"
	"net/http"

	appgames "github.com/nazarDA/Nba-PlayerAnalytics/internal/app/games"
	appplayers "github.com/nazarDA/Nba-PlayerAnalytics/internal/app/players"
	appteams "github.com/nazarDA/Nba-PlayerAnalytics/internal/app/teams"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/config"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/dataset"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/dataset/fixture"
	httpserver "github.com/nazarDA/Nba-PlayerAnalytics/internal/http"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/http/handlers"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/http/middleware"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/logging"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/metrics"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/store"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/views"
)

var metricsSetup = metrics.Setup

// Server owns the loaded dataset, the view pipeline, and both listeners.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.Store
	loader        dataset.Loader
	viewsService  *views.Service
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with the loader selected by configuration.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithLoader(cfg, logger, nil, nil)
}

func newServerWithLoader(cfg config.Config, logger *slog.Logger, loader dataset.Loader, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if loader == nil {
		loader = buildLoader(cfg, logger, recorder)
	}

	dataStore := store.New()
	playerSvc := appplayers.NewService(dataStore)
	teamSvc := appteams.NewService(dataStore)
	gameSvc := appgames.NewService(dataStore)
	viewSvc := views.NewService(dataStore, playerSvc, teamSvc, gameSvc, logger, recorder)

	handler := handlers.NewHandler(viewSvc, logger, dataStore.Loaded)
	router := httpserver.NewRouter(handler)
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         dataStore,
		loader:        loader,
		viewsService:  viewSvc,
		httpServer:    netHTTPServer{srv: srv},
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

func buildLoader(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) dataset.Loader {
	if cfg.Source == config.SourceFixture {
		return fixture.New()
	}
	return dataset.NewCSVLoader(cfg.DataDir, logger, recorder)
}

// Run loads the dataset, starts the listeners, and waits for context
// cancellation to shut down gracefully. A failed load is terminal: it is
// logged, the stop function fires, and the server never starts serving
// ready traffic.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()

	if err := s.loadDataset(ctx); err != nil {
		logging.Error(s.logger, "dataset load failed, shutting down", err)
		if stop != nil {
			stop()
		}
		s.gracefulShutdown()
		return
	}

	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) loadDataset(ctx context.Context) error {
	loadCtx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()

	tables, err := s.loader.Load(loadCtx)
	if err != nil {
		return err
	}
	s.store.SetTables(tables)

	logging.Info(s.logger, "dataset loaded",
		"players", len(tables.Players),
		"playerStats", len(tables.PlayerStatistics),
		"teamStats", len(tables.TeamStatistics),
		"games", len(tables.Games),
	)
	return nil
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
