package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/views"
)

// paramAllSeasons is the query value selecting the unfiltered season scope.
// An absent season parameter means the same thing.
const paramAllSeasons = "All Seasons"

// Handler wires HTTP routes to the view service.
type Handler struct {
	views   *views.Service
	logger  *slog.Logger
	readyFn func() bool
}

// NewHandler constructs a Handler.
func NewHandler(viewSvc *views.Service, logger *slog.Logger, readyFn func() bool) *Handler {
	return &Handler{
		views:   viewSvc,
		logger:  logger,
		readyFn: readyFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic: the service is ready once the dataset
// load has completed. A failed load never becomes ready.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.readyFn == nil || h.readyFn() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	writeError(w, r, http.StatusServiceUnavailable, "dataset not loaded", h.logger)
}

// Meta returns the selector data for the page chrome.
func (h *Handler) Meta(w http.ResponseWriter, r *http.Request) {
	if !h.requireGet(w, r) {
		return
	}
	season, err := parseSeason(r.URL.Query().Get("season"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	view, err := h.views.Meta(season)
	if err != nil {
		h.writeViewError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view, h.logger)
}

// Overview returns the league summary view.
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	if !h.requireGet(w, r) {
		return
	}
	view, err := h.views.Overview()
	if err != nil {
		h.writeViewError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view, h.logger)
}

// Comparison returns the head-to-head view for two players.
func (h *Handler) Comparison(w http.ResponseWriter, r *http.Request) {
	if !h.requireGet(w, r) {
		return
	}

	q := r.URL.Query()
	sel, err := selectionFromQuery(q)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	p1, p2 := q.Get("player1"), q.Get("player2")
	if p1 == "" || p2 == "" {
		writeError(w, r, http.StatusBadRequest, "player1 and player2 are required", h.logger)
		return
	}
	sel.Players = []string{p1, p2}
	if sel.Metric == "" {
		sel.Metric = domain.MetricPoints
	}

	view, err := h.views.Comparison(sel)
	if err != nil {
		h.writeViewError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view, h.logger)
}

// Consistency returns the stddev heatmap view.
func (h *Handler) Consistency(w http.ResponseWriter, r *http.Request) {
	if !h.requireGet(w, r) {
		return
	}

	sel := domain.Selection{Season: domain.AllSeasons}
	if raw := r.URL.Query().Get("players"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				sel.Players = append(sel.Players, name)
			}
		}
	}

	view, err := h.views.Consistency(sel)
	if err != nil {
		h.writeViewError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view, h.logger)
}

// Highlights returns the top single-game performances view.
func (h *Handler) Highlights(w http.ResponseWriter, r *http.Request) {
	if !h.requireGet(w, r) {
		return
	}

	q := r.URL.Query()
	sel, err := selectionFromQuery(q)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if sel.Metric == "" {
		sel.Metric = domain.MetricPoints
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			writeError(w, r, http.StatusBadRequest, "limit must be a positive integer", h.logger)
			return
		}
		sel.Limit = limit
	}

	view, err := h.views.Highlights(sel)
	if err != nil {
		h.writeViewError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view, h.logger)
}

// Radar returns the normalized profile view for one or two players.
func (h *Handler) Radar(w http.ResponseWriter, r *http.Request) {
	if !h.requireGet(w, r) {
		return
	}

	q := r.URL.Query()
	sel, err := selectionFromQuery(q)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if p1 := q.Get("player1"); p1 != "" {
		sel.Players = append(sel.Players, p1)
	}
	if p2 := q.Get("player2"); p2 != "" {
		sel.Players = append(sel.Players, p2)
	}
	if len(sel.Players) == 0 {
		writeError(w, r, http.StatusBadRequest, "player1 is required", h.logger)
		return
	}

	view, err := h.views.Radar(sel)
	if err != nil {
		h.writeViewError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view, h.logger)
}

// Team returns the team statistics view.
func (h *Handler) Team(w http.ResponseWriter, r *http.Request) {
	if !h.requireGet(w, r) {
		return
	}

	q := r.URL.Query()
	sel, err := selectionFromQuery(q)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	sel.Team = q.Get("team")
	if sel.Team == "" {
		writeError(w, r, http.StatusBadRequest, "team is required", h.logger)
		return
	}

	view, err := h.views.TeamStats(sel)
	if err != nil {
		h.writeViewError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view, h.logger)
}

func (h *Handler) requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return false
	}
	return true
}

// writeViewError maps view/domain errors to HTTP status codes. Ambiguous
// names and empty scopes are user-visible states, not server faults.
func (h *Handler) writeViewError(w http.ResponseWriter, r *http.Request, err error) {
	logger := loggerFromContext(r, h.logger)

	switch {
	case errors.Is(err, views.ErrBadSelection):
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
	case errors.Is(err, domain.ErrPlayerNotFound), errors.Is(err, domain.ErrTeamNotFound):
		writeError(w, r, http.StatusNotFound, err.Error(), logger)
	case errors.Is(err, domain.ErrNoGamesInScope):
		writeError(w, r, http.StatusNotFound, "no data for this selection", logger)
	default:
		if _, ok := domain.AsAmbiguousName(err); ok {
			writeError(w, r, http.StatusConflict, err.Error(), logger)
			return
		}
		if logger != nil {
			logger.Error("view computation failed", "error", err)
		}
		writeError(w, r, http.StatusInternalServerError, "internal error", logger)
	}
}

// parseSeason interprets the season query value: absent or "All Seasons"
// means no season filter.
func parseSeason(raw string) (int, error) {
	if raw == "" || raw == paramAllSeasons {
		return domain.AllSeasons, nil
	}
	season, err := strconv.Atoi(raw)
	if err != nil || season <= 0 {
		return 0, fmt.Errorf("invalid season %q", raw)
	}
	return season, nil
}

func selectionFromQuery(q interface{ Get(string) string }) (domain.Selection, error) {
	sel := domain.Selection{Season: domain.AllSeasons}

	season, err := parseSeason(q.Get("season"))
	if err != nil {
		return domain.Selection{}, err
	}
	sel.Season = season

	if raw := q.Get("metric"); raw != "" {
		metric, err := domain.ParseMetric(raw)
		if err != nil {
			return domain.Selection{}, err
		}
		sel.Metric = metric
	}

	return sel, nil
}
