package http

import (
	nethttp "net/http"

	"github.com/nazarDA/Nba-PlayerAnalytics/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/api/meta", handler.Meta)
	mux.HandleFunc("/api/views/overview", handler.Overview)
	mux.HandleFunc("/api/views/comparison", handler.Comparison)
	mux.HandleFunc("/api/views/consistency", handler.Consistency)
	mux.HandleFunc("/api/views/highlights", handler.Highlights)
	mux.HandleFunc("/api/views/radar", handler.Radar)
	mux.HandleFunc("/api/views/team", handler.Team)
	return mux
}
