package store

import (
	"testing"

	"github.com/nazarDA/Nba-PlayerAnalytics/internal/testutil"
)

func TestStoreLoadOnce(t *testing.T) {
	s := New()

	if s.Loaded() {
		t.Fatalf("expected fresh store to be unloaded")
	}
	if got := s.ListPlayers(); got != nil {
		t.Fatalf("expected nil players before load, got %v", got)
	}

	s.SetTables(testutil.Tables())

	if !s.Loaded() {
		t.Fatalf("expected store to report loaded")
	}
	if got := len(s.ListPlayers()); got != 2 {
		t.Fatalf("expected 2 players, got %d", got)
	}
	if got := len(s.ListPlayerStats()); got != 4 {
		t.Fatalf("expected 4 stat rows, got %d", got)
	}
	if got := len(s.ListTeamStats()); got != 2 {
		t.Fatalf("expected 2 team rows, got %d", got)
	}
	if got := len(s.ListGames()); got != 4 {
		t.Fatalf("expected 4 games, got %d", got)
	}
}
