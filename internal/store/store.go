package store

import (
	"sync"

	"github.com/nazarDA/Nba-PlayerAnalytics/internal/dataset"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain/games"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain/players"
	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain/teams"
)

// Store holds the once-loaded table set. SetTables is called a single time
// at startup; afterwards the tables are treated as frozen and shared
// read-only across requests, so accessors hand out the slices directly.
type Store struct {
	mu     sync.RWMutex
	tables *dataset.Tables
}

// New constructs an empty Store.
func New() *Store {
	return &Store{}
}

// SetTables installs the loaded dataset.
func (s *Store) SetTables(tables *dataset.Tables) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables = tables
}

// Loaded reports whether the dataset has been installed.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tables != nil
}

// ListPlayers returns the player records.
func (s *Store) ListPlayers() []players.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tables == nil {
		return nil
	}
	return s.tables.Players
}

// ListPlayerStats returns the player statistic rows.
func (s *Store) ListPlayerStats() []players.StatLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tables == nil {
		return nil
	}
	return s.tables.PlayerStatistics
}

// ListTeamStats returns the team statistic rows.
func (s *Store) ListTeamStats() []teams.StatLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tables == nil {
		return nil
	}
	return s.tables.TeamStatistics
}

// ListGames returns the game records.
func (s *Store) ListGames() []games.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tables == nil {
		return nil
	}
	return s.tables.Games
}
