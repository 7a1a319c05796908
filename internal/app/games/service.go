package games

import domaingames "github.com/nazarDA/Nba-PlayerAnalytics/internal/domain/games"

// Store defines the read contract for game data.
type Store interface {
	ListGames() []domaingames.Game
}

// Service answers game-count queries against the loaded dataset.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Count returns the number of distinct games. This is the denominator for
// league-wide per-game averages.
func (s *Service) Count() int {
	seen := make(map[string]struct{})
	for _, g := range s.store.ListGames() {
		seen[g.ID] = struct{}{}
	}
	return len(seen)
}
