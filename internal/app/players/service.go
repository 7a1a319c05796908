package players

import (
	"sort"

	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain"
	domainplayers "github.com/nazarDA/Nba-PlayerAnalytics/internal/domain/players"
)

// Store defines the read contract for player data.
type Store interface {
	ListPlayers() []domainplayers.Player
	ListPlayerStats() []domainplayers.StatLine
}

// Service resolves player names and career spans against the loaded dataset.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Players returns the current set of players.
func (s *Service) Players() []domainplayers.Player {
	return s.store.ListPlayers()
}

// SeasonSpan returns the player's debut and final season. ok is false when
// the player has no statistic row with a known season; such players never
// appear in season-filtered selection lists.
func (s *Service) SeasonSpan(playerID int) (domainplayers.SeasonSpan, bool) {
	span, ok := s.seasonSpans()[playerID]
	return span, ok
}

// NameToID resolves a full name to a player ID by exact match. A name shared
// by multiple players fails with AmbiguousNameError; the resolver never
// silently picks one. An unknown or empty name fails with ErrPlayerNotFound.
func (s *Service) NameToID(fullName string) (int, error) {
	if fullName == "" {
		return 0, domain.ErrPlayerNotFound
	}

	var ids []int
	for _, p := range s.store.ListPlayers() {
		if p.FullName == fullName {
			ids = append(ids, p.ID)
		}
	}

	switch len(ids) {
	case 0:
		return 0, domain.ErrPlayerNotFound
	case 1:
		return ids[0], nil
	}
	return 0, &domain.AmbiguousNameError{Name: fullName, IDs: ids}
}

// ActivePlayersInSeason returns the IDs of players whose career span covers
// the season, sorted ascending. domain.AllSeasons returns every player with
// at least one statistic row.
func (s *Service) ActivePlayersInSeason(season int) []int {
	if season == domain.AllSeasons {
		seen := make(map[int]struct{})
		for _, line := range s.store.ListPlayerStats() {
			seen[line.PlayerID] = struct{}{}
		}
		ids := make([]int, 0, len(seen))
		for id := range seen {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		return ids
	}

	spans := s.seasonSpans()
	ids := make([]int, 0, len(spans))
	for id, span := range spans {
		if span.Contains(season) {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// SelectableNames returns the sorted non-empty full names of players active
// in the season. This feeds the UI's player pick lists; players with no
// resolvable name stay reachable by ID but are never listed.
func (s *Service) SelectableNames(season int) []string {
	active := make(map[int]struct{})
	for _, id := range s.ActivePlayersInSeason(season) {
		active[id] = struct{}{}
	}

	var names []string
	for _, p := range s.store.ListPlayers() {
		if p.FullName == "" {
			continue
		}
		if _, ok := active[p.ID]; ok {
			names = append(names, p.FullName)
		}
	}
	sort.Strings(names)
	return names
}

// seasonSpans derives min/max season per player from the statistic rows.
// Rows without a known season do not contribute; a player whose rows all
// lack seasons gets no span at all.
func (s *Service) seasonSpans() map[int]domainplayers.SeasonSpan {
	spans := make(map[int]domainplayers.SeasonSpan)
	for _, line := range s.store.ListPlayerStats() {
		if !line.HasSeason() {
			continue
		}
		span, ok := spans[line.PlayerID]
		if !ok {
			spans[line.PlayerID] = domainplayers.SeasonSpan{Debut: line.Season, Final: line.Season}
			continue
		}
		if line.Season < span.Debut {
			span.Debut = line.Season
		}
		if line.Season > span.Final {
			span.Final = line.Season
		}
		spans[line.PlayerID] = span
	}
	return spans
}
