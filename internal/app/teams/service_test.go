package teams

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/nazarDA/Nba-PlayerAnalytics/internal/domain"
	domainteams "github.com/nazarDA/Nba-PlayerAnalytics/internal/domain/teams"
)

type stubStore struct {
	stats []domainteams.StatLine
}

func (s *stubStore) ListTeamStats() []domainteams.StatLine { return s.stats }

func teamLine(name string, season int) domainteams.StatLine {
	return domainteams.StatLine{
		TeamName: name,
		GameID:   "g",
		GameDate: time.Date(season, time.January, 10, 0, 0, 0, 0, time.UTC),
		Season:   season,
	}
}

func TestNamesSortedDistinct(t *testing.T) {
	svc := NewService(&stubStore{stats: []domainteams.StatLine{
		teamLine("Lakers", 2016),
		teamLine("Celtics", 2016),
		teamLine("Lakers", 2017),
	}})

	got := svc.Names()
	if !reflect.DeepEqual(got, []string{"Celtics", "Lakers"}) {
		t.Fatalf("unexpected names %v", got)
	}
}

func TestGameLogScopes(t *testing.T) {
	svc := NewService(&stubStore{stats: []domainteams.StatLine{
		teamLine("Celtics", 2015),
		teamLine("Lakers", 2016),
		teamLine("Celtics", 2016),
	}})

	log, err := svc.GameLog("Celtics", 2016)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(log) != 1 || log[0].Season != 2016 {
		t.Fatalf("unexpected log %v", log)
	}

	log, err = svc.GameLog("Celtics", domain.AllSeasons)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(log) != 2 {
		t.Fatalf("expected full log, got %d rows", len(log))
	}
}

func TestGameLogUnknownTeam(t *testing.T) {
	svc := NewService(&stubStore{stats: []domainteams.StatLine{teamLine("Celtics", 2016)}})

	if _, err := svc.GameLog("Nuggets", domain.AllSeasons); !errors.Is(err, domain.ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}

func TestGameLogEmptySeasonIsNotAnError(t *testing.T) {
	svc := NewService(&stubStore{stats: []domainteams.StatLine{teamLine("Celtics", 2016)}})

	log, err := svc.GameLog("Celtics", 1999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(log) != 0 {
		t.Fatalf("expected empty log, got %v", log)
	}
}
