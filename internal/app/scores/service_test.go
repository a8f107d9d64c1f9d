package scores

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/espn-scores/internal/fixture"
	"github.com/preston-bernstein/espn-scores/pkg/conferences"
	"github.com/preston-bernstein/espn-scores/pkg/query"
	"github.com/preston-bernstein/espn-scores/pkg/scoreboard"
	"github.com/preston-bernstein/espn-scores/pkg/sports"
)

func newFixtureService() *Service {
	return NewService(sports.New(fixture.New()))
}

func TestServiceScoreboardAppliesStatus(t *testing.T) {
	svc := newFixtureService()

	result, err := svc.Scoreboard(context.Background(), Request{Sport: scoreboard.NFL, Week: 11, Status: scoreboard.StatusFinal})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result.Games) != 1 || result.Games[0].Status != scoreboard.StatusFinal {
		t.Fatalf("expected one final game, got %+v", result.Games)
	}
	if result.Week == nil || *result.Week != 11 {
		t.Fatalf("expected week 11, got %v", result.Week)
	}
}

func TestServiceScoreboardValidates(t *testing.T) {
	svc := newFixtureService()

	_, err := svc.Scoreboard(context.Background(), Request{Sport: scoreboard.NBA, Week: 3})
	if !errors.Is(err, query.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	_, err = svc.Scoreboard(context.Background(), Request{Sport: scoreboard.CFB, Conference: conferences.Name("XYZ")})
	if !errors.Is(err, conferences.ErrUnknownConference) {
		t.Fatalf("expected unknown conference, got %v", err)
	}
}

func TestServiceGames(t *testing.T) {
	svc := newFixtureService()

	result, err := svc.Games(context.Background(), scoreboard.CBB, scoreboard.StatusInProgress, conferences.Name("Big Ten"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result.Games) != 1 || result.Games[0].HomeTeam.Name != "Indiana Hoosiers" {
		t.Fatalf("unexpected games %+v", result.Games)
	}

	if _, err := svc.Games(context.Background(), scoreboard.NBA, "", conferences.Ref{}); !errors.Is(err, query.ErrInvalidArgument) {
		t.Fatalf("expected missing status to be rejected, got %v", err)
	}
}

func TestServiceConferences(t *testing.T) {
	svc := newFixtureService()

	list, err := svc.Conferences(scoreboard.CFB)
	if err != nil || len(list) == 0 {
		t.Fatalf("expected cfb conferences, got %v %v", list, err)
	}
	if _, err := svc.Conferences(scoreboard.NHL); !errors.Is(err, conferences.ErrConferencesUnsupported) {
		t.Fatalf("expected unsupported error, got %v", err)
	}
}

func TestServiceLeagueInfo(t *testing.T) {
	info, err := newFixtureService().LeagueInfo(context.Background(), scoreboard.NFL)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if info.CurrentWeek != 11 || info.Abbreviation != "NFL" {
		t.Fatalf("unexpected league info %+v", info)
	}
}

func TestServiceSports(t *testing.T) {
	list := newFixtureService().Sports()
	if len(list) != len(scoreboard.Sports) {
		t.Fatalf("expected %d sports, got %d", len(scoreboard.Sports), len(list))
	}
	if list[0].Sport != scoreboard.NFL || list[0].Scheduling != "week" || list[0].HasConferences {
		t.Fatalf("unexpected nfl info %+v", list[0])
	}
	if list[4].Sport != scoreboard.CBB || list[4].Scheduling != "date" || !list[4].HasConferences {
		t.Fatalf("unexpected cbb info %+v", list[4])
	}
}
