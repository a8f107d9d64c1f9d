package scores

import (
	"context"
	"fmt"

	"github.com/preston-bernstein/espn-scores/pkg/conferences"
	"github.com/preston-bernstein/espn-scores/pkg/query"
	"github.com/preston-bernstein/espn-scores/pkg/scoreboard"
	"github.com/preston-bernstein/espn-scores/pkg/sports"
)

// Scoreboards is the subset of *sports.Client the service relies on.
type Scoreboards interface {
	Scoreboard(ctx context.Context, sport scoreboard.Sport, args query.Args, opts ...sports.Option) (scoreboard.Result, error)
	LeagueInfo(ctx context.Context, sport scoreboard.Sport) (scoreboard.LeagueInfo, error)
}

// Request is one scoreboard query expressed as data.
type Request struct {
	Sport      scoreboard.Sport
	Week       int
	SeasonType scoreboard.SeasonType
	Date       string
	Status     scoreboard.Status
	Conference conferences.Ref
	Limit      int
}

// SportInfo describes a supported league.
type SportInfo struct {
	Sport          scoreboard.Sport `json:"sport"`
	Path           string           `json:"path"`
	Scheduling     string           `json:"scheduling"`
	HasConferences bool             `json:"has_conferences"`
}

// Service dispatches HTTP-shaped requests to the sport facades.
type Service struct {
	client Scoreboards
}

// NewService constructs a Service over the sports client.
func NewService(client Scoreboards) *Service {
	return &Service{client: client}
}

// Scoreboard runs req against its sport's scoreboard.
func (s *Service) Scoreboard(ctx context.Context, req Request) (scoreboard.Result, error) {
	args := query.Args{
		Week:       req.Week,
		SeasonType: req.SeasonType,
		Date:       req.Date,
		Conference: req.Conference,
		Limit:      req.Limit,
	}
	var opts []sports.Option
	if req.Status != "" {
		opts = append(opts, sports.WithStatus(req.Status))
	}
	return s.client.Scoreboard(ctx, req.Sport, args, opts...)
}

// Games returns the current week's or today's games in one state.
func (s *Service) Games(ctx context.Context, sport scoreboard.Sport, status scoreboard.Status, conference conferences.Ref) (scoreboard.Result, error) {
	if status == "" {
		return scoreboard.Result{}, &query.InvalidArgumentError{Field: "status", Value: "", Reason: "status is required"}
	}
	return s.Scoreboard(ctx, Request{Sport: sport, Status: status, Conference: conference})
}

// LeagueInfo reports league and season context for sport.
func (s *Service) LeagueInfo(ctx context.Context, sport scoreboard.Sport) (scoreboard.LeagueInfo, error) {
	return s.client.LeagueInfo(ctx, sport)
}

// Conferences lists the conference registry for sport.
func (s *Service) Conferences(sport scoreboard.Sport) ([]conferences.Conference, error) {
	if !sport.HasConferences() {
		return nil, fmt.Errorf("%s: %w", sport, conferences.ErrConferencesUnsupported)
	}
	return conferences.List(sport), nil
}

// Sports lists every supported league.
func (s *Service) Sports() []SportInfo {
	out := make([]SportInfo, 0, len(scoreboard.Sports))
	for _, sport := range scoreboard.Sports {
		scheduling := "date"
		if sport.WeekBased() {
			scheduling = "week"
		}
		out = append(out, SportInfo{
			Sport:          sport,
			Path:           sport.Path(),
			Scheduling:     scheduling,
			HasConferences: sport.HasConferences(),
		})
	}
	return out
}
