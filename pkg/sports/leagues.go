package sports

import (
	"context"

	"github.com/preston-bernstein/espn-scores/pkg/scoreboard"
)

// NFL schedules by week across preseason, regular season and playoffs.
type NFL struct {
	weekly
}

// NewNFL builds the NFL facade.
func NewNFL(fetcher Fetcher, opts ...ClientOption) *NFL {
	return &NFL{weekly{newFacade(scoreboard.NFL, fetcher, newSettings(opts))}}
}

// Preseason returns a preseason week (1-4); 0 selects the current preseason week.
func (n *NFL) Preseason(ctx context.Context, week int, opts ...Option) (scoreboard.Result, error) {
	return n.seasonWeek(ctx, scoreboard.SeasonPre, "week", week, opts)
}

// Playoffs returns a playoff round (1-5, the Super Bowl is 5); 0 selects the current round.
func (n *NFL) Playoffs(ctx context.Context, round int, opts ...Option) (scoreboard.Result, error) {
	return n.seasonWeek(ctx, scoreboard.SeasonPost, "round", round, opts)
}

// CFB is college football. Every call accepts WithConference.
type CFB struct {
	weekly
}

// NewCFB builds the college football facade.
func NewCFB(fetcher Fetcher, opts ...ClientOption) *CFB {
	return &CFB{weekly{newFacade(scoreboard.CFB, fetcher, newSettings(opts))}}
}

// Postseason returns a bowl week (1-5); 0 selects the current postseason week.
func (c *CFB) Postseason(ctx context.Context, week int, opts ...Option) (scoreboard.Result, error) {
	return c.seasonWeek(ctx, scoreboard.SeasonPost, "week", week, opts)
}

// NBA schedules by date.
type NBA struct {
	daily
}

// NewNBA builds the NBA facade.
func NewNBA(fetcher Fetcher, opts ...ClientOption) *NBA {
	return &NBA{daily{newFacade(scoreboard.NBA, fetcher, newSettings(opts))}}
}

// NHL schedules by date.
type NHL struct {
	daily
}

// NewNHL builds the NHL facade.
func NewNHL(fetcher Fetcher, opts ...ClientOption) *NHL {
	return &NHL{daily{newFacade(scoreboard.NHL, fetcher, newSettings(opts))}}
}

// CBB is men's college basketball. Every call accepts WithConference; college
// slates are large, so WithLimit is often needed to see every game.
type CBB struct {
	daily
}

// NewCBB builds the college basketball facade.
func NewCBB(fetcher Fetcher, opts ...ClientOption) *CBB {
	return &CBB{daily{newFacade(scoreboard.CBB, fetcher, newSettings(opts))}}
}
