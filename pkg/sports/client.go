package sports

import (
	"context"

	"github.com/preston-bernstein/espn-scores/pkg/query"
	"github.com/preston-bernstein/espn-scores/pkg/scoreboard"
)

// Client bundles every league facade over one shared fetcher.
type Client struct {
	NFL *NFL
	CFB *CFB
	NBA *NBA
	NHL *NHL
	CBB *CBB

	bySport map[scoreboard.Sport]facade
}

// New builds all five facades.
func New(fetcher Fetcher, opts ...ClientOption) *Client {
	c := &Client{
		NFL: NewNFL(fetcher, opts...),
		CFB: NewCFB(fetcher, opts...),
		NBA: NewNBA(fetcher, opts...),
		NHL: NewNHL(fetcher, opts...),
		CBB: NewCBB(fetcher, opts...),
	}
	c.bySport = map[scoreboard.Sport]facade{
		scoreboard.NFL: c.NFL.facade,
		scoreboard.CFB: c.CFB.facade,
		scoreboard.NBA: c.NBA.facade,
		scoreboard.NHL: c.NHL.facade,
		scoreboard.CBB: c.CBB.facade,
	}
	return c
}

// Scoreboard runs an arbitrary query for sport. It backs callers that take
// week, date and season type as data rather than picking a facade method.
func (c *Client) Scoreboard(ctx context.Context, sport scoreboard.Sport, args query.Args, opts ...Option) (scoreboard.Result, error) {
	f, err := c.facade(sport)
	if err != nil {
		return scoreboard.Result{}, err
	}
	result, err := f.load(ctx, args, opts)
	if err != nil {
		return scoreboard.Result{}, err
	}
	if result.Date == "" && args.Date != "" {
		if day, err := normalizeDay(args.Date); err == nil {
			result.Date = day
		}
	}
	return result, nil
}

// LeagueInfo reports league and season context for sport.
func (c *Client) LeagueInfo(ctx context.Context, sport scoreboard.Sport) (scoreboard.LeagueInfo, error) {
	f, err := c.facade(sport)
	if err != nil {
		return scoreboard.LeagueInfo{}, err
	}
	return f.LeagueInfo(ctx)
}

func (c *Client) facade(sport scoreboard.Sport) (facade, error) {
	f, ok := c.bySport[sport]
	if !ok {
		return facade{}, &query.InvalidArgumentError{Field: "sport", Value: string(sport), Reason: "unsupported sport"}
	}
	return f, nil
}
