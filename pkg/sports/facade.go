// Package sports exposes per-league convenience operations over ESPN scoreboards.
package sports

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/preston-bernstein/espn-scores/internal/logging"
	"github.com/preston-bernstein/espn-scores/internal/timeutil"
	"github.com/preston-bernstein/espn-scores/pkg/normalize"
	"github.com/preston-bernstein/espn-scores/pkg/query"
	"github.com/preston-bernstein/espn-scores/pkg/scoreboard"
)

// Fetcher GETs a raw scoreboard payload. *espn.Client and the fixture fetcher
// both satisfy it.
type Fetcher interface {
	FetchScoreboard(ctx context.Context, sportPath string, params url.Values) ([]byte, error)
}

// facade holds what every league shares: the sport, the fetcher and a logger.
type facade struct {
	sport   scoreboard.Sport
	fetcher Fetcher
	logger  *slog.Logger
}

func newFacade(sport scoreboard.Sport, fetcher Fetcher, s settings) facade {
	return facade{sport: sport, fetcher: fetcher, logger: s.logger}
}

// Sport returns the league this facade serves.
func (f facade) Sport() scoreboard.Sport {
	return f.sport
}

// load validates everything before the fetch, so a bad argument never
// reaches the network.
func (f facade) load(ctx context.Context, args query.Args, opts []Option) (scoreboard.Result, error) {
	req := collect(opts)
	status, err := scoreboard.ParseStatus(string(req.status))
	if err != nil {
		return scoreboard.Result{}, &query.InvalidArgumentError{Field: "status", Value: string(req.status), Reason: "want final, in_progress or scheduled"}
	}
	if req.seasonType != 0 {
		args.SeasonType = req.seasonType
	}
	if !req.conference.IsZero() {
		args.Conference = req.conference
	}
	if req.limit != 0 {
		args.Limit = req.limit
	}

	params, err := query.Build(f.sport, args)
	if err != nil {
		return scoreboard.Result{}, err
	}

	filter := normalize.Filter{Status: status}
	filter.Group, filter.HasGroup = query.GroupFrom(params)

	raw, err := f.fetch(ctx, params)
	if err != nil {
		return scoreboard.Result{}, err
	}
	result, err := normalize.Normalize(f.sport, raw, filter)
	if err != nil {
		return scoreboard.Result{}, fmt.Errorf("%s scoreboard: %w", f.sport, err)
	}

	logging.Debug(logging.FromContext(ctx, f.logger), "scoreboard normalized",
		logging.FieldSport, string(f.sport),
		logging.FieldStatus, string(status),
		logging.FieldGroups, params.Get(query.ParamGroups),
		logging.FieldCount, len(result.Games),
	)
	return result, nil
}

func (f facade) fetch(ctx context.Context, params url.Values) ([]byte, error) {
	logger := logging.FromContext(ctx, f.logger)
	start := time.Now()
	raw, err := f.fetcher.FetchScoreboard(ctx, f.sport.Path(), params)
	if err != nil {
		logging.Warn(logger, "scoreboard fetch failed",
			logging.FieldSport, string(f.sport),
			logging.FieldURL, params.Encode(),
			"error", err,
		)
		return nil, err
	}
	logging.Debug(logger, "scoreboard fetched",
		logging.FieldSport, string(f.sport),
		logging.FieldWeek, params.Get(query.ParamWeek),
		logging.FieldSeasonType, params.Get(query.ParamSeasonType),
		logging.FieldDate, params.Get(query.ParamDates),
		logging.FieldURL, params.Encode(),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return raw, nil
}

// LeagueInfo reports the league, season and current week from the default scoreboard.
func (f facade) LeagueInfo(ctx context.Context) (scoreboard.LeagueInfo, error) {
	raw, err := f.fetch(ctx, url.Values{})
	if err != nil {
		return scoreboard.LeagueInfo{}, err
	}
	info, err := normalize.LeagueInfo(raw)
	if err != nil {
		return scoreboard.LeagueInfo{}, fmt.Errorf("%s league info: %w", f.sport, err)
	}
	return info, nil
}

func statusOpts(status scoreboard.Status, opts []Option) []Option {
	return append(append([]Option(nil), opts...), WithStatus(status))
}

func requireWeek(week int) error {
	if week < 1 {
		return &query.InvalidArgumentError{Field: "week", Value: strconv.Itoa(week), Reason: "must be at least 1"}
	}
	return nil
}

func requireNonNegative(field string, n int) error {
	if n < 0 {
		return &query.InvalidArgumentError{Field: field, Value: strconv.Itoa(n), Reason: "must not be negative"}
	}
	return nil
}

// weekly serves NFL and CFB, which ESPN schedules by week.
type weekly struct {
	facade
}

// CurrentWeek returns the week ESPN currently considers active.
func (w weekly) CurrentWeek(ctx context.Context, opts ...Option) (scoreboard.Result, error) {
	return w.load(ctx, query.Args{}, opts)
}

// Week returns a specific week, regular season unless WithSeasonType says otherwise.
func (w weekly) Week(ctx context.Context, week int, opts ...Option) (scoreboard.Result, error) {
	if err := requireWeek(week); err != nil {
		return scoreboard.Result{}, err
	}
	return w.load(ctx, query.Args{Week: week}, opts)
}

// FinalGames returns the completed games of the current week.
func (w weekly) FinalGames(ctx context.Context, opts ...Option) (scoreboard.Result, error) {
	return w.CurrentWeek(ctx, statusOpts(scoreboard.StatusFinal, opts)...)
}

// LiveGames returns the in-progress games of the current week.
func (w weekly) LiveGames(ctx context.Context, opts ...Option) (scoreboard.Result, error) {
	return w.CurrentWeek(ctx, statusOpts(scoreboard.StatusInProgress, opts)...)
}

// UpcomingGames returns the scheduled games of the current week.
func (w weekly) UpcomingGames(ctx context.Context, opts ...Option) (scoreboard.Result, error) {
	return w.CurrentWeek(ctx, statusOpts(scoreboard.StatusScheduled, opts)...)
}

// seasonWeek fetches week of seasonType; week 0 means the current week of that season type.
func (w weekly) seasonWeek(ctx context.Context, seasonType scoreboard.SeasonType, field string, week int, opts []Option) (scoreboard.Result, error) {
	if err := requireNonNegative(field, week); err != nil {
		return scoreboard.Result{}, err
	}
	opts = append(append([]Option(nil), opts...), WithSeasonType(seasonType))
	return w.load(ctx, query.Args{Week: week}, opts)
}

// daily serves NBA, NHL and CBB, which ESPN schedules by date.
type daily struct {
	facade
}

// Today returns the games ESPN lists for the current day.
func (d daily) Today(ctx context.Context, opts ...Option) (scoreboard.Result, error) {
	return d.load(ctx, query.Args{}, opts)
}

// Date returns the games for date, given as YYYYMMDD, YYYY-MM-DD or MM/DD/YYYY.
func (d daily) Date(ctx context.Context, date string, opts ...Option) (scoreboard.Result, error) {
	day, err := normalizeDay(date)
	if err != nil {
		return scoreboard.Result{}, err
	}
	result, err := d.load(ctx, query.Args{Date: date}, opts)
	if err != nil {
		return scoreboard.Result{}, err
	}
	if result.Date == "" {
		result.Date = day
	}
	return result, nil
}

func normalizeDay(raw string) (string, error) {
	day, err := timeutil.ParseDate(raw)
	if err != nil {
		return "", &query.InvalidArgumentError{Field: "date", Value: raw, Reason: "want YYYYMMDD, YYYY-MM-DD or MM/DD/YYYY"}
	}
	return timeutil.FormatDate(day), nil
}

// FinalGames returns today's completed games.
func (d daily) FinalGames(ctx context.Context, opts ...Option) (scoreboard.Result, error) {
	return d.Today(ctx, statusOpts(scoreboard.StatusFinal, opts)...)
}

// LiveGames returns today's in-progress games.
func (d daily) LiveGames(ctx context.Context, opts ...Option) (scoreboard.Result, error) {
	return d.Today(ctx, statusOpts(scoreboard.StatusInProgress, opts)...)
}

// UpcomingGames returns today's scheduled games.
func (d daily) UpcomingGames(ctx context.Context, opts ...Option) (scoreboard.Result, error) {
	return d.Today(ctx, statusOpts(scoreboard.StatusScheduled, opts)...)
}
