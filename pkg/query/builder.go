// Package query turns semantic scoreboard arguments into ESPN query parameters.
package query

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/preston-bernstein/espn-scores/internal/timeutil"
	"github.com/preston-bernstein/espn-scores/pkg/conferences"
	"github.com/preston-bernstein/espn-scores/pkg/scoreboard"
)

// ESPN query parameter names.
const (
	ParamWeek       = "week"
	ParamSeasonType = "seasontype"
	ParamDates      = "dates"
	ParamGroups     = "groups"
	ParamLimit      = "limit"
)

// ErrInvalidArgument is matched by every *InvalidArgumentError.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError describes an argument rejected before any request is made.
type InvalidArgumentError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Args are the semantic inputs for one scoreboard request. Zero values mean
// "let the endpoint decide": current week, today, regular season, all groups.
type Args struct {
	Week       int
	SeasonType scoreboard.SeasonType
	Date       string
	Conference conferences.Ref
	Limit      int
}

// weekLimits holds the last valid week per season type.
var weekLimits = map[scoreboard.Sport]map[scoreboard.SeasonType]int{
	scoreboard.NFL: {
		scoreboard.SeasonPre:     4,
		scoreboard.SeasonRegular: 18,
		scoreboard.SeasonPost:    5,
	},
	scoreboard.CFB: {
		scoreboard.SeasonRegular: 16,
		scoreboard.SeasonPost:    5,
	},
}

// MaxWeek returns the last valid week for a week-based sport and season type.
func MaxWeek(sport scoreboard.Sport, seasonType scoreboard.SeasonType) (int, bool) {
	limits, ok := weekLimits[sport]
	if !ok {
		return 0, false
	}
	max, ok := limits[seasonType]
	return max, ok
}

// Build maps args to the query parameters for sport's scoreboard endpoint.
func Build(sport scoreboard.Sport, args Args) (url.Values, error) {
	if sport.Path() == "" {
		return nil, invalid("sport", string(sport), "unsupported sport")
	}

	params := url.Values{}
	var err error
	if sport.WeekBased() {
		err = buildWeek(sport, args, params)
	} else {
		err = buildDate(args, params)
	}
	if err != nil {
		return nil, err
	}

	if !args.Conference.IsZero() {
		group, err := conferences.Resolve(sport, args.Conference)
		if err != nil {
			return nil, err
		}
		params.Set(ParamGroups, group.String())
	}

	if args.Limit < 0 {
		return nil, invalid("limit", strconv.Itoa(args.Limit), "must not be negative")
	}
	if args.Limit > 0 {
		params.Set(ParamLimit, strconv.Itoa(args.Limit))
	}

	return params, nil
}

// GroupFrom returns the conference group carried by params, if any.
func GroupFrom(params url.Values) (conferences.GroupID, bool) {
	raw := params.Get(ParamGroups)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return conferences.GroupID(n), true
}

func buildWeek(sport scoreboard.Sport, args Args, params url.Values) error {
	if args.Date != "" {
		return invalid("date", args.Date, fmt.Sprintf("%s is scheduled by week", sport))
	}

	seasonType := args.SeasonType
	if seasonType == 0 {
		seasonType = scoreboard.SeasonRegular
	}
	max, ok := MaxWeek(sport, seasonType)
	if !ok {
		return invalid("season type", strconv.Itoa(int(seasonType)), fmt.Sprintf("not available for %s", sport))
	}

	switch {
	case args.Week < 0:
		return invalid("week", strconv.Itoa(args.Week), "must not be negative")
	case args.Week == 0:
		// Current week: the endpoint picks the week; only a non-regular
		// season type needs to be spelled out.
		if seasonType != scoreboard.SeasonRegular {
			params.Set(ParamSeasonType, strconv.Itoa(int(seasonType)))
		}
	case args.Week > max:
		return invalid("week", strconv.Itoa(args.Week),
			fmt.Sprintf("%s %s must be between 1 and %d", sport, seasonType, max))
	default:
		params.Set(ParamWeek, strconv.Itoa(args.Week))
		params.Set(ParamSeasonType, strconv.Itoa(int(seasonType)))
	}
	return nil
}

func buildDate(args Args, params url.Values) error {
	if args.Week != 0 {
		return invalid("week", strconv.Itoa(args.Week), "sport is scheduled by date")
	}
	if args.SeasonType != 0 {
		return invalid("season type", strconv.Itoa(int(args.SeasonType)), "sport is scheduled by date")
	}
	if args.Date == "" {
		return nil
	}
	compact, err := timeutil.NormalizeCompact(args.Date)
	if err != nil {
		return invalid("date", args.Date, "want YYYYMMDD, YYYY-MM-DD or MM/DD/YYYY")
	}
	params.Set(ParamDates, compact)
	return nil
}

func invalid(field, value, reason string) error {
	return &InvalidArgumentError{Field: field, Value: value, Reason: reason}
}
