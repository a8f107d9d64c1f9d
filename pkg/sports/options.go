package sports

import (
	"log/slog"

	"github.com/preston-bernstein/espn-scores/pkg/conferences"
	"github.com/preston-bernstein/espn-scores/pkg/scoreboard"
)

// Option adjusts a single facade call.
type Option func(*request)

type request struct {
	status     scoreboard.Status
	seasonType scoreboard.SeasonType
	conference conferences.Ref
	limit      int
}

// WithStatus keeps only games in the given state.
func WithStatus(status scoreboard.Status) Option {
	return func(r *request) { r.status = status }
}

// WithSeasonType selects preseason, regular season or postseason for week-based sports.
func WithSeasonType(seasonType scoreboard.SeasonType) Option {
	return func(r *request) { r.seasonType = seasonType }
}

// WithConference scopes a college scoreboard to one conference.
func WithConference(ref conferences.Ref) Option {
	return func(r *request) { r.conference = ref }
}

// WithLimit caps the number of events ESPN returns.
func WithLimit(n int) Option {
	return func(r *request) { r.limit = n }
}

func collect(opts []Option) request {
	var r request
	for _, opt := range opts {
		if opt != nil {
			opt(&r)
		}
	}
	return r
}

// ClientOption configures facades at construction.
type ClientOption func(*settings)

type settings struct {
	logger *slog.Logger
}

// WithLogger sets the logger used when a call's context carries none.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(s *settings) { s.logger = logger }
}

func newSettings(opts []ClientOption) settings {
	var s settings
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}
