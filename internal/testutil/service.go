package testutil

import (
	"log/slog"

	"github.com/preston-bernstein/espn-scores/internal/app/scores"
	"github.com/preston-bernstein/espn-scores/pkg/scoreboard"
	"github.com/preston-bernstein/espn-scores/pkg/sports"
)

// NewFixtureService builds a scores service over the embedded payloads.
func NewFixtureService() *scores.Service {
	svc, _ := NewRecordingService(nil)
	return svc
}

// NewRecordingService builds a scores service over a RecordingFetcher and
// returns both so tests can inspect outgoing params.
func NewRecordingService(logger *slog.Logger) (*scores.Service, *RecordingFetcher) {
	fetcher := NewRecordingFetcher()
	return NewServiceWithFetcher(fetcher, logger), fetcher
}

// NewServiceWithFetcher builds a scores service over any fetcher.
func NewServiceWithFetcher(fetcher sports.Fetcher, logger *slog.Logger) *scores.Service {
	return scores.NewService(sports.New(fetcher, sports.WithLogger(logger)))
}

// SampleGame returns a finished game with both sides populated.
func SampleGame(id string) scoreboard.Game {
	return scoreboard.Game{
		ID:       id,
		Status:   scoreboard.StatusFinal,
		AwayTeam: scoreboard.Team{ID: "1", Name: "Away Team", Abbreviation: "AWY", Score: 14},
		HomeTeam: scoreboard.Team{ID: "2", Name: "Home Team", Abbreviation: "HOM", Score: 27},
	}
}
