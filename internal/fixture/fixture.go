// Package fixture serves canned ESPN scoreboard payloads for offline runs and tests.
package fixture

import (
	"context"
	"embed"
	"fmt"
	"net/url"
	"strings"

	"github.com/preston-bernstein/espn-scores/pkg/scoreboard"
)

//go:embed payloads/*.json
var payloads embed.FS

// Payload returns the canned scoreboard for sport, or nil when none exists.
func Payload(sport scoreboard.Sport) []byte {
	raw, err := payloads.ReadFile("payloads/" + strings.ToLower(string(sport)) + ".json")
	if err != nil {
		return nil
	}
	return raw
}

// Fetcher returns a deterministic scoreboard per sport regardless of the query.
type Fetcher struct {
	bySport map[string]scoreboard.Sport
}

// New creates a fixture fetcher covering every supported sport.
func New() *Fetcher {
	bySport := make(map[string]scoreboard.Sport, len(scoreboard.Sports))
	for _, s := range scoreboard.Sports {
		bySport[s.Path()] = s
	}
	return &Fetcher{bySport: bySport}
}

// FetchScoreboard returns the canned payload for sportPath.
func (f *Fetcher) FetchScoreboard(ctx context.Context, sportPath string, params url.Values) ([]byte, error) {
	_ = params
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sport, ok := f.bySport[sportPath]
	if !ok {
		return nil, fmt.Errorf("fixture: no scoreboard for %q", sportPath)
	}
	raw := Payload(sport)
	if raw == nil {
		return nil, fmt.Errorf("fixture: missing payload for %s", sport)
	}
	return raw, nil
}
