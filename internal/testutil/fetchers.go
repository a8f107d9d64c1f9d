package testutil

import (
	"context"
	"net/url"
	"sync"

	"github.com/preston-bernstein/espn-scores/internal/fixture"
)

// Call is one recorded scoreboard fetch.
type Call struct {
	SportPath string
	Params    url.Values
}

// RecordingFetcher serves embedded fixture payloads and remembers every call.
// Err, when set, is returned instead of a payload.
type RecordingFetcher struct {
	Err error

	mu    sync.Mutex
	calls []Call
	inner *fixture.Fetcher
}

// NewRecordingFetcher returns a fetcher backed by the fixture payloads.
func NewRecordingFetcher() *RecordingFetcher {
	return &RecordingFetcher{inner: fixture.New()}
}

func (f *RecordingFetcher) FetchScoreboard(ctx context.Context, sportPath string, params url.Values) ([]byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, Call{SportPath: sportPath, Params: params})
	err := f.Err
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return f.inner.FetchScoreboard(ctx, sportPath, params)
}

// Calls returns a copy of the recorded calls.
func (f *RecordingFetcher) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// StaticFetcher returns Body for every sport.
type StaticFetcher struct {
	Body []byte
}

func (f StaticFetcher) FetchScoreboard(ctx context.Context, _ string, _ url.Values) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.Body, nil
}
