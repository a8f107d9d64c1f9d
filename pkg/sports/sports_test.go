package sports

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/espn-scores/internal/fixture"
	"github.com/preston-bernstein/espn-scores/pkg/conferences"
	"github.com/preston-bernstein/espn-scores/pkg/espn"
	"github.com/preston-bernstein/espn-scores/pkg/query"
	"github.com/preston-bernstein/espn-scores/pkg/scoreboard"
)

type fetchCall struct {
	path   string
	params url.Values
}

// recordingFetcher serves fixture payloads and remembers every request.
type recordingFetcher struct {
	mu    sync.Mutex
	calls []fetchCall
	body  []byte
	err   error
}

func (r *recordingFetcher) FetchScoreboard(ctx context.Context, sportPath string, params url.Values) ([]byte, error) {
	r.mu.Lock()
	r.calls = append(r.calls, fetchCall{path: sportPath, params: params})
	r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	if r.body != nil {
		return r.body, nil
	}
	return fixture.New().FetchScoreboard(ctx, sportPath, params)
}

func (r *recordingFetcher) last(t *testing.T) fetchCall {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.calls)
	return r.calls[len(r.calls)-1]
}

const finalAndScheduled = `{
	"season": {"year": 2025, "type": 2},
	"week": {"number": 3},
	"events": [
		{"id": "1", "date": "2025-09-21T17:00Z", "competitions": [{"competitors": [
			{"homeAway": "home", "score": "27", "team": {"displayName": "Home One"}},
			{"homeAway": "away", "score": "14", "team": {"displayName": "Away One"}}
		], "status": {"period": 4, "type": {"state": "post", "completed": true}}}]},
		{"id": "2", "date": "2025-09-22T00:20Z", "competitions": [{"competitors": [
			{"homeAway": "home", "team": {"displayName": "Home Two"}},
			{"homeAway": "away", "team": {"displayName": "Away Two"}}
		], "status": {"type": {"state": "pre", "completed": false}}}]}
	]
}`

func TestFinalAndUpcomingSplitOneScoreboard(t *testing.T) {
	fetcher := &recordingFetcher{body: []byte(finalAndScheduled)}
	nfl := NewNFL(fetcher)

	final, err := nfl.FinalGames(context.Background())
	require.NoError(t, err)
	require.Len(t, final.Games, 1)
	assert.Equal(t, "1", final.Games[0].ID)
	assert.Equal(t, 14, final.Games[0].AwayTeam.Score)
	assert.Equal(t, 27, final.Games[0].HomeTeam.Score)

	upcoming, err := nfl.UpcomingGames(context.Background())
	require.NoError(t, err)
	require.Len(t, upcoming.Games, 1)
	assert.Equal(t, "2", upcoming.Games[0].ID)
	assert.Equal(t, "2025-09-22T00:20Z", upcoming.Games[0].StartTime)

	live, err := nfl.LiveGames(context.Background())
	require.NoError(t, err)
	assert.Empty(t, live.Games)
}

func TestStatusOptionIsNormalized(t *testing.T) {
	nfl := NewNFL(&recordingFetcher{body: []byte(finalAndScheduled)})

	for _, raw := range []scoreboard.Status{"FINAL", " final", "Final "} {
		result, err := nfl.CurrentWeek(context.Background(), WithStatus(raw))
		require.NoError(t, err, raw)
		require.Len(t, result.Games, 1, raw)
		assert.Equal(t, "1", result.Games[0].ID, raw)
	}
}

func TestUnknownConferenceMakesNoRequest(t *testing.T) {
	fetcher := &recordingFetcher{}
	client := New(fetcher)

	_, err := client.CFB.CurrentWeek(context.Background(), WithConference(conferences.Name("XYZ")))
	assert.ErrorIs(t, err, conferences.ErrUnknownConference)

	_, err = client.CBB.Today(context.Background(), WithConference(conferences.Name("XYZ")))
	assert.ErrorIs(t, err, conferences.ErrUnknownConference)

	assert.Empty(t, fetcher.calls)
}

func TestValidationErrorsMakeNoRequest(t *testing.T) {
	fetcher := &recordingFetcher{}
	client := New(fetcher)
	ctx := context.Background()

	calls := []func() error{
		func() error { _, err := client.NFL.Week(ctx, 19); return err },
		func() error { _, err := client.NFL.Week(ctx, 0); return err },
		func() error { _, err := client.NFL.Preseason(ctx, 5); return err },
		func() error { _, err := client.NFL.Playoffs(ctx, -1); return err },
		func() error { _, err := client.CFB.Week(ctx, 17); return err },
		func() error { _, err := client.CFB.Postseason(ctx, 6); return err },
		func() error { _, err := client.NBA.Date(ctx, "yesterday"); return err },
		func() error { _, err := client.NHL.Today(ctx, WithSeasonType(scoreboard.SeasonPost)); return err },
		func() error { _, err := client.NBA.Today(ctx, WithStatus("halftime")); return err },
		func() error { _, err := client.CBB.Today(ctx, WithLimit(-5)); return err },
	}
	for i, call := range calls {
		assert.ErrorIs(t, call(), query.ErrInvalidArgument, "call %d", i)
	}

	_, err := client.NBA.Today(ctx, WithConference(conferences.Name("East")))
	assert.ErrorIs(t, err, conferences.ErrConferencesUnsupported)

	assert.Empty(t, fetcher.calls)
}

func TestNFLWeekParams(t *testing.T) {
	fetcher := &recordingFetcher{}
	nfl := NewNFL(fetcher)
	ctx := context.Background()

	result, err := nfl.Week(ctx, 11)
	require.NoError(t, err)
	call := fetcher.last(t)
	assert.Equal(t, "football/nfl", call.path)
	assert.Equal(t, "11", call.params.Get(query.ParamWeek))
	assert.Equal(t, "2", call.params.Get(query.ParamSeasonType))
	require.NotNil(t, result.Week)
	assert.Equal(t, 11, *result.Week)
	assert.Len(t, result.Games, 3)

	_, err = nfl.Preseason(ctx, 2)
	require.NoError(t, err)
	call = fetcher.last(t)
	assert.Equal(t, "2", call.params.Get(query.ParamWeek))
	assert.Equal(t, "1", call.params.Get(query.ParamSeasonType))

	_, err = nfl.Preseason(ctx, 0)
	require.NoError(t, err)
	call = fetcher.last(t)
	assert.False(t, call.params.Has(query.ParamWeek))
	assert.Equal(t, "1", call.params.Get(query.ParamSeasonType))

	_, err = nfl.Playoffs(ctx, 5)
	require.NoError(t, err)
	call = fetcher.last(t)
	assert.Equal(t, "5", call.params.Get(query.ParamWeek))
	assert.Equal(t, "3", call.params.Get(query.ParamSeasonType))

	_, err = nfl.CurrentWeek(ctx)
	require.NoError(t, err)
	assert.Empty(t, fetcher.last(t).params)
}

func TestCFBConferenceScopesRequestAndResult(t *testing.T) {
	fetcher := &recordingFetcher{}
	cfb := NewCFB(fetcher)

	result, err := cfb.Week(context.Background(), 12, WithConference(conferences.Name("big ten")))
	require.NoError(t, err)
	call := fetcher.last(t)
	assert.Equal(t, "football/college-football", call.path)
	assert.Equal(t, "5", call.params.Get(query.ParamGroups))
	require.Len(t, result.Games, 1)
	assert.Equal(t, "Michigan Wolverines", result.Games[0].HomeTeam.Name)

	live, err := cfb.LiveGames(context.Background(), WithConference(conferences.ID(8)))
	require.NoError(t, err)
	assert.Empty(t, live.Games)

	final, err := cfb.FinalGames(context.Background(), WithConference(conferences.Name("SEC")))
	require.NoError(t, err)
	require.Len(t, final.Games, 1)
	assert.Equal(t, "Alabama Crimson Tide", final.Games[0].HomeTeam.Name)

	_, err = cfb.Postseason(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "3", fetcher.last(t).params.Get(query.ParamSeasonType))
}

func TestDateFacades(t *testing.T) {
	fetcher := &recordingFetcher{}
	client := New(fetcher)
	ctx := context.Background()

	result, err := client.NBA.Date(ctx, "11/17/2025")
	require.NoError(t, err)
	assert.Equal(t, "20251117", fetcher.last(t).params.Get(query.ParamDates))
	assert.Equal(t, "2025-11-17", result.Date)
	assert.Len(t, result.Games, 3)

	live, err := client.NHL.LiveGames(ctx)
	require.NoError(t, err)
	require.Len(t, live.Games, 1)
	assert.Equal(t, "OT", live.Games[0].GameTime.Period)
	assert.False(t, fetcher.last(t).params.Has(query.ParamDates))

	cbb, err := client.CBB.UpcomingGames(ctx, WithConference(conferences.Name("Big East")), WithLimit(200))
	require.NoError(t, err)
	call := fetcher.last(t)
	assert.Equal(t, "basketball/mens-college-basketball", call.path)
	assert.Equal(t, "4", call.params.Get(query.ParamGroups))
	assert.Equal(t, "200", call.params.Get(query.ParamLimit))
	require.Len(t, cbb.Games, 1)
	assert.Equal(t, "Villanova Wildcats", cbb.Games[0].HomeTeam.Name)
}

func TestDateFallsBackToRequestedDay(t *testing.T) {
	fetcher := &recordingFetcher{body: []byte(`{"events": []}`)}
	result, err := NewNHL(fetcher).Date(context.Background(), "20250704")
	require.NoError(t, err)
	assert.Equal(t, "2025-07-04", result.Date)
	assert.NotNil(t, result.Games)
}

func TestStatusOptionOverriddenByConvenienceMethods(t *testing.T) {
	fetcher := &recordingFetcher{}
	result, err := NewNBA(fetcher).FinalGames(context.Background(), WithStatus(scoreboard.StatusScheduled))
	require.NoError(t, err)
	require.Len(t, result.Games, 1)
	assert.Equal(t, scoreboard.StatusFinal, result.Games[0].Status)
}

func TestUpstreamErrorsPropagate(t *testing.T) {
	upstream := &espn.APIError{StatusCode: 503, Body: "down"}
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	client := New(&recordingFetcher{err: upstream}, WithLogger(logger))

	_, err := client.NFL.CurrentWeek(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, espn.ErrUpstream)
	apiErr, ok := espn.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 503, apiErr.StatusCode)
	assert.Contains(t, logs.String(), "scoreboard fetch failed")

	_, err = client.NBA.LeagueInfo(context.Background())
	assert.True(t, errors.Is(err, espn.ErrUpstream))
}

func TestFetchLogsRequestedWeekAndDate(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	client := New(&recordingFetcher{}, WithLogger(logger))
	ctx := context.Background()

	_, err := client.NFL.Playoffs(ctx, 2)
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "week=2")
	assert.Contains(t, logs.String(), "season_type=3")

	logs.Reset()
	_, err = client.NBA.Date(ctx, "2025-11-17")
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "date=20251117")
}

func TestMalformedPayloadIsAnError(t *testing.T) {
	_, err := NewNHL(&recordingFetcher{body: []byte(`[1,2,3]`)}).Today(context.Background())
	assert.Error(t, err)
}

func TestLeagueInfo(t *testing.T) {
	fetcher := &recordingFetcher{}
	client := New(fetcher)

	info, err := client.CFB.LeagueInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, info.CurrentWeek)
	assert.Equal(t, 2025, info.SeasonYear)
	assert.Equal(t, "NCAAF", info.Abbreviation)
	assert.Empty(t, fetcher.last(t).params)

	info, err = client.LeagueInfo(context.Background(), scoreboard.NFL)
	require.NoError(t, err)
	assert.Equal(t, scoreboard.SeasonRegular, info.SeasonType)

	_, err = client.LeagueInfo(context.Background(), scoreboard.Sport("MLB"))
	assert.ErrorIs(t, err, query.ErrInvalidArgument)
}

func TestClientScoreboard(t *testing.T) {
	fetcher := &recordingFetcher{}
	client := New(fetcher)

	result, err := client.Scoreboard(context.Background(), scoreboard.CBB, query.Args{Date: "2025-11-17"}, WithStatus(scoreboard.StatusInProgress))
	require.NoError(t, err)
	require.Len(t, result.Games, 1)
	assert.Equal(t, "2025-11-18", result.Date)
	assert.Equal(t, "20251117", fetcher.last(t).params.Get(query.ParamDates))

	result, err = client.Scoreboard(context.Background(), scoreboard.NFL, query.Args{Week: 3, SeasonType: scoreboard.SeasonPre})
	require.NoError(t, err)
	assert.Equal(t, scoreboard.NFL, result.Sport)
	assert.Equal(t, "1", fetcher.last(t).params.Get(query.ParamSeasonType))

	_, err = client.Scoreboard(context.Background(), scoreboard.Sport("MLB"), query.Args{})
	assert.ErrorIs(t, err, query.ErrInvalidArgument)
}

func TestFacadesAreSafeForConcurrentUse(t *testing.T) {
	client := New(fixture.New())
	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := client.NFL.LiveGames(context.Background())
			errs <- err
		}()
		go func() {
			defer wg.Done()
			_, err := client.CBB.Today(context.Background(), WithConference(conferences.Name("ACC")))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}
