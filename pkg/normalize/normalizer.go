// Package normalize reshapes raw ESPN scoreboard JSON into scoreboard results.
package normalize

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/preston-bernstein/espn-scores/internal/timeutil"
	"github.com/preston-bernstein/espn-scores/pkg/conferences"
	"github.com/preston-bernstein/espn-scores/pkg/scoreboard"
)

// ErrMalformedPayload is returned when the payload is not a JSON object.
var ErrMalformedPayload = errors.New("malformed scoreboard payload")

// Filter narrows the games kept in a Result. The zero value keeps everything.
type Filter struct {
	Status   scoreboard.Status
	Group    conferences.GroupID
	HasGroup bool
}

// Normalize decodes raw and maps every usable event to a Game, applying the
// status filter and then the conference filter. Event order is preserved.
func Normalize(sport scoreboard.Sport, raw []byte, filter Filter) (scoreboard.Result, error) {
	if sport.Path() == "" {
		return scoreboard.Result{}, fmt.Errorf("normalize: unsupported sport %q", sport)
	}
	payload, err := decode(raw)
	if err != nil {
		return scoreboard.Result{}, err
	}

	result := scoreboard.Result{
		Sport: sport,
		Games: make([]scoreboard.Game, 0, len(payload.Events)),
	}
	if season := seasonYear(payload); season.Valid {
		year := season.Value
		result.Season = &year
	}
	if sport.WeekBased() {
		if week := currentWeek(payload); week.Valid {
			n := week.Value
			result.Week = &n
		}
		if st := seasonType(payload); st.Valid && scoreboard.SeasonType(st.Value).Valid() {
			result.SeasonType = scoreboard.SeasonType(st.Value)
		}
	} else {
		result.Date = scoreboardDate(payload)
	}

	for _, ev := range payload.Events {
		game, ok := mapEvent(sport, ev)
		if !ok {
			continue
		}
		if filter.Status != "" && game.Status != filter.Status {
			continue
		}
		if filter.HasGroup && !inConference(game, filter.Group) {
			continue
		}
		result.Games = append(result.Games, game)
	}
	return result, nil
}

// LeagueInfo extracts the league, season and current week ESPN reports with a scoreboard.
func LeagueInfo(raw []byte) (scoreboard.LeagueInfo, error) {
	payload, err := decode(raw)
	if err != nil {
		return scoreboard.LeagueInfo{}, err
	}
	var info scoreboard.LeagueInfo
	if len(payload.Leagues) > 0 {
		league := payload.Leagues[0]
		info.ID = league.ID.String()
		info.Name = league.Name
		info.Abbreviation = league.Abbreviation
	}
	if season := seasonYear(payload); season.Valid {
		info.SeasonYear = season.Value
	}
	if st := seasonType(payload); st.Valid && scoreboard.SeasonType(st.Value).Valid() {
		info.SeasonType = scoreboard.SeasonType(st.Value)
	}
	if week := currentWeek(payload); week.Valid {
		info.CurrentWeek = week.Value
	}
	return info, nil
}

// decode fails only when raw is not a JSON object. Type mismatches inside the
// object leave the affected fields at their zero values.
func decode(raw []byte) (scoreboardResponse, error) {
	var payload scoreboardResponse
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return payload, ErrMalformedPayload
	}
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return scoreboardResponse{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
	}
	return payload, nil
}

func firstLeagueSeason(payload scoreboardResponse) seasonResponse {
	if len(payload.Leagues) == 0 {
		return seasonResponse{}
	}
	return payload.Leagues[0].Season
}

func seasonYear(payload scoreboardResponse) flexInt {
	return payload.Season.Year.Or(firstLeagueSeason(payload).Year)
}

func seasonType(payload scoreboardResponse) flexInt {
	return payload.Season.Type.Or(firstLeagueSeason(payload).Type)
}

func currentWeek(payload scoreboardResponse) flexInt {
	week := payload.Week.Or(payload.Season.Week).Or(firstLeagueSeason(payload).Week)
	if !week.Valid && len(payload.Events) > 0 {
		week = payload.Events[0].Week
	}
	return week
}

func scoreboardDate(payload scoreboardResponse) string {
	if len(payload.Events) > 0 {
		if day := timeutil.DatePart(payload.Events[0].Date); day != "" {
			return day
		}
	}
	return timeutil.DatePart(payload.Day.Date)
}

func mapEvent(sport scoreboard.Sport, ev eventResponse) (scoreboard.Game, bool) {
	if len(ev.Competitions) == 0 {
		return scoreboard.Game{}, false
	}
	comp := ev.Competitions[0]
	if len(comp.Competitors) < 2 {
		return scoreboard.Game{}, false
	}

	var home, away *competitorResponse
	for i := range comp.Competitors {
		c := &comp.Competitors[i]
		switch strings.ToLower(c.HomeAway) {
		case "home":
			if home == nil {
				home = c
			}
		case "away":
			if away == nil {
				away = c
			}
		}
	}
	if home == nil || away == nil {
		return scoreboard.Game{}, false
	}

	status := comp.Status
	if status == nil {
		status = ev.Status
	}
	if status == nil {
		status = &statusResponse{}
	}

	id := ev.ID.String()
	if id == "" {
		id = comp.ID.String()
	}
	game := scoreboard.Game{
		ID:       id,
		Status:   mapStatus(*status),
		AwayTeam: mapTeam(*away),
		HomeTeam: mapTeam(*home),
	}
	switch game.Status {
	case scoreboard.StatusInProgress:
		game.GameTime = &scoreboard.GameTime{
			Period: periodLabel(sport, status.Period.Value),
			Clock:  strings.TrimSpace(status.DisplayClock),
		}
	case scoreboard.StatusScheduled:
		game.StartTime = comp.Date
		if game.StartTime == "" {
			game.StartTime = ev.Date
		}
	}
	return game, true
}

func mapTeam(c competitorResponse) scoreboard.Team {
	name := c.Team.DisplayName
	for _, fallback := range []string{c.Team.ShortDisplayName, c.Team.Name, c.Team.Abbreviation} {
		if name != "" {
			break
		}
		name = fallback
	}
	id := c.Team.ID.String()
	if id == "" {
		id = c.ID.String()
	}
	return scoreboard.Team{
		ID:           id,
		Name:         name,
		Abbreviation: c.Team.Abbreviation,
		ConferenceID: c.Team.ConferenceID.String(),
		Score:        c.Score.Value,
	}
}

func mapStatus(s statusResponse) scoreboard.Status {
	if s.Type.Completed {
		return scoreboard.StatusFinal
	}
	switch strings.ToLower(s.Type.State) {
	case "in":
		return scoreboard.StatusInProgress
	case "pre":
		return scoreboard.StatusScheduled
	case "post":
		return scoreboard.StatusFinal
	}
	if s.Period.Value > 0 {
		return scoreboard.StatusInProgress
	}
	return scoreboard.StatusScheduled
}

// periodLabel names a period: quarters read "Q1".."Q4" in football, periods are
// bare numbers elsewhere, and the first overtime is "OT" then "OT2", "OT3".
func periodLabel(sport scoreboard.Sport, period int) string {
	regulation := regulationPeriods(sport)
	switch {
	case period <= 0:
		return ""
	case period <= regulation:
		if sport.WeekBased() {
			return "Q" + strconv.Itoa(period)
		}
		return strconv.Itoa(period)
	case period == regulation+1:
		return "OT"
	default:
		return "OT" + strconv.Itoa(period-regulation)
	}
}

func regulationPeriods(sport scoreboard.Sport) int {
	switch sport {
	case scoreboard.NHL:
		return 3
	case scoreboard.CBB:
		return 2
	default:
		return 4
	}
}

func inConference(game scoreboard.Game, group conferences.GroupID) bool {
	want := group.String()
	return game.HomeTeam.ConferenceID == want || game.AwayTeam.ConferenceID == want
}
