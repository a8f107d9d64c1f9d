package scoreboard

import (
	"fmt"
	"strings"
)

// Sport identifies one of the supported ESPN leagues.
type Sport string

const (
	NFL Sport = "NFL"
	NBA Sport = "NBA"
	NHL Sport = "NHL"
	CFB Sport = "CFB"
	CBB Sport = "CBB"
)

// Sports lists every supported league in a stable order.
var Sports = []Sport{NFL, NBA, NHL, CFB, CBB}

var sportPaths = map[Sport]string{
	NFL: "football/nfl",
	NBA: "basketball/nba",
	NHL: "hockey/nhl",
	CFB: "football/college-football",
	CBB: "basketball/mens-college-basketball",
}

// ParseSport matches a league name in any case.
func ParseSport(raw string) (Sport, error) {
	s := Sport(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := sportPaths[s]; !ok {
		return "", fmt.Errorf("unknown sport %q", raw)
	}
	return s, nil
}

// Path returns the ESPN API path segment, e.g. "football/nfl".
func (s Sport) Path() string {
	return sportPaths[s]
}

// WeekBased reports whether the league schedules by week rather than by date.
func (s Sport) WeekBased() bool {
	return s == NFL || s == CFB
}

// HasConferences reports whether ESPN scopes the league by conference group.
func (s Sport) HasConferences() bool {
	return s == CFB || s == CBB
}
