package scoreboard

import (
	"fmt"
	"strings"
)

// Status mirrors the shared contract for game lifecycle states.
type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusFinal      Status = "final"
)

// ParseStatus validates a status filter. An empty string means no filter.
func ParseStatus(raw string) (Status, error) {
	switch s := Status(strings.ToLower(strings.TrimSpace(raw))); s {
	case "", StatusScheduled, StatusInProgress, StatusFinal:
		return s, nil
	default:
		return "", fmt.Errorf("unknown game status %q", raw)
	}
}

// SeasonType distinguishes preseason, regular season and postseason scheduling.
type SeasonType int

const (
	SeasonPre     SeasonType = 1
	SeasonRegular SeasonType = 2
	SeasonPost    SeasonType = 3
)

func (t SeasonType) String() string {
	switch t {
	case SeasonPre:
		return "Preseason"
	case SeasonRegular:
		return "Regular Season"
	case SeasonPost:
		return "Postseason"
	default:
		return fmt.Sprintf("SeasonType(%d)", int(t))
	}
}

// Valid reports whether t is one of the three ESPN season types.
func (t SeasonType) Valid() bool {
	return t >= SeasonPre && t <= SeasonPost
}

// Team captures a competitor's name and score.
type Team struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation,omitempty"`
	ConferenceID string `json:"conference_id,omitempty"`
	Score        int    `json:"score"`
}

// GameTime is the period label and clock of an in-progress game.
type GameTime struct {
	Period string `json:"period"`
	Clock  string `json:"clock,omitempty"`
}

// Game is one event from a scoreboard fetch.
type Game struct {
	ID        string    `json:"id"`
	Status    Status    `json:"status"`
	AwayTeam  Team      `json:"away_team"`
	HomeTeam  Team      `json:"home_team"`
	GameTime  *GameTime `json:"game_time,omitempty"`
	StartTime string    `json:"start_time,omitempty"`
}

// Result is the payload returned by every facade operation.
type Result struct {
	Sport      Sport      `json:"sport"`
	Week       *int       `json:"week,omitempty"`
	SeasonType SeasonType `json:"season_type,omitempty"`
	Season     *int       `json:"season,omitempty"`
	Date       string     `json:"date,omitempty"`
	Games      []Game     `json:"games"`
}

// LeagueInfo describes the league context ESPN reports alongside a scoreboard.
type LeagueInfo struct {
	ID           string     `json:"id,omitempty"`
	Name         string     `json:"name,omitempty"`
	Abbreviation string     `json:"abbreviation,omitempty"`
	SeasonYear   int        `json:"season_year,omitempty"`
	SeasonType   SeasonType `json:"season_type,omitempty"`
	CurrentWeek  int        `json:"current_week,omitempty"`
}
