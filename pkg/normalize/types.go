package normalize

// Raw ESPN scoreboard shapes. Only the fields the normalizer reads are declared;
// leaf values that ESPN types inconsistently use the flex decoders.

type scoreboardResponse struct {
	Leagues []leagueResponse `json:"leagues"`
	Season  seasonResponse   `json:"season"`
	Week    flexInt          `json:"week"`
	Day     dayResponse      `json:"day"`
	Events  []eventResponse  `json:"events"`
}

type leagueResponse struct {
	ID           flexString     `json:"id"`
	Name         string         `json:"name"`
	Abbreviation string         `json:"abbreviation"`
	Season       seasonResponse `json:"season"`
}

type seasonResponse struct {
	Year flexInt `json:"year"`
	Type flexInt `json:"type"`
	Week flexInt `json:"week"`
}

type dayResponse struct {
	Date string `json:"date"`
}

type eventResponse struct {
	ID           flexString            `json:"id"`
	Date         string                `json:"date"`
	Name         string                `json:"name"`
	Week         flexInt               `json:"week"`
	Status       *statusResponse       `json:"status"`
	Competitions []competitionResponse `json:"competitions"`
}

type competitionResponse struct {
	ID          flexString           `json:"id"`
	Date        string               `json:"date"`
	Competitors []competitorResponse `json:"competitors"`
	Status      *statusResponse      `json:"status"`
}

type competitorResponse struct {
	ID       flexString   `json:"id"`
	HomeAway string       `json:"homeAway"`
	Score    flexInt      `json:"score"`
	Team     teamResponse `json:"team"`
}

type teamResponse struct {
	ID               flexString `json:"id"`
	DisplayName      string     `json:"displayName"`
	ShortDisplayName string     `json:"shortDisplayName"`
	Name             string     `json:"name"`
	Abbreviation     string     `json:"abbreviation"`
	ConferenceID     flexString `json:"conferenceId"`
}

type statusResponse struct {
	DisplayClock string             `json:"displayClock"`
	Period       flexInt            `json:"period"`
	Type         statusTypeResponse `json:"type"`
}

type statusTypeResponse struct {
	Name      string `json:"name"`
	State     string `json:"state"`
	Completed bool   `json:"completed"`
}
