package conferences

import "github.com/preston-bernstein/espn-scores/pkg/scoreboard"

// College football group IDs.
const (
	CFBACC          GroupID = 1
	CFBBig12        GroupID = 4
	CFBBigTen       GroupID = 5
	CFBSEC          GroupID = 8
	CFBAmerican     GroupID = 151
	CFBCUSA         GroupID = 12
	CFBMAC          GroupID = 15
	CFBMountainWest GroupID = 17
	CFBSunBelt      GroupID = 37
	CFBBigSky       GroupID = 20
	CFBCAA          GroupID = 48
	CFBIvy          GroupID = 22
	CFBMVFC         GroupID = 21
	CFBPioneer      GroupID = 28
	CFBSWAC         GroupID = 31
)

// College basketball group IDs. ESPN numbers these independently of football.
const (
	CBBACC          GroupID = 2
	CBBBigEast      GroupID = 4
	CBBBigTen       GroupID = 7
	CBBBig12        GroupID = 8
	CBBSEC          GroupID = 23
	CBBAmerican     GroupID = 62
	CBBAtlantic10   GroupID = 3
	CBBCUSA         GroupID = 11
	CBBMAC          GroupID = 15
	CBBMountainWest GroupID = 17
	CBBPac12        GroupID = 21
	CBBSunBelt      GroupID = 37
	CBBWestCoast    GroupID = 18
)

var cfbConferences = []Conference{
	{Name: "ACC", ID: CFBACC, Aliases: []string{"acc", "atlantic coast", "atlantic coast conference"}},
	{Name: "Big 12", ID: CFBBig12, Aliases: []string{"big 12", "big12"}},
	{Name: "Big Ten", ID: CFBBigTen, Aliases: []string{"big ten", "bigten", "big 10", "big10"}},
	{Name: "SEC", ID: CFBSEC, Aliases: []string{"sec", "southeastern", "southeastern conference"}},
	{Name: "American", ID: CFBAmerican, Aliases: []string{"american", "aac", "american athletic", "american athletic conference"}},
	{Name: "Conference USA", ID: CFBCUSA, Aliases: []string{"conference usa", "cusa", "c-usa"}},
	{Name: "Mid-American", ID: CFBMAC, Aliases: []string{"mid-american", "mid american", "mac"}},
	{Name: "Mountain West", ID: CFBMountainWest, Aliases: []string{"mountain west", "mwc"}},
	{Name: "Sun Belt", ID: CFBSunBelt, Aliases: []string{"sun belt", "sunbelt"}},
	{Name: "Big Sky", ID: CFBBigSky, Aliases: []string{"big sky"}},
	{Name: "CAA", ID: CFBCAA, Aliases: []string{"caa", "coastal athletic"}},
	{Name: "Ivy League", ID: CFBIvy, Aliases: []string{"ivy league", "ivy"}},
	{Name: "Missouri Valley", ID: CFBMVFC, Aliases: []string{"missouri valley", "mvfc"}},
	{Name: "Pioneer", ID: CFBPioneer, Aliases: []string{"pioneer"}},
	{Name: "SWAC", ID: CFBSWAC, Aliases: []string{"swac", "southwestern athletic"}},
}

var cbbConferences = []Conference{
	{Name: "ACC", ID: CBBACC, Aliases: []string{"acc", "atlantic coast", "atlantic coast conference"}},
	{Name: "Big East", ID: CBBBigEast, Aliases: []string{"big east", "bigeast"}},
	{Name: "Big 12", ID: CBBBig12, Aliases: []string{"big 12", "big12"}},
	{Name: "Big Ten", ID: CBBBigTen, Aliases: []string{"big ten", "bigten", "big 10", "big10"}},
	{Name: "SEC", ID: CBBSEC, Aliases: []string{"sec", "southeastern", "southeastern conference"}},
	{Name: "American", ID: CBBAmerican, Aliases: []string{"american", "aac", "american athletic"}},
	{Name: "Atlantic 10", ID: CBBAtlantic10, Aliases: []string{"atlantic 10", "a10", "a-10"}},
	{Name: "Conference USA", ID: CBBCUSA, Aliases: []string{"conference usa", "cusa", "c-usa"}},
	{Name: "Mid-American", ID: CBBMAC, Aliases: []string{"mid-american", "mid american", "mac"}},
	{Name: "Mountain West", ID: CBBMountainWest, Aliases: []string{"mountain west", "mwc"}},
	{Name: "Pac-12", ID: CBBPac12, Aliases: []string{"pac-12", "pac 12"}},
	{Name: "Sun Belt", ID: CBBSunBelt, Aliases: []string{"sun belt", "sunbelt"}},
	{Name: "West Coast", ID: CBBWestCoast, Aliases: []string{"west coast", "wcc", "west coast conference"}},
}

var registry = map[scoreboard.Sport]*table{
	scoreboard.CFB: newTable(cfbConferences),
	scoreboard.CBB: newTable(cbbConferences),
}
