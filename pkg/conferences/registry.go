// Package conferences maps conference names and abbreviations to the numeric
// group IDs ESPN uses to scope college scoreboards.
package conferences

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/preston-bernstein/espn-scores/pkg/scoreboard"
)

const maxSuggestions = 3

var (
	// ErrUnknownConference is matched by every *UnknownConferenceError.
	ErrUnknownConference = errors.New("unknown conference")
	// ErrConferencesUnsupported is returned for leagues without conference groups.
	ErrConferencesUnsupported = errors.New("sport has no conference groups")
)

// GroupID is the value ESPN expects in the groups query parameter.
type GroupID int

func (g GroupID) String() string {
	return strconv.Itoa(int(g))
}

// Conference is one registry entry.
type Conference struct {
	Name    string   `json:"name"`
	ID      GroupID  `json:"id"`
	Aliases []string `json:"aliases"`
}

// Ref is a conference given either by name or by numeric group ID.
type Ref struct {
	name string
	id   GroupID
	isID bool
}

// Name references a conference by display name or abbreviation.
func Name(name string) Ref {
	return Ref{name: name}
}

// ID references a conference by its numeric group ID.
func ID(id int) Ref {
	return Ref{id: GroupID(id), isID: true}
}

// ParseRef treats integer strings as group IDs and anything else as a name.
func ParseRef(raw string) Ref {
	trimmed := strings.TrimSpace(raw)
	if n, err := strconv.Atoi(trimmed); err == nil {
		return ID(n)
	}
	return Name(trimmed)
}

// IsZero reports whether the ref was never set.
func (r Ref) IsZero() bool {
	return !r.isID && r.name == ""
}

func (r Ref) String() string {
	if r.isID {
		return r.id.String()
	}
	return r.name
}

// UnknownConferenceError reports a name with no alias match.
type UnknownConferenceError struct {
	Sport       scoreboard.Sport
	Input       string
	Suggestions []string
}

func (e *UnknownConferenceError) Error() string {
	msg := fmt.Sprintf("unknown %s conference %q", e.Sport, e.Input)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e *UnknownConferenceError) Is(target error) bool {
	return target == ErrUnknownConference
}

// Resolve maps ref to a group ID for sport. Numeric refs pass through unchanged.
func Resolve(sport scoreboard.Sport, ref Ref) (GroupID, error) {
	tbl, ok := registry[sport]
	if !ok {
		return 0, fmt.Errorf("%s: %w", sport, ErrConferencesUnsupported)
	}
	if ref.isID {
		return ref.id, nil
	}
	key := normalizeName(ref.name)
	if id, ok := tbl.byAlias[key]; ok {
		return id, nil
	}
	return 0, &UnknownConferenceError{
		Sport:       sport,
		Input:       ref.name,
		Suggestions: tbl.suggest(key),
	}
}

// Known reports whether id belongs to a conference listed for sport.
func Known(sport scoreboard.Sport, id GroupID) bool {
	_, ok := Lookup(sport, id)
	return ok
}

// Lookup returns the registry entry for id.
func Lookup(sport scoreboard.Sport, id GroupID) (Conference, bool) {
	tbl, ok := registry[sport]
	if !ok {
		return Conference{}, false
	}
	c, ok := tbl.byID[id]
	return c, ok
}

// List returns the conferences for sport sorted by name.
func List(sport scoreboard.Sport) []Conference {
	tbl, ok := registry[sport]
	if !ok {
		return nil
	}
	out := make([]Conference, len(tbl.entries))
	for i, c := range tbl.entries {
		c.Aliases = append([]string(nil), c.Aliases...)
		out[i] = c
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

type table struct {
	entries []Conference
	byAlias map[string]GroupID
	byID    map[GroupID]Conference
	aliases []string
}

func newTable(entries []Conference) *table {
	t := &table{
		entries: entries,
		byAlias: make(map[string]GroupID),
		byID:    make(map[GroupID]Conference, len(entries)),
	}
	for _, c := range entries {
		t.byID[c.ID] = c
		for _, alias := range append([]string{c.Name}, c.Aliases...) {
			key := normalizeName(alias)
			if _, dup := t.byAlias[key]; dup {
				continue
			}
			t.byAlias[key] = c.ID
			t.aliases = append(t.aliases, key)
		}
	}
	return t
}

// suggest returns canonical names whose aliases resemble input.
func (t *table) suggest(input string) []string {
	if input == "" {
		return nil
	}
	ranks := fuzzy.RankFindFold(input, t.aliases)
	sort.Sort(ranks)
	var targets []string
	for _, r := range ranks {
		targets = append(targets, r.Target)
	}
	if len(targets) == 0 {
		for _, alias := range t.aliases {
			if fuzzy.LevenshteinDistance(input, alias) <= 2 {
				targets = append(targets, alias)
			}
		}
	}

	seen := make(map[GroupID]bool)
	var out []string
	for _, alias := range targets {
		id := t.byAlias[alias]
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, t.byID[id].Name)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
