package conferences

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/espn-scores/pkg/scoreboard"
)

func TestResolveIsCaseInsensitive(t *testing.T) {
	for _, input := range []string{"SEC", "sec", " Sec ", "Southeastern Conference"} {
		id, err := Resolve(scoreboard.CFB, Name(input))
		require.NoError(t, err, input)
		assert.Equal(t, CFBSEC, id, input)
	}
}

func TestResolveIsIdempotentWithNumericForm(t *testing.T) {
	for _, sport := range []scoreboard.Sport{scoreboard.CFB, scoreboard.CBB} {
		for _, c := range List(sport) {
			for _, alias := range append([]string{c.Name}, c.Aliases...) {
				id, err := Resolve(sport, Name(alias))
				require.NoError(t, err, alias)
				assert.Equal(t, c.ID, id, alias)

				again, err := Resolve(sport, ID(int(id)))
				require.NoError(t, err)
				assert.Equal(t, id, again)
			}
		}
	}
}

func TestResolveUsesSportSpecificNumbering(t *testing.T) {
	cfb, err := Resolve(scoreboard.CFB, Name("Big Ten"))
	require.NoError(t, err)
	cbb, err := Resolve(scoreboard.CBB, Name("big ten"))
	require.NoError(t, err)

	assert.Equal(t, GroupID(5), cfb)
	assert.Equal(t, GroupID(7), cbb)
}

func TestResolvePassesIDsThrough(t *testing.T) {
	id, err := Resolve(scoreboard.CFB, ID(80))
	require.NoError(t, err)
	assert.Equal(t, GroupID(80), id)
	assert.False(t, Known(scoreboard.CFB, id))
}

func TestResolveUnknownConference(t *testing.T) {
	_, err := Resolve(scoreboard.CFB, Name("XYZ"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownConference))

	var unknown *UnknownConferenceError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "XYZ", unknown.Input)
	assert.Equal(t, scoreboard.CFB, unknown.Sport)
}

func TestResolveSuggestsCloseNames(t *testing.T) {
	_, err := Resolve(scoreboard.CBB, Name("big"))
	var unknown *UnknownConferenceError
	require.True(t, errors.As(err, &unknown))
	assert.NotEmpty(t, unknown.Suggestions)
	assert.LessOrEqual(t, len(unknown.Suggestions), maxSuggestions)
	assert.Contains(t, err.Error(), "did you mean")

	_, err = Resolve(scoreboard.CFB, Name("Big Tan"))
	require.True(t, errors.As(err, &unknown))
	assert.Contains(t, unknown.Suggestions, "Big Ten")
}

func TestResolveUnsupportedSport(t *testing.T) {
	_, err := Resolve(scoreboard.NFL, Name("AFC"))
	assert.ErrorIs(t, err, ErrConferencesUnsupported)
}

func TestParseRef(t *testing.T) {
	ref := ParseRef(" 8 ")
	assert.Equal(t, "8", ref.String())
	id, err := Resolve(scoreboard.CFB, ref)
	require.NoError(t, err)
	assert.Equal(t, CFBSEC, id)

	named := ParseRef("Sun Belt")
	assert.Equal(t, "Sun Belt", named.String())
	assert.False(t, named.IsZero())
	assert.True(t, Ref{}.IsZero())
}

func TestListIsSortedCopy(t *testing.T) {
	list := List(scoreboard.CBB)
	require.Len(t, list, len(cbbConferences))
	for i := 1; i < len(list); i++ {
		assert.LessOrEqual(t, list[i-1].Name, list[i].Name)
	}

	list[0].Aliases[0] = "mutated"
	again := List(scoreboard.CBB)
	assert.NotEqual(t, "mutated", again[0].Aliases[0])
	assert.Nil(t, List(scoreboard.NBA))
}

func TestLookup(t *testing.T) {
	c, ok := Lookup(scoreboard.CFB, CFBSunBelt)
	require.True(t, ok)
	assert.Equal(t, "Sun Belt", c.Name)

	_, ok = Lookup(scoreboard.NHL, 1)
	assert.False(t, ok)
}
