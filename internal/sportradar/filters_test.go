// ABOUTME: Tests for the standings and leaders post-fetch filters.
// ABOUTME: Covers matches, case-insensitivity, and fall-through behavior.

package sportradar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standingsBody() map[string]any {
	return map[string]any{
		"season": map[string]any{"year": float64(2024)},
		"standings": map[string]any{
			"leagues": []any{
				map[string]any{"alias": "AL", "name": "American League"},
				map[string]any{"alias": "NL", "name": "National League"},
			},
		},
	}
}

func TestFilterStandingsByLeagueMatch(t *testing.T) {
	body := standingsBody()
	got := FilterStandingsByLeague(body, "al")

	league, ok := got["league"].(map[string]any)
	require.True(t, ok, "expected a wrapped league entry")
	assert.Equal(t, "AL", league["alias"])
	assert.Equal(t, "American League", league["name"])
	assert.NotContains(t, got, "standings")
}

func TestFilterStandingsByLeagueCaseInsensitive(t *testing.T) {
	got := FilterStandingsByLeague(standingsBody(), "Nl")
	league, ok := got["league"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "NL", league["alias"])
}

func TestFilterStandingsByLeagueUnknownAlias(t *testing.T) {
	body := standingsBody()
	got := FilterStandingsByLeague(body, "XX")
	assert.Equal(t, body, got, "unknown league should fall through unfiltered")
}

func TestFilterStandingsByLeagueEmpty(t *testing.T) {
	body := standingsBody()
	assert.Equal(t, body, FilterStandingsByLeague(body, ""))
}

func TestFilterStandingsByLeagueNoMatchingEntry(t *testing.T) {
	body := map[string]any{
		"standings": map[string]any{
			"leagues": []any{
				map[string]any{"alias": "AL"},
			},
		},
	}
	got := FilterStandingsByLeague(body, "NL")
	assert.Equal(t, body, got, "missing entry should fall through unfiltered")
}

func TestFilterStandingsByLeagueMalformedBody(t *testing.T) {
	body := map[string]any{"standings": "not a map"}
	assert.Equal(t, body, FilterStandingsByLeague(body, "AL"))
}

func leadersBody() map[string]any {
	return map[string]any{
		"season": map[string]any{"year": float64(2024)},
		"leaders": map[string]any{
			"hitting_avg":  []any{"player-1"},
			"hitting_hr":   []any{"player-2"},
			"pitching_era": []any{"player-3"},
		},
	}
}

func TestFilterLeadersByCategoryPitching(t *testing.T) {
	got := FilterLeadersByCategory(leadersBody(), "pitching")

	leaders, ok := got["leaders"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, leaders, 1)
	assert.Contains(t, leaders, "pitching_era")
	assert.Equal(t, "pitching", got["category"])
}

func TestFilterLeadersByCategoryHitting(t *testing.T) {
	got := FilterLeadersByCategory(leadersBody(), "HITTING")

	leaders, ok := got["leaders"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, leaders, 2)
	assert.Contains(t, leaders, "hitting_avg")
	assert.Contains(t, leaders, "hitting_hr")
	assert.Equal(t, "HITTING", got["category"])
}

func TestFilterLeadersByCategoryUnknown(t *testing.T) {
	body := leadersBody()
	assert.Equal(t, body, FilterLeadersByCategory(body, "fielding"))
}

func TestFilterLeadersByCategoryNoMatches(t *testing.T) {
	body := map[string]any{
		"leaders": map[string]any{"fielding_po": []any{}},
	}
	got := FilterLeadersByCategory(body, "pitching")
	assert.Equal(t, body, got, "no matching groups should fall through unfiltered")
}

func TestFilterLeadersByCategoryMalformedBody(t *testing.T) {
	body := map[string]any{"leaders": []any{"wrong shape"}}
	assert.Equal(t, body, FilterLeadersByCategory(body, "hitting"))
}
