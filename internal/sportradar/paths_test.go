// ABOUTME: Tests for parameter defaulting and normalization helpers.
// ABOUTME: Covers date splitting, base URL trimming, and season types.

package sportradar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitDate(t *testing.T) {
	y, m, d, err := splitDate("2024-07-04")
	require.NoError(t, err)
	assert.Equal(t, "2024", y)
	assert.Equal(t, "07", m)
	assert.Equal(t, "04", d)
}

func TestSplitDateRejectsBadInput(t *testing.T) {
	for _, raw := range []string{"2024-7-4", "07/04/2024", "tomorrow", "2024-13-01"} {
		_, _, _, err := splitDate(raw)
		assert.Error(t, err, "input %q", raw)
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	assert.Equal(t, defaultBaseURL, normalizeBaseURL(""))
	assert.Equal(t, "http://localhost:9090/mlb", normalizeBaseURL("http://localhost:9090/mlb/"))
}

func TestNormalizeSeasonType(t *testing.T) {
	assert.Equal(t, "REG", normalizeSeasonType(""))
	assert.Equal(t, "PST", normalizeSeasonType("pst"))
	assert.Equal(t, "REG", normalizeSeasonType(" reg "))
}
