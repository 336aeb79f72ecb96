// ABOUTME: Parameter defaulting and normalization for API paths.
// ABOUTME: Resolves dates, years, and season types before requests are built.

package sportradar

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultSeasonType = "REG"
)

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

// resolveDate returns the year, month, and day components of a YYYY-MM-DD
// date, substituting today (server-local) when raw is empty.
func (c *Client) resolveDate(raw string) (string, string, string, error) {
	if raw == "" {
		raw = c.now().Format("2006-01-02")
	}
	return splitDate(raw)
}

func splitDate(raw string) (string, string, string, error) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return "", "", "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", raw)
	}
	return t.Format("2006"), t.Format("01"), t.Format("02"), nil
}

func (c *Client) resolveYear(year int) int {
	if year > 0 {
		return year
	}
	return c.now().Year()
}

func normalizeSeasonType(raw string) string {
	raw = strings.TrimSpace(strings.ToUpper(raw))
	if raw == "" {
		return defaultSeasonType
	}
	return raw
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
