// ABOUTME: Post-fetch narrowing filters for standings and league leaders.
// ABOUTME: Pure functions; an unmatched filter falls through to the full body.

package sportradar

import "strings"

// FilterStandingsByLeague narrows a standings body to a single league when
// league is "AL" or "NL" (case-insensitive). Any other league value, or a
// body without a matching league entry, returns the original body
// unchanged.
func FilterStandingsByLeague(body map[string]any, league string) map[string]any {
	alias := strings.ToUpper(strings.TrimSpace(league))
	if alias != "AL" && alias != "NL" {
		return body
	}

	standings, ok := body["standings"].(map[string]any)
	if !ok {
		return body
	}
	leagues, ok := standings["leagues"].([]any)
	if !ok {
		return body
	}

	for _, entry := range leagues {
		lg, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if a, _ := lg["alias"].(string); strings.EqualFold(a, alias) {
			return map[string]any{"league": lg}
		}
	}
	return body
}

// FilterLeadersByCategory narrows a leaders body to the groups whose key
// contains the category substring, when category is "hitting" or
// "pitching" (case-insensitive). If nothing matches, the original body is
// returned unchanged.
func FilterLeadersByCategory(body map[string]any, category string) map[string]any {
	cat := strings.ToLower(strings.TrimSpace(category))
	if cat != "hitting" && cat != "pitching" {
		return body
	}

	leaders, ok := body["leaders"].(map[string]any)
	if !ok {
		return body
	}

	filtered := make(map[string]any)
	for key, value := range leaders {
		if strings.Contains(strings.ToLower(key), cat) {
			filtered[key] = value
		}
	}
	if len(filtered) == 0 {
		return body
	}
	return map[string]any{"leaders": filtered, "category": category}
}
