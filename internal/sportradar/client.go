// ABOUTME: HTTP client for the SportRadar MLB v8 API.
// ABOUTME: One typed method per resource; shared GET/decode/error path.

package sportradar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

const defaultBaseURL = "https://api.sportradar.com/mlb/trial/v8"

// Config controls how the client reaches the SportRadar API.
type Config struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *log.Logger
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches MLB resources from SportRadar and returns the decoded
// JSON bodies. It is immutable after construction and safe for concurrent
// use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	log        *log.Logger
	now        func() time.Time
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		log:        logger,
		now:        time.Now,
	}
}

// DailySchedule returns the MLB schedule for a date (YYYY-MM-DD), or for
// today when date is empty.
func (c *Client) DailySchedule(ctx context.Context, date string) (map[string]any, error) {
	y, m, d, err := c.resolveDate(date)
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/en/games/%s/%s/%s/schedule.json", y, m, d)
	return c.get(ctx, "daily_schedule", path, params{"date": y + "-" + m + "-" + d})
}

// GameSummary returns summary information for a game.
func (c *Client) GameSummary(ctx context.Context, gameID string) (map[string]any, error) {
	if gameID == "" {
		return nil, fmt.Errorf("game_id is required")
	}
	path := fmt.Sprintf("/en/games/%s/summary.json", gameID)
	return c.get(ctx, "game_summary", path, params{"game_id": gameID})
}

// GameBoxscore returns the detailed boxscore for a game.
func (c *Client) GameBoxscore(ctx context.Context, gameID string) (map[string]any, error) {
	if gameID == "" {
		return nil, fmt.Errorf("game_id is required")
	}
	path := fmt.Sprintf("/en/games/%s/boxscore.json", gameID)
	return c.get(ctx, "game_boxscore", path, params{"game_id": gameID})
}

// GamePlayByPlay returns play-by-play data for a game.
func (c *Client) GamePlayByPlay(ctx context.Context, gameID string) (map[string]any, error) {
	if gameID == "" {
		return nil, fmt.Errorf("game_id is required")
	}
	path := fmt.Sprintf("/en/games/%s/pbp.json", gameID)
	return c.get(ctx, "game_play_by_play", path, params{"game_id": gameID})
}

// GamePitchMetrics returns pitch-level metrics for a game.
func (c *Client) GamePitchMetrics(ctx context.Context, gameID string) (map[string]any, error) {
	if gameID == "" {
		return nil, fmt.Errorf("game_id is required")
	}
	path := fmt.Sprintf("/en/games/%s/pitch_metrics.json", gameID)
	return c.get(ctx, "game_pitch_metrics", path, params{"game_id": gameID})
}

// Standings returns season standings. Year 0 means the current year. When
// league is "AL" or "NL" (any case) the result is narrowed to that league;
// any other value returns the full body.
func (c *Client) Standings(ctx context.Context, year int, league string) (map[string]any, error) {
	y := c.resolveYear(year)
	path := fmt.Sprintf("/en/seasons/%d/standings.json", y)
	body, err := c.get(ctx, "standings", path, params{"year": fmt.Sprint(y)})
	if err != nil {
		return nil, err
	}
	return FilterStandingsByLeague(body, league), nil
}

// PlayerProfile returns the profile for a player.
func (c *Client) PlayerProfile(ctx context.Context, playerID string) (map[string]any, error) {
	if playerID == "" {
		return nil, fmt.Errorf("player_id is required")
	}
	path := fmt.Sprintf("/en/players/%s/profile.json", playerID)
	return c.get(ctx, "player_profile", path, params{"player_id": playerID})
}

// PlayerSeasonalStats returns a player's statistics for a season.
// Year 0 means the current year.
func (c *Client) PlayerSeasonalStats(ctx context.Context, playerID string, year int) (map[string]any, error) {
	if playerID == "" {
		return nil, fmt.Errorf("player_id is required")
	}
	y := c.resolveYear(year)
	path := fmt.Sprintf("/en/players/%s/seasons/%d/statistics.json", playerID, y)
	return c.get(ctx, "player_seasonal_stats", path, params{"player_id": playerID, "year": fmt.Sprint(y)})
}

// SeasonalSplits returns a player's seasonal splits. The splitType
// parameter is accepted for callers but the upstream endpoint returns all
// splits in one document, so it is never applied to the request.
func (c *Client) SeasonalSplits(ctx context.Context, playerID string, year int, splitType string) (map[string]any, error) {
	if playerID == "" {
		return nil, fmt.Errorf("player_id is required")
	}
	y := c.resolveYear(year)
	if splitType == "" {
		splitType = "home_away"
	}
	c.log.Debug("split_type accepted but not applied", "split_type", splitType)
	path := fmt.Sprintf("/en/players/%s/seasons/%d/splits.json", playerID, y)
	return c.get(ctx, "seasonal_splits", path, params{"player_id": playerID, "year": fmt.Sprint(y)})
}

// TeamProfile returns the profile for a team.
func (c *Client) TeamProfile(ctx context.Context, teamID string) (map[string]any, error) {
	if teamID == "" {
		return nil, fmt.Errorf("team_id is required")
	}
	path := fmt.Sprintf("/en/teams/%s/profile.json", teamID)
	return c.get(ctx, "team_profile", path, params{"team_id": teamID})
}

// TeamRoster returns the current roster for a team.
func (c *Client) TeamRoster(ctx context.Context, teamID string) (map[string]any, error) {
	if teamID == "" {
		return nil, fmt.Errorf("team_id is required")
	}
	path := fmt.Sprintf("/en/teams/%s/roster.json", teamID)
	return c.get(ctx, "team_roster", path, params{"team_id": teamID})
}

// TeamSeasonalStats returns a team's statistics for a season. Year 0 means
// the current year; an empty seasonType means "REG".
func (c *Client) TeamSeasonalStats(ctx context.Context, teamID string, year int, seasonType string) (map[string]any, error) {
	if teamID == "" {
		return nil, fmt.Errorf("team_id is required")
	}
	y := c.resolveYear(year)
	st := normalizeSeasonType(seasonType)
	path := fmt.Sprintf("/en/seasons/%d/%s/teams/%s/statistics.json", y, st, teamID)
	return c.get(ctx, "seasonal_statistics", path, params{"team_id": teamID, "year": fmt.Sprint(y), "season_type": st})
}

// LeagueLeaders returns statistical leaders for a season. Year 0 means the
// current year; an empty category means "hitting". When category is
// "hitting" or "pitching" the result is narrowed to matching leader
// groups; any other value returns the full body.
func (c *Client) LeagueLeaders(ctx context.Context, year int, category string) (map[string]any, error) {
	y := c.resolveYear(year)
	if category == "" {
		category = "hitting"
	}
	path := fmt.Sprintf("/en/seasons/%d/leaders.json", y)
	body, err := c.get(ctx, "league_leaders", path, params{"year": fmt.Sprint(y)})
	if err != nil {
		return nil, err
	}
	return FilterLeadersByCategory(body, category), nil
}

// Injuries returns the current league-wide injury report.
func (c *Client) Injuries(ctx context.Context) (map[string]any, error) {
	return c.get(ctx, "injuries", "/en/injuries.json", nil)
}

// Transactions returns transactions for a date (YYYY-MM-DD), or recent
// transactions when date is empty.
func (c *Client) Transactions(ctx context.Context, date string) (map[string]any, error) {
	if date == "" {
		return c.get(ctx, "transactions", "/en/league/transactions.json", nil)
	}
	y, m, d, err := splitDate(date)
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/en/league/%s/%s/%s/transactions.json", y, m, d)
	return c.get(ctx, "transactions", path, params{"date": date})
}

// DraftSummary returns the draft summary for a year. Year is required.
func (c *Client) DraftSummary(ctx context.Context, year int) (map[string]any, error) {
	if year == 0 {
		return nil, fmt.Errorf("year is required")
	}
	path := fmt.Sprintf("/en/league/drafts/%d/summary.json", year)
	return c.get(ctx, "draft_summary", path, params{"year": fmt.Sprint(year)})
}

// TeamHierarchy returns the full league/division/team tree.
func (c *Client) TeamHierarchy(ctx context.Context) (map[string]any, error) {
	return c.get(ctx, "team_hierarchy", "/en/league/hierarchy.json", nil)
}

type params map[string]string

// get issues a GET against the API and decodes the JSON body. Failures
// are translated into *APIError and logged exactly once, without the
// credential.
func (c *Client) get(ctx context.Context, resource string, path string, p params) (map[string]any, error) {
	reqID := uuid.NewString()[:8]
	logger := c.log.With("request_id", reqID, "resource", resource)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		apiErr := &APIError{Kind: KindTransport, Resource: resource, Params: p, Message: c.redact(err.Error())}
		logger.Error("building request failed", errFields(apiErr)...)
		return nil, apiErr
	}
	q := req.URL.Query()
	q.Set("api_key", c.apiKey)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	logger.Debug("fetching", "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error includes the full URL, query string and all. Scrub the
		// credential before the message can reach a log line or a caller.
		apiErr := &APIError{Kind: KindTransport, Resource: resource, Params: p, Message: c.redact(err.Error())}
		logger.Error("request failed", errFields(apiErr)...)
		return nil, apiErr
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		apiErr := &APIError{
			Kind:       KindUpstream,
			Resource:   resource,
			Params:     p,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
		logger.Error("upstream error", errFields(apiErr)...)
		return nil, apiErr
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		apiErr := &APIError{Kind: KindDecode, Resource: resource, Params: p, Message: err.Error(), Err: err}
		logger.Error("decoding response failed", errFields(apiErr)...)
		return nil, apiErr
	}

	return payload, nil
}

func (c *Client) redact(s string) string {
	if c.apiKey == "" {
		return s
	}
	return strings.ReplaceAll(s, c.apiKey, "REDACTED")
}

func errFields(e *APIError) []any {
	fields := []any{"kind", string(e.Kind)}
	if e.StatusCode > 0 {
		fields = append(fields, "status", e.StatusCode)
	}
	for _, k := range sortedKeys(e.Params) {
		fields = append(fields, k, e.Params[k])
	}
	if e.Message != "" {
		fields = append(fields, "message", e.Message)
	}
	return fields
}
