package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/yourusername/prop-parlay/internal/models"
)

const statsFeedSourceName = "stats_feed"

const feedDisabledMsg = "feed source is disabled"

// StatsFeedClient implements FeedSource for the NBA stats feed API
type StatsFeedClient struct {
	httpClient *RateLimitedHTTPClient
	baseURL    string
	apiKey     string
	enabled    bool
	logger     *log.Logger
}

// statsFeedGame represents a game from the stats feed API
type statsFeedGame struct {
	ID         string `json:"id"`
	HomeTeamID string `json:"homeTeamId"`
	AwayTeamID string `json:"awayTeamId"`
	StartTime  string `json:"startTime"`
}

// statsFeedProp represents a posted prop line from the stats feed API
type statsFeedProp struct {
	AthleteID  string  `json:"athleteId"`
	PlayerName string  `json:"playerName"`
	TeamID     string  `json:"teamId"`
	StatType   string  `json:"statType"`
	Line       float64 `json:"line"`
	OverOdds   *int    `json:"overOdds"`
	UnderOdds  *int    `json:"underOdds"`
}

// statsFeedPrediction represents a model projection from the stats feed API
type statsFeedPrediction struct {
	AthleteID   string  `json:"athleteId"`
	StatType    string  `json:"statType"`
	Prediction  float64 `json:"prediction"`
	Edge        float64 `json:"edge"`
	Confidence  string  `json:"confidence"`
	RecentTrend *string `json:"recentTrend"`
}

// statsFeedInjury represents an injury report entry from the stats feed API
type statsFeedInjury struct {
	AthleteID string `json:"athleteId"`
	TeamID    string `json:"teamId"`
	Status    string `json:"status"`
	Position  string `json:"position"`
}

// statsFeedContext represents game context from the stats feed API
type statsFeedContext struct {
	Spread     float64           `json:"spread"`
	OverUnder  float64           `json:"overUnder"`
	HomeTeamID string            `json:"homeTeamId"`
	AwayTeamID string            `json:"awayTeamId"`
	Injuries   []statsFeedInjury `json:"injuries"`
}

// NewStatsFeedClient creates a new stats feed API client
func NewStatsFeedClient(httpClient *RateLimitedHTTPClient, baseURL, apiKey string, enabled bool, logger *log.Logger) *StatsFeedClient {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &StatsFeedClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		enabled:    enabled,
		logger:     logger,
	}
}

// FetchUpcomingGames retrieves games scheduled within the specified window
func (c *StatsFeedClient) FetchUpcomingGames(ctx context.Context, from, to time.Time) ([]GameInfo, error) {
	if !c.enabled {
		return nil, NewDataSourceError(statsFeedSourceName, ErrCodeNetworkError, feedDisabledMsg, nil)
	}

	url := fmt.Sprintf("%s/games?from=%s&to=%s", c.baseURL, from.Format("2006-01-02"), to.Format("2006-01-02"))

	var feedGames []statsFeedGame
	if err := c.getJSON(ctx, url, "failed to fetch games", &feedGames); err != nil {
		return nil, err
	}

	games := make([]GameInfo, 0, len(feedGames))
	for _, fg := range feedGames {
		startTime, err := time.Parse(time.RFC3339, fg.StartTime)
		if err != nil {
			c.logger.Printf("Skipping game %s with unparseable start time %q: %v", fg.ID, fg.StartTime, err)
			continue
		}
		games = append(games, GameInfo{
			GameID:     fg.ID,
			HomeTeamID: fg.HomeTeamID,
			AwayTeamID: fg.AwayTeamID,
			StartTime:  startTime,
		})
	}

	return games, nil
}

// FetchProps retrieves the posted prop lines for a game
func (c *StatsFeedClient) FetchProps(ctx context.Context, gameID string) ([]models.PropLine, error) {
	if !c.enabled {
		return nil, NewDataSourceError(statsFeedSourceName, ErrCodeNetworkError, feedDisabledMsg, nil)
	}

	url := fmt.Sprintf("%s/games/%s/props", c.baseURL, gameID)

	var feedProps []statsFeedProp
	if err := c.getJSON(ctx, url, "failed to fetch props", &feedProps); err != nil {
		return nil, err
	}

	props := make([]models.PropLine, len(feedProps))
	for i, fp := range feedProps {
		props[i] = models.PropLine{
			AthleteID:  fp.AthleteID,
			PlayerName: fp.PlayerName,
			TeamID:     fp.TeamID,
			StatType:   fp.StatType,
			Line:       fp.Line,
			OverOdds:   fp.OverOdds,
			UnderOdds:  fp.UnderOdds,
		}
	}

	return props, nil
}

// FetchPredictions retrieves model projections for a game
func (c *StatsFeedClient) FetchPredictions(ctx context.Context, gameID string) ([]models.Prediction, error) {
	if !c.enabled {
		return nil, NewDataSourceError(statsFeedSourceName, ErrCodeNetworkError, feedDisabledMsg, nil)
	}

	url := fmt.Sprintf("%s/games/%s/predictions", c.baseURL, gameID)

	var feedPredictions []statsFeedPrediction
	if err := c.getJSON(ctx, url, "failed to fetch predictions", &feedPredictions); err != nil {
		return nil, err
	}

	predictions := make([]models.Prediction, len(feedPredictions))
	for i, fp := range feedPredictions {
		trend := models.TrendNeutral
		if fp.RecentTrend != nil {
			trend = models.Trend(*fp.RecentTrend)
		}
		predictions[i] = models.Prediction{
			AthleteID:   fp.AthleteID,
			StatType:    fp.StatType,
			Predicted:   fp.Prediction,
			Edge:        fp.Edge,
			Confidence:  models.Confidence(fp.Confidence),
			RecentTrend: trend,
		}
	}

	return predictions, nil
}

// FetchContext retrieves game context (spread, total, injuries) for a game
func (c *StatsFeedClient) FetchContext(ctx context.Context, gameID string) (*models.ContextSignals, error) {
	if !c.enabled {
		return nil, NewDataSourceError(statsFeedSourceName, ErrCodeNetworkError, feedDisabledMsg, nil)
	}

	url := fmt.Sprintf("%s/games/%s/context", c.baseURL, gameID)

	var feedContext statsFeedContext
	if err := c.getJSON(ctx, url, "failed to fetch context", &feedContext); err != nil {
		return nil, err
	}

	injuries := make([]models.InjuryReport, len(feedContext.Injuries))
	for i, fi := range feedContext.Injuries {
		injuries[i] = models.InjuryReport{
			AthleteID: fi.AthleteID,
			TeamID:    fi.TeamID,
			Status:    fi.Status,
			Position:  fi.Position,
		}
	}

	return &models.ContextSignals{
		Spread:     feedContext.Spread,
		OverUnder:  feedContext.OverUnder,
		HomeTeamID: feedContext.HomeTeamID,
		AwayTeamID: feedContext.AwayTeamID,
		Injuries:   injuries,
	}, nil
}

// Ping verifies the feed is reachable. Any non-5xx response counts.
func (c *StatsFeedClient) Ping(ctx context.Context) error {
	if !c.enabled {
		return NewDataSourceError(statsFeedSourceName, ErrCodeNetworkError, feedDisabledMsg, nil)
	}

	resp, err := c.httpClient.Get(ctx, c.baseURL+"/health")
	if err != nil {
		return NewDataSourceError(statsFeedSourceName, ErrCodeNetworkError, "feed unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return NewDataSourceError(statsFeedSourceName, ErrCodeServerError, fmt.Sprintf("feed unhealthy: status %d", resp.StatusCode), ErrServerError)
	}
	return nil
}

// Name returns the feed source name
func (c *StatsFeedClient) Name() string {
	return statsFeedSourceName
}

// IsEnabled returns whether this feed source is enabled
func (c *StatsFeedClient) IsEnabled() bool {
	return c.enabled
}

// getJSON executes an authenticated GET request and decodes the JSON response
func (c *StatsFeedClient) getJSON(ctx context.Context, url, failureMsg string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return NewDataSourceError(statsFeedSourceName, ErrCodeNetworkError, "failed to create request", err)
	}

	// Add authentication header
	if c.apiKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return NewDataSourceError(statsFeedSourceName, ErrCodeNetworkError, failureMsg, err)
	}
	defer resp.Body.Close()

	// Handle authentication errors
	if resp.StatusCode == http.StatusUnauthorized {
		return NewDataSourceError(statsFeedSourceName, ErrCodeAuthenticationFailed, "invalid API key", ErrAuthenticationFailed)
	}

	// Handle rate limiting
	if resp.StatusCode == http.StatusTooManyRequests {
		return NewDataSourceError(statsFeedSourceName, ErrCodeRateLimitExceeded, "rate limit rejected upstream", ErrRateLimitExceeded)
	}

	if resp.StatusCode == http.StatusNotFound {
		return NewDataSourceError(statsFeedSourceName, ErrCodeNotFound, "resource not found", models.ErrGameNotFound)
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return NewDataSourceError(statsFeedSourceName, ErrCodeServerError, fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, string(body)), ErrServerError)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return NewDataSourceError(statsFeedSourceName, ErrCodeInvalidData, "failed to parse response", err)
	}

	return nil
}
