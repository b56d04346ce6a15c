package datasource

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/yourusername/prop-parlay/internal/models"
)

func newTestHTTPClient() *RateLimitedHTTPClient {
	cfg := DefaultHTTPClientConfig()
	cfg.MaxRetries = 0
	cfg.RetryWaitMin = time.Millisecond
	cfg.RetryWaitMax = 5 * time.Millisecond
	cfg.RateLimit = 1000
	cfg.Burst = 1000
	return NewRateLimitedHTTPClient(cfg, nil)
}

func newTestClient(serverURL string) *StatsFeedClient {
	return NewStatsFeedClient(newTestHTTPClient(), serverURL, "test-key", true, nil)
}

// TestFetchPropsSuccess tests fetching and converting prop lines
func TestFetchPropsSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/games/game_001/props" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing or wrong auth header: %s", r.Header.Get("Authorization"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"athleteId": "p1", "playerName": "Jayson Tatum", "teamId": "BOS", "statType": "Points", "line": 27.5, "overOdds": -115, "underOdds": -105},
			{"athleteId": "p2", "playerName": "Derrick White", "teamId": "BOS", "statType": "Assists", "line": 5.5, "overOdds": -110, "underOdds": null}
		]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	props, err := client.FetchProps(context.Background(), "game_001")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(props) != 2 {
		t.Fatalf("expected 2 props, got %d", len(props))
	}

	if props[0].PlayerName != "Jayson Tatum" || props[0].Line != 27.5 {
		t.Errorf("unexpected first prop: %+v", props[0])
	}

	if *props[0].OverOdds != -115 {
		t.Errorf("expected over odds -115, got %d", *props[0].OverOdds)
	}

	if props[1].UnderOdds != nil {
		t.Errorf("expected nil under odds for one-sided prop, got %v", *props[1].UnderOdds)
	}
}

// TestFetchPredictionsSuccess tests fetching and converting predictions
func TestFetchPredictionsSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"athleteId": "p1", "statType": "Points", "prediction": 31.2, "edge": 3.7, "confidence": "High", "recentTrend": "hot"},
			{"athleteId": "p2", "statType": "Assists", "prediction": 5.1, "edge": -0.4, "confidence": "Low", "recentTrend": null}
		]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	predictions, err := client.FetchPredictions(context.Background(), "game_001")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(predictions) != 2 {
		t.Fatalf("expected 2 predictions, got %d", len(predictions))
	}

	if predictions[0].Confidence != models.ConfidenceHigh {
		t.Errorf("expected High confidence, got %s", predictions[0].Confidence)
	}

	if predictions[0].RecentTrend != models.TrendHot {
		t.Errorf("expected hot trend, got %s", predictions[0].RecentTrend)
	}

	if predictions[1].RecentTrend != models.TrendNeutral {
		t.Errorf("expected missing trend to default to neutral, got %s", predictions[1].RecentTrend)
	}
}

// TestFetchContextSuccess tests fetching and converting game context
func TestFetchContextSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"spread": -4.5,
			"overUnder": 228.5,
			"homeTeamId": "BOS",
			"awayTeamId": "NYK",
			"injuries": [
				{"athleteId": "p9", "teamId": "NYK", "status": "Out", "position": "C"}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	signals, err := client.FetchContext(context.Background(), "game_001")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if signals.Spread != -4.5 || signals.OverUnder != 228.5 {
		t.Errorf("unexpected context: %+v", signals)
	}

	if len(signals.Injuries) != 1 || !signals.Injuries[0].IsOut() {
		t.Errorf("expected one OUT injury, got %+v", signals.Injuries)
	}
}

// TestFetchUpcomingGamesSkipsBadStartTimes tests resilience to malformed rows
func TestFetchUpcomingGamesSkipsBadStartTimes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": "g1", "homeTeamId": "BOS", "awayTeamId": "NYK", "startTime": "2026-01-15T19:30:00Z"},
			{"id": "g2", "homeTeamId": "LAL", "awayTeamId": "DEN", "startTime": "tomorrow-ish"}
		]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	games, err := client.FetchUpcomingGames(context.Background(), time.Now(), time.Now().Add(24*time.Hour))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(games) != 1 {
		t.Fatalf("expected 1 game after skipping malformed row, got %d", len(games))
	}

	if games[0].GameID != "g1" {
		t.Errorf("expected game g1, got %s", games[0].GameID)
	}
}

// TestFetchPropsUnauthorized tests authentication error mapping
func TestFetchPropsUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.FetchProps(context.Background(), "game_001")
	if err == nil {
		t.Fatal("expected error for unauthorized response")
	}

	var dsErr DataSourceError
	if !errors.As(err, &dsErr) {
		t.Fatalf("expected DataSourceError, got %T", err)
	}

	if dsErr.Code != ErrCodeAuthenticationFailed {
		t.Errorf("expected code %s, got %s", ErrCodeAuthenticationFailed, dsErr.Code)
	}

	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("expected ErrAuthenticationFailed in chain, got %v", err)
	}
}

// TestFetchPropsUnexpectedStatus tests server error mapping for unhandled statuses
func TestFetchPropsUnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.FetchProps(context.Background(), "game_001")
	if err == nil {
		t.Fatal("expected error for forbidden response")
	}

	if !errors.Is(err, ErrServerError) {
		t.Errorf("expected ErrServerError in chain, got %v", err)
	}

	var dsErr DataSourceError
	if !errors.As(err, &dsErr) {
		t.Fatalf("expected DataSourceError, got %T", err)
	}

	if dsErr.Code != ErrCodeServerError {
		t.Errorf("expected code %s, got %s", ErrCodeServerError, dsErr.Code)
	}
}

// TestFetchContextNotFound tests not-found error mapping
func TestFetchContextNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.FetchContext(context.Background(), "missing_game")
	if err == nil {
		t.Fatal("expected error for missing game")
	}

	if !errors.Is(err, models.ErrGameNotFound) {
		t.Errorf("expected ErrGameNotFound in chain, got %v", err)
	}
}

// TestFetchPropsDisabled tests the disabled source guard
func TestFetchPropsDisabled(t *testing.T) {
	client := NewStatsFeedClient(newTestHTTPClient(), "http://localhost:1", "key", false, nil)

	_, err := client.FetchProps(context.Background(), "game_001")
	if err == nil {
		t.Fatal("expected error for disabled source")
	}

	if client.IsEnabled() {
		t.Error("expected IsEnabled() to return false")
	}
}

// TestHTTPClientCircuitBreaker tests circuit breaker opening after consecutive failures
func TestHTTPClientCircuitBreaker(t *testing.T) {
	// Point at a server that is already closed to force connection errors
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := server.URL
	server.Close()

	cfg := DefaultHTTPClientConfig()
	cfg.MaxRetries = 0
	cfg.RetryWaitMin = time.Millisecond
	cfg.RetryWaitMax = 5 * time.Millisecond
	cfg.RateLimit = 1000
	cfg.Burst = 1000
	cfg.CircuitBreakerMax = 2
	client := NewRateLimitedHTTPClient(cfg, nil)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := client.Get(ctx, deadURL); err == nil {
			t.Fatalf("request %d: expected connection error", i)
		}
	}

	if !client.isOpen {
		t.Fatal("expected circuit breaker to be open after consecutive failures")
	}

	_, err := client.Get(ctx, deadURL)
	if err == nil {
		t.Fatal("expected circuit breaker error")
	}
}

// TestHTTPClientConcurrentFailures tests breaker state under concurrent requests,
// matching the shared-client usage between the API handlers and the refresher
func TestHTTPClientConcurrentFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := server.URL
	server.Close()

	cfg := DefaultHTTPClientConfig()
	cfg.MaxRetries = 0
	cfg.RetryWaitMin = time.Millisecond
	cfg.RetryWaitMax = 5 * time.Millisecond
	cfg.RateLimit = 10000
	cfg.Burst = 10000
	cfg.CircuitBreakerMax = 3
	client := NewRateLimitedHTTPClient(cfg, nil)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				resp, err := client.Get(context.Background(), deadURL)
				if err == nil {
					resp.Body.Close()
					t.Error("expected every request against a closed server to fail")
					return
				}
			}
		}()
	}
	wg.Wait()

	_, err := client.Get(context.Background(), deadURL)
	if err == nil || !strings.Contains(err.Error(), "circuit breaker open") {
		t.Fatalf("expected circuit breaker to be open after sustained failures, got %v", err)
	}
}

// TestHTTPClientRateLimit tests rate limiting functionality
func TestHTTPClientRateLimit(t *testing.T) {
	cfg := DefaultHTTPClientConfig()
	cfg.RateLimit = 100
	cfg.Burst = 5
	client := NewRateLimitedHTTPClient(cfg, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Burst requests should pass without delay
	for i := 0; i < 5; i++ {
		if err := client.limiter.Wait(ctx); err != nil {
			t.Errorf("burst request %d failed: %v", i, err)
		}
	}

	// The next 10 requests must be paced at roughly 100 req/s
	start := time.Now()
	for i := 0; i < 10; i++ {
		_ = client.limiter.Wait(ctx)
	}
	elapsed := time.Since(start)

	if elapsed < 50*time.Millisecond {
		t.Errorf("expected pacing of at least 50ms, got %v", elapsed)
	}
}
