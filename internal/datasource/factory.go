package datasource

import (
	"fmt"
	"log"
	"time"

	"github.com/yourusername/prop-parlay/internal/config"
)

// NewHTTPClientFromConfig builds a rate-limited HTTP client from feed configuration
func NewHTTPClientFromConfig(cfg config.StatsFeedConfig, logger *log.Logger) *RateLimitedHTTPClient {
	httpCfg := DefaultHTTPClientConfig()
	httpCfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	httpCfg.MaxRetries = cfg.RetryAttempts
	httpCfg.RateLimit = cfg.RequestsPerSecond
	httpCfg.Burst = cfg.BurstSize
	if cfg.CircuitBreakerEnabled {
		httpCfg.CircuitBreakerMax = cfg.FailureThreshold
	} else {
		// Effectively disables the breaker for well-behaved local feeds
		httpCfg.CircuitBreakerMax = int(^uint(0) >> 1)
	}
	return NewRateLimitedHTTPClient(httpCfg, logger)
}

// NewFeedSource creates the configured feed source
func NewFeedSource(cfg *config.Config, logger *log.Logger) (FeedSource, error) {
	if cfg.StatsFeed.BaseURL == "" {
		return nil, fmt.Errorf("stats feed base URL is required")
	}

	httpClient := NewHTTPClientFromConfig(cfg.StatsFeed, logger)
	return NewStatsFeedClient(httpClient, cfg.StatsFeed.BaseURL, cfg.StatsFeed.APIKey, true, logger), nil
}
