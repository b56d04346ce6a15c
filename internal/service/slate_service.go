// Package service orchestrates feed fetching, grading and caching of slates.
package service

import (
	"context"
	"fmt"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/prop-parlay/internal/datasource"
	"github.com/yourusername/prop-parlay/internal/engine"
	"github.com/yourusername/prop-parlay/internal/logger"
	"github.com/yourusername/prop-parlay/internal/metrics"
	"github.com/yourusername/prop-parlay/internal/models"
)

const upcomingGamesWindow = 24 * time.Hour

// SlateService fetches feed data, runs the grading pipeline and caches results
type SlateService struct {
	feed         datasource.FeedSource
	engine       *engine.Engine
	cache        *cache.Cache
	ttl          time.Duration
	defaultStake float64
	slateLog     *logger.SlateLogger
	logger       *logrus.Logger
}

// NewSlateService creates a new slate service
func NewSlateService(feed datasource.FeedSource, eng *engine.Engine, ttl time.Duration, defaultStake float64, log *logrus.Logger) *SlateService {
	return &SlateService{
		feed:         feed,
		engine:       eng,
		cache:        cache.New(ttl, ttl*2),
		ttl:          ttl,
		defaultStake: defaultStake,
		slateLog:     logger.NewSlateLogger(log),
		logger:       log,
	}
}

// DefaultStake returns the stake used when a request does not specify one
func (s *SlateService) DefaultStake() float64 {
	return s.defaultStake
}

// GetSlate returns the graded slate for a game, serving from cache when fresh
func (s *SlateService) GetSlate(ctx context.Context, gameID string, stake float64) (*engine.SlateResult, error) {
	if stake <= 0 {
		stake = s.defaultStake
	}

	key := slateCacheKey(gameID, stake)
	if cached, found := s.cache.Get(key); found {
		if result, ok := cached.(*engine.SlateResult); ok {
			metrics.SlateCacheHitsTotal.Inc()
			s.slateLog.LogCacheHit(gameID)
			return result, nil
		}
	}
	metrics.SlateCacheMissesTotal.Inc()

	result, err := s.gradeGame(ctx, gameID, stake)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, result, s.ttl)
	metrics.CachedSlates.Set(float64(s.cache.ItemCount()))
	return result, nil
}

// Refresh re-grades a game at the default stake, bypassing the cache
func (s *SlateService) Refresh(ctx context.Context, gameID string) (*engine.SlateResult, error) {
	result, err := s.gradeGame(ctx, gameID, s.defaultStake)
	if err != nil {
		return nil, err
	}

	s.cache.Set(slateCacheKey(gameID, s.defaultStake), result, s.ttl)
	metrics.CachedSlates.Set(float64(s.cache.ItemCount()))
	metrics.LastRefreshLegs.WithLabelValues(gameID).Set(float64(len(result.Legs)))
	return result, nil
}

// RefreshUpcoming re-grades every game starting within the next day.
// Returns the number of games refreshed and the number that failed.
func (s *SlateService) RefreshUpcoming(ctx context.Context) (int, int, error) {
	now := time.Now()
	games, err := s.feed.FetchUpcomingGames(ctx, now, now.Add(upcomingGamesWindow))
	if err != nil {
		metrics.FeedErrorsTotal.WithLabelValues("games").Inc()
		s.slateLog.LogFeedError("games", "", err)
		return 0, 0, fmt.Errorf("fetch upcoming games: %w", err)
	}

	start := time.Now()
	refreshed, failed := 0, 0
	for _, game := range games {
		if _, err := s.Refresh(ctx, game.GameID); err != nil {
			s.logger.WithError(err).WithField("game_id", game.GameID).Error("Failed to refresh slate")
			failed++
			continue
		}
		refreshed++
	}

	s.slateLog.LogRefreshCycle(refreshed, failed, float64(time.Since(start).Milliseconds()))
	return refreshed, failed, nil
}

// gradeGame fetches all feed data for a game and runs the engine
func (s *SlateService) gradeGame(ctx context.Context, gameID string, stake float64) (*engine.SlateResult, error) {
	props, err := s.fetchProps(ctx, gameID)
	if err != nil {
		return nil, err
	}

	predictions, err := s.fetchPredictions(ctx, gameID)
	if err != nil {
		return nil, err
	}

	signals, err := s.fetchContext(ctx, gameID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := s.engine.Run(engine.SlateInput{
		GameID:      gameID,
		Props:       props,
		Predictions: predictions,
		Context:     *signals,
	}, stake)
	if err != nil {
		return nil, fmt.Errorf("grade slate for game %s: %w", gameID, err)
	}

	elapsed := time.Since(start)
	metrics.SlateGradingDuration.Observe(elapsed.Seconds())
	s.slateLog.LogSlateGraded(gameID, len(props), len(result.Legs), len(result.Parlays), float64(elapsed.Milliseconds()))
	return result, nil
}

func (s *SlateService) fetchProps(ctx context.Context, gameID string) ([]models.PropLine, error) {
	start := time.Now()
	props, err := s.feed.FetchProps(ctx, gameID)
	if err != nil {
		metrics.FeedErrorsTotal.WithLabelValues("props").Inc()
		s.slateLog.LogFeedError("props", gameID, err)
		return nil, fmt.Errorf("fetch props for game %s: %w", gameID, err)
	}
	metrics.FeedFetchDuration.WithLabelValues("props").Observe(time.Since(start).Seconds())
	s.slateLog.LogFeedFetch("props", gameID, len(props), float64(time.Since(start).Milliseconds()))
	return props, nil
}

func (s *SlateService) fetchPredictions(ctx context.Context, gameID string) ([]models.Prediction, error) {
	start := time.Now()
	predictions, err := s.feed.FetchPredictions(ctx, gameID)
	if err != nil {
		metrics.FeedErrorsTotal.WithLabelValues("predictions").Inc()
		s.slateLog.LogFeedError("predictions", gameID, err)
		return nil, fmt.Errorf("fetch predictions for game %s: %w", gameID, err)
	}
	metrics.FeedFetchDuration.WithLabelValues("predictions").Observe(time.Since(start).Seconds())
	s.slateLog.LogFeedFetch("predictions", gameID, len(predictions), float64(time.Since(start).Milliseconds()))
	return predictions, nil
}

func (s *SlateService) fetchContext(ctx context.Context, gameID string) (*models.ContextSignals, error) {
	start := time.Now()
	signals, err := s.feed.FetchContext(ctx, gameID)
	if err != nil {
		metrics.FeedErrorsTotal.WithLabelValues("context").Inc()
		s.slateLog.LogFeedError("context", gameID, err)
		return nil, fmt.Errorf("fetch context for game %s: %w", gameID, err)
	}
	metrics.FeedFetchDuration.WithLabelValues("context").Observe(time.Since(start).Seconds())
	s.slateLog.LogFeedFetch("context", gameID, len(signals.Injuries), float64(time.Since(start).Milliseconds()))
	return signals, nil
}

func slateCacheKey(gameID string, stake float64) string {
	return fmt.Sprintf("%s|%.2f", gameID, stake)
}
