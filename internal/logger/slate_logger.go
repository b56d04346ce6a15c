// Package logger provides slate-specific logging.
package logger

import (
	"github.com/sirupsen/logrus"
)

// SlateLogger provides dedicated logging for slate grading operations.
type SlateLogger struct {
	*logrus.Entry
}

// NewSlateLogger creates a new slate logger.
func NewSlateLogger(baseLogger *logrus.Logger) *SlateLogger {
	return &SlateLogger{
		Entry: baseLogger.WithField("component", "slate"),
	}
}

// LogSlateGraded logs a completed grading run for a game.
func (sl *SlateLogger) LogSlateGraded(gameID string, propsIn, legsOut, parlaysBuilt int, durationMs float64) {
	sl.WithFields(logrus.Fields{
		"game_id":             gameID,
		"props_in":            propsIn,
		"legs_out":            legsOut,
		"parlays_built":       parlaysBuilt,
		"grading_duration_ms": durationMs,
	}).Info("Slate grading completed")
}

// LogCacheHit logs a slate served from cache.
func (sl *SlateLogger) LogCacheHit(gameID string) {
	sl.WithFields(logrus.Fields{
		"game_id": gameID,
	}).Debug("Slate served from cache")
}

// LogFeedFetch logs a feed fetch outcome.
func (sl *SlateLogger) LogFeedFetch(feed, gameID string, records int, durationMs float64) {
	sl.WithFields(logrus.Fields{
		"feed":              feed,
		"game_id":           gameID,
		"records":           records,
		"fetch_duration_ms": durationMs,
	}).Info("Feed fetch completed")
}

// LogFeedError logs a feed failure.
func (sl *SlateLogger) LogFeedError(feed, gameID string, err error) {
	sl.WithFields(logrus.Fields{
		"feed":    feed,
		"game_id": gameID,
		"error":   err.Error(),
	}).Error("Feed fetch failed")
}

// LogRefreshCycle logs a scheduled refresh cycle.
func (sl *SlateLogger) LogRefreshCycle(gamesRefreshed, gamesFailed int, durationMs float64) {
	sl.WithFields(logrus.Fields{
		"games_refreshed":     gamesRefreshed,
		"games_failed":        gamesFailed,
		"refresh_duration_ms": durationMs,
	}).Info("Slate refresh cycle completed")
}
