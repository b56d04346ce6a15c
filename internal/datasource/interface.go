package datasource

import (
	"context"
	"errors"
	"time"

	"github.com/yourusername/prop-parlay/internal/models"
)

// FeedSource defines the interface for fetching slate data from external providers
type FeedSource interface {
	// FetchUpcomingGames retrieves games scheduled within the specified window
	FetchUpcomingGames(ctx context.Context, from, to time.Time) ([]GameInfo, error)

	// FetchProps retrieves the posted prop lines for a game
	FetchProps(ctx context.Context, gameID string) ([]models.PropLine, error)

	// FetchPredictions retrieves model projections for a game
	FetchPredictions(ctx context.Context, gameID string) ([]models.Prediction, error)

	// FetchContext retrieves game context (spread, total, injuries) for a game
	FetchContext(ctx context.Context, gameID string) (*models.ContextSignals, error)

	// Name returns the name of the feed source
	Name() string

	// IsEnabled returns whether this feed source is currently enabled
	IsEnabled() bool
}

// GameInfo represents a scheduled game returned by the games feed
type GameInfo struct {
	GameID     string    `json:"game_id"`
	HomeTeamID string    `json:"home_team_id"`
	AwayTeamID string    `json:"away_team_id"`
	StartTime  time.Time `json:"start_time"`
}

// DataSourceError represents errors from feed source operations
type DataSourceError struct {
	Source  string // Feed source name
	Code    string // Error code (e.g., "rate_limit_exceeded")
	Message string // Error message
	Err     error  // Underlying error
}

func (e DataSourceError) Error() string {
	if e.Err != nil {
		return e.Source + ": " + e.Code + ": " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Source + ": " + e.Code + ": " + e.Message
}

func (e DataSourceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeRateLimitExceeded    = "rate_limit_exceeded"
	ErrCodeAuthenticationFailed = "authentication_failed"
	ErrCodeNotFound             = "not_found"
	ErrCodeInvalidData          = "invalid_data"
	ErrCodeNetworkError         = "network_error"
	ErrCodeServerError          = "server_error"
	ErrCodeUnknown              = "unknown"
)

// Sentinel errors wrapped by DataSourceError so callers can match with
// errors.Is. Not-found responses wrap models.ErrGameNotFound instead.
var (
	ErrRateLimitExceeded    = errors.New("rate limit exceeded")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrServerError          = errors.New("server error")
)

// NewDataSourceError creates a new feed source error
func NewDataSourceError(source, code, message string, err error) DataSourceError {
	return DataSourceError{
		Source:  source,
		Code:    code,
		Message: message,
		Err:     err,
	}
}
