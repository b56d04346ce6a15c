// Package api exposes graded slates over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/prop-parlay/internal/engine"
	"github.com/yourusername/prop-parlay/internal/models"
)

// SlateProvider serves graded slates. Implemented by the slate service.
type SlateProvider interface {
	GetSlate(ctx context.Context, gameID string, stake float64) (*engine.SlateResult, error)
	DefaultStake() float64
}

// SlateHandler handles slate-related API endpoints
type SlateHandler struct {
	slates   SlateProvider
	maxStake float64
	logger   *logrus.Logger
}

// NewSlateHandler creates a new slate handler
func NewSlateHandler(slates SlateProvider, maxStake float64, logger *logrus.Logger) *SlateHandler {
	return &SlateHandler{
		slates:   slates,
		maxStake: maxStake,
		logger:   logger,
	}
}

// HandleGetLegs returns every graded leg for a game
// GET /api/v1/games/{gameID}/legs
func (h *SlateHandler) HandleGetLegs(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")
	if gameID == "" {
		writeError(w, http.StatusBadRequest, "gameID is required")
		return
	}

	result, err := h.slates.GetSlate(r.Context(), gameID, h.slates.DefaultStake())
	if err != nil {
		h.writeSlateError(w, gameID, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"game_id":      result.GameID,
		"generated_at": result.GeneratedAt,
		"legs":         result.Legs,
		"count":        len(result.Legs),
	})
}

// HandleGetParlays returns priced parlay variants for a game
// GET /api/v1/games/{gameID}/parlays?stake=25
func (h *SlateHandler) HandleGetParlays(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")
	if gameID == "" {
		writeError(w, http.StatusBadRequest, "gameID is required")
		return
	}

	stake := h.slates.DefaultStake()
	if raw := r.URL.Query().Get("stake"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "stake must be a positive number")
			return
		}
		if h.maxStake > 0 && parsed > h.maxStake {
			writeError(w, http.StatusBadRequest, "stake exceeds the allowed maximum")
			return
		}
		stake = parsed
	}

	result, err := h.slates.GetSlate(r.Context(), gameID, stake)
	if err != nil {
		h.writeSlateError(w, gameID, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"game_id":      result.GameID,
		"generated_at": result.GeneratedAt,
		"stake":        stake,
		"parlays":      result.Parlays,
		"count":        len(result.Parlays),
	})
}

func (h *SlateHandler) writeSlateError(w http.ResponseWriter, gameID string, err error) {
	if errors.Is(err, models.ErrGameNotFound) {
		writeError(w, http.StatusNotFound, "game not found")
		return
	}

	h.logger.WithError(err).WithField("game_id", gameID).Error("Failed to build slate")
	writeError(w, http.StatusBadGateway, "failed to build slate")
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
