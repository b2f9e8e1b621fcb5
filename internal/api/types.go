package api

import (
	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/games/frogger"
	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/storage"
)

// APIError is the body of every non-2xx response.
type APIError struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// Error implements the error interface
func (e APIError) Error() string {
	return e.Message
}

// Error types
const (
	ErrTypeInvalidParams = "invalid_params"
	ErrTypeNotFound      = "not_found"
	ErrTypeInternal      = "internal_error"
)

// HealthResponse is returned by /health.
type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

// ScoresResponse lists the leaderboard.
type ScoresResponse struct {
	GameID string               `json:"game_id"`
	Scores []storage.ScoreEntry `json:"scores"`
}

// HighScoreResponse carries the best score.
type HighScoreResponse struct {
	GameID    string `json:"game_id"`
	HighScore int    `json:"high_score"`
}

// SimulateResponse is the outcome of a headless scripted run.
type SimulateResponse struct {
	Steps int              `json:"steps"`
	Final frogger.Snapshot `json:"final"`
}
