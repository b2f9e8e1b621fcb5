// Package api serves the Frogger leaderboard and a headless simulator over
// HTTP.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/games/frogger"
	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/loop"
	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/storage"
)

// Request limits.
const (
	MaxScoresLimit  = 100
	MaxSimulateSize = 1 << 20
	MaxSimulateStep = 500_000
)

// ScoreStore is the part of storage the API reads.
type ScoreStore interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	HighScore(gameID string) (int, error)
	RunByID(runID string) (storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

// Server handles HTTP requests.
type Server struct {
	store     ScoreStore
	logger    *log.Logger
	startTime time.Time
}

// NewServer creates an API server. A nil logger uses the default logger.
func NewServer(store ScoreStore, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		store:     store,
		logger:    logger.WithPrefix("api"),
		startTime: time.Now(),
	}
}

// Routes sets up the HTTP routes with middleware.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/scores", s.handleScores)
		r.Get("/scores/high", s.handleHighScore)
		r.Get("/runs/{runID}", s.handleRun)
		r.Get("/stats", s.handleStats)
		r.Post("/simulate", s.handleSimulate)
	})

	return r
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Uptime: time.Since(s.startTime).Round(time.Second).String(),
	})
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > MaxScoresLimit {
			s.writeError(w, r, http.StatusBadRequest, ErrTypeInvalidParams, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	scores, err := s.store.TopScores(frogger.ID, limit)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	if scores == nil {
		scores = []storage.ScoreEntry{}
	}
	s.writeJSON(w, http.StatusOK, ScoresResponse{GameID: frogger.ID, Scores: scores})
}

func (s *Server) handleHighScore(w http.ResponseWriter, r *http.Request) {
	high, err := s.store.HighScore(frogger.ID)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, HighScoreResponse{GameID: frogger.ID, HighScore: high})
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	run, err := s.store.RunByID(chi.URLParam(r, "runID"))
	if errors.Is(err, storage.ErrNotFound) {
		s.writeError(w, r, http.StatusNotFound, ErrTypeNotFound, "run not found")
		return
	}
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, run)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.GetGameStats(frogger.ID)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var script loop.Script
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxSimulateSize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&script); err != nil {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeInvalidParams, "invalid script: "+err.Error())
		return
	}
	if err := script.Validate(); err != nil {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeInvalidParams, err.Error())
		return
	}
	if script.Steps > MaxSimulateStep {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeInvalidParams, "too many steps")
		return
	}
	if script.Seed == 0 {
		// a time-based seed would make the response unreproducible
		s.writeError(w, r, http.StatusBadRequest, ErrTypeInvalidParams, "seed is required")
		return
	}

	s.writeJSON(w, http.StatusOK, SimulateResponse{
		Steps: script.Steps,
		Final: frogger.TakeSnapshot(script.Final(), false),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, errType, message string) {
	s.writeJSON(w, status, APIError{
		Type:      errType,
		Message:   message,
		RequestID: middleware.GetReqID(r.Context()),
	})
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	s.writeError(w, r, http.StatusInternalServerError, ErrTypeInternal, "internal error")
}
