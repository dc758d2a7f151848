// internal/httpserver/server.go
//
// Read-only HTTP view of the highscore board.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs).
//   - Endpoints: "/", "/health", "/highscores".
//
// The server never writes to the board; highscores are only added by the
// console game.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/scrambled-words/internal/highscore"
)

// Server bundles the router and the highscore board it reads from.
type Server struct {
	r     *chi.Mux
	board *highscore.Board
}

// New constructs a Server, installs middleware, and registers routes.
func New(board *highscore.Board) *Server {
	s := &Server{r: chi.NewRouter(), board: board}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"scrambled-words","endpoints":["/health","/highscores"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/highscores", s.handleHighscores)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})
	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Start serves HTTP on addr until ctx is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("highscore server shutdown")
		}
	}()

	log.Info().Str("addr", addr).Msg("highscore server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type highscoreRow struct {
	Rank  int    `json:"rank"`
	Score int    `json:"score"`
	Name  string `json:"name"`
}

// handleHighscores returns the ranked list.
func (s *Server) handleHighscores(w http.ResponseWriter, r *http.Request) {
	list, err := s.board.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list highscores")
		http.Error(w, `{"error":"load_failed"}`, http.StatusInternalServerError)
		return
	}
	out := make([]highscoreRow, 0, len(list))
	for i, e := range list {
		out = append(out, highscoreRow{Rank: i + 1, Score: e.Score, Name: e.Name})
	}
	_ = json.NewEncoder(w).Encode(out)
}

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}
