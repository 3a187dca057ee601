// Package server exposes the quiz engine over HTTP for the browser front
// end. Sessions live in memory keyed by id; each request performs one
// discrete engine step. Idle sessions are evicted after a TTL so the map
// cannot grow without bound.
package server

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/AbateG/deutsche-ubungen/internal/quiz"
	"github.com/AbateG/deutsche-ubungen/internal/session"
)

// sessionTTL is how long an untouched session survives before the next
// sweep reclaims it.
const sessionTTL = time.Hour

// Server carries the shared dependencies for all handlers.
type Server struct {
	builder *quiz.Builder
	scores  session.ScoreStore
	log     *slog.Logger
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*liveSession
}

// liveSession serializes operations on one session. The engine itself is
// single-threaded by contract; the lock keeps concurrent HTTP requests from
// overlapping steps.
type liveSession struct {
	mu       sync.Mutex
	s        *session.Session
	lastSeen time.Time
}

// New creates a Server.
func New(builder *quiz.Builder, scores session.ScoreStore, log *slog.Logger) *Server {
	return &Server{
		builder:  builder,
		scores:   scores,
		log:      log,
		ttl:      sessionTTL,
		now:      time.Now,
		sessions: make(map[string]*liveSession),
	}
}

// Routes returns the HTTP handler with CORS configured for the given
// origins.
func (s *Server) Routes(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Route("/api/sessions", func(r chi.Router) {
		r.Post("/", s.createSession)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/question", s.getQuestion)
			r.Post("/answer", s.submitAnswer)
			r.Post("/advance", s.advance)
			r.Post("/restart", s.restart)
			r.Delete("/", s.deleteSession)
		})
	})

	return r
}

func (s *Server) lookup(id string) (*liveSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ls, ok := s.sessions[id]
	if ok {
		ls.lastSeen = s.now()
	}
	return ls, ok
}

// register stores a new session and sweeps out the stale ones. Sweeping
// here keeps the map bounded without a background goroutine.
func (s *Server) register(sess *session.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	for id, ls := range s.sessions {
		if ls.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
	s.sessions[sess.ID] = &liveSession{s: sess, lastSeen: s.now()}
}

func (s *Server) drop(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}
