package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AbateG/deutsche-ubungen/internal/session"
	"github.com/AbateG/deutsche-ubungen/internal/source"
)

type createRequest struct {
	Topic   string              `json:"topic"`
	Level   string              `json:"level"`
	Filters map[string][]string `json:"filters,omitempty"`
}

type createResponse struct {
	ID       string               `json:"id"`
	Question session.QuestionView `json:"question"`
}

type answerRequest struct {
	Answer string `json:"answer"`
}

type advanceResponse struct {
	Question *session.QuestionView `json:"question,omitempty"`
	Summary  *session.Summary      `json:"summary,omitempty"`
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Topic == "" || req.Level == "" {
		writeError(w, http.StatusBadRequest, "topic and level are required")
		return
	}

	sess, err := s.builder.BuildSession(r.Context(), req.Topic, req.Level, session.Filter(req.Filters))
	if err != nil {
		var loadErr *source.LoadError
		if errors.As(err, &loadErr) {
			s.log.Error("source load failed", "err", err)
			writeError(w, http.StatusBadGateway, "could not load exercises")
			return
		}
		s.log.Error("session build failed", "err", err)
		writeError(w, http.StatusInternalServerError, "session build failed")
		return
	}

	if err := sess.Start(r.Context(), s.scores); err != nil {
		if errors.Is(err, session.ErrNoExercises) {
			writeError(w, http.StatusUnprocessableEntity, "no exercises available")
			return
		}
		s.log.Error("session start failed", "err", err)
		writeError(w, http.StatusInternalServerError, "session start failed")
		return
	}

	s.register(sess)
	q, _ := sess.Question()
	writeJSON(w, http.StatusCreated, createResponse{ID: sess.ID, Question: q})
}

func (s *Server) getQuestion(w http.ResponseWriter, r *http.Request) {
	ls, ok := s.lookup(chi.URLParam(r, "sessionID"))
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()

	q, err := ls.s.Question()
	if err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (s *Server) submitAnswer(w http.ResponseWriter, r *http.Request) {
	ls, ok := s.lookup(chi.URLParam(r, "sessionID"))
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()

	result, err := ls.s.Submit(req.Answer)
	if err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) advance(w http.ResponseWriter, r *http.Request) {
	ls, ok := s.lookup(chi.URLParam(r, "sessionID"))
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()

	summary, err := ls.s.Advance(r.Context(), s.scores)
	if err != nil && summary == nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		// Completion stands even when the best-score write fails.
		s.log.Error("best score write failed", "key", ls.s.Key, "err", err)
	}

	if summary != nil {
		writeJSON(w, http.StatusOK, advanceResponse{Summary: summary})
		return
	}
	q, _ := ls.s.Question()
	writeJSON(w, http.StatusOK, advanceResponse{Question: &q})
}

func (s *Server) restart(w http.ResponseWriter, r *http.Request) {
	ls, ok := s.lookup(chi.URLParam(r, "sessionID"))
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()

	if err := ls.s.Restart(r.Context(), s.scores); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	q, _ := ls.s.Question()
	writeJSON(w, http.StatusOK, q)
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	if !s.drop(chi.URLParam(r, "sessionID")) {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
