package session

import (
	"context"
	"errors"
	"math/rand"

	"github.com/google/uuid"

	"github.com/AbateG/deutsche-ubungen/internal/exercise"
)

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseNotStarted Phase = iota // built, best score not yet loaded
	PhaseInProgress              // serving questions
	PhaseCompleted               // all questions answered and advanced past
)

// ErrNoExercises is returned when a session is started with nothing to
// practice. Consumers surface it as a distinct state, not a crash.
var ErrNoExercises = errors.New("no exercises available")

// ErrNotInProgress is returned for operations that need an active session.
var ErrNotInProgress = errors.New("session is not in progress")

// ErrAlreadyAnswered is returned when Submit is called twice for the same
// question; feedback and advancement are distinct steps.
var ErrAlreadyAnswered = errors.New("current question already answered")

// ErrNotAnswered is returned when Advance is called before Submit.
var ErrNotAnswered = errors.New("current question not answered yet")

// ScoreStore persists the best score per quiz identity. Reads default to 0
// when no score was stored; writes are best-effort and idempotent.
type ScoreStore interface {
	Best(ctx context.Context, key string) (int, error)
	SetBest(ctx context.Context, key string, score int) error
}

// QuestionView is what a presentation consumer needs to render a question.
type QuestionView struct {
	Prompt  string        `json:"prompt"`
	Kind    exercise.Kind `json:"kind"`
	Options []string      `json:"options,omitempty"`
	Number  int           `json:"number"` // 1-based position
	Total   int           `json:"total"`
}

// Result is the per-answer feedback for the consumer.
type Result struct {
	Correct     bool   `json:"correct"`
	Answer      string `json:"answer"`
	Explanation string `json:"explanation,omitempty"`
}

// Summary is the terminal signal emitted when the session completes.
type Summary struct {
	Completed  bool `json:"completed"`
	FinalScore int  `json:"finalScore"`
	BestScore  int  `json:"bestScore"`
	NewBest    bool `json:"isNewBestScore"`
}

// Session is one ordered playthrough of exercises with its score state.
// It is not safe for concurrent use; each public operation is a discrete
// step triggered by a single caller.
type Session struct {
	ID        string
	Key       string // high-score key, e.g. "wortschatz_a1"
	Exercises []exercise.Exercise

	phase    Phase
	cursor   int
	score    int
	best     int
	answered bool
	rng      *rand.Rand
}

// New builds a Session over an already-shuffled exercise order. The rng is
// retained for restarts, which reshuffle.
func New(key string, exercises []exercise.Exercise, rng *rand.Rand) *Session {
	return &Session{
		ID:        uuid.New().String(),
		Key:       key,
		Exercises: exercises,
		phase:     PhaseNotStarted,
		rng:       rng,
	}
}

// Start loads the persisted best score and enters InProgress. A best-score
// read failure aborts the start; the session stays NotStarted. Starting an
// empty session returns ErrNoExercises.
func (s *Session) Start(ctx context.Context, store ScoreStore) error {
	if len(s.Exercises) == 0 {
		return ErrNoExercises
	}
	best, err := store.Best(ctx, s.Key)
	if err != nil {
		return err
	}
	s.best = best
	s.cursor = 0
	s.score = 0
	s.answered = false
	s.phase = PhaseInProgress
	return nil
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the running count of correct answers.
func (s *Session) Score() int { return s.score }

// BestScore returns the best score loaded at start (updated on completion).
func (s *Session) BestScore() int { return s.best }

// Len returns the number of exercises in the play order.
func (s *Session) Len() int { return len(s.Exercises) }

// Position returns the 1-based number of the current question.
func (s *Session) Position() int { return s.cursor + 1 }

// Current returns the exercise under the cursor.
func (s *Session) Current() (*exercise.Exercise, error) {
	if s.phase != PhaseInProgress {
		return nil, ErrNotInProgress
	}
	return &s.Exercises[s.cursor], nil
}

// Question returns the presentation view of the current question.
func (s *Session) Question() (QuestionView, error) {
	ex, err := s.Current()
	if err != nil {
		return QuestionView{}, err
	}
	return QuestionView{
		Prompt:  ex.Prompt,
		Kind:    ex.Kind,
		Options: ex.Options,
		Number:  s.Position(),
		Total:   s.Len(),
	}, nil
}

// Submit grades the learner's answer for the current question and records
// the score. The cursor does not move; the learner sees feedback first and
// the consumer calls Advance separately.
func (s *Session) Submit(submitted string) (Result, error) {
	ex, err := s.Current()
	if err != nil {
		return Result{}, err
	}
	if s.answered {
		return Result{}, ErrAlreadyAnswered
	}

	correct := exercise.CheckAnswer(submitted, ex)
	if correct {
		s.score++
	}
	s.answered = true

	return Result{
		Correct:     correct,
		Answer:      ex.Answer,
		Explanation: ex.Explanation,
	}, nil
}

// Advance moves past the answered question. When the last question has been
// answered, the session enters Completed and, if the score beats the loaded
// best, the new best is persisted. The store write is best-effort: a failure
// is returned alongside the summary, and the session still completes.
func (s *Session) Advance(ctx context.Context, store ScoreStore) (*Summary, error) {
	if s.phase != PhaseInProgress {
		return nil, ErrNotInProgress
	}
	if !s.answered {
		return nil, ErrNotAnswered
	}
	s.answered = false

	if s.cursor+1 < len(s.Exercises) {
		s.cursor++
		return nil, nil
	}

	s.phase = PhaseCompleted
	sum := &Summary{
		Completed:  true,
		FinalScore: s.score,
		BestScore:  s.best,
	}
	if s.score > s.best {
		sum.NewBest = true
		sum.BestScore = s.score
		if err := store.SetBest(ctx, s.Key, s.score); err != nil {
			return sum, err
		}
		s.best = s.score
	}
	return sum, nil
}

// Restart re-enters the session from scratch: score and cursor reset, the
// play order reshuffled into a fresh permutation of the same exercise set.
// Valid from any phase.
func (s *Session) Restart(ctx context.Context, store ScoreStore) error {
	s.rng.Shuffle(len(s.Exercises), func(i, j int) {
		s.Exercises[i], s.Exercises[j] = s.Exercises[j], s.Exercises[i]
	})
	s.phase = PhaseNotStarted
	return s.Start(ctx, store)
}
