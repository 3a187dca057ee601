package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ScoreRepo reads and writes persisted best scores keyed by quiz identity
// (topic_level). It implements session.ScoreStore.
type ScoreRepo struct {
	db *sql.DB
}

// Best returns the stored best score for key, or 0 when none exists.
func (r *ScoreRepo) Best(ctx context.Context, key string) (int, error) {
	var best int
	err := r.db.QueryRowContext(ctx,
		`SELECT best_score FROM high_scores WHERE quiz_key = ?`, key,
	).Scan(&best)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read best score for %q: %w", key, err)
	}
	return best, nil
}

// SetBest upserts the best score for key. The write is idempotent; calling
// it again with the same score is a no-op at the data level.
func (r *ScoreRepo) SetBest(ctx context.Context, key string, score int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO high_scores (quiz_key, best_score, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT (quiz_key) DO UPDATE SET best_score = excluded.best_score, updated_at = excluded.updated_at`,
		key, score, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("write best score for %q: %w", key, err)
	}
	return nil
}

// Reset deletes the stored score for key, or all scores when key is empty.
func (r *ScoreRepo) Reset(ctx context.Context, key string) error {
	var err error
	if key == "" {
		_, err = r.db.ExecContext(ctx, `DELETE FROM high_scores`)
	} else {
		_, err = r.db.ExecContext(ctx, `DELETE FROM high_scores WHERE quiz_key = ?`, key)
	}
	if err != nil {
		return fmt.Errorf("reset scores: %w", err)
	}
	return nil
}

// MemoryScores is an in-memory ScoreStore for tests and the HTTP server's
// ephemeral mode.
type MemoryScores struct {
	mu     sync.Mutex
	scores map[string]int
	Writes int // number of SetBest calls, for tests
}

// NewMemoryScores creates an empty in-memory score store.
func NewMemoryScores() *MemoryScores {
	return &MemoryScores{scores: make(map[string]int)}
}

func (m *MemoryScores) Best(_ context.Context, key string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scores[key], nil
}

func (m *MemoryScores) SetBest(_ context.Context, key string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores[key] = score
	m.Writes++
	return nil
}
