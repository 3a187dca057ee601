package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestScoreRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).Scores()

	best, err := repo.Best(ctx, "wortschatz_a1")
	require.NoError(t, err)
	assert.Equal(t, 0, best, "missing key reads as zero")

	require.NoError(t, repo.SetBest(ctx, "wortschatz_a1", 7))
	best, err = repo.Best(ctx, "wortschatz_a1")
	require.NoError(t, err)
	assert.Equal(t, 7, best)

	// Upsert replaces, never duplicates.
	require.NoError(t, repo.SetBest(ctx, "wortschatz_a1", 9))
	best, err = repo.Best(ctx, "wortschatz_a1")
	require.NoError(t, err)
	assert.Equal(t, 9, best)
}

func TestScoreRepoKeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).Scores()

	require.NoError(t, repo.SetBest(ctx, "faelle_a1", 3))
	require.NoError(t, repo.SetBest(ctx, "artikel_a1", 5))

	best, err := repo.Best(ctx, "faelle_a1")
	require.NoError(t, err)
	assert.Equal(t, 3, best)

	best, err = repo.Best(ctx, "artikel_a1")
	require.NoError(t, err)
	assert.Equal(t, 5, best)
}

func TestScoreRepoReset(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).Scores()

	require.NoError(t, repo.SetBest(ctx, "faelle_a1", 3))
	require.NoError(t, repo.SetBest(ctx, "artikel_a1", 5))

	require.NoError(t, repo.Reset(ctx, "faelle_a1"))
	best, err := repo.Best(ctx, "faelle_a1")
	require.NoError(t, err)
	assert.Equal(t, 0, best)

	best, err = repo.Best(ctx, "artikel_a1")
	require.NoError(t, err)
	assert.Equal(t, 5, best, "reset of one key leaves others alone")

	require.NoError(t, repo.Reset(ctx, ""))
	best, err = repo.Best(ctx, "artikel_a1")
	require.NoError(t, err)
	assert.Equal(t, 0, best, "empty key resets everything")
}

func TestOpenReopensExistingDatabase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "scores.db")

	st, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, st.Scores().SetBest(ctx, "k", 4))
	require.NoError(t, st.Close())

	st, err = Open(path)
	require.NoError(t, err)
	defer st.Close()

	best, err := st.Scores().Best(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 4, best)
}

func TestDefaultDBPathEnvOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "custom", "scores.db")
	t.Setenv("UBUNGEN_DB", want)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMemoryScores(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryScores()

	best, err := m.Best(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 0, best)

	require.NoError(t, m.SetBest(ctx, "k", 2))
	best, err = m.Best(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 2, best)
	assert.Equal(t, 1, m.Writes)
}
