// Package quiz wires the loader, the normalizer, and the generators into
// ready-to-play sessions.
package quiz

import (
	"context"
	"log/slog"
	"math/rand"

	"github.com/AbateG/deutsche-ubungen/internal/dict"
	"github.com/AbateG/deutsche-ubungen/internal/exercise"
	"github.com/AbateG/deutsche-ubungen/internal/generate"
	"github.com/AbateG/deutsche-ubungen/internal/ingest"
	"github.com/AbateG/deutsche-ubungen/internal/session"
	"github.com/AbateG/deutsche-ubungen/internal/source"
)

// Builder assembles sessions for a topic/level pair. Build runs exactly
// once per session lifetime; restarts reshuffle the already-built set
// without reloading.
type Builder struct {
	Loader      *source.Loader
	Distractors int
	Rng         *rand.Rand
	Log         *slog.Logger
}

// BuildSession loads the records for topic/level and produces a shuffled
// session. Source failures return a *source.LoadError; per-record defects
// are skipped and logged, never fatal.
func (b *Builder) BuildSession(ctx context.Context, topic, level string, filter session.Filter) (*session.Session, error) {
	exercises, err := b.BuildExercises(ctx, topic, level)
	if err != nil {
		return nil, err
	}

	order := session.Build(filter, b.Rng, exercises)
	b.Log.Info("session built",
		"topic", topic,
		"level", level,
		"candidates", len(exercises),
		"selected", len(order),
	)
	return session.New(source.Key(topic, level), order, b.Rng), nil
}

// BuildExercises loads and converts raw records without session ordering.
// Records that carry a prompt are normalized directly; records that look
// like dictionary entries feed the generators.
func (b *Builder) BuildExercises(ctx context.Context, topic, level string) ([]exercise.Exercise, error) {
	records, err := b.Loader.Records(ctx, topic, level)
	if err != nil {
		return nil, err
	}

	var authored []map[string]any
	var entries []dict.Entry
	for _, rec := range records {
		if isEntry(rec) {
			if e := dict.NormalizeEntry(rec); e.Lemma != "" {
				entries = append(entries, e)
			}
			continue
		}
		authored = append(authored, rec)
	}

	normalized, rejected := ingest.NormalizeAll(authored)
	if rejected > 0 {
		b.Log.Warn("records rejected during normalization",
			"topic", topic, "level", level, "rejected", rejected)
	}

	generated := generate.FromEntries(entries, b.Distractors, b.Rng)

	return append(normalized, generated...), nil
}

// isEntry distinguishes dictionary entries from authored exercise records.
// Entries carry a headword field and no prompt.
func isEntry(rec map[string]any) bool {
	for _, k := range []string{"prompt", "question"} {
		if s, ok := rec[k].(string); ok && s != "" {
			return false
		}
	}
	for _, k := range []string{"lemma", "word", "term"} {
		if s, ok := rec[k].(string); ok && s != "" {
			return true
		}
	}
	return false
}
