// Package session assembles exercises into a shuffled play order and drives
// one playthrough: question, answer, feedback, advance, completion. One
// Session value owns its cursor and score; nothing here is process-global.
package session

import (
	"math/rand"

	"github.com/AbateG/deutsche-ubungen/internal/exercise"
)

// Filter restricts which exercises enter a session. Keys are dimension
// labels (e.g. "case", "gender"); values are the accepted tag values for
// that dimension. An exercise passes when, for every key, at least one of
// the key's values appears in its tags. An empty filter passes everything.
type Filter map[string][]string

// Match reports whether the exercise satisfies every filter dimension.
func (f Filter) Match(ex *exercise.Exercise) bool {
	for _, accepted := range f {
		if len(accepted) == 0 {
			continue
		}
		hit := false
		for _, want := range accepted {
			if ex.HasTag(want) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

// Build aggregates exercises from any number of sources into a shuffled
// play order. Duplicate ids keep their first occurrence, the filter is
// applied before shuffling, and the shuffle is an unbiased Fisher–Yates
// over the injected rng. Zero resulting exercises is a valid outcome.
func Build(filter Filter, rng *rand.Rand, sources ...[]exercise.Exercise) []exercise.Exercise {
	seen := make(map[string]bool)
	var out []exercise.Exercise
	for _, src := range sources {
		for _, ex := range src {
			if ex.ID != "" && seen[ex.ID] {
				continue
			}
			if !filter.Match(&ex) {
				continue
			}
			if ex.ID != "" {
				seen[ex.ID] = true
			}
			out = append(out, ex)
		}
	}

	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
