package generate

import (
	"fmt"
	"math/rand"

	"github.com/AbateG/deutsche-ubungen/internal/dict"
	"github.com/AbateG/deutsche-ubungen/internal/exercise"
)

// Shuffled returns a uniformly shuffled copy of items (Fisher–Yates).
// The input is never mutated.
func Shuffled(items []string, rng *rand.Rand) []string {
	out := make([]string, len(items))
	copy(out, items)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Distractors picks up to n unique wrong options from pool. The correct
// answer and duplicates are excluded first, then a uniform shuffle decides
// which survivors are kept. A result smaller than n means the pool was too
// small; that is not an error.
func Distractors(correct string, pool []string, n int, rng *rand.Rand) []string {
	seen := make(map[string]bool, len(pool))
	var unique []string
	for _, cand := range pool {
		if cand == "" || cand == correct || seen[cand] {
			continue
		}
		seen[cand] = true
		unique = append(unique, cand)
	}

	unique = Shuffled(unique, rng)
	if n < len(unique) {
		unique = unique[:n]
	}
	return unique
}

// TranslationPool collects the primary translations across a collection,
// the candidate pool for translation-MCQ distractors.
func TranslationPool(entries []dict.Entry) []string {
	var pool []string
	for _, e := range entries {
		if tr := e.PrimaryTranslation(); tr != "" {
			pool = append(pool, tr)
		}
	}
	return pool
}

// Translations builds one multiple-choice exercise per entry that has a
// translation, using the other entries' primary translations as distractor
// material. Entries whose pool yields fewer than one distractor are skipped
// (a one-option MCQ is unanswerable).
func Translations(entries []dict.Entry, distractorCount int, rng *rand.Rand) []exercise.Exercise {
	pool := TranslationPool(entries)

	var out []exercise.Exercise
	for _, entry := range entries {
		answer := entry.PrimaryTranslation()
		if entry.Lemma == "" || answer == "" {
			continue
		}

		wrong := Distractors(answer, pool, distractorCount, rng)
		if len(wrong) == 0 {
			continue
		}

		options := Shuffled(append([]string{answer}, wrong...), rng)
		ex := exercise.Exercise{
			ID:            entry.ID + "-translation",
			Kind:          exercise.KindMultipleChoice,
			Prompt:        fmt.Sprintf("Was bedeutet %q?", entry.Lemma),
			Options:       options,
			Answer:        answer,
			Policy:        exercise.PolicyExact,
			Explanation:   fmt.Sprintf("Die Bedeutung von %q ist %q.", entry.Lemma, answer),
			Tags:          appendTags([]string{"wortschatz"}, entry.Tags),
			SourceEntryID: entry.ID,
		}
		out = append(out, ex)
	}
	return out
}

// FromEntries builds the full generated exercise set for a vocabulary
// collection: translation MCQs both ways, noun drills for qualifying
// entries, and cloze items where example sentences allow.
func FromEntries(entries []dict.Entry, distractorCount int, rng *rand.Rand) []exercise.Exercise {
	out := Translations(entries, distractorCount, rng)
	for _, entry := range entries {
		if entry.IsNoun() {
			out = append(out, Nouns(entry, rng)...)
		}
		if ex, ok := ReverseTranslation(entry); ok {
			out = append(out, ex)
		}
		if ex, ok := Cloze(entry); ok {
			out = append(out, ex)
		}
	}
	return out
}
