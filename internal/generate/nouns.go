// Package generate synthesizes exercises from dictionary entries: article
// and plural drills for nouns, translation multiple choice with generated
// distractors, and cloze items from example sentences.
//
// All shuffling runs through a caller-supplied *rand.Rand so tests can pin
// the seed and assert permutation properties.
package generate

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/AbateG/deutsche-ubungen/internal/dict"
	"github.com/AbateG/deutsche-ubungen/internal/exercise"
	"github.com/AbateG/deutsche-ubungen/internal/textnorm"
)

// articles is the full option set for article drills.
var articles = []string{"der", "die", "das"}

// Nouns builds the article and plural exercises an entry supports: zero,
// one, or both. Entries without a lemma, or lacking both a resolvable
// article and a plural, yield nothing. Nouns never fails.
func Nouns(entry dict.Entry, rng *rand.Rand) []exercise.Exercise {
	if entry.Lemma == "" {
		return nil
	}

	var out []exercise.Exercise

	if art := entry.Article; art != "" {
		out = append(out, exercise.Exercise{
			ID:            entry.ID + "-article",
			Kind:          exercise.KindMultipleChoice,
			Prompt:        fmt.Sprintf("Welcher Artikel passt zu %q?", entry.Lemma),
			Options:       Shuffled(articles, rng),
			Answer:        art,
			Policy:        exercise.PolicyExact,
			Explanation:   art + " " + entry.Lemma,
			Tags:          appendTags([]string{"artikel", string(entry.Gender)}, entry.Tags),
			SourceEntryID: entry.ID,
		})
	}

	if entry.Plural != "" {
		plural := entry.Plural
		out = append(out, exercise.Exercise{
			ID:            entry.ID + "-plural",
			Kind:          exercise.KindTypeIn,
			Prompt:        fmt.Sprintf("Was ist der Plural von %q?", entry.Lemma),
			Answer:        plural,
			Policy:        exercise.PolicyDiacriticFold,
			Explanation:   entry.Lemma + " → " + plural,
			Tags:          appendTags([]string{"plural"}, entry.Tags),
			SourceEntryID: entry.ID,
			Validate: func(input string) bool {
				return textnorm.Fold(input) == textnorm.Fold(plural)
			},
		})
	}

	return out
}

// Cloze blanks the lemma out of the entry's first example sentence.
// Returns false if the entry has no example containing the lemma.
func Cloze(entry dict.Entry) (exercise.Exercise, bool) {
	if entry.Lemma == "" || len(entry.Examples) == 0 {
		return exercise.Exercise{}, false
	}
	sentence := entry.Examples[0]
	if !strings.Contains(sentence, entry.Lemma) {
		return exercise.Exercise{}, false
	}
	return exercise.Exercise{
		ID:            entry.ID + "-cloze",
		Kind:          exercise.KindCloze,
		Prompt:        strings.Replace(sentence, entry.Lemma, "___", 1),
		Answer:        entry.Lemma,
		Policy:        exercise.PolicyCaseInsensitive,
		Explanation:   sentence,
		Tags:          appendTags([]string{"cloze"}, entry.Tags),
		SourceEntryID: entry.ID,
	}, true
}

// ReverseTranslation asks for the German word given its primary translation.
func ReverseTranslation(entry dict.Entry) (exercise.Exercise, bool) {
	tr := entry.PrimaryTranslation()
	if entry.Lemma == "" || tr == "" {
		return exercise.Exercise{}, false
	}
	return exercise.Exercise{
		ID:            entry.ID + "-reverse",
		Kind:          exercise.KindTranslation,
		Prompt:        fmt.Sprintf("Wie heißt %q auf Deutsch?", tr),
		Answer:        entry.Lemma,
		Policy:        exercise.PolicyDiacriticFold,
		Explanation:   fmt.Sprintf("%s = %s", entry.Lemma, tr),
		Tags:          appendTags([]string{"wortschatz"}, entry.Tags),
		SourceEntryID: entry.ID,
	}, true
}

func appendTags(base, extra []string) []string {
	out := base[:len(base):len(base)]
	for _, t := range extra {
		if t != "" {
			out = append(out, t)
		}
	}
	// Drop empty gender tags left by Unknown.
	filtered := out[:0]
	for _, t := range out {
		if t != "" {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
