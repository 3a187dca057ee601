package generate

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/AbateG/deutsche-ubungen/internal/dict"
)

func TestShuffledIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	in := []string{"der", "die", "das", "den", "dem"}

	got := Shuffled(in, rng)
	if len(got) != len(in) {
		t.Fatalf("Shuffled() len = %d, want %d", len(got), len(in))
	}

	wantSorted := append([]string(nil), in...)
	gotSorted := append([]string(nil), got...)
	sort.Strings(wantSorted)
	sort.Strings(gotSorted)
	for i := range wantSorted {
		if gotSorted[i] != wantSorted[i] {
			t.Fatalf("Shuffled() is not a permutation: got %v from %v", got, in)
		}
	}
}

func TestShuffledDoesNotMutateInput(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	in := []string{"a", "b", "c", "d"}
	orig := append([]string(nil), in...)

	Shuffled(in, rng)
	for i := range in {
		if in[i] != orig[i] {
			t.Fatalf("Shuffled() mutated its input: %v, want %v", in, orig)
		}
	}
}

func TestDistractors(t *testing.T) {
	pool := []string{"cat", "dog", "cat", "house", "", "book", "cat"}

	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		got := Distractors("cat", pool, 2, rng)

		if len(got) != 2 {
			t.Fatalf("seed %d: Distractors() len = %d, want 2", seed, len(got))
		}
		seen := map[string]bool{}
		for _, d := range got {
			if d == "cat" {
				t.Errorf("seed %d: distractors contain the correct answer", seed)
			}
			if d == "" {
				t.Errorf("seed %d: distractors contain an empty string", seed)
			}
			if seen[d] {
				t.Errorf("seed %d: duplicate distractor %q", seed, d)
			}
			seen[d] = true
		}
	}
}

func TestDistractorsSmallPool(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	got := Distractors("cat", []string{"cat", "dog"}, 5, rng)
	if len(got) != 1 || got[0] != "dog" {
		t.Errorf("Distractors() = %v, want [dog]", got)
	}

	got = Distractors("cat", []string{"cat"}, 2, rng)
	if len(got) != 0 {
		t.Errorf("Distractors() with exhausted pool = %v, want empty", got)
	}
}

func TestTranslations(t *testing.T) {
	entries := []dict.Entry{
		{ID: "n-katze", Lemma: "Katze", Translations: []string{"cat"}},
		{ID: "n-hund", Lemma: "Hund", Translations: []string{"dog"}},
		{ID: "n-haus", Lemma: "Haus", Translations: []string{"house"}},
		{ID: "v-x", Lemma: "xen"}, // no translation, skipped
	}

	rng := rand.New(rand.NewSource(4))
	got := Translations(entries, 2, rng)

	if len(got) != 3 {
		t.Fatalf("Translations() built %d exercises, want 3", len(got))
	}
	for _, ex := range got {
		if err := ex.Check(); err != nil {
			t.Errorf("generated exercise invalid: %v", err)
		}
		if len(ex.Options) != 3 {
			t.Errorf("exercise %s has %d options, want 3", ex.ID, len(ex.Options))
		}
	}
	if got[0].Answer != "cat" || got[0].SourceEntryID != "n-katze" {
		t.Errorf("first exercise = %+v, want answer cat from n-katze", got[0])
	}
}

func TestTranslationsSkipsUnanswerable(t *testing.T) {
	// Only one translation in the whole collection: no distractors possible.
	entries := []dict.Entry{
		{ID: "n-katze", Lemma: "Katze", Translations: []string{"cat"}},
	}
	rng := rand.New(rand.NewSource(5))
	if got := Translations(entries, 2, rng); len(got) != 0 {
		t.Errorf("Translations() = %v, want none", got)
	}
}
