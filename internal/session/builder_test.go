package session

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/AbateG/deutsche-ubungen/internal/exercise"
)

func sampleExercises() []exercise.Exercise {
	return []exercise.Exercise{
		{ID: "1", Kind: exercise.KindFillInBlank, Prompt: "p1", Answer: "a1", Tags: []string{"akkusativ", "maskulin"}},
		{ID: "2", Kind: exercise.KindFillInBlank, Prompt: "p2", Answer: "a2", Tags: []string{"dativ", "feminin"}},
		{ID: "3", Kind: exercise.KindFillInBlank, Prompt: "p3", Answer: "a3", Tags: []string{"genitiv", "feminin"}},
		{ID: "4", Kind: exercise.KindFillInBlank, Prompt: "p4", Answer: "a4", Tags: []string{"nominativ", "neutral"}},
	}
}

func TestFilterMatch(t *testing.T) {
	ex := &exercise.Exercise{Tags: []string{"dativ", "feminin"}}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"empty filter", Filter{}, true},
		{"nil filter", nil, true},
		{"matching single dimension", Filter{"case": {"dativ"}}, true},
		{"non-matching dimension", Filter{"case": {"akkusativ"}}, false},
		{"both dimensions match", Filter{"case": {"dativ"}, "gender": {"feminin"}}, true},
		{"one dimension fails", Filter{"case": {"dativ"}, "gender": {"maskulin"}}, false},
		{"any value within dimension", Filter{"case": {"akkusativ", "dativ"}}, true},
		{"empty dimension passes", Filter{"case": {}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Match(ex); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildFilters(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	got := Build(Filter{"gender": {"feminin"}}, rng, sampleExercises())

	if len(got) != 2 {
		t.Fatalf("Build() kept %d exercises, want 2", len(got))
	}
	for _, ex := range got {
		if !ex.HasTag("feminin") {
			t.Errorf("exercise %s does not carry the filtered tag", ex.ID)
		}
	}
}

func TestBuildNoFilterKeepsAll(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	got := Build(nil, rng, sampleExercises())

	if len(got) != 4 {
		t.Fatalf("Build() kept %d exercises, want 4", len(got))
	}
	ids := make([]string, len(got))
	for i, ex := range got {
		ids[i] = ex.ID
	}
	sort.Strings(ids)
	for i, want := range []string{"1", "2", "3", "4"} {
		if ids[i] != want {
			t.Fatalf("Build() ids = %v, want permutation of 1..4", ids)
		}
	}
}

func TestBuildDeduplicatesAcrossSources(t *testing.T) {
	a := []exercise.Exercise{
		{ID: "1", Prompt: "first", Answer: "x"},
		{ID: "2", Prompt: "p2", Answer: "y"},
	}
	b := []exercise.Exercise{
		{ID: "1", Prompt: "duplicate", Answer: "z"},
		{ID: "3", Prompt: "p3", Answer: "w"},
	}

	rng := rand.New(rand.NewSource(3))
	got := Build(nil, rng, a, b)

	if len(got) != 3 {
		t.Fatalf("Build() kept %d exercises, want 3", len(got))
	}
	for _, ex := range got {
		if ex.ID == "1" && ex.Prompt != "first" {
			t.Errorf("duplicate id should keep first occurrence, got prompt %q", ex.Prompt)
		}
	}
}

func TestBuildEmptyResult(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	got := Build(Filter{"case": {"vokativ"}}, rng, sampleExercises())
	if len(got) != 0 {
		t.Errorf("Build() = %v, want empty", got)
	}
}
