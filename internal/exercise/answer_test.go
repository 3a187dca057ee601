package exercise

import (
	"strings"
	"testing"
)

func TestCheckAnswerMultipleChoice(t *testing.T) {
	ex := &Exercise{
		ID:      "mc-1",
		Kind:    KindMultipleChoice,
		Prompt:  "Welcher Artikel passt zu \"Katze\"?",
		Options: []string{"der", "die", "das"},
		Answer:  "die",
		Policy:  PolicyExact,
	}

	tests := []struct {
		submitted string
		want      bool
	}{
		{"die", true},
		{"der", false},
		{"das", false},
		{"Die", false}, // option text matches exactly, no folding
		{" die", false},
		{"", false},
	}

	for _, tt := range tests {
		got := CheckAnswer(tt.submitted, ex)
		if got != tt.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tt.submitted, got, tt.want)
		}
	}
}

func TestCheckAnswerPolicies(t *testing.T) {
	tests := []struct {
		name      string
		policy    Policy
		answer    string
		submitted string
		want      bool
	}{
		{"exact match", PolicyExact, "den", "den", true},
		{"exact trims", PolicyExact, "den", "  den  ", true},
		{"exact case sensitive", PolicyExact, "den", "Den", false},
		{"case-insensitive match", PolicyCaseInsensitive, "eine", "Eine", true},
		{"case-insensitive keeps umlauts", PolicyCaseInsensitive, "Tür", "tuer", false},
		{"fold umlaut spelling", PolicyDiacriticFold, "Türen", "tueren", true},
		{"fold eszett", PolicyDiacriticFold, "Straße", "strasse", true},
		{"fold wrong word", PolicyDiacriticFold, "Katzen", "Katze", false},
		{"empty policy defaults to case fold", Policy(""), "Hunde", "hunde", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := &Exercise{ID: "ft-1", Kind: KindTypeIn, Prompt: "p", Answer: tt.answer, Policy: tt.policy}
			got := CheckAnswer(tt.submitted, ex)
			if got != tt.want {
				t.Errorf("CheckAnswer(%q) with policy %q = %v, want %v", tt.submitted, tt.policy, got, tt.want)
			}
		})
	}
}

func TestCheckAnswerValidatorWins(t *testing.T) {
	ex := &Exercise{
		ID:     "v-1",
		Kind:   KindTypeIn,
		Prompt: "p",
		Answer: "Katzen",
		Policy: PolicyExact,
		Validate: func(s string) bool {
			return strings.HasPrefix(s, "Katz")
		},
	}

	if !CheckAnswer("Katze", ex) {
		t.Errorf("CheckAnswer should defer to Validate, got false for %q", "Katze")
	}
	if CheckAnswer("Hund", ex) {
		t.Errorf("CheckAnswer should defer to Validate, got true for %q", "Hund")
	}
}

func TestExerciseCheck(t *testing.T) {
	tests := []struct {
		name    string
		ex      Exercise
		wantErr bool
	}{
		{
			name: "valid multiple choice",
			ex: Exercise{
				ID: "1", Kind: KindMultipleChoice, Prompt: "p",
				Options: []string{"der", "die", "das"}, Answer: "die",
			},
		},
		{
			name: "valid type-in",
			ex:   Exercise{ID: "2", Kind: KindTypeIn, Prompt: "p", Answer: "a"},
		},
		{
			name:    "empty prompt",
			ex:      Exercise{ID: "3", Kind: KindTypeIn, Prompt: "  ", Answer: "a"},
			wantErr: true,
		},
		{
			name:    "empty answer",
			ex:      Exercise{ID: "4", Kind: KindTypeIn, Prompt: "p", Answer: ""},
			wantErr: true,
		},
		{
			name: "answer missing from options",
			ex: Exercise{
				ID: "5", Kind: KindMultipleChoice, Prompt: "p",
				Options: []string{"der", "das"}, Answer: "die",
			},
			wantErr: true,
		},
		{
			name: "answer duplicated in options",
			ex: Exercise{
				ID: "6", Kind: KindMultipleChoice, Prompt: "p",
				Options: []string{"die", "die"}, Answer: "die",
			},
			wantErr: true,
		},
		{
			name: "too few options",
			ex: Exercise{
				ID: "7", Kind: KindMultipleChoice, Prompt: "p",
				Options: []string{"die"}, Answer: "die",
			},
			wantErr: true,
		},
		{
			name: "options on free-text exercise",
			ex: Exercise{
				ID: "8", Kind: KindFillInBlank, Prompt: "p",
				Options: []string{"a", "b"}, Answer: "a",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ex.Check()
			if (err != nil) != tt.wantErr {
				t.Errorf("Check() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultPolicy(t *testing.T) {
	if got := DefaultPolicy(KindMultipleChoice); got != PolicyExact {
		t.Errorf("DefaultPolicy(multiple-choice) = %q, want %q", got, PolicyExact)
	}
	for _, k := range []Kind{KindFillInBlank, KindTypeIn, KindTranslation, KindCloze} {
		if got := DefaultPolicy(k); got != PolicyCaseInsensitive {
			t.Errorf("DefaultPolicy(%q) = %q, want %q", k, got, PolicyCaseInsensitive)
		}
	}
}
