package exercise

import (
	"fmt"
	"strings"
)

// Kind describes how an exercise is presented and answered.
type Kind string

const (
	// KindMultipleChoice means the learner picks one of the listed options.
	KindMultipleChoice Kind = "multiple-choice"

	// KindFillInBlank means the learner types the missing word or phrase.
	KindFillInBlank Kind = "fill-in-the-blank"

	// KindTypeIn means the learner types a free-form answer (e.g. a plural).
	KindTypeIn Kind = "type-in"

	// KindTranslation means the learner types the word in the target language.
	KindTranslation Kind = "translation"

	// KindCloze means the learner fills the blanked word in an example sentence.
	KindCloze Kind = "cloze"
)

// IsFreeText reports whether the kind is answered by typing rather than
// picking an option.
func (k Kind) IsFreeText() bool {
	return k != KindMultipleChoice
}

// Policy selects the comparison rule used to grade a submitted answer.
type Policy string

const (
	// PolicyExact compares strings byte-for-byte.
	PolicyExact Policy = "exact"

	// PolicyCaseInsensitive trims and lowercases both sides before comparing.
	PolicyCaseInsensitive Policy = "case-insensitive"

	// PolicyDiacriticFold applies full text folding (lowercase, German
	// substitutions, diacritic stripping) before comparing.
	PolicyDiacriticFold Policy = "diacritic-fold"
)

// Validator is an optional per-exercise predicate that overrides the
// policy-based comparison. It receives the raw submitted string.
type Validator func(submitted string) bool

// Exercise is the canonical representation every raw format converges to.
// A built Exercise is immutable; sessions only ever read it.
type Exercise struct {
	// ID is stable and unique within a session.
	ID string `json:"id"`

	// Kind selects presentation and grading strategy.
	Kind Kind `json:"kind"`

	// Prompt is the question text shown to the learner. Never empty.
	Prompt string `json:"prompt"`

	// Options is the ordered option list. Non-empty iff Kind is
	// KindMultipleChoice, and always contains Answer exactly once.
	Options []string `json:"options,omitempty"`

	// Answer is the canonical correct answer as display text.
	Answer string `json:"answer"`

	// Policy is the comparison rule for free-text kinds. Multiple choice
	// always grades by exact option text regardless of this field.
	Policy Policy `json:"policy"`

	// Explanation is optional text shown after answering.
	Explanation string `json:"explanation,omitempty"`

	// Tags are grammatical labels (case, gender, …) used for session filters.
	Tags []string `json:"tags,omitempty"`

	// SourceEntryID links back to the dictionary entry that generated this
	// exercise. Lineage only; empty for hand-authored records.
	SourceEntryID string `json:"sourceEntryId,omitempty"`

	// Validate overrides Policy when non-nil (generator-supplied matcher).
	// Not serializable; exercises rebuilt from JSON fall back to Policy.
	Validate Validator `json:"-"`
}

// HasTag reports whether the exercise carries the given tag.
func (e *Exercise) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Check verifies the canonical invariants: non-empty prompt and answer, and
// for multiple choice at least two options with the answer appearing exactly
// once. Returns nil if the exercise is well formed.
func (e *Exercise) Check() error {
	if strings.TrimSpace(e.Prompt) == "" {
		return fmt.Errorf("exercise %q: empty prompt", e.ID)
	}
	if strings.TrimSpace(e.Answer) == "" {
		return fmt.Errorf("exercise %q: empty answer", e.ID)
	}
	if e.Kind == KindMultipleChoice {
		if len(e.Options) < 2 {
			return fmt.Errorf("exercise %q: multiple choice needs >= 2 options, got %d", e.ID, len(e.Options))
		}
		hits := 0
		for _, opt := range e.Options {
			if opt == e.Answer {
				hits++
			}
		}
		if hits != 1 {
			return fmt.Errorf("exercise %q: answer must appear exactly once in options, found %d", e.ID, hits)
		}
	} else if len(e.Options) > 0 {
		return fmt.Errorf("exercise %q: options present on %s exercise", e.ID, e.Kind)
	}
	return nil
}

// DefaultPolicy returns the comparison policy used when a record does not
// specify one: free-text kinds fold case, multiple choice is exact membership.
func DefaultPolicy(kind Kind) Policy {
	if kind == KindMultipleChoice {
		return PolicyExact
	}
	return PolicyCaseInsensitive
}
