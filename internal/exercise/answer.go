package exercise

import (
	"strings"

	"github.com/AbateG/deutsche-ubungen/internal/textnorm"
)

// CheckAnswer compares the learner's input against the exercise's answer.
// Returns true if the answer is correct.
//
// Comparison rules:
// - A generator-supplied Validate predicate takes precedence over everything
//   else and receives the raw submitted string.
// - Multiple choice matches the chosen option text exactly; the option text
//   itself is the comparison key, never an index.
// - Free-text kinds compare under the exercise's Policy.
func CheckAnswer(submitted string, ex *Exercise) bool {
	if ex.Validate != nil {
		return ex.Validate(submitted)
	}

	if ex.Kind == KindMultipleChoice {
		return submitted == ex.Answer
	}

	switch ex.Policy {
	case PolicyExact:
		return strings.TrimSpace(submitted) == strings.TrimSpace(ex.Answer)
	case PolicyDiacriticFold:
		return textnorm.Fold(submitted) == textnorm.Fold(ex.Answer)
	default:
		return textnorm.CaseFold(submitted) == textnorm.CaseFold(ex.Answer)
	}
}
