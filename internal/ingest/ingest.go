// Package ingest converts raw exercise records of varying shapes into the
// canonical exercise model. Every known field alias is resolved through one
// explicit table; records that cannot be repaired are rejected individually
// and never abort the batch.
package ingest

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/AbateG/deutsche-ubungen/internal/exercise"
)

// RejectReason classifies why a record was excluded.
type RejectReason string

const (
	ReasonMissingPrompt  RejectReason = "missing-prompt"
	ReasonMissingAnswer  RejectReason = "missing-answer"
	ReasonMissingOptions RejectReason = "missing-options"
	ReasonBadRecord      RejectReason = "bad-record"
)

// RejectError reports a per-record normalization failure.
type RejectError struct {
	Reason RejectReason
	Detail string
}

func (e *RejectError) Error() string {
	return fmt.Sprintf("record rejected (%s): %s", e.Reason, e.Detail)
}

// kindAliases maps every known type spelling onto the canonical kind.
var kindAliases = map[string]exercise.Kind{
	"mcq":               exercise.KindMultipleChoice,
	"multiple-choice":   exercise.KindMultipleChoice,
	"multiple_choice":   exercise.KindMultipleChoice,
	"fill-in-the-blank": exercise.KindFillInBlank,
	"fill-in-blank":     exercise.KindFillInBlank,
	"type-in":           exercise.KindTypeIn,
	"typein":            exercise.KindTypeIn,
	"translation":       exercise.KindTranslation,
	"cloze":             exercise.KindCloze,
}

// Normalize converts one raw record into a canonical Exercise.
//
// Alias resolution: prompt/question, options/choices, answer or
// answerIndex+options. Kind inference: explicit type wins; otherwise a
// record with options is multiple choice and one without is fill-in-blank.
// Records without an id get a stable one derived from prompt and answer.
// A *RejectError is returned for records that cannot yield a valid exercise.
func Normalize(raw map[string]any) (exercise.Exercise, error) {
	var ex exercise.Exercise

	prompt := firstString(raw, "prompt", "question")
	if prompt == "" {
		return ex, &RejectError{Reason: ReasonMissingPrompt, Detail: "no prompt or question field"}
	}

	options := stringList(raw, "options", "choices")

	kind, ok := kindAliases[strings.ToLower(firstString(raw, "type", "kind"))]
	if !ok {
		if len(options) > 0 {
			kind = exercise.KindMultipleChoice
		} else {
			kind = exercise.KindFillInBlank
		}
	}

	if kind == exercise.KindMultipleChoice && len(options) == 0 {
		return ex, &RejectError{Reason: ReasonMissingOptions, Detail: "multiple choice without options"}
	}

	answer, err := resolveAnswer(raw, options)
	if err != nil {
		return ex, err
	}

	id := firstString(raw, "id")
	if id == "" {
		id = syntheticID(prompt, answer)
	}

	ex = exercise.Exercise{
		ID:          id,
		Kind:        kind,
		Prompt:      prompt,
		Answer:      answer,
		Explanation: firstString(raw, "explanation", "explain"),
		Tags:        stringList(raw, "tags"),
		Policy:      exercise.DefaultPolicy(kind),
	}
	if kind == exercise.KindMultipleChoice {
		ex.Options = options
	}

	if err := ex.Check(); err != nil {
		return exercise.Exercise{}, &RejectError{Reason: ReasonBadRecord, Detail: err.Error()}
	}
	return ex, nil
}

// NormalizeAll normalizes a batch, silently dropping rejected records.
// The returned count of rejects lets callers log the loss without
// inspecting individual errors.
func NormalizeAll(raws []map[string]any) (out []exercise.Exercise, rejected int) {
	for _, raw := range raws {
		ex, err := Normalize(raw)
		if err != nil {
			rejected++
			continue
		}
		out = append(out, ex)
	}
	return out, rejected
}

// syntheticID derives a stable id for records authored without one, so
// session dedup keys on content rather than collapsing every unlabeled
// record onto the empty id.
func syntheticID(prompt, answer string) string {
	h := fnv.New32a()
	h.Write([]byte(prompt))
	h.Write([]byte{0})
	h.Write([]byte(answer))
	return fmt.Sprintf("r-%08x", h.Sum32())
}

// resolveAnswer prefers an explicit answer string; failing that, it indexes
// the options with answerIndex. JSON numbers decode as float64.
func resolveAnswer(raw map[string]any, options []string) (string, error) {
	if s, ok := raw["answer"].(string); ok && strings.TrimSpace(s) != "" {
		return s, nil
	}
	idx, ok := numberIndex(raw["answerIndex"])
	if ok && idx >= 0 && idx < len(options) {
		return options[idx], nil
	}
	if ok {
		return "", &RejectError{Reason: ReasonMissingAnswer, Detail: fmt.Sprintf("answerIndex %d out of range", idx)}
	}
	return "", &RejectError{Reason: ReasonMissingAnswer, Detail: "no answer and no usable answerIndex"}
}

func numberIndex(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}

func firstString(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := raw[k].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func stringList(raw map[string]any, keys ...string) []string {
	for _, k := range keys {
		vals, ok := raw[k].([]any)
		if !ok {
			continue
		}
		var out []string
		for _, v := range vals {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}
