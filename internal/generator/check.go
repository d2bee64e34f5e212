package generator

import (
	"fmt"
	"strings"

	"github.com/quizforge/backend/internal/models"
)

// ValidationError lists every structural problem found in generated output.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// Validate checks the invariants every generated question must hold.
func Validate(q models.GeneratedQuestion) error {
	if errs := questionProblems(q); len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// ValidateSet checks each question of a set and that question numbers run
// from 1 without gaps.
func ValidateSet(questions []models.GeneratedQuestion) error {
	var errs []string
	if len(questions) == 0 {
		return &ValidationError{Errors: []string{"no questions in set"}}
	}
	for i, q := range questions {
		qNum := i + 1
		if q.QuestionNumber != qNum {
			errs = append(errs, fmt.Sprintf("question %d: numbered %d", qNum, q.QuestionNumber))
		}
		for _, e := range questionProblems(q) {
			errs = append(errs, fmt.Sprintf("question %d: %s", qNum, e))
		}
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

func questionProblems(q models.GeneratedQuestion) []string {
	var errs []string
	if q.Question == "" {
		errs = append(errs, "empty question")
	}
	if op, ok := ParseOperation(q.OperationType); ok && op.IsMath() && strings.ContainsAny(q.Question, "{}") {
		errs = append(errs, "unsubstituted placeholder")
	}
	if len(q.Options) != OptionCount {
		errs = append(errs, fmt.Sprintf("expected %d options, got %d", OptionCount, len(q.Options)))
	}
	seen := make(map[string]bool, len(q.Options))
	for _, o := range q.Options {
		if seen[o] {
			errs = append(errs, fmt.Sprintf("duplicate option %q", o))
		}
		seen[o] = true
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		errs = append(errs, fmt.Sprintf("correct_index %d out of range", q.CorrectIndex))
	}
	if q.Explanation == "" {
		errs = append(errs, "empty explanation")
	}
	return errs
}

// IndexDistribution counts how often each option slot holds the answer.
func IndexDistribution(questions []models.GeneratedQuestion) [OptionCount]int {
	var counts [OptionCount]int
	for _, q := range questions {
		if q.CorrectIndex >= 0 && q.CorrectIndex < OptionCount {
			counts[q.CorrectIndex]++
		}
	}
	return counts
}
