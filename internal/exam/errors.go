package exam

import (
	"errors"
	"fmt"

	"github.com/lingua-prep/linguaprep-backend/internal/grading"
)

// Error taxonomy shared by every exam type so callers can branch uniformly:
// not-found errors are routine and surfaced as "no more questions" or 404s,
// configuration errors mean bad content data and are never retried, and
// ErrEvaluationUnavailable marks oracle failures the caller may retry —
// it must never be coerced into a fabricated score.

var (
	ErrExamTypeNotFound = errors.New("exam type not found")
	ErrSkillNotFound    = errors.New("skill not found for exam type")
	ErrQuestionNotFound = errors.New("question not found")
	ErrAttemptNotFound  = errors.New("attempt not found")

	// ErrNoQuestions signals routine emptiness: no stored or synthesizable
	// content for the (exam, skill) pair.
	ErrNoQuestions = errors.New("no questions available")

	// ErrEvaluationUnavailable is the grading package's sentinel re-exported
	// so callers can branch on it without importing grading.
	ErrEvaluationUnavailable = grading.ErrUnavailable
)

// ConfigError indicates broken content data (unknown codes, objective
// questions missing their answer key). Fatal for the request; logged upstream.
type ConfigError struct {
	QuestionID string
	Reason     string
}

func (e *ConfigError) Error() string {
	if e.QuestionID == "" {
		return "config error: " + e.Reason
	}
	return fmt.Sprintf("config error: question %s: %s", e.QuestionID, e.Reason)
}

// IsConfigError reports whether err is (or wraps) a content configuration error.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
