package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/lingua-prep/linguaprep-backend/internal/exam"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr maps the exam error taxonomy onto HTTP statuses. Not-found errors
// are routine; config errors are unprocessable content; an unavailable oracle
// is a retryable 503.
func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, exam.ErrNoQuestions):
		http.Error(w, "no questions available", http.StatusNotFound)
	case errors.Is(err, exam.ErrExamTypeNotFound),
		errors.Is(err, exam.ErrSkillNotFound),
		errors.Is(err, exam.ErrQuestionNotFound),
		errors.Is(err, exam.ErrAttemptNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case exam.IsConfigError(err):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, exam.ErrEvaluationUnavailable):
		http.Error(w, "evaluation temporarily unavailable, retry later", http.StatusServiceUnavailable)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil && v >= 0 {
		return v
	}
	return def
}
