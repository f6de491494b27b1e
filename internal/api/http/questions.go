package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	authmw "github.com/lingua-prep/linguaprep-backend/internal/auth/middleware"
	"github.com/lingua-prep/linguaprep-backend/internal/exam"
)

// GET /exams/{examType}/skills/{skill}/next?difficulty=medium
//
// difficulty is an optional override; when absent the selector adapts from
// the user's recent accuracy. The question is redacted before it leaves the
// server, so answer keys never reach students.
func NextQuestionHandler(reg *exam.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc, err := reg.Get(chi.URLParam(r, "examType"))
		if err != nil {
			writeErr(w, err)
			return
		}
		skill := chi.URLParam(r, "skill")
		difficulty := strings.TrimSpace(r.URL.Query().Get("difficulty"))
		userID := authmw.SubjectFromContext(r.Context())

		q, err := svc.NextQuestion(r.Context(), userID, skill, difficulty)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, q.Redacted())
	}
}
