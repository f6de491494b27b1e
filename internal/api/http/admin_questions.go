package http

import (
	"encoding/json"
	"net/http"

	"github.com/lingua-prep/linguaprep-backend/internal/exam"
)

type authorRequest struct {
	ExamType string        `json:"exam_type"`
	Question exam.Question `json:"question"`
}

// POST /admin/questions (admin-only, mounted behind RequireRole)
func AuthorQuestionHandler(reg *exam.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req authorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		svc, err := reg.Get(req.ExamType)
		if err != nil {
			writeErr(w, err)
			return
		}
		q, err := svc.AuthorQuestion(r.Context(), req.Question)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, q)
	}
}
