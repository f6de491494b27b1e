package http

import (
	"encoding/json"
	"net/http"
	"strings"

	authmw "github.com/lingua-prep/linguaprep-backend/internal/auth/middleware"
	"github.com/lingua-prep/linguaprep-backend/internal/exam"
)

type submitRequest struct {
	ExamType     string      `json:"exam_type"`
	QuestionID   string      `json:"question_id"`
	Answer       exam.Answer `json:"answer"`
	TimeSpentSec int         `json:"time_spent_sec"`
}

type submitResponse struct {
	AttemptID  string          `json:"attempt_id"`
	Evaluation exam.Evaluation `json:"evaluation"`
}

// POST /attempts
func SubmitAttemptHandler(reg *exam.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.QuestionID == "" {
			http.Error(w, "question_id required", http.StatusBadRequest)
			return
		}
		svc, err := reg.Get(req.ExamType)
		if err != nil {
			writeErr(w, err)
			return
		}
		userID := authmw.SubjectFromContext(r.Context())
		a, ev, err := svc.SubmitAnswer(r.Context(), userID, exam.Submission{
			QuestionID:   req.QuestionID,
			Answer:       req.Answer,
			TimeSpentSec: req.TimeSpentSec,
		})
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, submitResponse{AttemptID: a.ID, Evaluation: ev})
	}
}

// GET /attempts?exam_type=ielts&skill=reading&limit=20&offset=0
//
// Students only ever see their own history; the user id comes from the JWT,
// never from the query string.
func ListAttemptsHandler(reg *exam.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		examType := strings.TrimSpace(r.URL.Query().Get("exam_type"))
		svc, err := reg.Get(examType)
		if err != nil {
			writeErr(w, err)
			return
		}
		list, err := svc.ListAttempts(r.Context(), exam.AttemptListOpts{
			UserID: authmw.SubjectFromContext(r.Context()),
			Skill:  strings.TrimSpace(r.URL.Query().Get("skill")),
			Limit:  parseIntDefault(r.URL.Query().Get("limit"), 20),
			Offset: parseIntDefault(r.URL.Query().Get("offset"), 0),
		})
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}
