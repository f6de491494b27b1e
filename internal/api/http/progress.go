package http

import (
	"net/http"
	"strings"

	authmw "github.com/lingua-prep/linguaprep-backend/internal/auth/middleware"
	"github.com/lingua-prep/linguaprep-backend/internal/exam"
)

// GET /progress?exam_type=ielts[&skill=reading]
//
// Without a skill the report covers every skill with activity, plus the
// exam's composed overall score.
func ProgressHandler(reg *exam.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		examType := strings.TrimSpace(r.URL.Query().Get("exam_type"))
		svc, err := reg.Get(examType)
		if err != nil {
			writeErr(w, err)
			return
		}
		rep, err := svc.ProgressReport(r.Context(),
			authmw.SubjectFromContext(r.Context()),
			strings.TrimSpace(r.URL.Query().Get("skill")))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rep)
	}
}
