package http

import (
	"net/http"

	"github.com/lingua-prep/linguaprep-backend/internal/exam"
	"github.com/lingua-prep/linguaprep-backend/internal/formats"
)

type examSummary struct {
	Code   string              `json:"code"`
	Name   string              `json:"name"`
	Scale  formats.Scale       `json:"scale"`
	Skills []formats.SkillInfo `json:"skills"`
}

// GET /exams
func ListExamsHandler(reg *exam.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := make([]examSummary, 0, len(reg.Codes()))
		for _, code := range reg.Codes() {
			svc, err := reg.Get(code)
			if err != nil {
				continue
			}
			p := svc.Profile()
			out = append(out, examSummary{Code: p.Code, Name: p.Name, Scale: p.Scale, Skills: p.Skills})
		}
		writeJSON(w, http.StatusOK, out)
	}
}
