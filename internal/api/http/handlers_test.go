package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	authmw "github.com/lingua-prep/linguaprep-backend/internal/auth/middleware"
	"github.com/lingua-prep/linguaprep-backend/internal/exam"
	"github.com/lingua-prep/linguaprep-backend/internal/formats"
	_ "github.com/lingua-prep/linguaprep-backend/internal/formats/ielts"
	"github.com/lingua-prep/linguaprep-backend/internal/grading"
)

func testRouter(t *testing.T) (chi.Router, *exam.Registry, exam.Store) {
	t.Helper()
	store := exam.NewInMemoryStore()
	reg, err := exam.NewRegistry(store, func(p *formats.Profile) *grading.Grader {
		return grading.NewGrader(p)
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	r := chi.NewRouter()
	r.Get("/exams", ListExamsHandler(reg))
	r.Get("/exams/{examType}/skills/{skill}/next", NextQuestionHandler(reg))
	r.Post("/attempts", SubmitAttemptHandler(reg))
	r.Get("/attempts", ListAttemptsHandler(reg))
	r.Get("/progress", ProgressHandler(reg))
	r.Post("/admin/questions", AuthorQuestionHandler(reg))
	return r, reg, store
}

func asUser(req *http.Request, userID string) *http.Request {
	return req.WithContext(authmw.WithSubject(req.Context(), userID))
}

func TestListExams(t *testing.T) {
	r, _, _ := testRouter(t)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/exams", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var out []examSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	found := false
	for _, e := range out {
		if e.Code == "ielts" && len(e.Skills) == 4 {
			found = true
		}
	}
	if !found {
		t.Errorf("ielts summary missing from %v", out)
	}
}

func TestNextQuestionIsRedacted(t *testing.T) {
	r, reg, _ := testRouter(t)
	svc, err := reg.Get("ielts")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AuthorQuestion(context.Background(), exam.Question{
		Skill: "reading", Kind: "multiple_choice", Difficulty: "easy",
		Prompt: "Pick.", AnswerKey: []string{"B"}, Points: 1,
	}); err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	req := asUser(httptest.NewRequest("GET", "/exams/ielts/skills/reading/next?difficulty=easy", nil), "u1")
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "answer_key") {
		t.Errorf("answer key leaked to the client: %s", rec.Body.String())
	}
	var q exam.Question
	if err := json.Unmarshal(rec.Body.Bytes(), &q); err != nil {
		t.Fatal(err)
	}
	if q.ID == "" || q.Skill != "reading" {
		t.Errorf("question malformed: %+v", q)
	}
}

func TestNextQuestionUnknownExam(t *testing.T) {
	r, _, _ := testRouter(t)
	rec := httptest.NewRecorder()
	req := asUser(httptest.NewRequest("GET", "/exams/gre/skills/reading/next", nil), "u1")
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestSubmitAndProgressFlow(t *testing.T) {
	r, reg, store := testRouter(t)
	svc, err := reg.Get("ielts")
	if err != nil {
		t.Fatal(err)
	}
	q, err := svc.AuthorQuestion(context.Background(), exam.Question{
		Skill: "reading", Kind: "multiple_choice", Difficulty: "easy",
		Prompt: "Pick.", AnswerKey: []string{"B"}, Points: 1,
	})
	if err != nil {
		t.Fatal(err)
	}

	body, _ := json.Marshal(submitRequest{
		ExamType:   "ielts",
		QuestionID: q.ID,
		Answer:     exam.Answer{Text: "B"},
	})
	rec := httptest.NewRecorder()
	req := asUser(httptest.NewRequest("POST", "/attempts", bytes.NewReader(body)), "u1")
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("submit status = %d: %s", rec.Code, rec.Body.String())
	}
	var resp submitResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.AttemptID == "" || resp.Evaluation.IsCorrect == nil || !*resp.Evaluation.IsCorrect {
		t.Errorf("submit response = %+v", resp)
	}
	if _, err := store.GetAttempt(req.Context(), resp.AttemptID); err != nil {
		t.Errorf("attempt not stored: %v", err)
	}

	rec = httptest.NewRecorder()
	req = asUser(httptest.NewRequest("GET", "/progress?exam_type=ielts&skill=reading", nil), "u1")
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("progress status = %d", rec.Code)
	}
	var rep exam.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &rep); err != nil {
		t.Fatal(err)
	}
	if len(rep.Skills) != 1 || rep.Skills[0].TotalQuestions != 1 || rep.Skills[0].CorrectAnswers != 1 {
		t.Errorf("report = %+v", rep)
	}

	rec = httptest.NewRecorder()
	req = asUser(httptest.NewRequest("GET", "/attempts?exam_type=ielts", nil), "u1")
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("attempts status = %d", rec.Code)
	}
	var list []exam.Attempt
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].UserID != "u1" {
		t.Errorf("attempt list = %+v", list)
	}
}

func TestSubmitUnknownQuestion(t *testing.T) {
	r, _, _ := testRouter(t)
	body, _ := json.Marshal(submitRequest{ExamType: "ielts", QuestionID: "missing"})
	rec := httptest.NewRecorder()
	req := asUser(httptest.NewRequest("POST", "/attempts", bytes.NewReader(body)), "u1")
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestAuthorQuestionRejectsBadContent(t *testing.T) {
	r, _, _ := testRouter(t)
	body, _ := json.Marshal(authorRequest{
		ExamType: "ielts",
		Question: exam.Question{Skill: "reading", Kind: "multiple_choice", Difficulty: "easy", Prompt: "Pick."},
	})
	rec := httptest.NewRecorder()
	req := asUser(httptest.NewRequest("POST", "/admin/questions", bytes.NewReader(body)), "admin")
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}
