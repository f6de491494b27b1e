// Package genai adapts Google's generative models into the grading Oracle.
// The model is prompted with the task, the learner's answer and the rubric,
// and must reply with a strict JSON verdict.
package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/lingua-prep/linguaprep-backend/internal/grading"
)

type Oracle struct {
	client *genai.Client
	model  string
}

// New builds a genai-backed oracle. model defaults to gemini-1.5-flash.
func New(ctx context.Context, apiKey, model string) (*Oracle, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("genai client: %w", err)
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &Oracle{client: client, model: model}, nil
}

type verdict struct {
	Criteria    map[string]float64 `json:"criteria"`
	Overall     float64            `json:"overall"`
	Feedback    string             `json:"feedback"`
	Suggestions string             `json:"suggestions"`
}

func (o *Oracle) Score(ctx context.Context, req grading.OracleRequest) (grading.OracleResult, error) {
	prompt := buildPrompt(req)

	result, err := o.client.Models.GenerateContent(ctx, o.model, genai.Text(prompt), nil)
	if err != nil {
		return grading.OracleResult{}, fmt.Errorf("generate content: %w", err)
	}
	text := result.Text()
	if text == "" {
		return grading.OracleResult{}, fmt.Errorf("empty response from model")
	}

	var v verdict
	if err := json.Unmarshal([]byte(extractJSON(text)), &v); err != nil {
		return grading.OracleResult{}, fmt.Errorf("parse verdict: %w", err)
	}
	// Clamp whatever the model produced into the skill's range.
	for k, s := range v.Criteria {
		if s < 0 {
			v.Criteria[k] = 0
		}
		if s > req.MaxScore {
			v.Criteria[k] = req.MaxScore
		}
	}
	return grading.OracleResult{
		Overall:     v.Overall,
		Criteria:    v.Criteria,
		Feedback:    v.Feedback,
		Suggestions: v.Suggestions,
	}, nil
}

func buildPrompt(req grading.OracleRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an examiner for the %s exam, scoring the %s skill.\n", strings.ToUpper(req.ExamType), req.Skill)
	fmt.Fprintf(&b, "Task:\n%s\n\nCandidate answer:\n%s\n\n", req.Prompt, req.Answer)
	fmt.Fprintf(&b, "Score each criterion from 0 to %.1f:\n", req.MaxScore)
	for _, c := range req.Rubric {
		fmt.Fprintf(&b, "- %s: %s\n", c.Key, c.Desc)
	}
	b.WriteString("\nRespond with ONLY a JSON object, no prose around it, shaped as:\n")
	b.WriteString(`{"criteria":{"<key>":<score>,...},"overall":<score>,"feedback":"<2-3 sentences for the candidate>","suggestions":"<one concrete study suggestion>"}`)
	return b.String()
}

// extractJSON tolerates models that wrap the verdict in markdown fences.
func extractJSON(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "{"); i >= 0 {
		if j := strings.LastIndex(s, "}"); j > i {
			return s[i : j+1]
		}
	}
	return s
}
