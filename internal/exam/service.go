package exam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/lingua-prep/linguaprep-backend/internal/formats"
	"github.com/lingua-prep/linguaprep-backend/internal/grading"
)

// EventSink receives submission events for offline sync/analytics. Optional.
type EventSink interface {
	Append(ctx context.Context, typ, key, data string) error
}

// Service ties one exam profile to its selector, grader and aggregator.
// Construct once at startup via NewRegistry; there is no hidden global state.
type Service struct {
	profile    *formats.Profile
	store      Store
	selector   *Selector
	grader     *grading.Grader
	aggregator *Aggregator
	events     EventSink
}

func NewService(p *formats.Profile, store Store, grader *grading.Grader, events EventSink) *Service {
	return &Service{
		profile:    p,
		store:      store,
		selector:   NewSelector(store, p),
		grader:     grader,
		aggregator: NewAggregator(store),
		events:     events,
	}
}

func (s *Service) Profile() *formats.Profile { return s.profile }

// NextQuestion picks the user's next question. The returned question still
// carries its answer keys; callers serving students must Redact it first.
func (s *Service) NextQuestion(ctx context.Context, userID, skill, difficulty string) (Question, error) {
	return s.selector.Next(ctx, userID, skill, difficulty)
}

// Submission is one answer payload from a caller.
type Submission struct {
	QuestionID   string `json:"question_id"`
	Answer       Answer `json:"answer"`
	TimeSpentSec int    `json:"time_spent_sec"`
}

// SubmitAnswer grades a submission, persists the attempt exactly once and
// folds it into progress best-effort. Oracle failures return
// ErrEvaluationUnavailable before anything is written, so callers can retry
// the submission without creating duplicate attempts.
func (s *Service) SubmitAnswer(ctx context.Context, userID string, sub Submission) (Attempt, Evaluation, error) {
	q, err := s.store.GetQuestion(ctx, sub.QuestionID)
	if err != nil {
		return Attempt{}, Evaluation{}, err
	}
	if q.ExamType != s.profile.Code {
		return Attempt{}, Evaluation{}, fmt.Errorf("question %s belongs to %s: %w", q.ID, q.ExamType, ErrQuestionNotFound)
	}
	if _, ok := s.profile.SkillByCode(q.Skill); !ok {
		return Attempt{}, Evaluation{}, &ConfigError{QuestionID: q.ID, Reason: fmt.Sprintf("skill %q not registered for %s", q.Skill, s.profile.Code)}
	}

	res, err := s.grader.Grade(ctx, toGradingQ(q), grading.Response{
		Text:     sub.Answer.Text,
		Parts:    sub.Answer.Parts,
		AudioRef: sub.Answer.AudioRef,
	})
	if err != nil {
		if errors.Is(err, grading.ErrMissingAnswerKey) {
			cfgErr := &ConfigError{QuestionID: q.ID, Reason: "objective question has no answer key"}
			log.Printf("%v", cfgErr)
			return Attempt{}, Evaluation{}, cfgErr
		}
		return Attempt{}, Evaluation{}, err
	}

	ev := Evaluation{
		IsCorrect:   res.IsCorrect,
		Score:       res.Score,
		RawScore:    res.RawScore,
		MaxScore:    res.MaxScore,
		Feedback:    res.Feedback,
		Suggestions: res.Suggestions,
		Criteria:    res.Criteria,
	}

	a := Attempt{
		ID:           uuid.NewString(),
		UserID:       userID,
		QuestionID:   q.ID,
		ExamType:     q.ExamType,
		Skill:        q.Skill,
		Difficulty:   q.Difficulty,
		Answer:       sub.Answer,
		AudioRef:     sub.Answer.AudioRef,
		TimeSpentSec: sub.TimeSpentSec,
		IsCorrect:    ev.IsCorrect,
		Score:        ev.Score,
		RawScore:     ev.RawScore,
		Feedback:     ev.Feedback,
		Suggestions:  ev.Suggestions,
		Criteria:     ev.Criteria,
		SubmittedAt:  time.Now().Unix(),
	}
	if err := s.store.PutAttempt(ctx, a); err != nil {
		return Attempt{}, Evaluation{}, err
	}

	s.aggregator.Update(ctx, userID, q.ExamType, q.Skill, ev)

	if s.events != nil {
		if data, err := json.Marshal(a); err == nil {
			if err := s.events.Append(ctx, "AttemptSubmitted", a.ID, string(data)); err != nil {
				log.Printf("event append failed for attempt %s: %v", a.ID, err)
			}
		}
	}
	return a, ev, nil
}

// Report is the progress view for one user and exam type.
type Report struct {
	ExamType string     `json:"exam_type"`
	Skills   []Progress `json:"skills"`
	Overall  float64    `json:"overall_score"`
}

// ProgressReport returns the per-skill tallies and, when no single skill is
// requested, the exam's overall score composed from per-skill best scores.
func (s *Service) ProgressReport(ctx context.Context, userID, skill string) (Report, error) {
	if skill != "" {
		if _, ok := s.profile.SkillByCode(skill); !ok {
			return Report{}, fmt.Errorf("%s/%s: %w", s.profile.Code, skill, ErrSkillNotFound)
		}
	}
	rows, err := s.store.GetProgress(ctx, userID, s.profile.Code, skill)
	if err != nil {
		return Report{}, err
	}
	rep := Report{ExamType: s.profile.Code, Skills: rows}
	if skill == "" && len(rows) > 0 {
		averages := map[string]float64{}
		for _, p := range rows {
			averages[p.Skill] = p.BestScore
		}
		rep.Overall = s.profile.OverallScore(averages)
	}
	return rep, nil
}

// ListAttempts returns the user's attempt history for this exam type.
func (s *Service) ListAttempts(ctx context.Context, opts AttemptListOpts) ([]Attempt, error) {
	opts.ExamType = s.profile.Code
	if opts.Limit <= 0 || opts.Limit > 100 {
		opts.Limit = 20
	}
	return s.store.ListAttempts(ctx, opts)
}

// AuthorQuestion validates and stores a content author's question.
func (s *Service) AuthorQuestion(ctx context.Context, q Question) (Question, error) {
	sk, ok := s.profile.SkillByCode(q.Skill)
	if !ok {
		return Question{}, fmt.Errorf("%s/%s: %w", s.profile.Code, q.Skill, ErrSkillNotFound)
	}
	switch q.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return Question{}, &ConfigError{Reason: fmt.Sprintf("invalid difficulty %q", q.Difficulty)}
	}
	if q.Objective() && len(q.AnswerKey) == 0 && !hasEmbeddedKey(q) {
		return Question{}, &ConfigError{Reason: "objective question requires an answer key"}
	}
	if sk.Eval == formats.EvalObjective && !q.Objective() {
		return Question{}, &ConfigError{Reason: fmt.Sprintf("kind %q not allowed for objective skill %q", q.Kind, q.Skill)}
	}
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	q.ExamType = s.profile.Code
	q.CreatedAt = time.Now().Unix()
	if err := s.store.PutQuestion(ctx, q); err != nil {
		return Question{}, err
	}
	return q, nil
}

func hasEmbeddedKey(q Question) bool {
	if q.Content == nil {
		return false
	}
	if len(q.Content.Pairs) > 0 || len(q.Content.Sequence) > 0 {
		return true
	}
	for _, sub := range q.Content.SubQuestions {
		if len(sub.AnswerKey) == 0 {
			return false
		}
	}
	return len(q.Content.SubQuestions) > 0
}

func toGradingQ(q Question) grading.Q {
	gq := grading.Q{
		ID:        q.ID,
		Skill:     q.Skill,
		Kind:      q.Kind,
		Prompt:    q.Prompt,
		Points:    q.Points,
		AnswerKey: q.AnswerKey,
	}
	if q.Content != nil {
		gq.MinWords = q.Content.MinWords
		gq.Sequence = q.Content.Sequence
		for _, sub := range q.Content.SubQuestions {
			gq.Subs = append(gq.Subs, grading.SubQ{Prompt: sub.Prompt, AnswerKey: sub.AnswerKey})
		}
		for _, p := range q.Content.Pairs {
			gq.Pairs = append(gq.Pairs, [2]string{p.Left, p.Right})
		}
	}
	return gq
}
