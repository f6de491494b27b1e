package exam

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// SQLStore persists questions, attempts and progress over database/sql.
// Works against both sqlite (modernc) and postgres (pgx stdlib); the only
// driver-specific SQL is the GREATEST/MAX split in the progress upsert.
type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) PutQuestion(ctx context.Context, q Question) error {
	content, err := marshalOrNil(q.Content)
	if err != nil {
		return err
	}
	choices, err := marshalOrNil(q.Choices)
	if err != nil {
		return err
	}
	key, err := marshalOrNil(q.AnswerKey)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO questions
		(id, exam_type, skill, kind, difficulty, prompt, content_json, choices_json, answer_key_json, time_limit_sec, points, synthesized, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		ON CONFLICT (id) DO UPDATE SET
		  prompt=EXCLUDED.prompt, content_json=EXCLUDED.content_json,
		  choices_json=EXCLUDED.choices_json, answer_key_json=EXCLUDED.answer_key_json,
		  time_limit_sec=EXCLUDED.time_limit_sec, points=EXCLUDED.points`,
		q.ID, q.ExamType, q.Skill, q.Kind, q.Difficulty, q.Prompt,
		content, choices, key, q.TimeLimitSec, q.Points, q.Synthesized, time.Now().Unix())
	return err
}

const questionCols = `id, exam_type, skill, kind, difficulty, prompt, content_json, choices_json, answer_key_json, time_limit_sec, points, synthesized, created_at`

func (s *SQLStore) GetQuestion(ctx context.Context, id string) (Question, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+questionCols+` FROM questions WHERE id=$1`, id)
	q, err := scanQuestion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Question{}, fmt.Errorf("%s: %w", id, ErrQuestionNotFound)
	}
	return q, err
}

func (s *SQLStore) FindQuestion(ctx context.Context, opts FindOpts) (Question, error) {
	var b strings.Builder
	args := []interface{}{opts.ExamType, opts.Skill}
	b.WriteString(`SELECT ` + questionCols + ` FROM questions WHERE exam_type=$1 AND skill=$2`)
	if opts.Difficulty != "" {
		args = append(args, opts.Difficulty)
		fmt.Fprintf(&b, " AND difficulty=$%d", len(args))
	}
	if len(opts.ExcludeIDs) > 0 {
		ph := make([]string, 0, len(opts.ExcludeIDs))
		for _, id := range opts.ExcludeIDs {
			args = append(args, id)
			ph = append(ph, fmt.Sprintf("$%d", len(args)))
		}
		fmt.Fprintf(&b, " AND id NOT IN (%s)", strings.Join(ph, ","))
	}
	// RANDOM() is understood by both sqlite and postgres.
	b.WriteString(" ORDER BY RANDOM() LIMIT 1")

	row := s.db.QueryRowContext(ctx, b.String(), args...)
	q, err := scanQuestion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Question{}, ErrQuestionNotFound
	}
	return q, err
}

func (s *SQLStore) PutAttempt(ctx context.Context, a Attempt) error {
	answer, err := json.Marshal(a.Answer)
	if err != nil {
		return err
	}
	criteria, err := marshalOrNil(a.Criteria)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO attempts
		(id, user_id, question_id, exam_type, skill, difficulty, answer_json, audio_ref, time_spent_sec, is_correct, score, raw_score, feedback, suggestions, criteria_json, submitted_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)`,
		a.ID, a.UserID, a.QuestionID, a.ExamType, a.Skill, a.Difficulty,
		string(answer), nullStr(a.AudioRef), a.TimeSpentSec, nullBool(a.IsCorrect),
		a.Score, a.RawScore, a.Feedback, a.Suggestions, criteria, a.SubmittedAt)
	return err
}

const attemptCols = `id, user_id, question_id, exam_type, skill, difficulty, answer_json, audio_ref, time_spent_sec, is_correct, score, raw_score, feedback, suggestions, criteria_json, submitted_at`

func (s *SQLStore) GetAttempt(ctx context.Context, id string) (Attempt, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+attemptCols+` FROM attempts WHERE id=$1`, id)
	a, err := scanAttempt(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Attempt{}, fmt.Errorf("%s: %w", id, ErrAttemptNotFound)
	}
	return a, err
}

func (s *SQLStore) RecentAttempts(ctx context.Context, userID, examType, skill string, limit int) ([]Attempt, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+attemptCols+` FROM attempts
		WHERE user_id=$1 AND exam_type=$2 AND skill=$3
		ORDER BY submitted_at DESC, id DESC LIMIT $4`,
		userID, examType, skill, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAttempts(rows)
}

func (s *SQLStore) ListAttempts(ctx context.Context, opts AttemptListOpts) ([]Attempt, error) {
	var b strings.Builder
	b.WriteString(`SELECT ` + attemptCols + ` FROM attempts WHERE 1=1`)
	var args []interface{}
	add := func(clause string, v interface{}) {
		args = append(args, v)
		fmt.Fprintf(&b, clause, len(args))
	}
	if opts.UserID != "" {
		add(" AND user_id=$%d", opts.UserID)
	}
	if opts.ExamType != "" {
		add(" AND exam_type=$%d", opts.ExamType)
	}
	if opts.Skill != "" {
		add(" AND skill=$%d", opts.Skill)
	}
	b.WriteString(" ORDER BY submitted_at DESC, id DESC")
	if opts.Limit > 0 {
		add(" LIMIT $%d", opts.Limit)
	}
	if opts.Offset > 0 {
		add(" OFFSET $%d", opts.Offset)
	}
	rows, err := s.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAttempts(rows)
}

// UpsertProgress applies one attempt's contribution in a single statement so
// concurrent submissions for the same (user, exam, skill) cannot lose counts.
// All arithmetic happens in SQL against the current row.
func (s *SQLStore) UpsertProgress(ctx context.Context, userID, examType, skill string, d ProgressDelta) error {
	correct := 0
	if d.Correct {
		correct = 1
	}
	greatest := "MAX" // sqlite's two-argument MAX
	if s.driver == "postgres" {
		greatest = "GREATEST"
	}
	q := fmt.Sprintf(`INSERT INTO progress
		(user_id, exam_type, skill, total_questions, correct_answers, total_points, earned_points, average_score, best_score, last_activity)
		VALUES ($1,$2,$3,1,$4,$5,$6,CASE WHEN $5 > 0 THEN $6/$5 ELSE 0 END,$6,$7)
		ON CONFLICT (user_id, exam_type, skill) DO UPDATE SET
		  total_questions = progress.total_questions + 1,
		  correct_answers = progress.correct_answers + EXCLUDED.correct_answers,
		  total_points    = progress.total_points + EXCLUDED.total_points,
		  earned_points   = progress.earned_points + EXCLUDED.earned_points,
		  average_score   = CASE WHEN progress.total_points + EXCLUDED.total_points > 0
		                    THEN (progress.earned_points + EXCLUDED.earned_points) / (progress.total_points + EXCLUDED.total_points)
		                    ELSE 0 END,
		  best_score      = %s(progress.best_score, EXCLUDED.best_score),
		  last_activity   = EXCLUDED.last_activity`, greatest)
	_, err := s.db.ExecContext(ctx, q, userID, examType, skill, correct, d.Possible, d.Score, time.Now().Unix())
	return err
}

func (s *SQLStore) GetProgress(ctx context.Context, userID, examType, skill string) ([]Progress, error) {
	q := `SELECT user_id, exam_type, skill, total_questions, correct_answers, total_points, earned_points, average_score, best_score, last_activity
		FROM progress WHERE user_id=$1 AND exam_type=$2`
	args := []interface{}{userID, examType}
	if skill != "" {
		args = append(args, skill)
		q += ` AND skill=$3`
	}
	q += ` ORDER BY skill`
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Progress
	for rows.Next() {
		var p Progress
		if err := rows.Scan(&p.UserID, &p.ExamType, &p.Skill, &p.TotalQuestions, &p.CorrectAnswers,
			&p.TotalPoints, &p.EarnedPoints, &p.AverageScore, &p.BestScore, &p.LastActivity); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

/* ------------------------------ scan helpers ----------------------------- */

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanQuestion(row rowScanner) (Question, error) {
	var q Question
	var content, choices, key sql.NullString
	if err := row.Scan(&q.ID, &q.ExamType, &q.Skill, &q.Kind, &q.Difficulty, &q.Prompt,
		&content, &choices, &key, &q.TimeLimitSec, &q.Points, &q.Synthesized, &q.CreatedAt); err != nil {
		return Question{}, err
	}
	if content.Valid && content.String != "" {
		if err := json.Unmarshal([]byte(content.String), &q.Content); err != nil {
			return Question{}, err
		}
	}
	if choices.Valid && choices.String != "" {
		if err := json.Unmarshal([]byte(choices.String), &q.Choices); err != nil {
			return Question{}, err
		}
	}
	if key.Valid && key.String != "" {
		if err := json.Unmarshal([]byte(key.String), &q.AnswerKey); err != nil {
			return Question{}, err
		}
	}
	return q, nil
}

func scanAttempt(row rowScanner) (Attempt, error) {
	var a Attempt
	var answer string
	var audio, criteria sql.NullString
	var correct sql.NullBool
	if err := row.Scan(&a.ID, &a.UserID, &a.QuestionID, &a.ExamType, &a.Skill, &a.Difficulty,
		&answer, &audio, &a.TimeSpentSec, &correct, &a.Score, &a.RawScore,
		&a.Feedback, &a.Suggestions, &criteria, &a.SubmittedAt); err != nil {
		return Attempt{}, err
	}
	if err := json.Unmarshal([]byte(answer), &a.Answer); err != nil {
		return Attempt{}, err
	}
	if audio.Valid {
		a.AudioRef = audio.String
	}
	if correct.Valid {
		v := correct.Bool
		a.IsCorrect = &v
	}
	if criteria.Valid && criteria.String != "" {
		if err := json.Unmarshal([]byte(criteria.String), &a.Criteria); err != nil {
			return Attempt{}, err
		}
	}
	return a, nil
}

func collectAttempts(rows *sql.Rows) ([]Attempt, error) {
	var out []Attempt
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func marshalOrNil(v interface{}) (interface{}, error) {
	switch t := v.(type) {
	case *Content:
		if t == nil {
			return nil, nil
		}
	case []Choice:
		if len(t) == 0 {
			return nil, nil
		}
	case []string:
		if len(t) == 0 {
			return nil, nil
		}
	case map[string]float64:
		if len(t) == 0 {
			return nil, nil
		}
	}
	buf, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(buf), nil
}

func nullStr(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func nullBool(b *bool) interface{} {
	if b == nil {
		return nil
	}
	return *b
}
