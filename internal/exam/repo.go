package exam

import "context"

// FindOpts filters stored questions for selection. Difficulty may be empty to
// search across all levels; ExcludeIDs keeps recently attempted questions out.
type FindOpts struct {
	ExamType   string
	Skill      string
	Difficulty string
	ExcludeIDs []string
}

// AttemptListOpts filters a user's attempt history, newest first.
type AttemptListOpts struct {
	UserID   string
	ExamType string
	Skill    string
	Limit    int
	Offset   int
}

// ProgressDelta is what one evaluated attempt contributes to the running
// tally. The store applies it atomically (single upsert, arithmetic in SQL)
// so concurrent submissions cannot lose updates.
type ProgressDelta struct {
	Correct  bool
	Score    float64
	Possible float64
}

type Store interface {
	PutQuestion(ctx context.Context, q Question) error
	GetQuestion(ctx context.Context, id string) (Question, error) // full question, with keys
	FindQuestion(ctx context.Context, opts FindOpts) (Question, error)

	PutAttempt(ctx context.Context, a Attempt) error
	GetAttempt(ctx context.Context, id string) (Attempt, error)
	// RecentAttempts returns up to limit attempts for (user, exam, skill),
	// most recent first.
	RecentAttempts(ctx context.Context, userID, examType, skill string, limit int) ([]Attempt, error)
	ListAttempts(ctx context.Context, opts AttemptListOpts) ([]Attempt, error)

	UpsertProgress(ctx context.Context, userID, examType, skill string, d ProgressDelta) error
	GetProgress(ctx context.Context, userID, examType, skill string) ([]Progress, error)
}
