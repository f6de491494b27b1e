package exam

import (
	"context"
	"fmt"
	"sync"
	"time"
)

func nowUnix() int64 { return time.Now().Unix() }

// memoryStore backs tests and demo runs without a database. The mutex makes
// UpsertProgress atomic, matching the SQL store's single-statement guarantee.
type memoryStore struct {
	mu        sync.RWMutex
	questions map[string]Question
	attempts  []Attempt
	progress  map[string]Progress
}

func NewInMemoryStore() Store {
	return &memoryStore{
		questions: map[string]Question{},
		progress:  map[string]Progress{},
	}
}

func progressKey(userID, examType, skill string) string {
	return userID + "|" + examType + "|" + skill
}

func (m *memoryStore) PutQuestion(_ context.Context, q Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if q.ID == "" {
		return fmt.Errorf("question id required")
	}
	m.questions[q.ID] = q
	return nil
}

func (m *memoryStore) GetQuestion(_ context.Context, id string) (Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q, ok := m.questions[id]
	if !ok {
		return Question{}, fmt.Errorf("%s: %w", id, ErrQuestionNotFound)
	}
	return q, nil
}

func (m *memoryStore) FindQuestion(_ context.Context, opts FindOpts) (Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	excluded := map[string]bool{}
	for _, id := range opts.ExcludeIDs {
		excluded[id] = true
	}
	for _, q := range m.questions {
		if q.ExamType != opts.ExamType || q.Skill != opts.Skill {
			continue
		}
		if opts.Difficulty != "" && q.Difficulty != opts.Difficulty {
			continue
		}
		if excluded[q.ID] {
			continue
		}
		return q, nil
	}
	return Question{}, ErrQuestionNotFound
}

func (m *memoryStore) PutAttempt(_ context.Context, a Attempt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts = append(m.attempts, a)
	return nil
}

func (m *memoryStore) GetAttempt(_ context.Context, id string) (Attempt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.attempts {
		if a.ID == id {
			return a, nil
		}
	}
	return Attempt{}, fmt.Errorf("%s: %w", id, ErrAttemptNotFound)
}

func (m *memoryStore) RecentAttempts(_ context.Context, userID, examType, skill string, limit int) ([]Attempt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Attempt
	for i := len(m.attempts) - 1; i >= 0 && len(out) < limit; i-- {
		a := m.attempts[i]
		if a.UserID == userID && a.ExamType == examType && a.Skill == skill {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memoryStore) ListAttempts(_ context.Context, opts AttemptListOpts) ([]Attempt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Attempt
	skipped := 0
	for i := len(m.attempts) - 1; i >= 0; i-- {
		a := m.attempts[i]
		if opts.UserID != "" && a.UserID != opts.UserID {
			continue
		}
		if opts.ExamType != "" && a.ExamType != opts.ExamType {
			continue
		}
		if opts.Skill != "" && a.Skill != opts.Skill {
			continue
		}
		if skipped < opts.Offset {
			skipped++
			continue
		}
		out = append(out, a)
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out, nil
}

func (m *memoryStore) UpsertProgress(_ context.Context, userID, examType, skill string, d ProgressDelta) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := progressKey(userID, examType, skill)
	p, ok := m.progress[key]
	if !ok {
		p = Progress{UserID: userID, ExamType: examType, Skill: skill}
	}
	p.TotalQuestions++
	if d.Correct {
		p.CorrectAnswers++
	}
	p.TotalPoints += d.Possible
	p.EarnedPoints += d.Score
	if p.TotalPoints > 0 {
		p.AverageScore = p.EarnedPoints / p.TotalPoints
	}
	if d.Score > p.BestScore {
		p.BestScore = d.Score
	}
	p.LastActivity = nowUnix()
	m.progress[key] = p
	return nil
}

func (m *memoryStore) GetProgress(_ context.Context, userID, examType, skill string) ([]Progress, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Progress
	for _, p := range m.progress {
		if p.UserID != userID || p.ExamType != examType {
			continue
		}
		if skill != "" && p.Skill != skill {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
