package exam

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/lingua-prep/linguaprep-backend/internal/formats"
)

// Selector picks the next question for a (user, exam, skill) triple: it
// excludes the user's ten most recently attempted questions, adapts the
// difficulty from recent accuracy when the caller does not pin one, and
// synthesizes a question from the profile's content pool when nothing
// stored matches.
type Selector struct {
	store   Store
	profile *formats.Profile
}

func NewSelector(store Store, profile *formats.Profile) *Selector {
	return &Selector{store: store, profile: profile}
}

const (
	recentExclusionWindow = 10
	adaptiveWindow        = 5
	adaptiveMinSample     = 3
	stepUpThreshold       = 0.8
	stepDownThreshold     = 0.4
)

// Next returns the next question. difficulty may be "" to let recent accuracy
// decide. Returns ErrSkillNotFound for unknown skills and ErrNoQuestions when
// neither stored nor synthesizable content exists.
func (s *Selector) Next(ctx context.Context, userID, skill, difficulty string) (Question, error) {
	if _, ok := s.profile.SkillByCode(skill); !ok {
		return Question{}, fmt.Errorf("%s/%s: %w", s.profile.Code, skill, ErrSkillNotFound)
	}

	recent, err := s.store.RecentAttempts(ctx, userID, s.profile.Code, skill, recentExclusionWindow)
	if err != nil {
		return Question{}, err
	}
	exclude := make([]string, 0, len(recent))
	seen := map[string]bool{}
	for _, a := range recent {
		if !seen[a.QuestionID] {
			seen[a.QuestionID] = true
			exclude = append(exclude, a.QuestionID)
		}
	}

	if difficulty == "" {
		difficulty = adaptiveDifficulty(recent)
	}

	q, err := s.store.FindQuestion(ctx, FindOpts{
		ExamType:   s.profile.Code,
		Skill:      skill,
		Difficulty: difficulty,
		ExcludeIDs: exclude,
	})
	if err == nil {
		return q, nil
	}
	if !errors.Is(err, ErrQuestionNotFound) {
		return Question{}, err
	}

	// Nothing at this difficulty; retry across all levels before synthesizing.
	q, err = s.store.FindQuestion(ctx, FindOpts{
		ExamType:   s.profile.Code,
		Skill:      skill,
		ExcludeIDs: exclude,
	})
	if err == nil {
		return q, nil
	}
	if !errors.Is(err, ErrQuestionNotFound) {
		return Question{}, err
	}

	return s.synthesize(ctx, skill, difficulty)
}

// adaptiveDifficulty is a one-step ratchet over the user's recent accuracy:
// above 0.8 steps up a level, below 0.4 steps down, anything in [0.4, 0.8]
// holds. With fewer than three graded attempts in the window it keeps the
// last-known difficulty (default easy). Attempts without a correctness flag
// (criterion-scored kinds) do not count toward the sample.
func adaptiveDifficulty(recent []Attempt) string {
	last := DifficultyEasy
	if len(recent) > 0 && recent[0].Difficulty != "" {
		last = recent[0].Difficulty
	}

	correct, graded := 0, 0
	for _, a := range recent {
		if graded == adaptiveWindow {
			break
		}
		if a.IsCorrect == nil {
			continue
		}
		graded++
		if *a.IsCorrect {
			correct++
		}
	}
	if graded < adaptiveMinSample {
		return last
	}

	accuracy := float64(correct) / float64(graded)
	switch {
	case accuracy > stepUpThreshold:
		return stepUp(last)
	case accuracy < stepDownThreshold:
		return stepDown(last)
	default:
		return last
	}
}

func stepUp(d string) string {
	switch d {
	case DifficultyEasy:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyHard
	default:
		return DifficultyHard
	}
}

func stepDown(d string) string {
	switch d {
	case DifficultyHard:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyEasy
	default:
		return DifficultyEasy
	}
}

// synthesize builds a question from the profile's content pool, stores it and
// returns it. The generated question satisfies the same invariants as an
// authored one and carries a fresh identifier.
func (s *Selector) synthesize(ctx context.Context, skill, difficulty string) (Question, error) {
	pool := s.profile.Pools[skill]
	if len(pool) == 0 {
		return Question{}, fmt.Errorf("%s/%s: %w", s.profile.Code, skill, ErrNoQuestions)
	}
	seeds := pool[difficulty]
	if len(seeds) == 0 {
		// No seeds at this difficulty; fall back to any level rather than
		// reporting emptiness for a skill that does have content.
		for _, d := range []string{DifficultyEasy, DifficultyMedium, DifficultyHard} {
			if len(pool[d]) > 0 {
				seeds = pool[d]
				break
			}
		}
	}
	if len(seeds) == 0 {
		return Question{}, fmt.Errorf("%s/%s: %w", s.profile.Code, skill, ErrNoQuestions)
	}

	q := seedToQuestion(seeds[rand.Intn(len(seeds))], s.profile.Code, skill, difficulty)
	if err := s.store.PutQuestion(ctx, q); err != nil {
		return Question{}, err
	}
	return q, nil
}

func seedToQuestion(seed formats.Seed, examType, skill, difficulty string) Question {
	q := Question{
		ID:           uuid.NewString(),
		ExamType:     examType,
		Skill:        skill,
		Kind:         seed.Kind,
		Difficulty:   difficulty,
		Prompt:       seed.Prompt,
		AnswerKey:    seed.AnswerKey,
		TimeLimitSec: seed.TimeLimitSec,
		Points:       seed.Points,
		Synthesized:  true,
		CreatedAt:    time.Now().Unix(),
	}
	for _, o := range seed.Options {
		q.Choices = append(q.Choices, Choice{Label: o})
	}
	if seed.Passage != "" || seed.AudioScript != "" || len(seed.SubQuestions) > 0 ||
		len(seed.Pairs) > 0 || len(seed.Sequence) > 0 || seed.MinWords > 0 {
		c := &Content{
			Passage:     seed.Passage,
			AudioScript: seed.AudioScript,
			Sequence:    seed.Sequence,
			MinWords:    seed.MinWords,
		}
		for i, sub := range seed.SubQuestions {
			sq := SubQuestion{
				ID:        fmt.Sprintf("%s-q%d", q.ID, i+1),
				Prompt:    sub.Prompt,
				AnswerKey: sub.AnswerKey,
			}
			for _, o := range sub.Options {
				sq.Choices = append(sq.Choices, Choice{Label: o})
			}
			c.SubQuestions = append(c.SubQuestions, sq)
		}
		for _, p := range seed.Pairs {
			c.Pairs = append(c.Pairs, MatchPair{Left: p[0], Right: p[1]})
		}
		q.Content = c
	}
	return q
}
