package exam

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lingua-prep/linguaprep-backend/internal/formats"
)

func selectorProfile() *formats.Profile {
	return &formats.Profile{
		Code:  "yds",
		Name:  "YDS",
		Scale: formats.Scale{Min: 0, Max: 100, Increment: 1, Passing: 60},
		Skills: []formats.SkillInfo{
			{Code: "grammar", Name: "Grammar", MaxScore: 100, Eval: formats.EvalObjective},
			{Code: "listening", Name: "Listening", MaxScore: 100, Eval: formats.EvalObjective},
		},
		FeedbackBands: []formats.FeedbackBand{{MinFrac: 0, Message: "ok"}},
		Pools: map[string]map[string][]formats.Seed{
			"grammar": {
				DifficultyEasy: {{
					Kind:      KindMultipleChoice,
					Prompt:    "Choose the correct form.",
					Options:   []string{"go", "goes"},
					AnswerKey: []string{"goes"},
					Points:    1,
				}},
			},
		},
	}
}

func boolp(b bool) *bool { return &b }

func attemptAt(difficulty string, correct *bool) Attempt {
	return Attempt{Difficulty: difficulty, IsCorrect: correct}
}

func TestNextUnknownSkill(t *testing.T) {
	s := NewSelector(NewInMemoryStore(), selectorProfile())
	_, err := s.Next(context.Background(), "u1", "telepathy", "")
	if !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("err = %v, want ErrSkillNotFound", err)
	}
}

func TestAdaptiveDifficulty(t *testing.T) {
	cases := []struct {
		name   string
		recent []Attempt
		want   string
	}{
		{"no history defaults easy", nil, DifficultyEasy},
		{
			"two graded holds last difficulty",
			[]Attempt{
				attemptAt(DifficultyMedium, boolp(true)),
				attemptAt(DifficultyMedium, boolp(true)),
			},
			DifficultyMedium,
		},
		{
			"high accuracy steps up",
			[]Attempt{
				attemptAt(DifficultyMedium, boolp(true)),
				attemptAt(DifficultyMedium, boolp(true)),
				attemptAt(DifficultyMedium, boolp(true)),
				attemptAt(DifficultyMedium, boolp(true)),
				attemptAt(DifficultyMedium, boolp(true)),
			},
			DifficultyHard,
		},
		{
			"low accuracy steps down",
			[]Attempt{
				attemptAt(DifficultyMedium, boolp(false)),
				attemptAt(DifficultyMedium, boolp(false)),
				attemptAt(DifficultyMedium, boolp(false)),
				attemptAt(DifficultyMedium, boolp(true)),
				attemptAt(DifficultyMedium, boolp(false)),
			},
			DifficultyEasy,
		},
		{
			"middle accuracy holds",
			[]Attempt{
				attemptAt(DifficultyMedium, boolp(true)),
				attemptAt(DifficultyMedium, boolp(false)),
				attemptAt(DifficultyMedium, boolp(true)),
				attemptAt(DifficultyMedium, boolp(false)),
				attemptAt(DifficultyMedium, boolp(true)),
			},
			DifficultyMedium,
		},
		{
			"hard never overflows",
			[]Attempt{
				attemptAt(DifficultyHard, boolp(true)),
				attemptAt(DifficultyHard, boolp(true)),
				attemptAt(DifficultyHard, boolp(true)),
			},
			DifficultyHard,
		},
		{
			"ungraded attempts do not count toward the sample",
			[]Attempt{
				attemptAt(DifficultyMedium, boolp(true)),
				attemptAt(DifficultyMedium, nil),
				attemptAt(DifficultyMedium, nil),
				attemptAt(DifficultyMedium, boolp(true)),
			},
			DifficultyMedium, // only two graded, hold
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := adaptiveDifficulty(c.recent); got != c.want {
				t.Errorf("adaptiveDifficulty = %q, want %q", got, c.want)
			}
		})
	}
}

func TestNextExcludesRecentQuestions(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	s := NewSelector(store, selectorProfile())

	for i := 0; i < 11; i++ {
		q := Question{
			ID:         fmt.Sprintf("q%d", i),
			ExamType:   "yds",
			Skill:      "grammar",
			Kind:       KindMultipleChoice,
			Difficulty: DifficultyMedium,
			Prompt:     "p",
			AnswerKey:  []string{"A"},
			Points:     1,
		}
		if err := store.PutQuestion(ctx, q); err != nil {
			t.Fatal(err)
		}
	}
	// Attempt q0..q9; only q10 stays eligible.
	for i := 0; i < 10; i++ {
		a := Attempt{
			ID: fmt.Sprintf("a%d", i), UserID: "u1", QuestionID: fmt.Sprintf("q%d", i),
			ExamType: "yds", Skill: "grammar", Difficulty: DifficultyMedium,
			IsCorrect: boolp(true), SubmittedAt: int64(i),
		}
		if err := store.PutAttempt(ctx, a); err != nil {
			t.Fatal(err)
		}
	}

	q, err := s.Next(ctx, "u1", "grammar", DifficultyMedium)
	if err != nil {
		t.Fatal(err)
	}
	if q.ID != "q10" {
		t.Errorf("selected %s, want the only unattempted question q10", q.ID)
	}
}

func TestNextFallsBackAcrossDifficulties(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	s := NewSelector(store, selectorProfile())

	stored := Question{
		ID: "only", ExamType: "yds", Skill: "grammar", Kind: KindMultipleChoice,
		Difficulty: DifficultyHard, Prompt: "p", AnswerKey: []string{"A"}, Points: 1,
	}
	if err := store.PutQuestion(ctx, stored); err != nil {
		t.Fatal(err)
	}

	q, err := s.Next(ctx, "u1", "grammar", DifficultyEasy)
	if err != nil {
		t.Fatal(err)
	}
	// Stored content wins over synthesis: the cross-difficulty retry finds the
	// hard question before the pool is consulted.
	if q.ID != "only" {
		t.Errorf("selected %s, want the stored hard question", q.ID)
	}
}

func TestNextSynthesizesFromPool(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	s := NewSelector(store, selectorProfile())

	q, err := s.Next(ctx, "u1", "grammar", DifficultyEasy)
	if err != nil {
		t.Fatal(err)
	}
	if !q.Synthesized {
		t.Error("empty store should yield a synthesized question")
	}
	if q.ID == "" || q.ExamType != "yds" || q.Skill != "grammar" {
		t.Errorf("synthesized question malformed: %+v", q)
	}
	if len(q.AnswerKey) == 0 {
		t.Error("synthesized objective question must carry its key")
	}

	// Synthesis persists: the question is retrievable for grading later.
	got, err := store.GetQuestion(ctx, q.ID)
	if err != nil {
		t.Fatalf("synthesized question not stored: %v", err)
	}
	if got.Prompt != q.Prompt {
		t.Error("stored copy differs from returned question")
	}
}

func TestNextNoContentAnywhere(t *testing.T) {
	s := NewSelector(NewInMemoryStore(), selectorProfile())
	// listening is a registered skill with no stored questions and no pool.
	_, err := s.Next(context.Background(), "u1", "listening", "")
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("err = %v, want ErrNoQuestions", err)
	}
}
