package grading

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lingua-prep/linguaprep-backend/internal/formats"
)

func testProfile() *formats.Profile {
	return &formats.Profile{
		Code:  "ielts",
		Name:  "IELTS Academic",
		Scale: formats.Scale{Min: 0, Max: 9, Increment: 0.5, Passing: 6},
		Skills: []formats.SkillInfo{
			{Code: "reading", Name: "Reading", MaxScore: 9, Eval: formats.EvalObjective},
			{Code: "writing", Name: "Writing", MaxScore: 9, Eval: formats.EvalAIDelegated},
			{Code: "speaking", Name: "Speaking", MaxScore: 9, Eval: formats.EvalAIDelegated},
		},
		StepTables: map[string][]formats.Step{
			"reading": {
				{MinPercent: 90, Scaled: 9},
				{MinPercent: 60, Scaled: 6},
				{MinPercent: 0, Scaled: 2.5},
			},
		},
		Rubrics: map[string][]formats.Criterion{
			"writing":  {{Key: "task_achievement"}, {Key: "grammatical_range"}},
			"speaking": {{Key: "fluency_coherence"}, {Key: "pronunciation"}},
		},
		MinWords: map[string]int{"writing": 20, "speaking": 10},
		FeedbackBands: []formats.FeedbackBand{
			{MinFrac: 0.8, Message: "Excellent response."},
			{MinFrac: 0, Message: "Needs improvement."},
		},
		SuggestionsBySkill: map[string][]string{
			"reading": {"Keep it up.", "Review wrong answers."},
			"writing": {"Stretch your structures.", "Plan before writing."},
		},
	}
}

type fakeOracle struct {
	res   OracleResult
	err   error
	calls int
	last  OracleRequest
}

func (f *fakeOracle) Score(_ context.Context, req OracleRequest) (OracleResult, error) {
	f.calls++
	f.last = req
	return f.res, f.err
}

type fakeTranscriber struct {
	text string
	err  error
}

func (f fakeTranscriber) Transcribe(_ context.Context, _ string) (string, error) {
	return f.text, f.err
}

func TestObjectiveNormalization(t *testing.T) {
	g := NewGrader(testProfile())
	q := Q{ID: "q1", Skill: "reading", Kind: "multiple_choice", Points: 1, AnswerKey: []string{"B"}}

	res, err := g.Grade(context.Background(), q, Response{Text: " b "})
	if err != nil {
		t.Fatal(err)
	}
	if res.IsCorrect == nil || !*res.IsCorrect {
		t.Fatal("whitespace/case variant should match the key")
	}
	if res.Score != 1 || res.MaxScore != 1 {
		t.Errorf("score = %v/%v, want 1/1", res.Score, res.MaxScore)
	}

	// Same submission again grades identically.
	res2, err := g.Grade(context.Background(), q, Response{Text: " b "})
	if err != nil {
		t.Fatal(err)
	}
	if *res2.IsCorrect != *res.IsCorrect || res2.Score != res.Score {
		t.Error("grading is not idempotent")
	}
}

func TestObjectiveWrongRevealsKey(t *testing.T) {
	g := NewGrader(testProfile())
	q := Q{ID: "q1", Skill: "reading", Kind: "multiple_choice", Points: 1, AnswerKey: []string{"B"}}

	res, err := g.Grade(context.Background(), q, Response{Text: "A"})
	if err != nil {
		t.Fatal(err)
	}
	if res.IsCorrect == nil || *res.IsCorrect {
		t.Fatal("expected incorrect")
	}
	if res.Score != 0 {
		t.Errorf("score = %v, want 0", res.Score)
	}
	if !strings.Contains(res.Feedback, `"B"`) {
		t.Errorf("feedback should reveal the key, got %q", res.Feedback)
	}
}

func TestObjectiveMissingKey(t *testing.T) {
	g := NewGrader(testProfile())
	q := Q{ID: "q1", Skill: "reading", Kind: "true_false", Points: 1}

	_, err := g.Grade(context.Background(), q, Response{Text: "true"})
	if !errors.Is(err, ErrMissingAnswerKey) {
		t.Fatalf("err = %v, want ErrMissingAnswerKey", err)
	}
}

func TestFillBlankNearMissHint(t *testing.T) {
	g := NewGrader(testProfile())
	q := Q{ID: "q1", Skill: "reading", Kind: "fill_blank", Points: 1, AnswerKey: []string{"environment"}}

	res, err := g.Grade(context.Background(), q, Response{Text: "enviroment"})
	if err != nil {
		t.Fatal(err)
	}
	if *res.IsCorrect {
		t.Fatal("near miss must not earn credit")
	}
	if !strings.Contains(res.Feedback, "close") {
		t.Errorf("expected a spelling hint, got %q", res.Feedback)
	}
}

func TestMatching(t *testing.T) {
	g := NewGrader(testProfile())
	q := Q{
		ID: "q1", Skill: "reading", Kind: "matching", Points: 2,
		Pairs: [][2]string{{"cat", "kedi"}, {"dog", "köpek"}},
	}

	res, err := g.Grade(context.Background(), q, Response{Parts: []string{"kedi", "köpek"}})
	if err != nil {
		t.Fatal(err)
	}
	if !*res.IsCorrect || res.Score != 2 {
		t.Errorf("all pairs matched: correct=%v score=%v", *res.IsCorrect, res.Score)
	}

	res, err = g.Grade(context.Background(), q, Response{Parts: []string{"köpek", "kedi"}})
	if err != nil {
		t.Fatal(err)
	}
	if *res.IsCorrect || res.Score != 0 {
		t.Error("swapped pairs must score zero")
	}
	if !strings.Contains(res.Feedback, "kedi") {
		t.Errorf("feedback should list the correct pairs, got %q", res.Feedback)
	}
}

func TestOrderingAllOrNothing(t *testing.T) {
	g := NewGrader(testProfile())
	q := Q{
		ID: "q1", Skill: "reading", Kind: "ordering", Points: 2,
		Sequence: []string{"first", "second", "third"},
	}

	res, err := g.Grade(context.Background(), q, Response{Parts: []string{"first", "second", "third"}})
	if err != nil {
		t.Fatal(err)
	}
	if !*res.IsCorrect || res.Score != 2 {
		t.Errorf("exact order: correct=%v score=%v", *res.IsCorrect, res.Score)
	}

	res, err = g.Grade(context.Background(), q, Response{Parts: []string{"second", "first", "third"}})
	if err != nil {
		t.Fatal(err)
	}
	if *res.IsCorrect || res.Score != 0 {
		t.Error("one transposition must score zero")
	}
}

func TestSetScoringCountsAndScales(t *testing.T) {
	g := NewGrader(testProfile())
	q := Q{
		ID: "q1", Skill: "reading", Kind: "reading_set", Points: 3,
		Subs: []SubQ{
			{Prompt: "1", AnswerKey: []string{"A"}},
			{Prompt: "2", AnswerKey: []string{"B"}},
			{Prompt: "3", AnswerKey: []string{"C"}},
		},
	}

	res, err := g.Grade(context.Background(), q, Response{Parts: []string{"A", "B", "x"}})
	if err != nil {
		t.Fatal(err)
	}
	if *res.IsCorrect {
		t.Error("partial set must not be fully correct")
	}
	if res.RawScore != 2 {
		t.Errorf("raw = %v, want 2", res.RawScore)
	}
	// 2/3 = 66.7% → band 6 on the test table, reported against the skill max.
	if res.Score != 6 || res.MaxScore != 9 {
		t.Errorf("scaled = %v/%v, want 6/9", res.Score, res.MaxScore)
	}
	if !strings.Contains(res.Feedback, "2 of 3") {
		t.Errorf("feedback should count correct answers, got %q", res.Feedback)
	}
	if !strings.Contains(res.Feedback, `"C"`) {
		t.Errorf("feedback should reveal missed keys, got %q", res.Feedback)
	}

	res, err = g.Grade(context.Background(), q, Response{Parts: []string{"A", "B", "C"}})
	if err != nil {
		t.Fatal(err)
	}
	if !*res.IsCorrect || res.Score != 9 {
		t.Errorf("full set: correct=%v score=%v, want true 9", *res.IsCorrect, res.Score)
	}
}

func TestEssayMinWordsShortCircuit(t *testing.T) {
	fo := &fakeOracle{err: errors.New("must not be called")}
	g := NewGrader(testProfile(), WithOracle(fo))
	q := Q{ID: "q1", Skill: "writing", Kind: "essay", Points: 9}

	res, err := g.Grade(context.Background(), q, Response{Text: "too short"})
	if err != nil {
		t.Fatal(err)
	}
	if fo.calls != 0 {
		t.Fatal("oracle must not be consulted for under-length answers")
	}
	if res.Score != 0 {
		t.Errorf("score = %v, want scale floor", res.Score)
	}
	if !strings.Contains(res.Feedback, "20") {
		t.Errorf("feedback should state the minimum, got %q", res.Feedback)
	}
}

func TestEssayOracleVerdict(t *testing.T) {
	fo := &fakeOracle{res: OracleResult{
		Criteria:    map[string]float64{"task_achievement": 7.2, "grammatical_range": 6.8},
		Feedback:    "Well argued.",
		Suggestions: "Vary your openings.",
	}}
	g := NewGrader(testProfile(), WithOracle(fo))
	q := Q{ID: "q1", Skill: "writing", Kind: "essay", Points: 9}

	long := strings.Repeat("every sentence counts toward the minimum word threshold here ", 5)
	res, err := g.Grade(context.Background(), q, Response{Text: long})
	if err != nil {
		t.Fatal(err)
	}
	if res.IsCorrect != nil {
		t.Error("criterion-scored kinds have no boolean correctness")
	}
	// Mean of 7.2 and 6.8 is 7.0, already on a half-band step.
	if res.Score != 7.0 {
		t.Errorf("score = %v, want 7.0", res.Score)
	}
	if res.Feedback != "Well argued." {
		t.Errorf("oracle feedback lost: %q", res.Feedback)
	}
	if fo.last.Skill != "writing" || len(fo.last.Rubric) != 2 {
		t.Errorf("oracle request missing rubric: %+v", fo.last)
	}
}

func TestEssayOracleFailure(t *testing.T) {
	fo := &fakeOracle{err: errors.New("provider down")}
	g := NewGrader(testProfile(), WithOracle(fo))
	q := Q{ID: "q1", Skill: "writing", Kind: "essay", Points: 9}

	long := strings.Repeat("word ", 30)
	_, err := g.Grade(context.Background(), q, Response{Text: long})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestSpeakingTranscribesAudio(t *testing.T) {
	fo := &fakeOracle{res: OracleResult{Criteria: map[string]float64{"fluency_coherence": 6, "pronunciation": 6}}}
	ft := fakeTranscriber{text: strings.Repeat("spoken answer with plenty of words ", 4)}
	g := NewGrader(testProfile(), WithOracle(fo), WithTranscriber(ft))
	q := Q{ID: "q1", Skill: "speaking", Kind: "speaking", Points: 9}

	res, err := g.Grade(context.Background(), q, Response{AudioRef: "audio/a.webm"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Score != 6 {
		t.Errorf("score = %v, want 6", res.Score)
	}
	if !strings.Contains(fo.last.Answer, "spoken answer") {
		t.Error("oracle should receive the transcript")
	}
}

func TestSpeakingWithoutTranscriber(t *testing.T) {
	g := NewGrader(testProfile())
	q := Q{ID: "q1", Skill: "speaking", Kind: "speaking", Points: 9}

	_, err := g.Grade(context.Background(), q, Response{AudioRef: "audio/a.webm"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestOfflineOracleDeterministic(t *testing.T) {
	p := testProfile()
	req := OracleRequest{
		ExamType: "ielts",
		Skill:    "writing",
		Prompt:   "Discuss.",
		Answer:   strings.Repeat("a varied answer with several different longer expressions. ", 10),
		Rubric:   p.Rubrics["writing"],
		MaxScore: 9,
	}
	a, err := OfflineOracle{}.Score(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	b, err := OfflineOracle{}.Score(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if a.Overall != b.Overall {
		t.Errorf("overall differs across runs: %v vs %v", a.Overall, b.Overall)
	}
	for k, v := range a.Criteria {
		if b.Criteria[k] != v {
			t.Errorf("criterion %s differs: %v vs %v", k, v, b.Criteria[k])
		}
	}
	if a.Overall < 0 || a.Overall > 9 {
		t.Errorf("overall %v outside [0,9]", a.Overall)
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{" B ", "b"},
		{"short-lived", "shortlived"},
		{"The   Answer!", "the answer"},
		{"", ""},
	}
	for _, c := range cases {
		if got := normalize(c.in); got != c.want {
			t.Errorf("normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
