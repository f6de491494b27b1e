package grading

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lingua-prep/linguaprep-backend/internal/formats"
)

// Q is the minimal view of a question the grader needs. The exam package maps
// its stored model into this; keep the two in sync.
type Q struct {
	ID        string
	Skill     string
	Kind      string
	Prompt    string
	Points    float64
	AnswerKey []string
	Subs      []SubQ
	Pairs     [][2]string
	Sequence  []string
	MinWords  int
}

// SubQ is one embedded item of a reading/listening set.
type SubQ struct {
	Prompt    string
	AnswerKey []string
}

// Response is a submitted answer: Text for simple and free-form kinds, Parts
// for sets/matching/ordering, AudioRef for speech.
type Response struct {
	Text     string
	Parts    []string
	AudioRef string
}

// Result is the outcome of grading one response. Score and MaxScore feed the
// progress tally; IsCorrect is nil for criterion-scored kinds.
type Result struct {
	IsCorrect   *bool
	Score       float64
	RawScore    float64
	MaxScore    float64
	Feedback    string
	Suggestions string
	Criteria    map[string]float64
}

// Strategy grades a single question kind.
type Strategy interface {
	Grade(ctx context.Context, q Q, resp Response) (Result, error)
}

// Grader routes by question kind to the right strategy. One grader per exam
// profile; the profile supplies conversion tables, rubrics and feedback bands.
type Grader struct {
	profile    *formats.Profile
	strategies map[string]Strategy
}

type Option func(*config)

type config struct {
	Oracle        Oracle
	Transcriber   Transcriber
	OracleTimeout time.Duration
}

func WithOracle(o Oracle) Option           { return func(c *config) { c.Oracle = o } }
func WithTranscriber(t Transcriber) Option { return func(c *config) { c.Transcriber = t } }
func WithOracleTimeout(d time.Duration) Option {
	return func(c *config) { c.OracleTimeout = d }
}

// NewGrader installs the built-in strategies for a profile. Without an
// explicit oracle the deterministic offline oracle is used.
func NewGrader(p *formats.Profile, opts ...Option) *Grader {
	cfg := &config{
		Oracle:        OfflineOracle{},
		OracleTimeout: 30 * time.Second,
	}
	for _, o := range opts {
		o(cfg)
	}
	obj := objectiveStrategy{profile: p}
	set := setStrategy{profile: p}
	ai := aiStrategy{profile: p, oracle: cfg.Oracle, transcriber: cfg.Transcriber, timeout: cfg.OracleTimeout}
	return &Grader{
		profile: p,
		strategies: map[string]Strategy{
			"multiple_choice": obj,
			"true_false":      obj,
			"fill_blank":      obj,
			"matching":        matchingStrategy{},
			"ordering":        orderingStrategy{},
			"reading_set":     set,
			"listening_set":   set,
			"essay":           ai,
			"speaking":        ai,
		},
	}
}

func (g *Grader) Grade(ctx context.Context, q Q, resp Response) (Result, error) {
	s, ok := g.strategies[q.Kind]
	if !ok {
		return Result{}, fmt.Errorf("no grading strategy for kind %q", q.Kind)
	}
	return s.Grade(ctx, q, resp)
}

/* ---------------------------- Objective kinds ---------------------------- */

// objectiveStrategy handles single-answer kinds: case-insensitive, trimmed
// exact match, full points or zero. Incorrect answers always reveal the key.
type objectiveStrategy struct {
	profile *formats.Profile
}

func (s objectiveStrategy) Grade(_ context.Context, q Q, resp Response) (Result, error) {
	if len(q.AnswerKey) == 0 {
		return Result{}, fmt.Errorf("question %s: %w", q.ID, ErrMissingAnswerKey)
	}
	res := Result{MaxScore: q.Points}
	if matchesKey(resp.Text, q.AnswerKey) {
		res.IsCorrect = boolPtr(true)
		res.Score = q.Points
		res.RawScore = q.Points
		res.Feedback = "Correct!"
		return res, nil
	}
	res.IsCorrect = boolPtr(false)
	res.Feedback = fmt.Sprintf("Incorrect. The correct answer is %q.", q.AnswerKey[0])
	if q.Kind == "fill_blank" && nearMiss(resp.Text, q.AnswerKey) {
		res.Feedback += " You were very close; check your spelling."
	}
	return res, nil
}

// matchingStrategy: all pairs must be matched for credit, no partial score.
type matchingStrategy struct{}

func (matchingStrategy) Grade(_ context.Context, q Q, resp Response) (Result, error) {
	if len(q.Pairs) == 0 {
		return Result{}, fmt.Errorf("question %s: %w", q.ID, ErrMissingAnswerKey)
	}
	res := Result{MaxScore: q.Points}
	allOK := len(resp.Parts) == len(q.Pairs)
	if allOK {
		for i, p := range q.Pairs {
			if normalize(resp.Parts[i]) != normalize(p[1]) {
				allOK = false
				break
			}
		}
	}
	if allOK {
		res.IsCorrect = boolPtr(true)
		res.Score = q.Points
		res.RawScore = q.Points
		res.Feedback = "Correct! All pairs matched."
		return res, nil
	}
	res.IsCorrect = boolPtr(false)
	var b strings.Builder
	b.WriteString("Incorrect. The correct pairs are: ")
	for i, p := range q.Pairs {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s → %s", p[0], p[1])
	}
	b.WriteString(".")
	res.Feedback = b.String()
	return res, nil
}

// orderingStrategy: the whole sequence must be in order for credit.
type orderingStrategy struct{}

func (orderingStrategy) Grade(_ context.Context, q Q, resp Response) (Result, error) {
	if len(q.Sequence) == 0 {
		return Result{}, fmt.Errorf("question %s: %w", q.ID, ErrMissingAnswerKey)
	}
	res := Result{MaxScore: q.Points}
	allOK := len(resp.Parts) == len(q.Sequence)
	if allOK {
		for i, want := range q.Sequence {
			if normalize(resp.Parts[i]) != normalize(want) {
				allOK = false
				break
			}
		}
	}
	if allOK {
		res.IsCorrect = boolPtr(true)
		res.Score = q.Points
		res.RawScore = q.Points
		res.Feedback = "Correct! The order is right."
		return res, nil
	}
	res.IsCorrect = boolPtr(false)
	res.Feedback = fmt.Sprintf("Incorrect. The correct order is: %s.", strings.Join(q.Sequence, " / "))
	return res, nil
}

/* ------------------------- Multi-part set kinds -------------------------- */

// setStrategy scores reading/listening sets by counting sub-question matches
// and converting the correct-count ratio through the profile's step table.
type setStrategy struct {
	profile *formats.Profile
}

func (s setStrategy) Grade(_ context.Context, q Q, resp Response) (Result, error) {
	if len(q.Subs) == 0 {
		return Result{}, fmt.Errorf("question %s: %w", q.ID, ErrMissingAnswerKey)
	}
	for i, sub := range q.Subs {
		if len(sub.AnswerKey) == 0 {
			return Result{}, fmt.Errorf("question %s sub %d: %w", q.ID, i, ErrMissingAnswerKey)
		}
	}

	correct := 0
	var misses []string
	for i, sub := range q.Subs {
		given := ""
		if i < len(resp.Parts) {
			given = resp.Parts[i]
		}
		if matchesKey(given, sub.AnswerKey) {
			correct++
		} else {
			misses = append(misses, fmt.Sprintf("Q%d: %q", i+1, sub.AnswerKey[0]))
		}
	}

	total := len(q.Subs)
	sk, _ := s.profile.SkillByCode(q.Skill)
	scaled := s.profile.ToScale(q.Skill, float64(correct), float64(total))

	res := Result{
		IsCorrect: boolPtr(correct == total),
		Score:     scaled,
		RawScore:  float64(correct),
		MaxScore:  sk.MaxScore,
	}
	if correct == total {
		res.Feedback = fmt.Sprintf("Correct! You answered all %d questions right.", total)
	} else {
		res.Feedback = fmt.Sprintf("You answered %d of %d correctly. Correct answers — %s.",
			correct, total, strings.Join(misses, "; "))
	}
	_, res.Suggestions = s.profile.BandFeedback(q.Skill, scaled, sk.MaxScore)
	return res, nil
}

/* ------------------------- AI-delegated kinds ---------------------------- */

// aiStrategy delegates essays and speech to the scoring oracle. The overall
// score is the unweighted mean of the criterion scores, rounded per the
// profile. Oracle failure surfaces as ErrUnavailable; it is never a zero.
type aiStrategy struct {
	profile     *formats.Profile
	oracle      Oracle
	transcriber Transcriber
	timeout     time.Duration
}

func (s aiStrategy) Grade(ctx context.Context, q Q, resp Response) (Result, error) {
	sk, ok := s.profile.SkillByCode(q.Skill)
	if !ok {
		return Result{}, fmt.Errorf("question %s: skill %q not registered", q.ID, q.Skill)
	}

	text := resp.Text
	if text == "" && resp.AudioRef != "" {
		if s.transcriber == nil {
			return Result{}, fmt.Errorf("no transcriber configured: %w", ErrUnavailable)
		}
		t, err := s.transcriber.Transcribe(ctx, resp.AudioRef)
		if err != nil {
			return Result{}, fmt.Errorf("transcription failed: %w", ErrUnavailable)
		}
		text = t
	}

	minWords := q.MinWords
	if minWords == 0 {
		minWords = s.profile.MinWords[q.Skill]
	}
	if wc := wordCount(text); wc < minWords {
		// Too short to evaluate meaningfully; deterministic verdict, no oracle.
		_, sugg := s.profile.BandFeedback(q.Skill, 0, sk.MaxScore)
		return Result{
			Score:       s.profile.Scale.Min,
			MaxScore:    sk.MaxScore,
			Feedback:    fmt.Sprintf("Your answer has %d words; at least %d are required for evaluation.", wc, minWords),
			Suggestions: sugg,
		}, nil
	}

	// The oracle call runs on its own deadline, detached from the caller's
	// cancellation: once the request is in flight we let it finish rather
	// than pay for work and discard the result.
	octx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	verdict, err := s.oracle.Score(octx, OracleRequest{
		ExamType: s.profile.Code,
		Skill:    q.Skill,
		Prompt:   q.Prompt,
		Answer:   text,
		Rubric:   s.profile.Rubrics[q.Skill],
		MaxScore: sk.MaxScore,
	})
	if err != nil {
		return Result{}, fmt.Errorf("oracle scoring failed: %w: %v", ErrUnavailable, err)
	}

	raw := verdict.Overall
	if len(verdict.Criteria) > 0 {
		sum := 0.0
		for _, v := range verdict.Criteria {
			sum += v
		}
		raw = sum / float64(len(verdict.Criteria))
	}
	score := s.profile.RoundScore(raw)
	if score < 0 {
		score = 0
	}
	if score > sk.MaxScore {
		score = sk.MaxScore
	}

	res := Result{
		Score:       score,
		RawScore:    raw,
		MaxScore:    sk.MaxScore,
		Feedback:    verdict.Feedback,
		Suggestions: verdict.Suggestions,
		Criteria:    verdict.Criteria,
	}
	if res.Feedback == "" {
		fb, sugg := s.profile.BandFeedback(q.Skill, score, sk.MaxScore)
		res.Feedback = fb
		if res.Suggestions == "" {
			res.Suggestions = sugg
		}
	}
	return res, nil
}

func boolPtr(b bool) *bool { return &b }
