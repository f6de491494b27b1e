package grading

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/lingua-prep/linguaprep-backend/internal/formats"
)

// ErrUnavailable marks an oracle failure or timeout. It propagates to the
// caller as a retryable condition and is never converted into a score.
var ErrUnavailable = errors.New("evaluation unavailable")

// ErrMissingAnswerKey marks an objective question with no stored key: a
// content configuration problem, not a wrong answer.
var ErrMissingAnswerKey = errors.New("question has no answer key")

// OracleRequest carries everything the scoring oracle needs: the task, the
// learner's text (transcribed for speech) and the rubric to score against.
type OracleRequest struct {
	ExamType string
	Skill    string
	Prompt   string
	Answer   string
	Rubric   []formats.Criterion
	MaxScore float64
}

// OracleResult is the oracle's verdict. Criteria are on [0, MaxScore]; the
// engine recomputes Overall as the unweighted mean of the criteria, so a
// missing or inconsistent Overall from the provider is harmless.
type OracleResult struct {
	Overall     float64
	Criteria    map[string]float64
	Feedback    string
	Suggestions string
}

// Oracle scores free-form language production. Implementations are black
// boxes that may fail or time out.
type Oracle interface {
	Score(ctx context.Context, req OracleRequest) (OracleResult, error)
}

// Transcriber turns an audio blob reference into text prior to scoring.
type Transcriber interface {
	Transcribe(ctx context.Context, audioRef string) (string, error)
}

// OfflineOracle is the deterministic fallback used without a live provider
// and in tests. It scores purely from surface statistics of the answer, so
// the same (prompt, answer) pair always produces the same verdict. It leaves
// Feedback empty on purpose: the engine then synthesizes band-tier feedback.
type OfflineOracle struct{}

func (OfflineOracle) Score(_ context.Context, req OracleRequest) (OracleResult, error) {
	if len(req.Rubric) == 0 {
		return OracleResult{}, fmt.Errorf("offline oracle: no rubric for %s/%s", req.ExamType, req.Skill)
	}

	words := strings.Fields(strings.ToLower(req.Answer))
	total := len(words)
	uniq := map[string]struct{}{}
	longWords := 0
	for _, w := range words {
		uniq[w] = struct{}{}
		if len(w) >= 7 {
			longWords++
		}
	}
	sentences := strings.Count(req.Answer, ".") + strings.Count(req.Answer, "!") + strings.Count(req.Answer, "?")

	// Three deterministic signals in [0,1]: length against a 250-word target,
	// type/token variety, and sentence segmentation.
	length := math.Min(1, float64(total)/250)
	variety := 0.0
	if total > 0 {
		variety = float64(len(uniq)) / float64(total)
	}
	structure := math.Min(1, float64(sentences)/8)
	sophistication := 0.0
	if total > 0 {
		sophistication = math.Min(1, 3*float64(longWords)/float64(total))
	}

	base := 0.35*length + 0.25*variety + 0.2*structure + 0.2*sophistication

	// Spread criteria slightly and deterministically so the breakdown is not
	// a flat line: offset by a stable per-criterion nudge.
	crit := map[string]float64{}
	keys := make([]string, 0, len(req.Rubric))
	for _, c := range req.Rubric {
		keys = append(keys, c.Key)
	}
	sort.Strings(keys)
	for i, k := range keys {
		nudge := 0.04 * float64(i%3-1) // -0.04, 0, +0.04 cycling
		v := (base + nudge) * req.MaxScore
		if v < 0 {
			v = 0
		}
		if v > req.MaxScore {
			v = req.MaxScore
		}
		crit[k] = v
	}

	sum := 0.0
	for _, v := range crit {
		sum += v
	}
	return OracleResult{
		Overall:  sum / float64(len(crit)),
		Criteria: crit,
	}, nil
}
