package formats

import (
	"fmt"
	"sort"
)

// EvalKind says how answers for a skill are graded.
type EvalKind string

const (
	EvalObjective   EvalKind = "objective"
	EvalSubjective  EvalKind = "subjective"
	EvalAIDelegated EvalKind = "ai"
)

// Scale describes an exam's reporting scale (IELTS 0–9 step 0.5, TOEFL 0–120, YDS 0–100).
type Scale struct {
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Increment float64 `json:"increment"`
	Passing   float64 `json:"passing"`
}

// SkillInfo is one testable competency within an exam.
type SkillInfo struct {
	Code     string   `json:"code"`
	Name     string   `json:"name"`
	MaxScore float64  `json:"max_score"`
	Eval     EvalKind `json:"eval"`
}

// Step is one breakpoint in a raw→scaled conversion table: any percentage at or
// above MinPercent (and below the previous step) maps to Scaled. Tables encode
// real exam-board conventions; breakpoints are not a linear slope.
type Step struct {
	MinPercent float64
	Scaled     float64
}

// Criterion is one rubric dimension for AI-delegated skills (e.g. Task Achievement).
type Criterion struct {
	Key  string `json:"key"`
	Desc string `json:"desc"`
}

// FeedbackBand pairs a fraction-of-max threshold with templated feedback text.
// Bands are checked top-down; the first band whose MinFrac is met wins.
type FeedbackBand struct {
	MinFrac float64
	Message string
}

// Composite describes how per-skill averages fold into an overall score.
type Composite struct {
	Mode    string             // "mean" | "sum" | "weighted"
	Weights map[string]float64 // for "weighted" (YDS)
	Cap     float64            // for "sum" (TOEFL 120); 0 = no cap
}

// Seed is a synthesizable question blueprint from a profile's content pool.
// The selector turns seeds into stored questions when no authored question
// matches; formats deliberately does not import the exam package (same
// cycle-avoidance as keeping adapters behind minimal interfaces).
type Seed struct {
	Kind         string
	Prompt       string
	Passage      string
	AudioScript  string
	Options      []string
	AnswerKey    []string
	SubQuestions []SubSeed
	Pairs        [][2]string
	Sequence     []string
	Points       float64
	TimeLimitSec int
	MinWords     int
}

// SubSeed is one embedded sub-question of a reading/listening set.
type SubSeed struct {
	Prompt    string
	Options   []string
	AnswerKey []string
}

// Profile carries everything exam-specific as data: scale, skills, conversion
// tables, rubrics, feedback bands, suggestion templates and synthesis pools.
// Per-exam behavior is dispatched through this one shape instead of subtypes.
type Profile struct {
	Code  string
	Name  string
	Scale Scale

	Skills []SkillInfo

	// StepTables maps skill code → raw-percent conversion breakpoints,
	// sorted by MinPercent descending. Skills absent here convert linearly
	// (percent of the skill's max score).
	StepTables map[string][]Step

	// Rubrics maps AI-delegated skill code → ordered criterion set.
	Rubrics map[string][]Criterion

	// MinWords maps AI-delegated skill code → minimum acceptable word count.
	MinWords map[string]int

	// FeedbackBands are ordered high→low; SuggestionsBySkill holds one
	// suggestion template per band, parallel to FeedbackBands.
	FeedbackBands      []FeedbackBand
	SuggestionsBySkill map[string][]string

	Overall Composite

	// Pools maps skill code → difficulty ("easy"|"medium"|"hard") → seeds.
	Pools map[string]map[string][]Seed
}

// SkillByCode resolves a skill registered for this exam type.
func (p *Profile) SkillByCode(code string) (SkillInfo, bool) {
	for _, s := range p.Skills {
		if s.Code == code {
			return s, true
		}
	}
	return SkillInfo{}, false
}

// ---- Registry ----

// Profiles self-register from subpackage init(), like "ielts", "toefl", "yds".
var registry = map[string]*Profile{}

// Register binds a profile to its exam-type code. Call from init() in subpackages.
func Register(p *Profile) {
	if p == nil || p.Code == "" {
		return
	}
	registry[p.Code] = p
}

// Lookup returns a registered profile for an exam-type code.
func Lookup(code string) (*Profile, bool) { p, ok := registry[code]; return p, ok }

// Codes lists registered exam-type codes, sorted for stable API output.
func Codes() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Validate runs basic consistency checks on a profile's tables.
func Validate(p *Profile) error {
	if p.Scale.Increment <= 0 {
		return fmt.Errorf("%s: scale increment must be positive", p.Code)
	}
	if len(p.Skills) == 0 {
		return fmt.Errorf("%s: profile has no skills", p.Code)
	}
	for skill, steps := range p.StepTables {
		if _, ok := p.SkillByCode(skill); !ok {
			return fmt.Errorf("%s: step table for unknown skill %q", p.Code, skill)
		}
		prev := 101.0
		prevScaled := p.Scale.Max + 1
		for _, st := range steps {
			if st.MinPercent >= prev {
				return fmt.Errorf("%s/%s: step table not descending at %.0f%%", p.Code, skill, st.MinPercent)
			}
			if st.Scaled > prevScaled {
				return fmt.Errorf("%s/%s: step table not monotonic at %.0f%%", p.Code, skill, st.MinPercent)
			}
			prev = st.MinPercent
			prevScaled = st.Scaled
		}
	}
	for i := 1; i < len(p.FeedbackBands); i++ {
		if p.FeedbackBands[i].MinFrac >= p.FeedbackBands[i-1].MinFrac {
			return fmt.Errorf("%s: feedback bands not descending", p.Code)
		}
	}
	return nil
}
