package formats

import "math"

// Scale conversion is pure: raw correctness in, reporting-scale score out.
// Rounding is half-up throughout to match the 0.5-increment convention
// (scores here are never negative, so floor(x/inc+0.5) is half-up).

// RoundScore snaps a value to the profile's scale increment, half-up.
func (p *Profile) RoundScore(v float64) float64 {
	inc := p.Scale.Increment
	return math.Floor(v/inc+0.5) * inc
}

// Clamp bounds a value to the profile's declared [min,max].
func (p *Profile) Clamp(v float64) float64 {
	if v < p.Scale.Min {
		return p.Scale.Min
	}
	if v > p.Scale.Max {
		return p.Scale.Max
	}
	return v
}

// ToScale converts a raw correct count into the skill's reporting score.
// Skills with a step table use the table's breakpoints; others map linearly
// onto [0, skill max]. totalPossible <= 0 yields the scale floor.
func (p *Profile) ToScale(skill string, rawCorrect, totalPossible float64) float64 {
	sk, ok := p.SkillByCode(skill)
	if !ok || totalPossible <= 0 {
		return p.Scale.Min
	}
	pct := rawCorrect / totalPossible * 100

	if steps, ok := p.StepTables[skill]; ok {
		for _, st := range steps {
			if pct >= st.MinPercent {
				return p.Clamp(st.Scaled)
			}
		}
		return p.Scale.Min
	}

	scaled := p.RoundScore(pct / 100 * sk.MaxScore)
	if scaled > sk.MaxScore {
		scaled = sk.MaxScore
	}
	return p.Clamp(scaled)
}

// OverallScore folds per-skill averages into the exam's overall score.
// Skills without data (absent from the map) are excluded; weighted mode
// renormalizes by the weights of skills present and guards the empty case.
func (p *Profile) OverallScore(skillAverages map[string]float64) float64 {
	if len(skillAverages) == 0 {
		return p.Scale.Min
	}
	switch p.Overall.Mode {
	case "sum":
		total := 0.0
		for _, s := range p.Skills {
			if v, ok := skillAverages[s.Code]; ok {
				total += v
			}
		}
		if p.Overall.Cap > 0 && total > p.Overall.Cap {
			total = p.Overall.Cap
		}
		return p.Clamp(p.RoundScore(total))
	case "weighted":
		sum, wsum := 0.0, 0.0
		for skill, w := range p.Overall.Weights {
			if v, ok := skillAverages[skill]; ok {
				sum += v * w
				wsum += w
			}
		}
		if wsum == 0 {
			return p.Scale.Min
		}
		return p.Clamp(p.RoundScore(sum / wsum))
	default: // "mean"
		sum, n := 0.0, 0
		for _, s := range p.Skills {
			if v, ok := skillAverages[s.Code]; ok {
				sum += v
				n++
			}
		}
		if n == 0 {
			return p.Scale.Min
		}
		return p.Clamp(p.RoundScore(sum / float64(n)))
	}
}

// BandFeedback picks the feedback message and the skill's suggestion template
// for a score expressed against a skill's max. Falls back to the lowest band.
func (p *Profile) BandFeedback(skill string, score, max float64) (feedback, suggestion string) {
	if max <= 0 || len(p.FeedbackBands) == 0 {
		return "", ""
	}
	frac := score / max
	idx := len(p.FeedbackBands) - 1
	for i, b := range p.FeedbackBands {
		if frac >= b.MinFrac {
			idx = i
			break
		}
	}
	feedback = p.FeedbackBands[idx].Message
	if sugg, ok := p.SuggestionsBySkill[skill]; ok && idx < len(sugg) {
		suggestion = sugg[idx]
	}
	return feedback, suggestion
}
