package exam

import "sort"

// Redacted returns a student-safe copy of the question: answer keys are
// stripped, matching right-hand sides and ordering fragments are re-presented
// as sorted choice lists so the client can render them without revealing the
// key order.
func (q Question) Redacted() Question {
	out := q
	out.AnswerKey = nil
	if q.Content == nil {
		return out
	}

	c := *q.Content
	if len(c.SubQuestions) > 0 {
		subs := make([]SubQuestion, len(c.SubQuestions))
		copy(subs, c.SubQuestions)
		for i := range subs {
			subs[i].AnswerKey = nil
		}
		c.SubQuestions = subs
	}
	if len(c.Pairs) > 0 {
		rights := make([]string, 0, len(c.Pairs))
		pairs := make([]MatchPair, len(c.Pairs))
		for i, p := range c.Pairs {
			rights = append(rights, p.Right)
			pairs[i] = MatchPair{Left: p.Left}
		}
		sort.Strings(rights)
		for _, r := range rights {
			out.Choices = append(out.Choices, Choice{Label: r})
		}
		c.Pairs = pairs
	}
	if len(c.Sequence) > 0 {
		frags := make([]string, len(c.Sequence))
		copy(frags, c.Sequence)
		sort.Strings(frags)
		for _, f := range frags {
			out.Choices = append(out.Choices, Choice{Label: f})
		}
		c.Sequence = nil
	}
	out.Content = &c
	return out
}
