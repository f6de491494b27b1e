package yds

import "github.com/lingua-prep/linguaprep-backend/internal/formats"

// YDS (Yabancı Dil Sınavı): fully multiple-choice, reported 0–100. Every skill
// converts linearly (percent correct), and the overall score is a weighted
// composite: reading 0.40, listening 0.20, grammar 0.25, vocabulary 0.15,
// normalized by the weights of skills the user actually has data for.

func init() {
	formats.Register(Profile())
}

func Profile() *formats.Profile {
	return &formats.Profile{
		Code:  "yds",
		Name:  "YDS",
		Scale: formats.Scale{Min: 0, Max: 100, Increment: 1, Passing: 60},
		Skills: []formats.SkillInfo{
			{Code: "reading", Name: "Reading Comprehension", MaxScore: 100, Eval: formats.EvalObjective},
			{Code: "listening", Name: "Listening", MaxScore: 100, Eval: formats.EvalObjective},
			{Code: "grammar", Name: "Grammar", MaxScore: 100, Eval: formats.EvalObjective},
			{Code: "vocabulary", Name: "Vocabulary", MaxScore: 100, Eval: formats.EvalObjective},
		},
		FeedbackBands: []formats.FeedbackBand{
			{MinFrac: 0.80, Message: "Excellent. You are comfortably above the passing threshold."},
			{MinFrac: 0.60, Message: "Good. You are at or above the passing threshold."},
			{MinFrac: 0, Message: "Needs improvement. You are below the passing threshold."},
		},
		SuggestionsBySkill: map[string][]string{
			"reading": {
				"Keep your pace sharp with timed full passages.",
				"Focus on connector questions; they decide most close calls.",
				"Read one translated article a day and list every unknown word.",
			},
			"listening": {
				"Maintain exposure with unscripted interviews and news.",
				"Train on number, date and place details; they recur every year.",
				"Begin with short clips and repeat until you catch the keywords.",
			},
			"grammar": {
				"Drill the rare tense and inversion patterns that top scorers miss.",
				"Review conditionals and reported speech; they are tested heavily.",
				"Work through one grammar topic per day with twenty drill items.",
			},
			"vocabulary": {
				"Study near-synonym contrasts and collocations.",
				"Focus on phrasal verbs and prepositional idioms.",
				"Build a daily list of high-frequency academic words with examples.",
			},
		},
		Overall: formats.Composite{
			Mode: "weighted",
			Weights: map[string]float64{
				"reading":    0.40,
				"listening":  0.20,
				"grammar":    0.25,
				"vocabulary": 0.15,
			},
		},
		Pools: pools(),
	}
}
