package toefl

import "github.com/lingua-prep/linguaprep-backend/internal/formats"

// TOEFL iBT: four sections scored 0–30, overall is their sum capped at 120.
// Reading and listening convert raw correctness through the section tables;
// speaking and writing are criterion-scored and rounded to the nearest point.

func init() {
	formats.Register(Profile())
}

// sectionTable maps percent-correct to a 0–30 section score. Like the paper
// conversion charts it flattens near the top and drops faster in the middle.
var sectionTable = []formats.Step{
	{MinPercent: 95, Scaled: 30},
	{MinPercent: 90, Scaled: 29},
	{MinPercent: 85, Scaled: 28},
	{MinPercent: 80, Scaled: 27},
	{MinPercent: 75, Scaled: 25},
	{MinPercent: 70, Scaled: 24},
	{MinPercent: 65, Scaled: 22},
	{MinPercent: 60, Scaled: 20},
	{MinPercent: 55, Scaled: 18},
	{MinPercent: 50, Scaled: 17},
	{MinPercent: 45, Scaled: 15},
	{MinPercent: 40, Scaled: 13},
	{MinPercent: 35, Scaled: 11},
	{MinPercent: 30, Scaled: 9},
	{MinPercent: 25, Scaled: 7},
	{MinPercent: 0, Scaled: 5},
}

func Profile() *formats.Profile {
	return &formats.Profile{
		Code:  "toefl",
		Name:  "TOEFL iBT",
		Scale: formats.Scale{Min: 0, Max: 120, Increment: 1, Passing: 80},
		Skills: []formats.SkillInfo{
			{Code: "reading", Name: "Reading", MaxScore: 30, Eval: formats.EvalObjective},
			{Code: "listening", Name: "Listening", MaxScore: 30, Eval: formats.EvalObjective},
			{Code: "speaking", Name: "Speaking", MaxScore: 30, Eval: formats.EvalAIDelegated},
			{Code: "writing", Name: "Writing", MaxScore: 30, Eval: formats.EvalAIDelegated},
		},
		StepTables: map[string][]formats.Step{
			"reading":   sectionTable,
			"listening": sectionTable,
		},
		Rubrics: map[string][]formats.Criterion{
			"speaking": {
				{Key: "delivery", Desc: "Delivery: pace, clarity and pronunciation"},
				{Key: "language_use", Desc: "Language use: grammar and vocabulary control"},
				{Key: "topic_development", Desc: "Topic development: completeness and coherence of ideas"},
			},
			"writing": {
				{Key: "development", Desc: "Development: depth and support of ideas"},
				{Key: "organization", Desc: "Organization: logical structure and progression"},
				{Key: "language_use", Desc: "Language use: grammar, vocabulary and sentence variety"},
			},
		},
		MinWords: map[string]int{
			"writing":  100,
			"speaking": 25,
		},
		FeedbackBands: []formats.FeedbackBand{
			{MinFrac: 0.80, Message: "Excellent performance. You are scoring in the top section range."},
			{MinFrac: 0.667, Message: "Good performance. Your section score is competitive."},
			{MinFrac: 0, Message: "This section score needs improvement."},
		},
		SuggestionsBySkill: map[string][]string{
			"reading": {
				"Maintain your level with dense academic articles under timed conditions.",
				"Practice paraphrase recognition; most distractors reuse passage words.",
				"Slow down and map each paragraph's purpose before answering.",
			},
			"listening": {
				"Challenge yourself with full-length lectures and minimal note-taking.",
				"Focus your notes on signal words: however, therefore, for example.",
				"Replay short segments and transcribe them until you catch every word.",
			},
			"speaking": {
				"Polish transitions and idiomatic phrasing to push into the top band.",
				"Use a 15-second plan: main point, reason, example, wrap-up.",
				"Answer aloud daily using templates until structure becomes automatic.",
			},
			"writing": {
				"Vary sentence openings and integrate source details more precisely.",
				"Strengthen body paragraphs: one claim each, backed by a specific example.",
				"Master a five-paragraph frame first; accuracy before ambition.",
			},
		},
		Overall: formats.Composite{Mode: "sum", Cap: 120},
		Pools:   pools(),
	}
}
