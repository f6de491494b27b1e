package ielts

import "github.com/lingua-prep/linguaprep-backend/internal/formats"

// IELTS: 0–9 band scale in half-band increments. Reading and listening convert
// raw correctness through the band table below; writing and speaking are
// criterion-scored and rounded to the nearest half band. Overall is the
// arithmetic mean of the four skill averages, rounded to the nearest 0.5.

func init() {
	formats.Register(Profile())
}

// bandTable maps percent-correct to a band. Breakpoints follow published
// raw-to-band conversion conventions; do not "simplify" into a linear slope.
var bandTable = []formats.Step{
	{MinPercent: 90, Scaled: 9.0},
	{MinPercent: 85, Scaled: 8.5},
	{MinPercent: 80, Scaled: 8.0},
	{MinPercent: 75, Scaled: 7.5},
	{MinPercent: 70, Scaled: 7.0},
	{MinPercent: 65, Scaled: 6.5},
	{MinPercent: 60, Scaled: 6.0},
	{MinPercent: 55, Scaled: 5.5},
	{MinPercent: 50, Scaled: 5.0},
	{MinPercent: 45, Scaled: 4.5},
	{MinPercent: 40, Scaled: 4.0},
	{MinPercent: 35, Scaled: 3.5},
	{MinPercent: 30, Scaled: 3.0},
	{MinPercent: 0, Scaled: 2.5},
}

func Profile() *formats.Profile {
	return &formats.Profile{
		Code:  "ielts",
		Name:  "IELTS Academic",
		Scale: formats.Scale{Min: 0, Max: 9, Increment: 0.5, Passing: 6.0},
		Skills: []formats.SkillInfo{
			{Code: "reading", Name: "Reading", MaxScore: 9, Eval: formats.EvalObjective},
			{Code: "listening", Name: "Listening", MaxScore: 9, Eval: formats.EvalObjective},
			{Code: "writing", Name: "Writing", MaxScore: 9, Eval: formats.EvalAIDelegated},
			{Code: "speaking", Name: "Speaking", MaxScore: 9, Eval: formats.EvalAIDelegated},
		},
		StepTables: map[string][]formats.Step{
			"reading":   bandTable,
			"listening": bandTable,
		},
		Rubrics: map[string][]formats.Criterion{
			"writing": {
				{Key: "task_achievement", Desc: "Task achievement: how fully the response addresses the task"},
				{Key: "coherence_cohesion", Desc: "Coherence and cohesion: organization and linking of ideas"},
				{Key: "lexical_resource", Desc: "Lexical resource: range and accuracy of vocabulary"},
				{Key: "grammatical_range", Desc: "Grammatical range and accuracy"},
			},
			"speaking": {
				{Key: "fluency_coherence", Desc: "Fluency and coherence: speech rate and continuity"},
				{Key: "lexical_resource", Desc: "Lexical resource: range and accuracy of vocabulary"},
				{Key: "grammatical_range", Desc: "Grammatical range and accuracy"},
				{Key: "pronunciation", Desc: "Pronunciation: intelligibility and features of speech"},
			},
		},
		MinWords: map[string]int{
			"writing":  150,
			"speaking": 30,
		},
		FeedbackBands: []formats.FeedbackBand{
			{MinFrac: 0.80, Message: "Excellent response. Your English is strong at this level."},
			{MinFrac: 0.667, Message: "Good response. You are performing at a competent band."},
			{MinFrac: 0, Message: "This answer needs improvement to reach a competent band."},
		},
		SuggestionsBySkill: map[string][]string{
			"reading": {
				"Keep challenging yourself with academic texts on unfamiliar topics.",
				"Practice skimming for gist before scanning for detail; watch your timing.",
				"Build reading stamina with one full passage a day and review every wrong answer.",
			},
			"listening": {
				"Try podcasts and lectures at natural speed to maintain your level.",
				"Practice predicting answers from context before the speaker reaches them.",
				"Start with slower recordings and transcripts, then remove the transcript.",
			},
			"writing": {
				"Experiment with a wider range of complex structures to keep your edge.",
				"Work on paragraph unity: one clear idea per paragraph with support.",
				"Plan before you write: position, two main ideas, examples. Aim for 250+ words.",
			},
			"speaking": {
				"Record yourself on abstract topics to refine precision and nuance.",
				"Extend your answers: state, explain, exemplify before moving on.",
				"Practice speaking for two minutes without stopping, even with simple language.",
			},
		},
		Overall: formats.Composite{Mode: "mean"},
		Pools:   pools(),
	}
}
