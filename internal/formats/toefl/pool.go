package toefl

import "github.com/lingua-prep/linguaprep-backend/internal/formats"

func pools() map[string]map[string][]formats.Seed {
	return map[string]map[string][]formats.Seed{
		"reading": {
			"easy": {
				{
					Kind:         "reading_set",
					Prompt:       "Read the passage and answer the questions.",
					Passage:      "Photosynthesis is the process by which plants convert sunlight into chemical energy. Chlorophyll, the pigment that gives leaves their green color, absorbs light most efficiently in the red and blue portions of the spectrum, reflecting green light back to the observer.",
					TimeLimitSec: 600,
					Points:       3,
					SubQuestions: []formats.SubSeed{
						{Prompt: "What gives leaves their green color?", Options: []string{"carotene", "chlorophyll", "glucose", "cellulose"}, AnswerKey: []string{"chlorophyll"}},
						{Prompt: "Chlorophyll absorbs green light most efficiently. True or false?", Options: []string{"true", "false"}, AnswerKey: []string{"false"}},
						{Prompt: "Plants convert sunlight into ____ energy.", AnswerKey: []string{"chemical"}},
					},
				},
			},
			"medium": {
				{
					Kind:         "reading_set",
					Prompt:       "Read the passage and answer the questions.",
					Passage:      "The Harlem Renaissance of the 1920s was more than a literary movement; it was a reframing of African American identity through poetry, jazz, painting, and scholarship. Patronage networks mattered: magazines and salons connected emerging writers with publishers who might otherwise never have read them.",
					TimeLimitSec: 900,
					Points:       3,
					SubQuestions: []formats.SubSeed{
						{Prompt: "In which decade is the Harlem Renaissance set here?", Options: []string{"1900s", "1910s", "1920s", "1930s"}, AnswerKey: []string{"1920s"}},
						{Prompt: "The passage presents the movement as purely literary. True or false?", Options: []string{"true", "false"}, AnswerKey: []string{"false"}},
						{Prompt: "Magazines and salons connected writers with ____.", AnswerKey: []string{"publishers"}},
					},
				},
			},
			"hard": {
				{
					Kind:         "reading_set",
					Prompt:       "Read the passage and answer the questions.",
					Passage:      "Plate tectonics did not triumph because its early advocates argued better, but because mid-century ocean surveys produced anomalies — magnetic striping, the youth of seafloor basalts — that the static-crust paradigm could not absorb. The theory's acceptance illustrates how instrumentation, as much as ideas, drives scientific revolutions.",
					TimeLimitSec: 1200,
					Points:       3,
					SubQuestions: []formats.SubSeed{
						{Prompt: "According to the passage, what drove the acceptance of plate tectonics?", Options: []string{"better rhetoric", "ocean survey anomalies", "older fossil evidence", "political pressure"}, AnswerKey: []string{"ocean survey anomalies"}},
						{Prompt: "The author believes instrumentation plays a role in scientific revolutions. True or false?", Options: []string{"true", "false"}, AnswerKey: []string{"true"}},
						{Prompt: "The static-crust paradigm could not absorb the magnetic ____ anomaly.", AnswerKey: []string{"striping"}},
					},
				},
			},
		},
		"listening": {
			"easy": {
				{
					Kind:         "listening_set",
					Prompt:       "Listen to the conversation and answer the questions.",
					AudioScript:  "Student: Hi, I'd like to add the introductory biology course. Advisor: That section is full, but there is space in the Tuesday evening section. It meets from six to nine, and the lab is on Thursdays.",
					TimeLimitSec: 420,
					Points:       3,
					SubQuestions: []formats.SubSeed{
						{Prompt: "Which course does the student want to add?", Options: []string{"chemistry", "biology", "physics", "history"}, AnswerKey: []string{"biology"}},
						{Prompt: "The Tuesday section meets from six to nine. True or false?", Options: []string{"true", "false"}, AnswerKey: []string{"true"}},
						{Prompt: "The lab is on ____.", AnswerKey: []string{"thursdays", "thursday"}},
					},
				},
			},
			"medium": {
				{
					Kind:         "listening_set",
					Prompt:       "Listen to the lecture excerpt and answer the questions.",
					AudioScript:  "Today we turn to supply and demand. When a late frost destroys part of the orange crop, supply falls while demand is unchanged, so prices rise. Notice the mechanism: the price change is the market's signal, not its malfunction.",
					TimeLimitSec: 600,
					Points:       3,
					SubQuestions: []formats.SubSeed{
						{Prompt: "What happens to prices after the frost?", Options: []string{"they fall", "they rise", "they are frozen", "nothing"}, AnswerKey: []string{"they rise"}},
						{Prompt: "The lecturer calls the price change a malfunction. True or false?", Options: []string{"true", "false"}, AnswerKey: []string{"false"}},
						{Prompt: "The price change is described as the market's ____.", AnswerKey: []string{"signal"}},
					},
				},
			},
			"hard": {
				{
					Kind:         "listening_set",
					Prompt:       "Listen to the lecture excerpt and answer the questions.",
					AudioScript:  "The puzzle of bird migration is not that birds navigate, but that first-year birds navigate routes they have never flown, often alone. Displacement experiments suggest a two-part system: an inherited vector program for novices, and a learned map that adults consult to correct for displacement.",
					TimeLimitSec: 720,
					Points:       3,
					SubQuestions: []formats.SubSeed{
						{Prompt: "What is puzzling about first-year birds?", Options: []string{"they fly in flocks", "they navigate unflown routes", "they refuse to migrate", "they follow adults"}, AnswerKey: []string{"they navigate unflown routes"}},
						{Prompt: "Adults are thought to consult a learned map. True or false?", Options: []string{"true", "false"}, AnswerKey: []string{"true"}},
						{Prompt: "Novices are guided by an inherited ____ program.", AnswerKey: []string{"vector"}},
					},
				},
			},
		},
		"speaking": {
			"easy": {
				{Kind: "speaking", Prompt: "Talk about a place you enjoy visiting in your free time. Explain why you enjoy it.", TimeLimitSec: 60, Points: 30, MinWords: 25},
			},
			"medium": {
				{Kind: "speaking", Prompt: "Some students prefer studying alone, others in groups. Which do you prefer and why? Include specific reasons and examples.", TimeLimitSec: 60, Points: 30, MinWords: 25},
			},
			"hard": {
				{Kind: "speaking", Prompt: "Do you agree or disagree that universities should require all students to take courses outside their major field? Use specific reasons and examples.", TimeLimitSec: 60, Points: 30, MinWords: 25},
			},
		},
		"writing": {
			"easy": {
				{Kind: "essay", Prompt: "Do you agree or disagree with the following statement? It is better to have a job you enjoy than a job that pays well. Use specific reasons and examples.", TimeLimitSec: 1800, Points: 30, MinWords: 100},
			},
			"medium": {
				{Kind: "essay", Prompt: "Some people believe that children should begin learning a foreign language as early as possible, while others believe it is better to wait. Which view do you support? Use specific reasons and examples.", TimeLimitSec: 1800, Points: 30, MinWords: 100},
			},
			"hard": {
				{Kind: "essay", Prompt: "Do you agree or disagree that the widespread use of artificial intelligence will reduce the value of human expertise? Develop your position with specific reasons and examples.", TimeLimitSec: 1800, Points: 30, MinWords: 100},
			},
		},
	}
}
