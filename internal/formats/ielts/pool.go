package ielts

import "github.com/lingua-prep/linguaprep-backend/internal/formats"

// Synthesis pools: used when no authored question matches (exam, skill,
// difficulty). Reading/listening seeds carry a passage or script plus embedded
// sub-questions; writing/speaking seeds are prompts for criterion scoring.

func pools() map[string]map[string][]formats.Seed {
	return map[string]map[string][]formats.Seed{
		"reading": {
			"easy": {
				{
					Kind:         "reading_set",
					Prompt:       "Read the passage and answer the questions.",
					Passage:      "The city library opened in 1952 with a single reading room. Today it holds over two million books and lends e-books to readers across the region. Entry is free, though borrowing requires a membership card that costs nothing to obtain.",
					TimeLimitSec: 600,
					Points:       3,
					SubQuestions: []formats.SubSeed{
						{Prompt: "When did the library open?", Options: []string{"1925", "1952", "1962", "2002"}, AnswerKey: []string{"1952"}},
						{Prompt: "Borrowing books requires a membership card. True or false?", Options: []string{"true", "false"}, AnswerKey: []string{"true"}},
						{Prompt: "How many books does the library hold?", Options: []string{"one million", "two million", "three million", "half a million"}, AnswerKey: []string{"two million"}},
					},
				},
			},
			"medium": {
				{
					Kind:         "reading_set",
					Prompt:       "Read the passage and answer the questions.",
					Passage:      "Urban beekeeping has grown rapidly over the past decade. Advocates argue that city bees often outperform their rural cousins because parks and gardens offer a more varied diet than single-crop farmland. Critics counter that a high density of hives can strain the very flowers that attract beekeepers in the first place, leaving wild pollinators short of forage.",
					TimeLimitSec: 900,
					Points:       3,
					SubQuestions: []formats.SubSeed{
						{Prompt: "Why might city bees do better than rural bees?", Options: []string{"warmer temperatures", "a more varied diet", "fewer predators", "larger hives"}, AnswerKey: []string{"a more varied diet"}},
						{Prompt: "Critics say too many hives can harm wild pollinators. True or false?", Options: []string{"true", "false"}, AnswerKey: []string{"true"}},
						{Prompt: "The passage is mainly about the rise of urban ____.", AnswerKey: []string{"beekeeping"}},
					},
				},
			},
			"hard": {
				{
					Kind:         "reading_set",
					Prompt:       "Read the passage and answer the questions.",
					Passage:      "The replication crisis in psychology has prompted a methodological reckoning. Pre-registration of hypotheses, once a nicety, is increasingly a condition of publication. Yet some researchers caution that an exclusive focus on confirmatory rigor risks crowding out the exploratory work from which genuinely novel hypotheses emerge, substituting one monoculture for another.",
					TimeLimitSec: 1200,
					Points:       3,
					SubQuestions: []formats.SubSeed{
						{Prompt: "Pre-registration is described as increasingly a condition of ____.", AnswerKey: []string{"publication"}},
						{Prompt: "Some researchers worry rigor could crowd out exploratory work. True or false?", Options: []string{"true", "false"}, AnswerKey: []string{"true"}},
						{Prompt: "The author's tone toward an exclusive focus on confirmatory rigor is best described as:", Options: []string{"enthusiastic", "cautionary", "dismissive", "indifferent"}, AnswerKey: []string{"cautionary"}},
					},
				},
			},
		},
		"listening": {
			"easy": {
				{
					Kind:         "listening_set",
					Prompt:       "Listen to the recording and answer the questions.",
					AudioScript:  "Welcome to the campus tour. We will start at the main gate at ten o'clock, visit the science building, and finish at the cafeteria around noon. Please keep your visitor badge visible at all times.",
					TimeLimitSec: 420,
					Points:       3,
					SubQuestions: []formats.SubSeed{
						{Prompt: "What time does the tour start?", Options: []string{"nine o'clock", "ten o'clock", "eleven o'clock", "noon"}, AnswerKey: []string{"ten o'clock"}},
						{Prompt: "Where does the tour finish?", AnswerKey: []string{"cafeteria", "the cafeteria"}},
						{Prompt: "Visitors must keep their badge visible. True or false?", Options: []string{"true", "false"}, AnswerKey: []string{"true"}},
					},
				},
			},
			"medium": {
				{
					Kind:         "listening_set",
					Prompt:       "Listen to the recording and answer the questions.",
					AudioScript:  "Thanks for calling the housing office. Your tenancy begins on the third of September, not the first as printed in the brochure. A deposit of three hundred pounds is due two weeks before arrival, and it is refundable provided the room is returned in good condition.",
					TimeLimitSec: 600,
					Points:       3,
					SubQuestions: []formats.SubSeed{
						{Prompt: "When does the tenancy begin?", Options: []string{"the first of September", "the third of September", "the thirteenth of September", "the thirtieth of September"}, AnswerKey: []string{"the third of September"}},
						{Prompt: "How much is the deposit?", AnswerKey: []string{"three hundred pounds", "300 pounds"}},
						{Prompt: "The deposit is never refundable. True or false?", Options: []string{"true", "false"}, AnswerKey: []string{"false"}},
					},
				},
			},
			"hard": {
				{
					Kind:         "listening_set",
					Prompt:       "Listen to the lecture excerpt and answer the questions.",
					AudioScript:  "What the fossil record shows, perhaps counterintuitively, is that mass extinctions are engines of innovation. The vacancies they create are filled not by the fittest incumbents but by lineages that happened to carry traits useful in the altered world. Survival, in these episodes, is less a reward for excellence than a lottery weighted by chance preadaptation.",
					TimeLimitSec: 720,
					Points:       3,
					SubQuestions: []formats.SubSeed{
						{Prompt: "The speaker calls mass extinctions engines of ____.", AnswerKey: []string{"innovation"}},
						{Prompt: "According to the speaker, vacancies are filled by the fittest incumbents. True or false?", Options: []string{"true", "false"}, AnswerKey: []string{"false"}},
						{Prompt: "Survival in extinction episodes is compared to:", Options: []string{"a race", "a weighted lottery", "an exam", "a negotiation"}, AnswerKey: []string{"a weighted lottery"}},
					},
				},
			},
		},
		"writing": {
			"easy": {
				{Kind: "essay", Prompt: "Some people prefer to live in a big city, while others prefer the countryside. Discuss both views and give your own opinion. Write at least 250 words.", TimeLimitSec: 2400, Points: 9, MinWords: 150},
			},
			"medium": {
				{Kind: "essay", Prompt: "Many believe that university education should be free for all students, while others argue students should pay for their own studies. Discuss both views and give your own opinion. Write at least 250 words.", TimeLimitSec: 2400, Points: 9, MinWords: 150},
			},
			"hard": {
				{Kind: "essay", Prompt: "Some argue that technological progress inevitably widens social inequality, while others believe it is the most reliable force for narrowing it. To what extent do you agree or disagree? Write at least 250 words.", TimeLimitSec: 2400, Points: 9, MinWords: 150},
			},
		},
		"speaking": {
			"easy": {
				{Kind: "speaking", Prompt: "Describe your hometown. What do you like about it, and what would you change?", TimeLimitSec: 120, Points: 9, MinWords: 30},
			},
			"medium": {
				{Kind: "speaking", Prompt: "Describe a skill you would like to learn. Explain why it appeals to you and how you would go about learning it.", TimeLimitSec: 120, Points: 9, MinWords: 30},
			},
			"hard": {
				{Kind: "speaking", Prompt: "Some people think fame is more a burden than a privilege. How far do you agree? Support your view with examples.", TimeLimitSec: 120, Points: 9, MinWords: 30},
			},
		},
	}
}
