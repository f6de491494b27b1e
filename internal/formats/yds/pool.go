package yds

import "github.com/lingua-prep/linguaprep-backend/internal/formats"

func pools() map[string]map[string][]formats.Seed {
	return map[string]map[string][]formats.Seed{
		"grammar": {
			"easy": {
				{Kind: "multiple_choice", Prompt: "She ____ to the gym every morning before work.", Options: []string{"go", "goes", "going", "gone"}, AnswerKey: []string{"goes"}, Points: 1, TimeLimitSec: 60},
				{Kind: "multiple_choice", Prompt: "There ____ many reasons to learn a second language.", Options: []string{"is", "are", "was", "be"}, AnswerKey: []string{"are"}, Points: 1, TimeLimitSec: 60},
			},
			"medium": {
				{Kind: "multiple_choice", Prompt: "By the time the inspectors arrived, the documents ____ destroyed.", Options: []string{"have been", "had been", "were being", "would be"}, AnswerKey: []string{"had been"}, Points: 1, TimeLimitSec: 75},
				{Kind: "fill_blank", Prompt: "If the committee ____ earlier, the crisis could have been avoided. (act)", AnswerKey: []string{"had acted"}, Points: 1, TimeLimitSec: 75},
			},
			"hard": {
				{Kind: "multiple_choice", Prompt: "____ had the negotiations begun than both delegations walked out.", Options: []string{"No sooner", "Hardly", "Scarcely", "Not until"}, AnswerKey: []string{"No sooner"}, Points: 1, TimeLimitSec: 90},
				{Kind: "ordering", Prompt: "Put the sentence fragments in the correct order.", Sequence: []string{"Not only", "did the reform fail", "but it also", "deepened the deficit"}, Points: 1, TimeLimitSec: 90},
			},
		},
		"vocabulary": {
			"easy": {
				{Kind: "multiple_choice", Prompt: "Choose the closest meaning to 'rapid'.", Options: []string{"slow", "fast", "loud", "bright"}, AnswerKey: []string{"fast"}, Points: 1, TimeLimitSec: 45},
				{Kind: "matching", Prompt: "Match each word with its synonym.", Pairs: [][2]string{{"begin", "start"}, {"large", "big"}, {"ill", "sick"}}, Points: 1, TimeLimitSec: 90},
			},
			"medium": {
				{Kind: "multiple_choice", Prompt: "The findings ____ earlier studies on sleep and memory.", Options: []string{"corroborate", "collaborate", "culminate", "capitulate"}, AnswerKey: []string{"corroborate"}, Points: 1, TimeLimitSec: 60},
				{Kind: "matching", Prompt: "Match each phrasal verb with its meaning.", Pairs: [][2]string{{"put off", "postpone"}, {"carry out", "perform"}, {"turn down", "reject"}}, Points: 1, TimeLimitSec: 90},
			},
			"hard": {
				{Kind: "multiple_choice", Prompt: "His ____ remarks alienated even his staunchest allies.", Options: []string{"conciliatory", "acerbic", "propitious", "quiescent"}, AnswerKey: []string{"acerbic"}, Points: 1, TimeLimitSec: 75},
				{Kind: "fill_blank", Prompt: "The treaty proved ____, collapsing within a year. (one word: short-lived)", AnswerKey: []string{"short-lived", "shortlived"}, Points: 1, TimeLimitSec: 75},
			},
		},
		"reading": {
			"easy": {
				{
					Kind:         "reading_set",
					Prompt:       "Read the passage and answer the questions.",
					Passage:      "Tourism is one of Turkey's largest industries. Millions of visitors arrive each year, drawn by the coastline in the south and the historic sites of Istanbul. The busiest season runs from June to September.",
					TimeLimitSec: 480,
					Points:       3,
					SubQuestions: []formats.SubSeed{
						{Prompt: "What draws visitors to the south?", Options: []string{"the coastline", "the mountains", "the factories", "the universities"}, AnswerKey: []string{"the coastline"}},
						{Prompt: "The busiest season runs from June to ____.", AnswerKey: []string{"september"}},
						{Prompt: "Tourism is a small industry in Turkey. True or false?", Options: []string{"true", "false"}, AnswerKey: []string{"false"}},
					},
				},
			},
			"medium": {
				{
					Kind:         "reading_set",
					Prompt:       "Read the passage and answer the questions.",
					Passage:      "Remote work, once an occasional perk, has become a structural feature of white-collar employment. Employers report savings on office space, yet many also observe that informal mentoring — the kind that happens over a shared desk — is harder to replace than a meeting room.",
					TimeLimitSec: 600,
					Points:       3,
					SubQuestions: []formats.SubSeed{
						{Prompt: "What do employers save on?", Options: []string{"salaries", "office space", "equipment", "travel"}, AnswerKey: []string{"office space"}},
						{Prompt: "Informal mentoring is described as easy to replace. True or false?", Options: []string{"true", "false"}, AnswerKey: []string{"false"}},
						{Prompt: "Remote work is called a ____ feature of white-collar employment.", AnswerKey: []string{"structural"}},
					},
				},
			},
			"hard": {
				{
					Kind:         "reading_set",
					Prompt:       "Read the passage and answer the questions.",
					Passage:      "The translation of scientific prose poses a dilemma rarely faced by literary translators: terminological fidelity can conflict with readability, and the translator must decide, term by term, whether the reader is better served by a borrowed word or by a native coinage whose meaning must be inferred. Standardization bodies help, but they lag the vocabulary of working scientists by years.",
					TimeLimitSec: 720,
					Points:       3,
					SubQuestions: []formats.SubSeed{
						{Prompt: "The dilemma is between terminological fidelity and ____.", AnswerKey: []string{"readability"}},
						{Prompt: "Standardization bodies keep pace with working scientists. True or false?", Options: []string{"true", "false"}, AnswerKey: []string{"false"}},
						{Prompt: "The choice described is between a borrowed word and:", Options: []string{"a footnote", "a native coinage", "an abbreviation", "an omission"}, AnswerKey: []string{"a native coinage"}},
					},
				},
			},
		},
		"listening": {
			"easy": {
				{
					Kind:         "listening_set",
					Prompt:       "Listen to the announcement and answer the questions.",
					AudioScript:  "Attention passengers. The express service to Ankara will depart from platform four at half past two. Passengers with reserved seats should board the front three carriages.",
					TimeLimitSec: 360,
					Points:       3,
					SubQuestions: []formats.SubSeed{
						{Prompt: "Which platform does the express leave from?", Options: []string{"two", "three", "four", "five"}, AnswerKey: []string{"four"}},
						{Prompt: "The train departs at half past ____.", AnswerKey: []string{"two"}},
						{Prompt: "Reserved-seat passengers board the rear carriages. True or false?", Options: []string{"true", "false"}, AnswerKey: []string{"false"}},
					},
				},
			},
			"medium": {
				{
					Kind:         "listening_set",
					Prompt:       "Listen to the interview excerpt and answer the questions.",
					AudioScript:  "Interviewer: Your study tracked two thousand commuters for a year. What surprised you most? Researcher: That cyclists reported the highest satisfaction, even in winter. Car commuters reported the lowest, and the gap widened with commute length.",
					TimeLimitSec: 480,
					Points:       3,
					SubQuestions: []formats.SubSeed{
						{Prompt: "How many commuters did the study track?", AnswerKey: []string{"two thousand", "2000"}},
						{Prompt: "Which group reported the highest satisfaction?", Options: []string{"cyclists", "drivers", "bus riders", "walkers"}, AnswerKey: []string{"cyclists"}},
						{Prompt: "The gap narrowed with commute length. True or false?", Options: []string{"true", "false"}, AnswerKey: []string{"false"}},
					},
				},
			},
			"hard": {
				{
					Kind:         "listening_set",
					Prompt:       "Listen to the lecture excerpt and answer the questions.",
					AudioScript:  "Monetary policy operates with what economists call long and variable lags. A rate rise today tightens mortgage markets within months, but its full effect on employment may take two years to surface, by which time conditions that motivated the rise may have reversed — hence the perennial risk of overcorrection.",
					TimeLimitSec: 600,
					Points:       3,
					SubQuestions: []formats.SubSeed{
						{Prompt: "The lags are described as long and ____.", AnswerKey: []string{"variable"}},
						{Prompt: "Full employment effects may take how long to surface?", Options: []string{"two months", "six months", "two years", "ten years"}, AnswerKey: []string{"two years"}},
						{Prompt: "The perennial risk mentioned is overcorrection. True or false?", Options: []string{"true", "false"}, AnswerKey: []string{"true"}},
					},
				},
			},
		},
	}
}
