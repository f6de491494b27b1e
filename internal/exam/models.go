package exam

// Question kinds. Reading/listening sets embed sub-questions and are scored by
// counting matches; essay and speaking are delegated to the scoring oracle.
const (
	KindMultipleChoice = "multiple_choice"
	KindTrueFalse      = "true_false"
	KindFillBlank      = "fill_blank"
	KindMatching       = "matching"
	KindOrdering       = "ordering"
	KindReadingSet     = "reading_set"
	KindListeningSet   = "listening_set"
	KindEssay          = "essay"
	KindSpeaking       = "speaking"
)

// Difficulty levels form a three-step ladder the selector walks one rung at a time.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Choice struct {
	ID    string `json:"id,omitempty"`
	Label string `json:"label"`
}

// SubQuestion is one embedded item of a reading/listening set.
type SubQuestion struct {
	ID        string   `json:"id"`
	Prompt    string   `json:"prompt"`
	Choices   []Choice `json:"choices,omitempty"`
	AnswerKey []string `json:"answer_key,omitempty"`
}

// MatchPair is one left/right pairing of a matching question. Right sides are
// presented shuffled; the stored pair order is the key.
type MatchPair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// Content carries kind-specific material as typed fields rather than a
// free-form metadata blob: passages and scripts for sets, pairs for matching,
// the correct sequence for ordering.
type Content struct {
	Passage      string        `json:"passage,omitempty"`
	AudioScript  string        `json:"audio_script,omitempty"`
	SubQuestions []SubQuestion `json:"sub_questions,omitempty"`
	Pairs        []MatchPair   `json:"pairs,omitempty"`
	Sequence     []string      `json:"sequence,omitempty"`
	MinWords     int           `json:"min_words,omitempty"`
}

type Question struct {
	ID           string   `json:"id"`
	ExamType     string   `json:"exam_type"`
	Skill        string   `json:"skill"`
	Kind         string   `json:"kind"`
	Difficulty   string   `json:"difficulty"`
	Prompt       string   `json:"prompt"`
	Content      *Content `json:"content,omitempty"`
	Choices      []Choice `json:"choices,omitempty"`
	AnswerKey    []string `json:"answer_key,omitempty"`
	TimeLimitSec int      `json:"time_limit_sec"`
	Points       float64  `json:"points"`
	Synthesized  bool     `json:"synthesized,omitempty"`
	CreatedAt    int64    `json:"created_at,omitempty"`
}

// Objective reports whether the question is graded by exact match rather than
// delegated to the scoring oracle.
func (q Question) Objective() bool {
	return q.Kind != KindEssay && q.Kind != KindSpeaking
}

// Answer is a submitted response: a single string for simple kinds, a slice
// for sets/matching/ordering, free text for essays, and an audio blob
// reference for speaking.
type Answer struct {
	Text     string   `json:"text,omitempty"`
	Parts    []string `json:"parts,omitempty"`
	AudioRef string   `json:"audio_ref,omitempty"`
}

// Evaluation is the outcome of grading one answer. Score is on the exam's
// reporting scale for set/AI kinds and the question's point value for single
// objective kinds; RawScore is the pre-conversion value (correct count, or
// the unrounded criterion mean). IsCorrect is nil for criterion-scored kinds.
type Evaluation struct {
	IsCorrect   *bool              `json:"is_correct,omitempty"`
	Score       float64            `json:"score"`
	RawScore    float64            `json:"raw_score"`
	MaxScore    float64            `json:"max_score"`
	Feedback    string             `json:"feedback"`
	Suggestions string             `json:"suggestions,omitempty"`
	Criteria    map[string]float64 `json:"criteria_scores,omitempty"`
}

// Attempt is one submission. Append-only: written exactly once, never updated.
type Attempt struct {
	ID           string             `json:"id"`
	UserID       string             `json:"user_id"`
	QuestionID   string             `json:"question_id"`
	ExamType     string             `json:"exam_type"`
	Skill        string             `json:"skill"`
	Difficulty   string             `json:"difficulty"`
	Answer       Answer             `json:"answer"`
	AudioRef     string             `json:"audio_ref,omitempty"`
	TimeSpentSec int                `json:"time_spent_sec"`
	IsCorrect    *bool              `json:"is_correct,omitempty"`
	Score        float64            `json:"score"`
	RawScore     float64            `json:"raw_score"`
	Feedback     string             `json:"feedback,omitempty"`
	Suggestions  string             `json:"suggestions,omitempty"`
	Criteria     map[string]float64 `json:"criteria_scores,omitempty"`
	SubmittedAt  int64              `json:"submitted_at"`
}

// Progress is the running tally for one (user, exam type, skill). Upserted
// atomically on every attempt; correct_answers never exceeds total_questions.
type Progress struct {
	UserID         string  `json:"user_id"`
	ExamType       string  `json:"exam_type"`
	Skill          string  `json:"skill"`
	TotalQuestions int64   `json:"total_questions"`
	CorrectAnswers int64   `json:"correct_answers"`
	TotalPoints    float64 `json:"total_points"`
	EarnedPoints   float64 `json:"earned_points"`
	AverageScore   float64 `json:"average_score"`
	BestScore      float64 `json:"best_score"`
	LastActivity   int64   `json:"last_activity"`
}
