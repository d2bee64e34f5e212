package models

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

// ── Core Structs ───────────────────────────────────────

// GeneratedQuestion is a fully instantiated multiple choice question.
// Options always holds exactly 4 unique values and CorrectIndex points at
// the correct one.
type GeneratedQuestion struct {
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	CorrectIndex   int      `json:"correct_index"`
	Explanation    string   `json:"explanation"`
	OperationType  string   `json:"operation_type"`
	Difficulty     string   `json:"difficulty"`
	Subject        string   `json:"subject"`
	QuestionNumber int      `json:"question_number"`
	Fallback       bool     `json:"fallback,omitempty"`
}

// CorrectAnswer returns the option text at CorrectIndex.
func (q GeneratedQuestion) CorrectAnswer() string {
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectIndex]
}

// ToPublic strips the answer and explanation for serving.
func (q GeneratedQuestion) ToPublic() PublicQuestion {
	return PublicQuestion{
		QuestionNumber: q.QuestionNumber,
		Question:       q.Question,
		Options:        append([]string(nil), q.Options...),
		OperationType:  q.OperationType,
	}
}

type Test struct {
	ID          string              `json:"id"`
	User        string              `json:"user,omitempty"`
	Subject     string              `json:"subject"`
	Difficulty  string              `json:"difficulty"`
	Questions   []GeneratedQuestion `json:"questions"`
	CreatedAt   time.Time           `json:"created_at"`
	SubmittedAt *time.Time          `json:"submitted_at,omitempty"`
}

func (t *Test) ToPublic() PublicTest {
	qs := make([]PublicQuestion, len(t.Questions))
	for i, q := range t.Questions {
		qs[i] = q.ToPublic()
	}
	return PublicTest{
		ID:         t.ID,
		Subject:    t.Subject,
		Difficulty: t.Difficulty,
		Questions:  qs,
		Total:      len(qs),
		CreatedAt:  t.CreatedAt,
		Submitted:  t.SubmittedAt != nil,
	}
}

type TestResult struct {
	TestID     string    `json:"test_id"`
	User       string    `json:"user,omitempty"`
	Subject    string    `json:"subject"`
	Difficulty string    `json:"difficulty"`
	Correct    int       `json:"correct"`
	Answered   int       `json:"answered"`
	Total      int       `json:"total"`
	CreatedAt  time.Time `json:"created_at"`
}

// ── Request Types ─────────────────────────────────────

type CreateTestRequest struct {
	Subject       string `json:"subject"`
	Difficulty    string `json:"difficulty"`
	QuestionCount int    `json:"question_count"`
	User          string `json:"user,omitempty"`
}

// SubmitTestRequest carries one chosen option index per question, -1 for skipped.
type SubmitTestRequest struct {
	User    string `json:"user,omitempty"`
	Answers []int  `json:"answers"`
}

// ── Response Types (strip answers for serving) ────────

type PublicQuestion struct {
	QuestionNumber int      `json:"question_number"`
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	OperationType  string   `json:"operation_type"`
}

type PublicTest struct {
	ID         string           `json:"id"`
	Subject    string           `json:"subject"`
	Difficulty string           `json:"difficulty"`
	Questions  []PublicQuestion `json:"questions"`
	Total      int              `json:"total"`
	CreatedAt  time.Time        `json:"created_at"`
	Submitted  bool             `json:"submitted"`
}

type ReviewItem struct {
	QuestionNumber int      `json:"question_number"`
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	CorrectIndex   int      `json:"correct_index"`
	ChosenIndex    int      `json:"chosen_index"`
	Correct        bool     `json:"correct"`
	Explanation    string   `json:"explanation"`
}

type SubmitTestResponse struct {
	TestID     string       `json:"test_id"`
	Correct    int          `json:"correct"`
	Answered   int          `json:"answered"`
	Total      int          `json:"total"`
	Percentage float64      `json:"percentage"`
	Results    []ReviewItem `json:"results"`
}

type SubjectCatalog struct {
	Subject      string   `json:"subject"`
	Difficulties []string `json:"difficulties"`
	Aliases      []string `json:"aliases"`
}

type CatalogResponse struct {
	Subjects     []SubjectCatalog `json:"subjects"`
	Difficulties []string         `json:"difficulties"`
}
