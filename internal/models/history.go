package models

// ── Statistics Types ─────────────────────────────────────

type StatisticsResponse struct {
	TestsCreated      int                     `json:"tests_created"`
	TestsSubmitted    int                     `json:"tests_submitted"`
	QuestionsAnswered int                     `json:"questions_answered"`
	QuestionsCorrect  int                     `json:"questions_correct"`
	OverallAccuracy   float64                 `json:"overall_accuracy"`
	SubjectStats      map[string]SubjectStat  `json:"subject_stats"`
	DifficultyStats   map[string]AccuracyStat `json:"difficulty_stats"`
}

type SubjectStat struct {
	Tests    int     `json:"tests"`
	Answered int     `json:"answered"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

type AccuracyStat struct {
	Answered int     `json:"answered"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

// Accuracy returns correct/answered as a percentage rounded to one decimal,
// or 0 when nothing was answered.
func Accuracy(correct, answered int) float64 {
	if answered == 0 {
		return 0
	}
	pct := float64(correct) * 1000 / float64(answered)
	return float64(int(pct+0.5)) / 10
}
