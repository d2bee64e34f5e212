package quiz

import (
	"context"
	"time"

	"github.com/quizforge/backend/internal/models"
)

// Store persists tests and their results.
type Store interface {
	CreateTest(ctx context.Context, test *models.Test) error
	// GetTest returns ErrTestNotFound for unknown or expired IDs.
	GetTest(ctx context.Context, id string) (*models.Test, error)
	// SubmitTest marks the test submitted and records its result in one step.
	// It returns ErrAlreadySubmitted if the test was submitted before.
	SubmitTest(ctx context.Context, id string, at time.Time, result models.TestResult) error
	Statistics(ctx context.Context) (*models.StatisticsResponse, error)
}

// aggregate folds results into the statistics response.
func aggregate(created int, results []models.TestResult) *models.StatisticsResponse {
	stats := &models.StatisticsResponse{
		TestsCreated:    created,
		SubjectStats:    make(map[string]models.SubjectStat),
		DifficultyStats: make(map[string]models.AccuracyStat),
	}
	for _, r := range results {
		stats.TestsSubmitted++
		stats.QuestionsAnswered += r.Answered
		stats.QuestionsCorrect += r.Correct

		ss := stats.SubjectStats[r.Subject]
		ss.Tests++
		ss.Answered += r.Answered
		ss.Correct += r.Correct
		stats.SubjectStats[r.Subject] = ss

		ds := stats.DifficultyStats[r.Difficulty]
		ds.Answered += r.Answered
		ds.Correct += r.Correct
		stats.DifficultyStats[r.Difficulty] = ds
	}
	finishStats(stats)
	return stats
}

func finishStats(stats *models.StatisticsResponse) {
	stats.OverallAccuracy = models.Accuracy(stats.QuestionsCorrect, stats.QuestionsAnswered)
	for k, ss := range stats.SubjectStats {
		ss.Accuracy = models.Accuracy(ss.Correct, ss.Answered)
		stats.SubjectStats[k] = ss
	}
	for k, ds := range stats.DifficultyStats {
		ds.Accuracy = models.Accuracy(ds.Correct, ds.Answered)
		stats.DifficultyStats[k] = ds
	}
}
