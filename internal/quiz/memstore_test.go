package quiz

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizforge/backend/internal/models"
)

func sampleTest(id string, created time.Time) *models.Test {
	return &models.Test{
		ID:         id,
		Subject:    "tarih",
		Difficulty: "easy",
		CreatedAt:  created,
		Questions: []models.GeneratedQuestion{{
			QuestionNumber: 1,
			Question:       "Türkiye Cumhuriyeti hangi yılda kuruldu?",
			Options:        []string{"1920", "1923", "1922", "1924"},
			CorrectIndex:   1,
			Explanation:    "1923",
		}},
	}
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	s := NewMemoryStore(0)
	ctx := context.Background()
	orig := sampleTest("a", time.Now())
	require.NoError(t, s.CreateTest(ctx, orig))

	orig.Questions[0].Options[0] = "changed"
	got, err := s.GetTest(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1920", got.Questions[0].Options[0])

	got.Questions[0].Options[0] = "changed again"
	again, _ := s.GetTest(ctx, "a")
	assert.Equal(t, "1920", again.Questions[0].Options[0])
}

func TestMemoryStore_TTL(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.CreateTest(ctx, sampleTest("old", now.Add(-2*time.Hour))))
	require.NoError(t, s.CreateTest(ctx, sampleTest("new", now.Add(-time.Minute))))

	_, err := s.GetTest(ctx, "old")
	assert.ErrorIs(t, err, ErrTestNotFound)
	assert.ErrorIs(t, s.SubmitTest(ctx, "old", now, models.TestResult{}), ErrTestNotFound)

	_, err = s.GetTest(ctx, "new")
	assert.NoError(t, err)

	assert.Equal(t, 1, s.CleanupExpired())
	assert.Len(t, s.tests, 1)

	stats, err := s.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TestsCreated)
}

func TestMemoryStore_SubmitOnceUnderContention(t *testing.T) {
	s := NewMemoryStore(0)
	ctx := context.Background()
	require.NoError(t, s.CreateTest(ctx, sampleTest("race", time.Now())))

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.SubmitTest(ctx, "race", time.Now(), models.TestResult{TestID: "race", Total: 1}) == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	stats, _ := s.Statistics(ctx)
	assert.Equal(t, 1, stats.TestsSubmitted)
}

func TestAggregate_Empty(t *testing.T) {
	stats := aggregate(0, nil)
	assert.Zero(t, stats.OverallAccuracy)
	assert.NotNil(t, stats.SubjectStats)
	assert.NotNil(t, stats.DifficultyStats)
}
