package quiz

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizforge/backend/internal/models"
)

func newMockStore(t *testing.T) (*PGStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPGStore(db), mock
}

func TestPGStore_CreateTest(t *testing.T) {
	s, mock := newMockStore(t)
	test := sampleTest("6f1c9a54-3a7e-4c43-9d0e-2f4b8a1c7d11", time.Now())

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO tests")).
		WithArgs(test.ID, nil, test.Subject, test.Difficulty, test.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO test_questions")).
		WithArgs(test.ID, 1, test.Questions[0].Question, sqlmock.AnyArg(), 1,
			"1923", "", "", "", false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.CreateTest(context.Background(), test))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGStore_GetTest(t *testing.T) {
	s, mock := newMockStore(t)
	id := "6f1c9a54-3a7e-4c43-9d0e-2f4b8a1c7d11"
	created := time.Date(2026, 2, 2, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM tests WHERE id = $1")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_name", "subject", "difficulty", "created_at", "submitted_at"}).
			AddRow(id, "ali", "tarih", "easy", created, nil))
	mock.ExpectQuery(regexp.QuoteMeta("FROM test_questions WHERE test_id = $1")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"question_number", "question", "options", "correct_index",
			"explanation", "operation_type", "subject", "difficulty", "fallback"}).
			AddRow(1, "Q?", "{1920,1923,1922,1924}", 1, "1923", "static", "tarih", "easy", false))

	got, err := s.GetTest(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "ali", got.User)
	assert.Nil(t, got.SubmittedAt)
	require.Len(t, got.Questions, 1)
	assert.Equal(t, []string{"1920", "1923", "1922", "1924"}, got.Questions[0].Options)
	assert.Equal(t, "1923", got.Questions[0].CorrectAnswer())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGStore_GetTestNotFound(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM tests WHERE id = $1")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.GetTest(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrTestNotFound)
}

func TestPGStore_SubmitTest(t *testing.T) {
	s, mock := newMockStore(t)
	at := time.Now()
	result := models.TestResult{TestID: "t1", Subject: "tarih", Difficulty: "easy", Correct: 1, Answered: 1, Total: 1, CreatedAt: at}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE tests SET submitted_at")).
		WithArgs("t1", at).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO test_results")).
		WithArgs("t1", nil, "tarih", "easy", 1, 1, 1, at).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, s.SubmitTest(context.Background(), "t1", at, result))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGStore_SubmitTestTwice(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE tests SET submitted_at")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	err := s.SubmitTest(context.Background(), "t1", time.Now(), models.TestResult{})
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGStore_Statistics(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT (SELECT COUNT(*) FROM tests)")).
		WillReturnRows(sqlmock.NewRows([]string{"created", "submitted", "answered", "correct"}).AddRow(5, 2, 8, 6))
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY subject")).
		WillReturnRows(sqlmock.NewRows([]string{"subject", "count", "answered", "correct"}).
			AddRow("matematik", 2, 8, 6))
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY difficulty")).
		WillReturnRows(sqlmock.NewRows([]string{"difficulty", "answered", "correct"}).
			AddRow("easy", 8, 6))

	stats, err := s.Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, stats.TestsCreated)
	assert.Equal(t, 75.0, stats.OverallAccuracy)
	assert.Equal(t, 75.0, stats.SubjectStats["matematik"].Accuracy)
	assert.Equal(t, 2, stats.SubjectStats["matematik"].Tests)
	assert.Equal(t, 75.0, stats.DifficultyStats["easy"].Accuracy)
	assert.NoError(t, mock.ExpectationsWereMet())
}
