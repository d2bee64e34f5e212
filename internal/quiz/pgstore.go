package quiz

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/quizforge/backend/internal/models"
)

// PGStore keeps tests in PostgreSQL. The schema lives in internal/database.
type PGStore struct {
	db *sql.DB
}

func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) CreateTest(ctx context.Context, test *models.Test) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO tests (id, user_name, subject, difficulty, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		test.ID, nullString(test.User), test.Subject, test.Difficulty, test.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert test: %w", err)
	}

	for _, q := range test.Questions {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO test_questions
			 (test_id, question_number, question, options, correct_index, explanation,
			  operation_type, subject, difficulty, fallback)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			test.ID, q.QuestionNumber, q.Question, pq.Array(q.Options), q.CorrectIndex,
			q.Explanation, q.OperationType, q.Subject, q.Difficulty, q.Fallback,
		)
		if err != nil {
			return fmt.Errorf("insert question %d: %w", q.QuestionNumber, err)
		}
	}

	return tx.Commit()
}

func (s *PGStore) GetTest(ctx context.Context, id string) (*models.Test, error) {
	var test models.Test
	var user sql.NullString
	var submittedAt sql.NullTime
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_name, subject, difficulty, created_at, submitted_at
		 FROM tests WHERE id = $1`, id,
	).Scan(&test.ID, &user, &test.Subject, &test.Difficulty, &test.CreatedAt, &submittedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get test: %w", err)
	}
	test.User = user.String
	if submittedAt.Valid {
		test.SubmittedAt = &submittedAt.Time
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT question_number, question, options, correct_index, explanation,
		        operation_type, subject, difficulty, fallback
		 FROM test_questions WHERE test_id = $1 ORDER BY question_number`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("get test questions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var q models.GeneratedQuestion
		if err := rows.Scan(&q.QuestionNumber, &q.Question, pq.Array(&q.Options), &q.CorrectIndex,
			&q.Explanation, &q.OperationType, &q.Subject, &q.Difficulty, &q.Fallback); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		test.Questions = append(test.Questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return &test, nil
}

func (s *PGStore) SubmitTest(ctx context.Context, id string, at time.Time, result models.TestResult) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE tests SET submitted_at = $2 WHERE id = $1 AND submitted_at IS NULL`, id, at,
	)
	if err != nil {
		return fmt.Errorf("mark submitted: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark submitted: %w", err)
	}
	if n == 0 {
		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM tests WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("check test: %w", err)
		}
		if !exists {
			return ErrTestNotFound
		}
		return ErrAlreadySubmitted
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO test_results
		 (test_id, user_name, subject, difficulty, correct, answered, total, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		result.TestID, nullString(result.User), result.Subject, result.Difficulty,
		result.Correct, result.Answered, result.Total, result.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}

	return tx.Commit()
}

func (s *PGStore) Statistics(ctx context.Context) (*models.StatisticsResponse, error) {
	stats := &models.StatisticsResponse{
		SubjectStats:    make(map[string]models.SubjectStat),
		DifficultyStats: make(map[string]models.AccuracyStat),
	}

	err := s.db.QueryRowContext(ctx,
		`SELECT (SELECT COUNT(*) FROM tests),
		        COUNT(*), COALESCE(SUM(answered), 0), COALESCE(SUM(correct), 0)
		 FROM test_results`,
	).Scan(&stats.TestsCreated, &stats.TestsSubmitted, &stats.QuestionsAnswered, &stats.QuestionsCorrect)
	if err != nil {
		return nil, fmt.Errorf("totals: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT subject, COUNT(*), SUM(answered), SUM(correct)
		 FROM test_results GROUP BY subject`,
	)
	if err != nil {
		return nil, fmt.Errorf("subject stats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var subject string
		var ss models.SubjectStat
		if err := rows.Scan(&subject, &ss.Tests, &ss.Answered, &ss.Correct); err != nil {
			return nil, fmt.Errorf("scan subject stats: %w", err)
		}
		stats.SubjectStats[subject] = ss
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subject stats: %w", err)
	}

	drows, err := s.db.QueryContext(ctx,
		`SELECT difficulty, SUM(answered), SUM(correct)
		 FROM test_results GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("difficulty stats: %w", err)
	}
	defer drows.Close()
	for drows.Next() {
		var difficulty string
		var ds models.AccuracyStat
		if err := drows.Scan(&difficulty, &ds.Answered, &ds.Correct); err != nil {
			return nil, fmt.Errorf("scan difficulty stats: %w", err)
		}
		stats.DifficultyStats[difficulty] = ds
	}
	if err := drows.Err(); err != nil {
		return nil, fmt.Errorf("iterate difficulty stats: %w", err)
	}

	finishStats(stats)
	return stats, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
