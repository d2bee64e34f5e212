package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quizforge/backend/internal/generator"
	"github.com/quizforge/backend/internal/models"
)

const DefaultQuestionCount = 10

type Service struct {
	store        Store
	generator    *generator.Generator
	logger       *zap.Logger
	maxQuestions int
	now          func() time.Time
}

func NewService(store Store, gen *generator.Generator, logger *zap.Logger, maxQuestions int) *Service {
	if maxQuestions < 1 {
		maxQuestions = 50
	}
	return &Service{
		store:        store,
		generator:    gen,
		logger:       logger,
		maxQuestions: maxQuestions,
		now:          time.Now,
	}
}

// ── Tests ───────────────────────────────────────────────

func (s *Service) CreateTest(ctx context.Context, req models.CreateTestRequest) (*models.Test, error) {
	req.Subject = strings.TrimSpace(req.Subject)
	req.Difficulty = strings.TrimSpace(req.Difficulty)
	if req.Subject == "" || req.Difficulty == "" {
		return nil, fmt.Errorf("%w: subject and difficulty are required", ErrInvalidRequest)
	}
	if req.QuestionCount < 0 {
		return nil, fmt.Errorf("%w: question_count must not be negative", ErrInvalidRequest)
	}
	count := req.QuestionCount
	if count == 0 {
		count = DefaultQuestionCount
	}
	count = min(count, s.maxQuestions)

	questions := s.generator.GenerateSet(req.Subject, req.Difficulty, count)
	if err := generator.ValidateSet(questions); err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	// Every question carries the resolved subject and tier.
	subject, difficulty := questions[0].Subject, questions[0].Difficulty
	if questions[0].Fallback {
		s.logger.Warn("no templates for request, serving placeholder questions",
			zap.String("subject", req.Subject),
			zap.String("difficulty", req.Difficulty),
		)
	}

	test := &models.Test{
		ID:         uuid.NewString(),
		User:       strings.TrimSpace(req.User),
		Subject:    subject,
		Difficulty: difficulty,
		Questions:  questions,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.store.CreateTest(ctx, test); err != nil {
		return nil, fmt.Errorf("save test: %w", err)
	}

	s.logger.Info("test created",
		zap.String("test_id", test.ID),
		zap.String("subject", test.Subject),
		zap.String("difficulty", test.Difficulty),
		zap.Int("questions", len(questions)),
	)
	return test, nil
}

func (s *Service) GetTest(ctx context.Context, id string) (*models.Test, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrTestNotFound
	}
	return s.store.GetTest(ctx, id)
}

// SubmitTest scores answers against a stored test. Each answer is an option
// index or -1 for a skipped question.
func (s *Service) SubmitTest(ctx context.Context, id string, req models.SubmitTestRequest) (*models.SubmitTestResponse, error) {
	test, err := s.GetTest(ctx, id)
	if err != nil {
		return nil, err
	}
	if test.SubmittedAt != nil {
		return nil, ErrAlreadySubmitted
	}
	if len(req.Answers) != len(test.Questions) {
		return nil, fmt.Errorf("%w: expected %d answers, got %d", ErrInvalidAnswers, len(test.Questions), len(req.Answers))
	}

	resp := &models.SubmitTestResponse{
		TestID:  test.ID,
		Total:   len(test.Questions),
		Results: make([]models.ReviewItem, len(test.Questions)),
	}
	for i, q := range test.Questions {
		chosen := req.Answers[i]
		if chosen < -1 || chosen >= len(q.Options) {
			return nil, fmt.Errorf("%w: answer %d out of range for question %d", ErrInvalidAnswers, chosen, q.QuestionNumber)
		}
		correct := chosen == q.CorrectIndex
		if chosen >= 0 {
			resp.Answered++
		}
		if correct {
			resp.Correct++
		}
		resp.Results[i] = models.ReviewItem{
			QuestionNumber: q.QuestionNumber,
			Question:       q.Question,
			Options:        q.Options,
			CorrectIndex:   q.CorrectIndex,
			ChosenIndex:    chosen,
			Correct:        correct,
			Explanation:    q.Explanation,
		}
	}
	resp.Percentage = models.Accuracy(resp.Correct, resp.Total)

	user := strings.TrimSpace(req.User)
	if user == "" {
		user = test.User
	}
	now := s.now().UTC()
	result := models.TestResult{
		TestID:     test.ID,
		User:       user,
		Subject:    test.Subject,
		Difficulty: test.Difficulty,
		Correct:    resp.Correct,
		Answered:   resp.Answered,
		Total:      resp.Total,
		CreatedAt:  now,
	}
	if err := s.store.SubmitTest(ctx, test.ID, now, result); err != nil {
		return nil, fmt.Errorf("save result: %w", err)
	}

	s.logger.Info("test submitted",
		zap.String("test_id", test.ID),
		zap.Int("correct", resp.Correct),
		zap.Int("answered", resp.Answered),
		zap.Int("total", resp.Total),
	)
	return resp, nil
}

// ── Catalog & Samples ───────────────────────────────────

func (s *Service) Statistics(ctx context.Context) (*models.StatisticsResponse, error) {
	stats, err := s.store.Statistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("statistics: %w", err)
	}
	return stats, nil
}

// SampleQuestion returns one fully revealed question.
func (s *Service) SampleQuestion(subject, difficulty string) models.GeneratedQuestion {
	return s.generator.GenerateQuestion(subject, difficulty, 1)
}

func (s *Service) Catalog() models.CatalogResponse {
	bank := s.generator.Bank()
	var resp models.CatalogResponse
	for _, d := range generator.Difficulties {
		resp.Difficulties = append(resp.Difficulties, string(d))
	}
	for _, subject := range bank.Subjects() {
		entry := models.SubjectCatalog{
			Subject: string(subject),
			Aliases: generator.AliasesFor(subject),
		}
		for _, d := range bank.Difficulties(subject) {
			entry.Difficulties = append(entry.Difficulties, string(d))
		}
		resp.Subjects = append(resp.Subjects, entry)
	}
	return resp
}
