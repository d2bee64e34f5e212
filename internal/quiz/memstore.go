package quiz

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/quizforge/backend/internal/models"
)

// MemoryStore keeps tests in process memory. Tests older than ttl are
// invisible and removed by CleanupExpired; results are kept for statistics.
type MemoryStore struct {
	mu      sync.RWMutex
	tests   map[string]*models.Test
	results []models.TestResult
	created int
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore returns an empty store. A zero ttl keeps tests forever.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		tests: make(map[string]*models.Test),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *MemoryStore) expired(t *models.Test, now time.Time) bool {
	return s.ttl > 0 && now.Sub(t.CreatedAt) > s.ttl
}

func (s *MemoryStore) CreateTest(_ context.Context, test *models.Test) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tests[test.ID] = cloneTest(test)
	s.created++
	return nil
}

func (s *MemoryStore) GetTest(_ context.Context, id string) (*models.Test, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tests[id]
	if !ok || s.expired(t, s.now()) {
		return nil, ErrTestNotFound
	}
	return cloneTest(t), nil
}

func (s *MemoryStore) SubmitTest(_ context.Context, id string, at time.Time, result models.TestResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tests[id]
	if !ok || s.expired(t, s.now()) {
		return ErrTestNotFound
	}
	if t.SubmittedAt != nil {
		return ErrAlreadySubmitted
	}
	t.SubmittedAt = &at
	s.results = append(s.results, result)
	return nil
}

func (s *MemoryStore) Statistics(_ context.Context) (*models.StatisticsResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return aggregate(s.created, s.results), nil
}

// CleanupExpired drops expired tests and returns how many were removed.
func (s *MemoryStore) CleanupExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	removed := 0
	for id, t := range s.tests {
		if s.expired(t, now) {
			delete(s.tests, id)
			removed++
		}
	}
	return removed
}

func cloneTest(t *models.Test) *models.Test {
	c := *t
	c.Questions = make([]models.GeneratedQuestion, len(t.Questions))
	for i, q := range t.Questions {
		q.Options = slices.Clone(q.Options)
		c.Questions[i] = q
	}
	if t.SubmittedAt != nil {
		at := *t.SubmittedAt
		c.SubmittedAt = &at
	}
	return &c
}
