// Package generator instantiates quiz questions from a template bank: math
// templates get fresh operands, computed answers and synthesized distractors,
// other subjects get their authored options reshuffled.
package generator

import (
	"github.com/quizforge/backend/internal/models"
)

// Generator produces questions from a Bank. It is safe for concurrent use.
type Generator struct {
	bank *Bank
	rng  Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes the generator draw from a deterministic source.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.rng = newLockedRand(seed)
	}
}

// WithRand installs a custom random source. It must be safe for concurrent
// use if the generator is shared.
func WithRand(rng Rand) Option {
	return func(g *Generator) {
		g.rng = rng
	}
}

// New returns a generator over bank, or over the built-in bank when bank is nil.
func New(bank *Bank, opts ...Option) *Generator {
	if bank == nil {
		bank = DefaultBank()
	}
	g := &Generator{bank: bank, rng: globalRand{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) Bank() *Bank {
	return g.bank
}

// GenerateQuestion never fails: a subject or difficulty the bank does not
// know yields a placeholder question flagged as Fallback.
func (g *Generator) GenerateQuestion(subject, difficulty string, questionNumber int) models.GeneratedQuestion {
	q := g.generate(subject, difficulty, questionNumber)
	q.QuestionNumber = questionNumber
	return q
}

func (g *Generator) generate(subject, difficulty string, questionNumber int) models.GeneratedQuestion {
	key := ResolveSubject(subject)
	tier, ok := ParseDifficulty(difficulty)
	if !ok {
		return instantiateFallback(g.rng, subject, difficulty, questionNumber)
	}
	t, ok := g.bank.pick(g.rng, key, tier)
	if !ok {
		return instantiateFallback(g.rng, subject, difficulty, questionNumber)
	}
	if t.IsStatic() {
		return instantiateStatic(g.rng, t, key, tier)
	}
	return instantiateMath(g.rng, t, key, tier)
}

// GenerateSet returns count questions numbered from 1.
func (g *Generator) GenerateSet(subject, difficulty string, count int) []models.GeneratedQuestion {
	out := make([]models.GeneratedQuestion, 0, max(count, 0))
	for i := 1; i <= count; i++ {
		out = append(out, g.GenerateQuestion(subject, difficulty, i))
	}
	return out
}
