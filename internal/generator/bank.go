package generator

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/quizforge/backend/internal/models"
)

// Template is an authored pattern a question is instantiated from. Math
// templates carry {a}..{d} placeholders; static templates carry a literal
// answer and its fixed option set.
type Template struct {
	Pattern     string
	Operation   Operation
	Level       int
	Answer      string
	Options     []string
	Explanation string
}

// IsStatic reports whether t is answered from its authored options.
func (t Template) IsStatic() bool {
	return t.Operation == OpStatic
}

// Bank maps subject → difficulty → templates. It is never mutated after
// NewBank returns, so any number of goroutines may read it.
type Bank struct {
	templates map[Subject]map[models.Difficulty][]Template
}

// NewBank validates data and returns a bank holding its own copy. Every
// problem found is reported, not just the first.
func NewBank(data map[Subject]map[models.Difficulty][]Template) (*Bank, error) {
	var errs []error
	b := &Bank{templates: make(map[Subject]map[models.Difficulty][]Template, len(data))}

	for subject, tiers := range data {
		byTier := make(map[models.Difficulty][]Template, len(tiers))
		for difficulty, templates := range tiers {
			level := Level(difficulty)
			if level == 0 {
				errs = append(errs, fmt.Errorf("%s: unknown difficulty %q", subject, difficulty))
				continue
			}
			copied := make([]Template, 0, len(templates))
			for i, t := range templates {
				if err := validateTemplate(t); err != nil {
					errs = append(errs, fmt.Errorf("%s/%s[%d]: %w", subject, difficulty, i, err))
					continue
				}
				if t.Level == 0 {
					t.Level = level
				}
				t.Options = slices.Clone(t.Options)
				copied = append(copied, t)
			}
			if len(copied) > 0 {
				byTier[difficulty] = copied
			}
		}
		if len(byTier) > 0 {
			b.templates[subject] = byTier
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid template bank: %w", err)
	}
	return b, nil
}

func validateTemplate(t Template) error {
	if t.Pattern == "" {
		return errors.New("empty pattern")
	}
	if t.Operation.IsMath() {
		return nil
	}
	if !t.IsStatic() {
		return fmt.Errorf("operation %s cannot be authored", t.Operation)
	}
	if len(t.Options) != OptionCount {
		return fmt.Errorf("static template needs %d options, got %d", OptionCount, len(t.Options))
	}
	seen := make(map[string]bool, len(t.Options))
	for _, o := range t.Options {
		if seen[o] {
			return fmt.Errorf("duplicate option %q", o)
		}
		seen[o] = true
	}
	if !seen[t.Answer] {
		return fmt.Errorf("answer %q not among options", t.Answer)
	}
	return nil
}

// Lookup returns the templates for a subject and tier. The returned slice is
// a copy.
func (b *Bank) Lookup(subject Subject, difficulty models.Difficulty) ([]Template, bool) {
	templates, ok := b.templates[subject][difficulty]
	if !ok {
		return nil, false
	}
	return slices.Clone(templates), true
}

func (b *Bank) pick(rng Rand, subject Subject, difficulty models.Difficulty) (Template, bool) {
	templates := b.templates[subject][difficulty]
	if len(templates) == 0 {
		return Template{}, false
	}
	return templates[rng.IntN(len(templates))], true
}

// Subjects lists the subjects the bank holds, sorted.
func (b *Bank) Subjects() []Subject {
	out := make([]Subject, 0, len(b.templates))
	for s := range b.templates {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Difficulties lists the tiers a subject offers, easiest first.
func (b *Bank) Difficulties(subject Subject) []models.Difficulty {
	var out []models.Difficulty
	for _, d := range Difficulties {
		if _, ok := b.templates[subject][d]; ok {
			out = append(out, d)
		}
	}
	return out
}

// Size returns the total number of templates.
func (b *Bank) Size() int {
	n := 0
	for _, tiers := range b.templates {
		for _, templates := range tiers {
			n += len(templates)
		}
	}
	return n
}

var defaultBank = mustBank(defaultTemplates())

// DefaultBank returns the built-in bank.
func DefaultBank() *Bank {
	return defaultBank
}

func mustBank(data map[Subject]map[models.Difficulty][]Template) *Bank {
	b, err := NewBank(data)
	if err != nil {
		panic(err)
	}
	return b
}
