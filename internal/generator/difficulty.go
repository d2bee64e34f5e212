package generator

import (
	"strings"

	"github.com/quizforge/backend/internal/models"
)

// Difficulties lists the tiers in ascending order.
var Difficulties = []models.Difficulty{
	models.DifficultyEasy,
	models.DifficultyMedium,
	models.DifficultyHard,
	models.DifficultyExpert,
}

// difficultyAliases accepts the canonical tier names and the legacy
// Turkish keys the first version of the API used.
var difficultyAliases = map[string]models.Difficulty{
	"easy":   models.DifficultyEasy,
	"kolay":  models.DifficultyEasy,
	"medium": models.DifficultyMedium,
	"orta":   models.DifficultyMedium,
	"hard":   models.DifficultyHard,
	"zor":    models.DifficultyHard,
	"expert": models.DifficultyExpert,
	"uzman":  models.DifficultyExpert,
}

// OperandRange is the inclusive range math operands are drawn from.
type OperandRange struct {
	Min int
	Max int
}

var operandRanges = map[models.Difficulty]OperandRange{
	models.DifficultyEasy:   {Min: 1, Max: 10},
	models.DifficultyMedium: {Min: 1, Max: 50},
	models.DifficultyHard:   {Min: 1, Max: 100},
	models.DifficultyExpert: {Min: 1, Max: 1000},
}

// ParseDifficulty maps a raw tier name to its canonical value.
func ParseDifficulty(raw string) (models.Difficulty, bool) {
	d, ok := difficultyAliases[strings.ToLower(strings.TrimSpace(raw))]
	return d, ok
}

// RangeFor returns the operand range of a tier. Unknown tiers get the easy range.
func RangeFor(d models.Difficulty) OperandRange {
	if r, ok := operandRanges[d]; ok {
		return r
	}
	return operandRanges[models.DifficultyEasy]
}

// Level returns the 1-based display level of a tier, 0 if unknown.
func Level(d models.Difficulty) int {
	for i, known := range Difficulties {
		if known == d {
			return i + 1
		}
	}
	return 0
}

func (r OperandRange) draw(rng Rand) int {
	return r.Min + rng.IntN(r.Max-r.Min+1)
}
