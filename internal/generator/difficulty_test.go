package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quizforge/backend/internal/models"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		raw  string
		want models.Difficulty
		ok   bool
	}{
		{"easy", models.DifficultyEasy, true},
		{"Kolay", models.DifficultyEasy, true},
		{" medium ", models.DifficultyMedium, true},
		{"orta", models.DifficultyMedium, true},
		{"HARD", models.DifficultyHard, true},
		{"zor", models.DifficultyHard, true},
		{"expert", models.DifficultyExpert, true},
		{"uzman", models.DifficultyExpert, true},
		{"legendary", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseDifficulty(tt.raw)
		assert.Equal(t, tt.ok, ok, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestRangeFor(t *testing.T) {
	assert.Equal(t, OperandRange{Min: 1, Max: 10}, RangeFor(models.DifficultyEasy))
	assert.Equal(t, OperandRange{Min: 1, Max: 50}, RangeFor(models.DifficultyMedium))
	assert.Equal(t, OperandRange{Min: 1, Max: 100}, RangeFor(models.DifficultyHard))
	assert.Equal(t, OperandRange{Min: 1, Max: 1000}, RangeFor(models.DifficultyExpert))
	assert.Equal(t, RangeFor(models.DifficultyEasy), RangeFor("unknown"))
}

func TestLevel(t *testing.T) {
	assert.Equal(t, 1, Level(models.DifficultyEasy))
	assert.Equal(t, 4, Level(models.DifficultyExpert))
	assert.Equal(t, 0, Level("unknown"))
}

func TestOperandRange_DrawStaysInBounds(t *testing.T) {
	r := RangeFor(models.DifficultyMedium)
	rng := newLockedRand(7)
	for range 1000 {
		v := r.draw(rng)
		assert.GreaterOrEqual(t, v, r.Min)
		assert.LessOrEqual(t, v, r.Max)
	}
}
