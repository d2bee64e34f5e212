package generator

import (
	"fmt"
	"slices"

	"github.com/quizforge/backend/internal/models"
)

const fallbackAnswer = "Bilgi yetersiz"

var fallbackOptions = []string{fallbackAnswer, "Seçenek A", "Seçenek B", "Seçenek C"}

// instantiateFallback builds a placeholder question for a subject/difficulty
// pair the bank does not hold. The raw inputs are echoed back unchanged.
func instantiateFallback(rng Rand, subject, difficulty string, questionNumber int) models.GeneratedQuestion {
	options := slices.Clone(fallbackOptions)
	shuffleStrings(rng, options)

	return models.GeneratedQuestion{
		Question:      fmt.Sprintf("%s konusunda %s seviyesinde %d. soru", subject, difficulty, questionNumber),
		Options:       options,
		CorrectIndex:  slices.Index(options, fallbackAnswer),
		Explanation:   fmt.Sprintf("Bu konu ve seviye için hazır soru bulunmuyor; %q geçici bir sorudur.", fallbackAnswer),
		OperationType: OpGeneric.String(),
		Difficulty:    difficulty,
		Subject:       subject,
		Fallback:      true,
	}
}
