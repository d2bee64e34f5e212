package generator

import (
	"fmt"
	"slices"

	"github.com/quizforge/backend/internal/models"
)

// instantiateStatic shuffles a copy of the authored options and locates the
// answer again. The bank guarantees the answer is present, so a miss is a
// programming error.
func instantiateStatic(rng Rand, t Template, subject Subject, difficulty models.Difficulty) models.GeneratedQuestion {
	options := slices.Clone(t.Options)
	shuffleStrings(rng, options)

	idx := slices.Index(options, t.Answer)
	if idx < 0 {
		panic(fmt.Sprintf("generator: answer %q missing from options of %q", t.Answer, t.Pattern))
	}

	explanation := t.Explanation
	if explanation == "" {
		explanation = fmt.Sprintf("Doğru cevap: %s", t.Answer)
	}

	return models.GeneratedQuestion{
		Question:      t.Pattern,
		Options:       options,
		CorrectIndex:  idx,
		Explanation:   explanation,
		OperationType: OpStatic.String(),
		Difficulty:    string(difficulty),
		Subject:       string(subject),
	}
}
