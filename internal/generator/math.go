package generator

import (
	"slices"
	"strconv"
	"strings"

	"github.com/quizforge/backend/internal/models"
)

// drawOperands draws a, b and d from the tier's range. c is always a+b.
func drawOperands(rng Rand, difficulty models.Difficulty) operands {
	r := RangeFor(difficulty)
	o := operands{a: r.draw(rng), b: r.draw(rng)}
	o.d = r.draw(rng)
	o.c = o.a + o.b
	return o
}

func substitute(pattern string, o operands) string {
	return strings.NewReplacer(
		"{a}", strconv.Itoa(o.a),
		"{b}", strconv.Itoa(o.b),
		"{c}", strconv.Itoa(o.c),
		"{d}", strconv.Itoa(o.d),
	).Replace(pattern)
}

func instantiateMath(rng Rand, t Template, subject Subject, difficulty models.Difficulty) models.GeneratedQuestion {
	opSpec := specFor(t.Operation)

	o := drawOperands(rng, difficulty)
	if opSpec.prepare != nil {
		opSpec.prepare(&o)
		o.c = o.a + o.b
	}

	ans := opSpec.solve(o)
	options := buildOptions(rng, ans, opSpec.window)
	shuffleStrings(rng, options)

	return models.GeneratedQuestion{
		Question:      substitute(t.Pattern, o),
		Options:       options,
		CorrectIndex:  slices.Index(options, ans.text),
		Explanation:   "Bu sorunun cevabı: " + ans.text + ". " + Explain(t.Operation, o.a, o.b, o.c, ans.text),
		OperationType: t.Operation.String(),
		Difficulty:    string(difficulty),
		Subject:       string(subject),
	}
}
