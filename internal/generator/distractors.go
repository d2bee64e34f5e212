package generator

import "fmt"

const (
	// OptionCount is the number of options every generated question carries.
	OptionCount = 4

	// maxDistractorAttempts bounds the draws made within one offset window
	// before the window is doubled.
	maxDistractorAttempts = 32

	// maxWindowWidenings bounds how often the window is doubled before the
	// remaining slots are filled deterministically.
	maxWindowWidenings = 6
)

// generateMathOptions returns the correct value followed by three distinct,
// strictly positive distractors of the form correct+offset, offset drawn
// uniformly from [-window, window].
func generateMathOptions(rng Rand, correct float64, window int) []float64 {
	if window < 1 {
		window = windowDefault
	}
	options := make([]float64, 1, OptionCount)
	options[0] = correct
	seen := map[float64]bool{correct: true}

	accept := func(candidate float64) {
		if candidate > 0 && !seen[candidate] {
			seen[candidate] = true
			options = append(options, candidate)
		}
	}

	for widenings := 0; len(options) < OptionCount && widenings <= maxWindowWidenings; widenings++ {
		for attempt := 0; attempt < maxDistractorAttempts && len(options) < OptionCount; attempt++ {
			offset := rng.IntN(2*window+1) - window
			accept(correct + float64(offset))
		}
		window *= 2
	}

	// correct+k is positive for every k >= 1 once correct >= 0.
	for k := 1; len(options) < OptionCount; k++ {
		accept(correct + float64(k))
	}
	return options
}

// buildOptions returns the correct answer text and three distractors, in
// that order, unshuffled.
func buildOptions(rng Rand, ans answer, window int) []string {
	if ans.numeric {
		values := generateMathOptions(rng, ans.value, window)
		out := make([]string, len(values))
		for i, v := range values {
			out[i] = formatNumber(v)
		}
		return out
	}
	return symbolicOptions(ans.text, ans.distractors)
}

// symbolicOptions keeps the first distinct authored distractors and pads
// with marked variants of the answer when fewer than three survive.
func symbolicOptions(correct string, distractors []string) []string {
	out := make([]string, 1, OptionCount)
	out[0] = correct
	seen := map[string]bool{correct: true}
	for _, d := range distractors {
		if len(out) == OptionCount {
			break
		}
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	for k := 1; len(out) < OptionCount; k++ {
		pad := fmt.Sprintf("%s + %d", correct, k)
		if seen[pad] {
			continue
		}
		seen[pad] = true
		out = append(out, pad)
	}
	return out
}
