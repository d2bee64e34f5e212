package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMathOptions_DistinctPositive(t *testing.T) {
	rng := newLockedRand(42)
	windows := []int{windowArithmetic, windowSquare, windowSqrt, windowDefault}
	for correct := 0; correct <= 60; correct++ {
		for _, w := range windows {
			opts := generateMathOptions(rng, float64(correct), w)
			require.Len(t, opts, OptionCount)
			assert.Equal(t, float64(correct), opts[0])

			seen := map[float64]bool{}
			for _, o := range opts {
				assert.False(t, seen[o], "duplicate %v for correct=%d window=%d", o, correct, w)
				seen[o] = true
			}
			for _, o := range opts[1:] {
				assert.Positive(t, o)
			}
		}
	}
}

func TestGenerateMathOptions_TerminatesWhenDrawsAreUseless(t *testing.T) {
	// Every draw lands on correct-window, which is never positive here.
	opts := generateMathOptions(zeroRand{}, 1, windowSqrt)
	assert.Equal(t, []float64{1, 2, 3, 4}, opts)
}

func TestGenerateMathOptions_FractionalAnswer(t *testing.T) {
	opts := generateMathOptions(newLockedRand(1), 3.5, windowDefault)
	require.Len(t, opts, OptionCount)
	for _, o := range opts[1:] {
		assert.NotEqual(t, 3.5, o)
		assert.Positive(t, o)
	}
}

func TestSymbolicOptions_PadsAndDedups(t *testing.T) {
	got := symbolicOptions("1", []string{"1", "0", "", "0"})
	assert.Equal(t, []string{"1", "0", "1 + 1", "1 + 2"}, got)
}

func TestSymbolicOptions_Truncates(t *testing.T) {
	got := symbolicOptions("a", []string{"b", "c", "d", "e"})
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
}

func TestBuildOptions_Numeric(t *testing.T) {
	got := buildOptions(zeroRand{}, numericAnswer(1), windowSqrt)
	assert.Equal(t, []string{"1", "2", "3", "4"}, got)
}

func TestBuildOptions_TrigonometryIsNumeric(t *testing.T) {
	opSpec := specFor(OpTrigonometry)
	ans := opSpec.solve(operands{})
	require.True(t, ans.numeric)

	got := buildOptions(zeroRand{}, ans, opSpec.window)
	assert.Equal(t, []string{"1", "2", "3", "4"}, got)
}
