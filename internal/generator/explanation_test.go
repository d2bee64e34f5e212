package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExplain(t *testing.T) {
	assert.Equal(t, "3 ve 4 sayılarını topladığımızda 7 elde ederiz.", Explain(OpAddition, 3, 4, 7, "7"))
	assert.Equal(t, "Trigonometrik özdeşlik: sin²θ + cos²θ = 1", Explain(OpTrigonometry, 0, 0, 0, "1"))
	assert.Contains(t, Explain(OpQuadratic, 1, 1, 2, noRealRoots), "gerçek kök yoktur")
	assert.NotContains(t, Explain(OpQuadratic, 1, 6, 7, ""), "gerçek kök yoktur")
}

func TestExplain_GenericFallback(t *testing.T) {
	assert.Equal(t, genericExplanation, Explain(OpStatic, 1, 2, 3, "x"))
	assert.Equal(t, genericExplanation, Explain(Operation(99), 1, 2, 3, "x"))
}

func TestExplain_EveryMathOperation(t *testing.T) {
	for op := OpAddition; op < OpStatic; op++ {
		assert.NotEqual(t, genericExplanation, Explain(op, 1, 2, 3, "3"), op.String())
	}
}
