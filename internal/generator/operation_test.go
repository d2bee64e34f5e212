package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperation_NamesRoundTrip(t *testing.T) {
	for op := OpAddition; op < opCount; op++ {
		got, ok := ParseOperation(op.String())
		require.True(t, ok, op.String())
		assert.Equal(t, op, got)
	}
	_, ok := ParseOperation("modulo")
	assert.False(t, ok)
	assert.Equal(t, "invalid", Operation(99).String())
}

func TestOperation_IsMath(t *testing.T) {
	assert.True(t, OpAddition.IsMath())
	assert.True(t, OpPolynomialDerivative.IsMath())
	assert.False(t, OpStatic.IsMath())
	assert.False(t, OpGeneric.IsMath())
	assert.False(t, opInvalid.IsMath())
}

func TestEveryMathOperationHasSolver(t *testing.T) {
	for op := OpAddition; op < OpStatic; op++ {
		assert.NotNil(t, operationSpecs[op].solve, op.String())
	}
}

func TestSpecFor_UnknownFallsBackToAddition(t *testing.T) {
	ans := specFor(Operation(99)).solve(operands{a: 2, b: 5})
	assert.Equal(t, "7", ans.text)
	ans = specFor(OpStatic).solve(operands{a: 2, b: 5})
	assert.Equal(t, "7", ans.text)
}

func TestDivision_NonNegativeInteger(t *testing.T) {
	solve := operationSpecs[OpDivision].solve
	for a := 1; a <= 100; a++ {
		for b := 0; b <= 100; b++ {
			v := solve(operands{a: a, b: b}).value
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Equal(t, float64(int(v)), v)
		}
	}
}

func TestSqrt_AlwaysPerfectSquare(t *testing.T) {
	opSpec := operationSpecs[OpSqrt]
	for a := 1; a <= 1000; a++ {
		o := operands{a: a}
		opSpec.prepare(&o)
		root := int(opSpec.solve(o).value)
		assert.Equal(t, o.a, root*root)
		assert.LessOrEqual(t, o.a, a)
	}
}

func TestSubtraction_LargerOperandFirst(t *testing.T) {
	opSpec := operationSpecs[OpSubtraction]
	o := operands{a: 3, b: 9}
	opSpec.prepare(&o)
	assert.Equal(t, operands{a: 9, b: 3}, o)
	assert.Equal(t, "6", opSpec.solve(o).text)
}

func TestLogarithm_ExactPowerOfTwo(t *testing.T) {
	opSpec := operationSpecs[OpLogarithm]
	o := operands{a: 100}
	opSpec.prepare(&o)
	assert.Equal(t, 64, o.a)
	assert.Equal(t, "6", opSpec.solve(o).text)

	o = operands{a: 1}
	opSpec.prepare(&o)
	assert.Equal(t, "0", opSpec.solve(o).text)
}

func TestFormulas(t *testing.T) {
	o := operands{a: 3, b: 4, c: 7, d: 5}
	tests := []struct {
		op   Operation
		want string
	}{
		{OpAddition, "7"},
		{OpMultiplication, "12"},
		{OpDivision, "0"},
		{OpPercentageBasic, "0"},
		{OpHalf, "1.5"},
		{OpSquare, "9"},
		{OpLinearEquation, "1"},
		{OpOrderOperations, "49"},
		{OpFractionAddition, "43/20"},
		{OpIntegral, "(3/2)x² + 4x + C"},
		{OpDerivative, "6x + 4"},
		{OpTrigonometry, "1"},
		{OpQuadratic, noRealRoots},
		{OpLimit, "3"},
		{OpDefiniteIntegral, "2"},
		{OpInfiniteSeries, "π²/6"},
		{OpPolynomialDerivative, "9x² + 8x + 7"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, operationSpecs[tt.op].solve(o).text, tt.op.String())
	}
}

func TestQuadratic_RealRoots(t *testing.T) {
	ans := solveQuadratic(operands{a: 1, b: 6, c: 7})
	assert.Equal(t, "x = (-6 ± √8) / 2", ans.text)
	assert.NotContains(t, ans.distractors, ans.text)
}

func TestFormatFraction(t *testing.T) {
	assert.Equal(t, "1/2", formatFraction(2, 4))
	assert.Equal(t, "3", formatFraction(6, 2))
	assert.Equal(t, "0", formatFraction(0, 5))
	assert.Equal(t, "7", formatFraction(7, 0))
}
