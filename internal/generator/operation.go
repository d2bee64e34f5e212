package generator

import (
	"fmt"
	"math/bits"
	"strconv"
)

// Operation selects how a template is solved, how far its distractors
// stray from the answer and how its explanation reads.
type Operation int

const (
	opInvalid Operation = iota
	OpAddition
	OpSubtraction
	OpMultiplication
	OpDivision
	OpPercentageBasic
	OpHalf
	OpSquare
	OpSqrt
	OpLinearEquation
	OpPercentage
	OpOrderOperations
	OpFractionAddition
	OpIntegral
	OpDerivative
	OpTrigonometry
	OpQuadratic
	OpLogarithm
	OpLimit
	OpDefiniteIntegral
	OpInfiniteSeries
	OpPolynomialDerivative
	// OpStatic marks pre-authored templates with a fixed option set.
	OpStatic
	// OpGeneric marks questions produced by the fallback generator.
	OpGeneric
	opCount
)

var operationNames = [opCount]string{
	opInvalid:              "invalid",
	OpAddition:             "addition",
	OpSubtraction:          "subtraction",
	OpMultiplication:       "multiplication",
	OpDivision:             "division",
	OpPercentageBasic:      "percentage_basic",
	OpHalf:                 "half",
	OpSquare:               "square",
	OpSqrt:                 "sqrt",
	OpLinearEquation:       "linear_equation",
	OpPercentage:           "percentage",
	OpOrderOperations:      "order_operations",
	OpFractionAddition:     "fraction_addition",
	OpIntegral:             "integral",
	OpDerivative:           "derivative",
	OpTrigonometry:         "trigonometry",
	OpQuadratic:            "quadratic",
	OpLogarithm:            "logarithm",
	OpLimit:                "limit",
	OpDefiniteIntegral:     "definite_integral",
	OpInfiniteSeries:       "infinite_series",
	OpPolynomialDerivative: "polynomial_derivative",
	OpStatic:               "static",
	OpGeneric:              "generic",
}

func (op Operation) String() string {
	if op < 0 || op >= opCount {
		return "invalid"
	}
	return operationNames[op]
}

// IsMath reports whether op is solved by the math generator.
func (op Operation) IsMath() bool {
	return op > opInvalid && op < OpStatic
}

// ParseOperation is the inverse of String.
func ParseOperation(name string) (Operation, bool) {
	for op := OpAddition; op < opCount; op++ {
		if operationNames[op] == name {
			return op, true
		}
	}
	return opInvalid, false
}

// Distractor offset windows.
const (
	windowArithmetic = 5
	windowSquare     = 10
	windowSqrt       = 2
	windowDefault    = 3
)

type operands struct {
	a, b, c, d int
}

// answer is either numeric, in which case distractors are synthesized
// around value, or symbolic with authored distractors.
type answer struct {
	numeric     bool
	value       float64
	text        string
	distractors []string
}

func numericAnswer(v float64) answer {
	return answer{numeric: true, value: v, text: formatNumber(v)}
}

func symbolicAnswer(text string, distractors ...string) answer {
	return answer{text: text, distractors: distractors}
}

type operationSpec struct {
	window  int
	prepare func(*operands)
	solve   func(operands) answer
}

// operationSpecs is indexed by Operation. An entry without a solver falls
// back to the addition formula.
var operationSpecs = [opCount]operationSpec{
	OpAddition: {
		window: windowArithmetic,
		solve:  func(o operands) answer { return numericAnswer(float64(o.a + o.b)) },
	},
	OpSubtraction: {
		window: windowArithmetic,
		// The larger operand goes first so the displayed difference is |a-b|.
		prepare: func(o *operands) {
			if o.a < o.b {
				o.a, o.b = o.b, o.a
			}
		},
		solve: func(o operands) answer { return numericAnswer(float64(absInt(o.a - o.b))) },
	},
	OpMultiplication: {
		window: windowArithmetic,
		solve:  func(o operands) answer { return numericAnswer(float64(o.a * o.b)) },
	},
	OpDivision: {
		window: windowArithmetic,
		solve:  func(o operands) answer { return numericAnswer(float64(o.a / max(1, o.b))) },
	},
	OpPercentageBasic: {
		window: windowDefault,
		solve:  func(o operands) answer { return numericAnswer(float64((o.b * o.a) / 100)) },
	},
	OpHalf: {
		window: windowDefault,
		solve:  func(o operands) answer { return numericAnswer(float64(o.a) / 2) },
	},
	OpSquare: {
		window: windowSquare,
		solve:  func(o operands) answer { return numericAnswer(float64(o.a * o.a)) },
	},
	OpSqrt: {
		window: windowSqrt,
		// Only perfect squares are ever shown under the root.
		prepare: func(o *operands) {
			r := isqrt(o.a)
			o.a = r * r
		},
		solve: func(o operands) answer { return numericAnswer(float64(isqrt(o.a))) },
	},
	OpLinearEquation: {
		window: windowDefault,
		solve:  func(o operands) answer { return numericAnswer(float64((o.c - o.b) / max(1, o.a))) },
	},
	OpPercentage: {
		window: windowDefault,
		solve:  func(o operands) answer { return numericAnswer(float64((o.a * o.b) / 100)) },
	},
	OpOrderOperations: {
		window: windowDefault,
		solve:  func(o operands) answer { return numericAnswer(float64((o.a + o.b) * o.c)) },
	},
	OpFractionAddition: {
		solve: solveFractionAddition,
	},
	OpIntegral: {
		solve: func(o operands) answer {
			return symbolicAnswer(
				fmt.Sprintf("(%d/2)x² + %dx + C", o.a, o.b),
				fmt.Sprintf("%dx² + %dx + C", o.a, o.b),
				fmt.Sprintf("%dx + %d + C", o.a, o.b),
				fmt.Sprintf("(%d/3)x³ + %dx + C", o.a, o.b),
			)
		},
	},
	OpDerivative: {
		solve: func(o operands) answer {
			return symbolicAnswer(
				fmt.Sprintf("%dx + %d", 2*o.a, o.b),
				fmt.Sprintf("%dx² + %dx", o.a, o.b),
				fmt.Sprintf("%dx + %d", o.a, o.c),
				fmt.Sprintf("%dx² + %d", 2*o.a, o.b),
			)
		},
	},
	OpTrigonometry: {
		window: windowDefault,
		solve:  func(operands) answer { return numericAnswer(1) },
	},
	OpQuadratic: {
		solve: solveQuadratic,
	},
	OpLogarithm: {
		window: windowDefault,
		// Only powers of two are shown so the logarithm is exact.
		prepare: func(o *operands) {
			o.a = 1 << (bits.Len(uint(o.a)) - 1)
		},
		solve: func(o operands) answer { return numericAnswer(float64(bits.Len(uint(o.a)) - 1)) },
	},
	OpLimit: {
		window: windowDefault,
		solve:  func(o operands) answer { return numericAnswer(float64(o.a)) },
	},
	OpDefiniteIntegral: {
		solve: func(operands) answer { return symbolicAnswer("2", "0", "1", "π") },
	},
	OpInfiniteSeries: {
		solve: func(operands) answer { return symbolicAnswer("π²/6", "π²/3", "1", "∞") },
	},
	OpPolynomialDerivative: {
		solve: func(o operands) answer {
			return symbolicAnswer(
				fmt.Sprintf("%dx² + %dx + %d", 3*o.a, 2*o.b, o.c),
				fmt.Sprintf("%dx² + %dx + %d", o.a, o.b, o.c),
				fmt.Sprintf("%dx³ + %dx² + %dx", 3*o.a, 2*o.b, o.c),
				fmt.Sprintf("%dx² + %dx + %d", 3*o.a, 2*o.b, o.c+o.d),
				fmt.Sprintf("%dx² + %dx + %d", 3*o.a, o.b, o.c),
			)
		},
	},
}

func specFor(op Operation) operationSpec {
	if op > opInvalid && op < opCount && operationSpecs[op].solve != nil {
		return operationSpecs[op]
	}
	return operationSpecs[OpAddition]
}

func solveFractionAddition(o operands) answer {
	num, den := o.a*o.d+o.c*o.b, o.b*o.d
	return symbolicAnswer(
		formatFraction(num, den),
		formatFraction(o.a+o.c, o.b+o.d),
		formatFraction(o.a+o.c, o.b*o.d),
		formatFraction(num, o.b+o.d),
		formatFraction(o.a*o.c, o.b*o.d),
		formatFraction(num+den, den),
	)
}

const noRealRoots = "Gerçek kök yok"

func solveQuadratic(o operands) answer {
	disc := o.b*o.b - 4*o.a*o.c
	if disc < 0 {
		return symbolicAnswer(noRealRoots,
			fmt.Sprintf("x = (-%d ± √%d) / %d", o.b, -disc, 2*o.a),
			"x = "+formatFraction(-o.b, 2*o.a),
			fmt.Sprintf("x = (%d ± √%d) / %d", o.b, -disc, 2*o.a),
		)
	}
	return symbolicAnswer(
		fmt.Sprintf("x = (-%d ± √%d) / %d", o.b, disc, 2*o.a),
		fmt.Sprintf("x = (%d ± √%d) / %d", o.b, disc, 2*o.a),
		fmt.Sprintf("x = (-%d ± √%d) / %d", o.b, o.b*o.b+4*o.a*o.c, 2*o.a),
		fmt.Sprintf("x = (-%d ± √%d) / %d", o.b, disc, o.a),
	)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatFraction reduces num/den and drops a unit denominator.
func formatFraction(num, den int) string {
	if den == 0 {
		den = 1
	}
	g := gcd(absInt(num), absInt(den))
	if g > 1 {
		num, den = num/g, den/g
	}
	if den == 1 {
		return strconv.Itoa(num)
	}
	return fmt.Sprintf("%d/%d", num, den)
}

func isqrt(n int) int {
	if n < 1 {
		return 0
	}
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
