package generator

import "fmt"

const genericExplanation = "Matematiksel işlem sonucu."

type explainFunc func(a, b, c int, answer string) string

var explanations = map[Operation]explainFunc{
	OpAddition: func(a, b, _ int, ans string) string {
		return fmt.Sprintf("%d ve %d sayılarını topladığımızda %s elde ederiz.", a, b, ans)
	},
	OpSubtraction: func(a, b, _ int, ans string) string {
		return fmt.Sprintf("%d ve %d sayıları arasındaki fark %s'dir.", a, b, ans)
	},
	OpMultiplication: func(a, b, _ int, ans string) string {
		return fmt.Sprintf("%d ile %d'yi çarptığımızda %s elde ederiz.", a, b, ans)
	},
	OpDivision: func(a, b, _ int, ans string) string {
		return fmt.Sprintf("%d'yı %d'ye böldüğümüzde bölümün tam kısmı olarak %s elde ederiz.", a, max(1, b), ans)
	},
	OpPercentageBasic: func(a, b, _ int, ans string) string {
		return fmt.Sprintf("%d'nın %%%d'si, %d × %d / 100 işleminin tam kısmıdır: %s.", a, b, a, b, ans)
	},
	OpHalf: func(a, _, _ int, ans string) string {
		return fmt.Sprintf("%d sayısının yarısı %d / 2 = %s'dir.", a, a, ans)
	},
	OpSquare: func(a, _, _ int, ans string) string {
		return fmt.Sprintf("%d'nın karesi %s'dir.", a, ans)
	},
	OpSqrt: func(a, _, _ int, ans string) string {
		return fmt.Sprintf("%d'nın karekökü %s'dir.", a, ans)
	},
	OpLinearEquation: func(a, b, c int, ans string) string {
		return fmt.Sprintf("%dx + %d = %d denkleminde x = (%d - %d) / %d = %s olur.", a, b, c, c, b, max(1, a), ans)
	},
	OpPercentage: func(a, b, _ int, ans string) string {
		return fmt.Sprintf("%d sayısının %%%d'i, %d × %d / 100 işleminin tam kısmıdır: %s.", b, a, a, b, ans)
	},
	OpOrderOperations: func(a, b, c int, ans string) string {
		return fmt.Sprintf("Önce parantez içi hesaplanır (%d + %d = %d), sonra %d ile çarpılır: %s.", a, b, a+b, c, ans)
	},
	OpFractionAddition: func(_, _, _ int, ans string) string {
		return fmt.Sprintf("Kesirler toplanırken paydalar eşitlenir, paylar toplanır ve sonuç sadeleştirilir: %s.", ans)
	},
	OpIntegral: func(_, _, _ int, _ string) string {
		return "İntegral alırken kuvvet 1 artırılır ve katsayı yeni kuvvete bölünür."
	},
	OpDerivative: func(_, _, _ int, _ string) string {
		return "Türev alırken kuvvet katsayıyla çarpılır ve kuvvet 1 azaltılır."
	},
	OpPolynomialDerivative: func(_, _, _ int, _ string) string {
		return "Türev alırken kuvvet katsayıyla çarpılır ve kuvvet 1 azaltılır; sabit terimin türevi 0'dır."
	},
	OpTrigonometry: func(_, _, _ int, _ string) string {
		return "Trigonometrik özdeşlik: sin²θ + cos²θ = 1"
	},
	OpQuadratic: func(a, b, c int, _ string) string {
		disc := b*b - 4*a*c
		text := fmt.Sprintf("Kökler x = (-b ± √Δ) / 2a formülüyle bulunur; Δ = b² - 4ac = %d² - 4·%d·%d = %d.", b, a, c, disc)
		if disc < 0 {
			text += " Δ negatif olduğundan gerçek kök yoktur."
		}
		return text
	},
	OpLogarithm: func(a, _, _ int, ans string) string {
		return fmt.Sprintf("2 üzeri %s, %d eder; bu yüzden log₂(%d) = %s.", ans, a, a, ans)
	},
	OpLimit: func(_, _, _ int, ans string) string {
		return fmt.Sprintf("Pay ve paydanın en yüksek dereceli terimi x² olduğundan limit, x² katsayılarının oranına eşittir: %s.", ans)
	},
	OpDefiniteIntegral: func(_, _, _ int, _ string) string {
		return "∫₀^π sin(x)dx = [-cos(x)]₀^π = 1 - (-1) = 2."
	},
	OpInfiniteSeries: func(_, _, _ int, _ string) string {
		return "Basel problemi: ∑ 1/n² serisi π²/6 değerine yakınsar."
	},
}

// Explain returns the rationale for an operation, interpolating the operands
// and the computed answer.
func Explain(op Operation, a, b, c int, answer string) string {
	if fn, ok := explanations[op]; ok {
		return fn(a, b, c, answer)
	}
	return genericExplanation
}
