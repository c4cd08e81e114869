package calc

import (
	"math"
	"strconv"
)

// significantDigits bounds the precision shown on the display.
const significantDigits = 12

// noiseFloor is the magnitude below which results display as zero.
const noiseFloor = 1e-12

// Compute applies a binary operator. Division by zero yields +Inf.
func Compute(a, b float64, op Op) float64 {
	switch op {
	case Add:
		return a + b
	case Sub:
		return a - b
	case Mul:
		return a * b
	case Div:
		if b == 0 {
			return math.Inf(1)
		}
		return a / b
	case Pow:
		return math.Pow(a, b)
	default:
		return b
	}
}

// FormatNumber renders n as the shortest decimal text with at most 12
// significant digits. Non-finite values render as "Error". Results that
// would not fit the display fall back to exponent notation.
func FormatNumber(n float64) string {
	if !isFinite(n) {
		return "Error"
	}
	if math.Abs(n) < noiseFloor {
		return "0"
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(n, 'g', significantDigits, 64), 64)
	if err != nil {
		return "Error"
	}
	s := strconv.FormatFloat(rounded, 'f', -1, 64)
	for prec := significantDigits; len(s) > MaxDisplayLen && prec > 0; prec-- {
		s = strconv.FormatFloat(rounded, 'g', prec, 64)
	}
	return s
}

func isFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}
